package bankroll

import (
	"fmt"
	"time"
)

// AlertKind is the kind of balance change that raised an alert.
type AlertKind string

const (
	HeavyLoss  AlertKind = "heavy_loss"
	StrongGain AlertKind = "strong_gain"
)

func (k AlertKind) String() string {
	switch k {
	case HeavyLoss:
		return "heavy loss"
	case StrongGain:
		return "strong gain"
	}
	return string(k)
}

// Alert is a notification raised when a recorded balance moves beyond the
// configured thresholds. Alerts are persisted until removed.
type Alert struct {
	ID           string
	Kind         AlertKind
	AccountName  string
	Delta        Money
	Percent      Percent
	Date         Date
	CreatedAt    time.Time
	Acknowledged bool
}

// MarshalJSON writes the persisted form of an alert.
func (a Alert) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("kind", a.Kind)
	w.Append("accountName", a.AccountName)
	w.Append("delta", a.Delta)
	w.Append("percent", a.Percent)
	w.Append("date", a.Date)
	if !a.CreatedAt.IsZero() {
		w.Append("createdAt", a.CreatedAt.Format(DatetimeFormat))
	}
	w.Append("acknowledged", a.Acknowledged)
	return w.MarshalJSON()
}

// AlertConfig holds the thresholds, in percent of the prior balance, that
// raise an alert.
type AlertConfig struct {
	LossThreshold Percent `json:"lossThresholdPercent" validate:"gt=0,lte=100"`
	GainThreshold Percent `json:"gainThresholdPercent" validate:"gt=0"`
	Enabled       bool    `json:"enabled"`
}

// DefaultAlertConfig alerts on a 10% loss or a 20% gain.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{LossThreshold: 10, GainThreshold: 20, Enabled: true}
}

// Validate checks the thresholds.
func (c AlertConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: alert config: %w", ErrInvalid, err)
	}
	return nil
}

// EvaluateAlert returns the alert raised by appending 'next' after 'prior',
// the account's latest snapshot before the append, or nil.
//
// A loss is checked first: an append raises at most one alert. The returned
// alert has no ID yet.
func EvaluateAlert(cfg AlertConfig, prior *Snapshot, next Snapshot, accountName string) *Alert {
	if !cfg.Enabled || prior == nil || !prior.Balance.IsPositive() {
		return nil
	}
	delta := next.Balance.Sub(prior.Balance)
	percent := delta.Ratio(prior.Balance)

	var kind AlertKind
	switch {
	case percent <= -cfg.LossThreshold:
		kind = HeavyLoss
	case percent >= cfg.GainThreshold:
		kind = StrongGain
	default:
		return nil
	}
	return &Alert{
		Kind:        kind,
		AccountName: accountName,
		Delta:       delta,
		Percent:     percent,
		Date:        next.Date,
	}
}

// PendingAlerts returns the alerts not acknowledged yet, in log order.
func PendingAlerts(alerts []Alert) []Alert {
	var res []Alert
	for _, a := range alerts {
		if !a.Acknowledged {
			res = append(res, a)
		}
	}
	return res
}
