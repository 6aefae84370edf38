package bankroll

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// This file contains code to persist the four records of a book as JSON
// documents. Encoding is plain and indented, so that records stay human
// readable. Decoding is defensive: each entry is checked on its own, and a
// malformed entry is dropped rather than failing the whole record.

// decodeEntries decodes a JSON array entry by entry.
//
// It returns the valid entries, and an error joining the problems of every
// dropped entry. A document that is not an array is an error with no entries.
func decodeEntries[T any](key string, data []byte, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("record %q is not a JSON array: %w", key, err)
	}
	var errs error
	res := make([]T, 0, len(raws))
	for i, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s[%d]: %w", key, i, err))
			continue
		}
		res = append(res, v)
	}
	return res, errs
}

// parseTimestamp reads an optional timestamp, the zero time if missing.
func parseTimestamp(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("property %q must be a RFC3339 timestamp: %w", field, err)
	}
	return t.UTC(), nil
}

func encodeRecord(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// EncodeAccounts encodes the accounts record.
func EncodeAccounts(accounts []Account) ([]byte, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	return encodeRecord(accounts)
}

// DecodeAccounts decodes the accounts record. Amounts are set in currency.
func DecodeAccounts(data []byte, currency string) ([]Account, error) {
	// jaccount is the object read from the record using json parser.
	type jaccount struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"createdAt"`
		Goal      *Money `json:"goal"`
	}
	return decodeEntries(KeyAccounts, data, func(raw json.RawMessage) (Account, error) {
		var ja jaccount
		if err := json.Unmarshal(raw, &ja); err != nil {
			return Account{}, err
		}
		if ja.ID == "" {
			return Account{}, fmt.Errorf("missing the property %q", "id")
		}
		if strings.TrimSpace(ja.Name) == "" {
			return Account{}, fmt.Errorf("missing the property %q", "name")
		}
		createdAt, err := parseTimestamp("createdAt", ja.CreatedAt)
		if err != nil {
			return Account{}, err
		}
		a := Account{ID: ja.ID, Name: ja.Name, CreatedAt: createdAt}
		if ja.Goal != nil && ja.Goal.IsPositive() {
			a.Goal = ja.Goal.In(currency)
		}
		return a, nil
	})
}

// EncodeSnapshots encodes the snapshots record, in log order.
func EncodeSnapshots(snapshots []Snapshot) ([]byte, error) {
	if snapshots == nil {
		snapshots = []Snapshot{}
	}
	return encodeRecord(snapshots)
}

// DecodeSnapshots decodes the snapshots record. Balances are set in currency.
func DecodeSnapshots(data []byte, currency string) ([]Snapshot, error) {
	type jsnapshot struct {
		ID         string `json:"id"`
		AccountID  string `json:"accountId"`
		Date       *Date  `json:"date"`
		Balance    *Money `json:"balance"`
		RecordedAt string `json:"recordedAt"`
	}
	return decodeEntries(KeySnapshots, data, func(raw json.RawMessage) (Snapshot, error) {
		var js jsnapshot
		if err := json.Unmarshal(raw, &js); err != nil {
			return Snapshot{}, err
		}
		switch {
		case js.ID == "":
			return Snapshot{}, fmt.Errorf("missing the property %q", "id")
		case js.AccountID == "":
			return Snapshot{}, fmt.Errorf("missing the property %q", "accountId")
		case js.Date == nil:
			return Snapshot{}, fmt.Errorf("missing the property %q", "date")
		case js.Balance == nil:
			return Snapshot{}, fmt.Errorf("missing the property %q", "balance")
		}
		recordedAt, err := parseTimestamp("recordedAt", js.RecordedAt)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{
			ID:         js.ID,
			AccountID:  js.AccountID,
			Date:       *js.Date,
			Balance:    js.Balance.In(currency),
			RecordedAt: recordedAt,
		}, nil
	})
}

// EncodeAlerts encodes the alerts record.
func EncodeAlerts(alerts []Alert) ([]byte, error) {
	if alerts == nil {
		alerts = []Alert{}
	}
	return encodeRecord(alerts)
}

// DecodeAlerts decodes the alerts record. Deltas are set in currency.
func DecodeAlerts(data []byte, currency string) ([]Alert, error) {
	type jalert struct {
		ID           string    `json:"id"`
		Kind         AlertKind `json:"kind"`
		AccountName  string    `json:"accountName"`
		Delta        Money     `json:"delta"`
		Percent      float64   `json:"percent"`
		Date         *Date     `json:"date"`
		CreatedAt    string    `json:"createdAt"`
		Acknowledged bool      `json:"acknowledged"`
	}
	return decodeEntries(KeyAlerts, data, func(raw json.RawMessage) (Alert, error) {
		var ja jalert
		if err := json.Unmarshal(raw, &ja); err != nil {
			return Alert{}, err
		}
		if ja.ID == "" {
			return Alert{}, fmt.Errorf("missing the property %q", "id")
		}
		if ja.Kind != HeavyLoss && ja.Kind != StrongGain {
			return Alert{}, fmt.Errorf("unknown alert kind %q", ja.Kind)
		}
		if ja.Date == nil {
			return Alert{}, fmt.Errorf("missing the property %q", "date")
		}
		createdAt, err := parseTimestamp("createdAt", ja.CreatedAt)
		if err != nil {
			return Alert{}, err
		}
		name := ja.AccountName
		if name == "" {
			name = UnknownAccountName
		}
		return Alert{
			ID:           ja.ID,
			Kind:         ja.Kind,
			AccountName:  name,
			Delta:        ja.Delta.In(currency),
			Percent:      Percent(ja.Percent).finite(),
			Date:         *ja.Date,
			CreatedAt:    createdAt,
			Acknowledged: ja.Acknowledged,
		}, nil
	})
}

// EncodeAlertConfig encodes the alert configuration record.
func EncodeAlertConfig(cfg AlertConfig) ([]byte, error) { return encodeRecord(cfg) }

// DecodeAlertConfig decodes the alert configuration record.
//
// Missing properties keep their default value. An invalid configuration is
// an error, and the default configuration is returned with it.
func DecodeAlertConfig(data []byte) (AlertConfig, error) {
	cfg := DefaultAlertConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultAlertConfig(), fmt.Errorf("record %q: %w", KeyAlertConfig, err)
	}
	cfg.LossThreshold = cfg.LossThreshold.finite()
	cfg.GainThreshold = cfg.GainThreshold.finite()
	if err := cfg.Validate(); err != nil {
		return DefaultAlertConfig(), fmt.Errorf("record %q: %w", KeyAlertConfig, err)
	}
	return cfg, nil
}
