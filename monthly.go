package bankroll

import (
	"fmt"
	"slices"
	"time"
)

// MonthlyReport aggregates the balances of one calendar month.
type MonthlyReport struct {
	Year       int
	Month      time.Month
	Opening    Money // closing of the preceding calendar month, zero if it has no snapshot.
	Closing    Money
	Gains      Money
	Losses     Money // sum of negative deltas, never positive.
	Net        Money
	NetPercent Percent
}

// Label returns the month as "2006-01".
func (r MonthlyReport) Label() string { return fmt.Sprintf("%04d-%02d", r.Year, r.Month) }

// MarshalJSON writes the report as exported in backups.
func (r MonthlyReport) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", int(r.Month))
	w.Append("year", r.Year)
	w.Append("openingBalance", r.Opening)
	w.Append("closingBalance", r.Closing)
	w.Append("totalGains", r.Gains)
	w.Append("totalLosses", r.Losses)
	w.Append("netVariation", r.Net)
	w.Append("netVariationPercent", r.NetPercent)
	return w.MarshalJSON()
}

// month identifies a calendar month.
type month struct {
	y int
	m time.Month
}

func monthOf(d Date) month { return month{d.Year(), d.Month()} }

func (m month) previous() month { return monthOf(NewDate(m.y, m.m-1, 1)) }

func (m month) compare(x month) int {
	return NewDate(m.y, m.m, 1).Compare(NewDate(x.y, x.m, 1))
}

// NewMonthlyReports computes one report per month present in the log, oldest
// first.
//
// An account contributes to a month with its latest snapshot dated in that
// month. Snapshots of unregistered accounts are ignored.
func NewMonthlyReports(state State) []MonthlyReport {
	index := accountIndex(state.Accounts)
	closings := make(map[month]map[string]Money)
	for _, s := range chronological(state.Snapshots) {
		if _, ok := index[s.AccountID]; !ok {
			continue
		}
		key := monthOf(s.Date)
		if closings[key] == nil {
			closings[key] = make(map[string]Money)
		}
		// later snapshots overwrite earlier ones.
		closings[key][s.AccountID] = s.Balance
	}

	sum := func(key month) Money {
		total := state.zero()
		for _, b := range closings[key] {
			total = total.Add(b)
		}
		return total
	}

	months := make([]month, 0, len(closings))
	for key := range closings {
		months = append(months, key)
	}
	slices.SortFunc(months, month.compare)

	gains := make(map[month]Money)
	losses := make(map[month]Money)
	for _, m := range NewMovements(state) {
		if _, ok := index[m.AccountID]; !ok {
			continue
		}
		key := monthOf(m.Date)
		switch m.Kind {
		case Gain:
			gains[key] = gains[key].Add(m.Delta)
		case Loss:
			losses[key] = losses[key].Add(m.Delta)
		}
	}

	res := make([]MonthlyReport, 0, len(months))
	for _, key := range months {
		r := MonthlyReport{
			Year:    key.y,
			Month:   key.m,
			Opening: sum(key.previous()),
			Closing: sum(key),
			Gains:   state.zero().Add(gains[key]),
			Losses:  state.zero().Add(losses[key]),
		}
		r.Net = r.Closing.Sub(r.Opening)
		r.NetPercent = r.Net.Ratio(r.Opening)
		res = append(res, r)
	}
	return res
}
