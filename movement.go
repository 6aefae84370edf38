package bankroll

import (
	"slices"
	"strings"
)

// MovementKind classifies the change of a balance from its predecessor.
type MovementKind string

const (
	Gain MovementKind = "gain"
	Loss MovementKind = "loss"
	Flat MovementKind = "flat"
)

// ParseMovementKind parses "gain", "loss" or "flat", case-insensitively.
func ParseMovementKind(s string) (MovementKind, bool) {
	switch k := MovementKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Gain, Loss, Flat:
		return k, true
	}
	return "", false
}

func kindOf(delta Money) MovementKind {
	switch {
	case delta.IsPositive():
		return Gain
	case delta.IsNegative():
		return Loss
	}
	return Flat
}

// Movement is a snapshot annotated with its change from the previous snapshot
// of the same account.
type Movement struct {
	SnapshotID   string
	AccountID    string
	Date         Date
	AccountName  string
	Balance      Money
	Delta        Money
	DeltaPercent Percent
	Kind         MovementKind
}

// MarshalJSON writes the movement as exported in backups.
func (m Movement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("snapshotId", m.SnapshotID)
	w.Append("date", m.Date)
	w.Append("accountName", m.AccountName)
	w.Append("balance", m.Balance)
	w.Append("delta", m.Delta)
	w.Append("deltaPercent", m.DeltaPercent)
	w.Append("kind", m.Kind)
	return w.MarshalJSON()
}

// NewMovements annotates every snapshot of the log, most recent first.
//
// Snapshots of unregistered accounts are kept, labeled UnknownAccountName.
func NewMovements(state State) []Movement {
	index := accountIndex(state.Accounts)
	predecessors := make(map[string]Snapshot)
	res := make([]Movement, 0, len(state.Snapshots))
	for _, s := range chronological(state.Snapshots) {
		m := Movement{
			SnapshotID:  s.ID,
			AccountID:   s.AccountID,
			Date:        s.Date,
			AccountName: UnknownAccountName,
			Balance:     s.Balance,
			Delta:       s.Balance.Sub(s.Balance),
		}
		if a, ok := index[s.AccountID]; ok {
			m.AccountName = a.Name
		}
		if predecessor, ok := predecessors[s.AccountID]; ok {
			m.Delta = s.Balance.Sub(predecessor.Balance)
			m.DeltaPercent = m.Delta.Ratio(predecessor.Balance)
		}
		m.Kind = kindOf(m.Delta)
		predecessors[s.AccountID] = s
		res = append(res, m)
	}
	slices.Reverse(res)
	return res
}

// MovementFilter selects movements for display. Empty fields match everything.
type MovementFilter struct {
	Account string       // exact account name.
	Kind    MovementKind // exact kind.
	Text    string       // case-insensitive substring of the account name or the ISO date.
}

// Match reports whether the movement passes the filter.
func (f MovementFilter) Match(m Movement) bool {
	if f.Account != "" && m.AccountName != f.Account {
		return false
	}
	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}
	if f.Text != "" {
		text := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(m.AccountName), text) && !strings.Contains(m.Date.String(), text) {
			return false
		}
	}
	return true
}

// Filter returns the movements passing the filter, in the same order.
func (f MovementFilter) Filter(movements []Movement) []Movement {
	var res []Movement
	for _, m := range movements {
		if f.Match(m) {
			res = append(res, m)
		}
	}
	return res
}

// DayBalances groups the movements recorded on one date.
type DayBalances struct {
	Date    Date
	Entries []Movement
	Total   Money // sum of the balances of every entry.
}

// NewDayBalances groups movements by date, most recent date first. Entries
// keep their order within a date.
func NewDayBalances(movements []Movement) []DayBalances {
	byDate := make(map[Date]int)
	var res []DayBalances
	for _, m := range movements {
		i, ok := byDate[m.Date]
		if !ok {
			i = len(res)
			byDate[m.Date] = i
			res = append(res, DayBalances{Date: m.Date})
		}
		res[i].Entries = append(res[i].Entries, m)
		res[i].Total = res[i].Total.Add(m.Balance)
	}
	slices.SortStableFunc(res, func(a, b DayBalances) int { return b.Date.Compare(a.Date) })
	return res
}
