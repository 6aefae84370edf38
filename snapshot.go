package bankroll

import (
	"slices"
	"time"
)

// Snapshot is one dated balance observation for an account.
//
// Several snapshots can share the same account and date: the log is
// append-only and never merges entries.
type Snapshot struct {
	ID         string
	AccountID  string
	Date       Date
	Balance    Money
	RecordedAt time.Time // when the entry was made, breaks ties on the same Date.
}

// MarshalJSON writes the persisted form of a snapshot.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", s.ID)
	w.Append("accountId", s.AccountID)
	w.Append("date", s.Date)
	w.Append("balance", s.Balance)
	w.Append("recordedAt", s.RecordedAt.Format(DatetimeFormat))
	return w.MarshalJSON()
}

// compareChronological orders snapshots by date, then by recording time.
func compareChronological(a, b Snapshot) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.RecordedAt.Compare(b.RecordedAt)
}

// chronological returns a copy of the snapshots in chronological order.
//
// The sort is stable: entries with the same date and recording time keep their
// log order, so the one appended last is considered the most recent.
func chronological(snapshots []Snapshot) []Snapshot {
	sorted := slices.Clone(snapshots)
	slices.SortStableFunc(sorted, compareChronological)
	return sorted
}

// byAccount groups snapshots per account ID, each group in chronological order.
func byAccount(snapshots []Snapshot) map[string][]Snapshot {
	groups := make(map[string][]Snapshot)
	for _, s := range chronological(snapshots) {
		groups[s.AccountID] = append(groups[s.AccountID], s)
	}
	return groups
}
