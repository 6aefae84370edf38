package bankroll

import (
	"testing"
	"time"
)

// at returns a recording time on the given day.
func at(day string, hour int) time.Time {
	return MustParse(day).time().Add(time.Duration(hour) * time.Hour)
}

func snapshot(id, accountID, day string, balance float64) Snapshot {
	return Snapshot{
		ID:         id,
		AccountID:  accountID,
		Date:       MustParse(day),
		Balance:    M(balance, "BRL"),
		RecordedAt: at(day, 12),
	}
}

// sampleState has a goal account with a gain, an account with a loss, an
// account without snapshot and an orphan snapshot.
func sampleState() State {
	return State{
		Currency: "BRL",
		Accounts: []Account{
			{ID: "a1", Name: "Bet365", CreatedAt: at("2024-02-01", 9), Goal: M(1000, "BRL")},
			{ID: "a2", Name: "Betano", CreatedAt: at("2024-02-01", 10)},
			{ID: "a3", Name: "Empty", CreatedAt: at("2024-02-01", 11)},
		},
		Snapshots: []Snapshot{
			snapshot("s1", "a1", "2024-02-10", 400),
			snapshot("s3", "a2", "2024-03-05", 300),
			snapshot("s2", "a1", "2024-03-01", 500.5),
			snapshot("s4", "a2", "2024-03-20", 240),
			snapshot("s5", "ghost", "2024-03-10", 50),
		},
	}
}

func assertMoney(t *testing.T, what string, got Money, want float64) {
	t.Helper()
	if !got.Equal(M(want, "")) {
		t.Errorf("%s = %s, want %v", what, got.Fixed(2), want)
	}
}
