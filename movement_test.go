package bankroll

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestNewMovements(t *testing.T) {
	movements := NewMovements(sampleState())

	var got []string
	for _, m := range movements {
		got = append(got, fmt.Sprintf("%s:%s:%s:%s", m.SnapshotID, m.AccountName, m.Delta.Fixed(2), m.Kind))
	}
	want := "[s4:Betano:-60.00:loss s5:(unknown account):0.00:flat s3:Betano:0.00:flat s2:Bet365:100.50:gain s1:Bet365:0.00:flat]"
	if fmt.Sprint(got) != want {
		t.Errorf("NewMovements() = %v\nwant %v", got, want)
	}
	if movements[3].DeltaPercent != 25.125 {
		t.Errorf("s2 delta percent = %v want 25.125", movements[3].DeltaPercent)
	}
}

func TestMovementFilter(t *testing.T) {
	movements := NewMovements(sampleState())
	tests := []struct {
		filter MovementFilter
		want   string
	}{
		{MovementFilter{}, "[s4 s5 s3 s2 s1]"},
		{MovementFilter{Account: "Bet365"}, "[s2 s1]"},
		{MovementFilter{Kind: Loss}, "[s4]"},
		{MovementFilter{Kind: Flat, Account: "Betano"}, "[s3]"},
		{MovementFilter{Text: "BETA"}, "[s4 s3]"},
		{MovementFilter{Text: "2024-03-0"}, "[s3 s2]"},
		{MovementFilter{Text: "nothing"}, "[]"},
	}
	for _, tt := range tests {
		var got []string
		for _, m := range tt.filter.Filter(movements) {
			got = append(got, m.SnapshotID)
		}
		if fmt.Sprint(got) != tt.want {
			t.Errorf("%+v.Filter() = %v want %v", tt.filter, got, tt.want)
		}
	}
}

func TestNewDayBalances(t *testing.T) {
	state := sampleState()
	state.Snapshots = append(state.Snapshots,
		snapshot("s6", "a1", "2024-03-20", 600),
		snapshot("s7", "ghost", "2024-03-20", -10),
	)
	days := NewDayBalances(NewMovements(state))

	tests := []struct {
		date    string
		entries string
		total   float64
	}{
		{"2024-03-20", "[s7 s6 s4]", 830},
		{"2024-03-10", "[s5]", 50},
		{"2024-03-05", "[s3]", 300},
		{"2024-03-01", "[s2]", 500.5},
		{"2024-02-10", "[s1]", 400},
	}
	if len(days) != len(tests) {
		t.Fatalf("NewDayBalances() returned %d days want %d", len(days), len(tests))
	}
	for i, tt := range tests {
		day := days[i]
		if day.Date.String() != tt.date {
			t.Errorf("day %d = %s want %s", i, day.Date, tt.date)
		}
		var ids []string
		for _, m := range day.Entries {
			ids = append(ids, m.SnapshotID)
		}
		if fmt.Sprint(ids) != tt.entries {
			t.Errorf("%s entries = %v want %v", tt.date, ids, tt.entries)
		}
		assertMoney(t, tt.date+" total", day.Total, tt.total)
	}

	if got := NewDayBalances(nil); len(got) != 0 {
		t.Errorf("NewDayBalances(nil) = %v want none", got)
	}
}

func TestParseMovementKind(t *testing.T) {
	if k, ok := ParseMovementKind(" Gain "); !ok || k != Gain {
		t.Errorf("ParseMovementKind(Gain) = %v, %v", k, ok)
	}
	if _, ok := ParseMovementKind("win"); ok {
		t.Error("ParseMovementKind(win) succeeded")
	}
}

// TestMovementsPartition checks that every snapshot yields one movement, and
// that the kind is the sign of the delta.
func TestMovementsPartition(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("one movement per snapshot, kind follows the delta", prop.ForAll(
		func(accounts []int, balances []int) bool {
			state := State{Currency: "BRL", Accounts: []Account{{ID: "0", Name: "A"}, {ID: "1", Name: "B"}}}
			n := min(len(accounts), len(balances))
			for i := range n {
				s := snapshot(fmt.Sprint("s", i), fmt.Sprint(accounts[i]), "2024-01-01", float64(balances[i]))
				s.Date = s.Date.Add(i)
				state.Snapshots = append(state.Snapshots, s)
			}
			movements := NewMovements(state)
			if len(movements) != n {
				return false
			}
			for _, m := range movements {
				switch m.Kind {
				case Gain:
					if !m.Delta.IsPositive() {
						return false
					}
				case Loss:
					if !m.Delta.IsNegative() {
						return false
					}
				case Flat:
					if !m.Delta.IsZero() {
						return false
					}
				default:
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 2)), // 2 is an unregistered account.
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
