package bankroll

import (
	"strings"
	"time"
)

// UnknownAccountName labels snapshots whose account is no longer registered.
const UnknownAccountName = "(unknown account)"

// Account is a tracked betting-site bankroll.
type Account struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Goal      Money // target balance, not positive means no goal.
}

// HasGoal reports whether a target balance is set.
func (a Account) HasGoal() bool { return a.Goal.IsPositive() }

// MarshalJSON writes the persisted form of an account.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("createdAt", a.CreatedAt.Format(DatetimeFormat))
	if a.HasGoal() {
		w.Append("goal", a.Goal)
	}
	return w.MarshalJSON()
}

// sameName compares account names the way uniqueness is enforced.
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// accountIndex maps account IDs to accounts.
func accountIndex(accounts []Account) map[string]Account {
	index := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		index[a.ID] = a
	}
	return index
}
