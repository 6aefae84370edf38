package bankroll

import (
	"cmp"
	"slices"
	"strings"
)

// AccountBalance is the current standing of a registered account.
type AccountBalance struct {
	Account          Account
	Current          Money   // latest balance, zero without snapshot.
	LastUpdate       Date    // date of the latest snapshot, zero without snapshot.
	Variation        Money   // latest minus previous balance.
	VariationPercent Percent // Variation relative to the previous balance.
	DistanceToGoal   Money   // goal minus current, zero without goal.
}

// HasSnapshot reports whether at least one balance was recorded.
func (b AccountBalance) HasSnapshot() bool { return !b.LastUpdate.IsZero() }

// MarshalJSON writes the account balance as exported in backups.
func (b AccountBalance) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(b.Account)
	w.Append("currentBalance", b.Current)
	if b.HasSnapshot() {
		w.Append("lastUpdate", b.LastUpdate)
	}
	w.Append("variation", b.Variation)
	w.Append("variationPercent", b.VariationPercent)
	if b.Account.HasGoal() {
		w.Append("distanceToGoal", b.DistanceToGoal)
	}
	return w.MarshalJSON()
}

// NewAccountBalances computes the balance of every registered account, in
// registry order.
func NewAccountBalances(state State) []AccountBalance {
	groups := byAccount(state.Snapshots)
	res := make([]AccountBalance, 0, len(state.Accounts))
	for _, a := range state.Accounts {
		b := AccountBalance{
			Account:   a,
			Current:   state.zero(),
			Variation: state.zero(),
		}
		if group := groups[a.ID]; len(group) > 0 {
			latest := group[len(group)-1]
			b.Current = latest.Balance
			b.LastUpdate = latest.Date
			if len(group) > 1 {
				previous := group[len(group)-2]
				b.Variation = latest.Balance.Sub(previous.Balance)
				b.VariationPercent = b.Variation.Ratio(previous.Balance)
			}
		}
		if a.HasGoal() {
			b.DistanceToGoal = a.Goal.Sub(b.Current)
		}
		res = append(res, b)
	}
	return res
}

// Totals aggregates the balances of all registered accounts.
type Totals struct {
	Balance          Money
	Variation        Money // sum of the per-account variations.
	VariationPercent Percent
	Accounts         int
	ActiveAccounts   int // accounts with a positive balance.
	Snapshots        int
}

// NewTotals computes the aggregate figures of the state.
//
// The total variation is the sum of each account's own latest variation, not
// the variation of the total balance: the two differ when accounts are not
// updated on the same dates.
func NewTotals(state State) Totals {
	t := Totals{
		Balance:   state.zero(),
		Variation: state.zero(),
		Snapshots: len(state.Snapshots),
	}
	for _, b := range NewAccountBalances(state) {
		t.Accounts++
		t.Balance = t.Balance.Add(b.Current)
		t.Variation = t.Variation.Add(b.Variation)
		if b.Current.IsPositive() {
			t.ActiveAccounts++
		}
	}
	t.VariationPercent = t.Variation.Ratio(t.Balance)
	return t
}

// RankEntry is an account in the ranking.
type RankEntry struct {
	Rank int
	AccountBalance
	Share Percent // part of the total positive balance.
}

// NewRanking orders the accounts holding a positive balance, largest first.
// Equal balances are ordered by name.
func NewRanking(balances []AccountBalance) []RankEntry {
	var total Money
	var active []AccountBalance
	for _, b := range balances {
		if b.Current.IsPositive() {
			active = append(active, b)
			total = total.Add(b.Current)
		}
	}
	slices.SortStableFunc(active, func(a, b AccountBalance) int {
		if c := b.Current.Decimal().Cmp(a.Current.Decimal()); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Account.Name), strings.ToLower(b.Account.Name))
	})
	res := make([]RankEntry, 0, len(active))
	for i, b := range active {
		res = append(res, RankEntry{
			Rank:           i + 1,
			AccountBalance: b,
			Share:          b.Current.Ratio(total),
		})
	}
	return res
}
