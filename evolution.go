package bankroll

// EvolutionPoint is one day of a balance series.
type EvolutionPoint struct {
	Date             Date
	Balance          Money
	Variation        Money // change from the previous point.
	VariationPercent Percent
}

// NewEvolution returns the daily balance series of an account, or of the
// total of all registered accounts if accountID is empty.
//
// The total on a date sums the latest balance of every account on or before
// that date. Only the last 'limit' points are kept, limit <= 0 keeps them all.
func NewEvolution(state State, accountID string, limit int) []EvolutionPoint {
	index := accountIndex(state.Accounts)

	var series History[Money]
	if accountID != "" {
		for _, s := range byAccount(state.Snapshots)[accountID] {
			// chronological order: the last appended value of a day wins.
			series.Append(s.Date, s.Balance)
		}
	} else {
		var accounts []*History[Money]
		for id, group := range byAccount(state.Snapshots) {
			if _, ok := index[id]; !ok {
				continue
			}
			h := new(History[Money])
			for _, s := range group {
				h.Append(s.Date, s.Balance)
			}
			accounts = append(accounts, h)
		}
		for day := range Iterate(accounts...) {
			total := state.zero()
			for _, h := range accounts {
				if balance, ok := h.ValueAsOf(day); ok {
					total = total.Add(balance)
				}
			}
			series.Append(day, total)
		}
	}

	res := make([]EvolutionPoint, 0, series.Len())
	var previous *Money
	for day, balance := range series.Values() {
		p := EvolutionPoint{Date: day, Balance: balance, Variation: balance.Sub(balance)}
		if previous != nil {
			p.Variation = balance.Sub(*previous)
			p.VariationPercent = p.Variation.Ratio(*previous)
		}
		res = append(res, p)
		previous = &balance
	}
	if limit > 0 && len(res) > limit {
		res = res[len(res)-limit:]
	}
	return res
}
