package bankroll

import "time"

// Dashboard gathers every view computed from one state.
type Dashboard struct {
	Date      Date
	Totals    Totals
	Balances  []AccountBalance
	Ranking   []RankEntry
	Goals     []GoalProgress
	Movements []Movement
	Monthly   []MonthlyReport
	Alerts    []Alert // not acknowledged yet.
}

// NewDashboard recomputes all the views of the state.
func NewDashboard(state State, alerts []Alert) *Dashboard {
	balances := NewAccountBalances(state)
	return &Dashboard{
		Date:      DateOf(time.Now()),
		Totals:    NewTotals(state),
		Balances:  balances,
		Ranking:   NewRanking(balances),
		Goals:     NewGoals(balances),
		Movements: NewMovements(state),
		Monthly:   NewMonthlyReports(state),
		Alerts:    PendingAlerts(alerts),
	}
}

// Recent returns at most n movements, most recent first.
func (d *Dashboard) Recent(n int) []Movement {
	if n >= 0 && len(d.Movements) > n {
		return d.Movements[:n]
	}
	return d.Movements
}
