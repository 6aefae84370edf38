package bankroll

// GoalProgress tracks an account towards its target balance.
type GoalProgress struct {
	Account  Account
	Current  Money
	Goal     Money
	Distance Money   // goal minus current, negative once exceeded.
	Progress Percent // current relative to goal, capped at 100.
	Met      bool
}

// NewGoalProgress computes the progress of one balance, the zero value if the
// account has no goal.
func NewGoalProgress(b AccountBalance) GoalProgress {
	if !b.Account.HasGoal() {
		return GoalProgress{Account: b.Account, Current: b.Current}
	}
	goal := b.Account.Goal
	return GoalProgress{
		Account:  b.Account,
		Current:  b.Current,
		Goal:     goal,
		Distance: goal.Sub(b.Current),
		Progress: min(b.Current.Ratio(goal), 100),
		Met:      b.Current.GreaterThanOrEqual(goal),
	}
}

// NewGoals lists the progress of the accounts that have a goal, in the order
// of the balances.
func NewGoals(balances []AccountBalance) []GoalProgress {
	var res []GoalProgress
	for _, b := range balances {
		if b.Account.HasGoal() {
			res = append(res, NewGoalProgress(b))
		}
	}
	return res
}
