package bankroll

// State is the input of every derivation: the registered accounts and the
// balance log, both in their stored order.
type State struct {
	Currency  string
	Accounts  []Account
	Snapshots []Snapshot
}

// accountName returns the name of the account, or UnknownAccountName if the
// account is not registered.
func (s State) accountName(id string) string {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a.Name
		}
	}
	return UnknownAccountName
}

// zero is the zero amount in the state's currency.
func (s State) zero() Money { return M(0, s.Currency) }

// LatestTwo returns the current snapshot of an account and the one before it.
//
// Snapshots are ranked by date, then by recording time. When both are equal,
// the one appended last to the log is the most recent. It returns (nil, nil)
// when the account has no snapshot and (latest, nil) when it has only one.
func LatestTwo(snapshots []Snapshot, accountID string) (latest, previous *Snapshot) {
	var own []Snapshot
	for _, s := range snapshots {
		if s.AccountID == accountID {
			own = append(own, s)
		}
	}
	own = chronological(own)
	switch n := len(own); n {
	case 0:
		return nil, nil
	case 1:
		return &own[0], nil
	default:
		return &own[n-1], &own[n-2]
	}
}
