// Package bankroll tracks the balances of betting-site accounts and derives
// everything shown to the user from them. It is local-first: the whole state
// lives in a store on this machine.
//
// The core functionalities include:
//   - Book: the accounts, the log of balance snapshots, the alerts and their
//     configuration. Every change goes through a Book, that validates it and
//     saves the affected records to a Store.
//   - Derivations: pure functions of a State computing current balances and
//     variations, totals, the ranking, the movement history, monthly reports,
//     goal progress and balance evolution.
//   - Alerts: a heavy loss or a strong gain between two consecutive snapshots
//     of an account raises an alert.
//   - Data exchange: CSV export of the movements, full JSON backup, and import
//     from the storage of the web dashboard.
//
// This package serves as the foundational logic for the `bkr` command-line
// tool.
package bankroll
