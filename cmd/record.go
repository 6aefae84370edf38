package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type recordCmd struct {
	account string
	date    string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record the balance of an account" }
func (*recordCmd) Usage() string {
	return `bkr record -a <account> [-d <date>] <balance>

Record the balance of an account on a date, today by default. The change from
the previous balance may raise an alert.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or ID")
	f.StringVar(&c.date, "d", "0d", "Date of the balance")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: an account (-a) and a balance are required")
		return subcommands.ExitUsageError
	}
	on, err := bankroll.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	balance, err := s.money(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return s.close(subcommands.ExitUsageError)
	}
	snapshot, alert, err := s.book.Record(c.account, on, balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording balance: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	fmt.Printf("Balance %s recorded on %s (%s)\n", snapshot.Balance, snapshot.Date, snapshot.ID)
	if alert != nil {
		printMarkdown("Alert: " + renderer.Alert(*alert) + "\n")
	}
	return s.close(subcommands.ExitSuccess)
}

type editCmd struct {
	id      string
	date    string
	balance string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "correct a recorded balance" }
func (*editCmd) Usage() string {
	return `bkr edit -id <snapshot> [-d <date>] [-b <balance>]

Change the date or the balance of a recorded snapshot. Alerts already raised
are kept as they are.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID, or unique ID prefix, of the snapshot")
	f.StringVar(&c.date, "d", "", "New date")
	f.StringVar(&c.balance, "b", "", "New balance")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" || (c.date == "" && c.balance == "") {
		fmt.Fprintln(os.Stderr, "Error: a snapshot (-id) and a date (-d) or a balance (-b) are required")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	snapshot, err := s.book.Snapshot(c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	on, balance := snapshot.Date, snapshot.Balance
	if c.date != "" {
		if on, err = bankroll.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return s.close(subcommands.ExitUsageError)
		}
	}
	if c.balance != "" {
		if balance, err = s.money(c.balance); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitUsageError)
		}
	}
	snapshot, err = s.book.UpdateSnapshot(snapshot.ID, on, balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating snapshot: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	fmt.Printf("Snapshot %s updated: %s on %s\n", snapshot.ID, snapshot.Balance, snapshot.Date)
	return s.close(subcommands.ExitSuccess)
}

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded balance" }
func (*rmCmd) Usage() string {
	return `bkr rm -id <snapshot>

Delete a snapshot from the log.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID, or unique ID prefix, of the snapshot")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: a snapshot (-id) is required")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := s.book.DeleteSnapshot(c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting snapshot: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	fmt.Printf("Snapshot %s deleted\n", c.id)
	return s.close(subcommands.ExitSuccess)
}

type balancesCmd struct {
	account string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "list recorded balances by date" }
func (*balancesCmd) Usage() string {
	return `bkr balances [-a <account>]

List the recorded balances grouped by date, most recent first, with the total
of each day.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Only balances of this account")
}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	movements := bankroll.NewMovements(s.book.State())
	if c.account != "" {
		a, err := s.book.FindAccount(c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
		movements = bankroll.MovementFilter{Account: a.Name}.Filter(movements)
	}
	printMarkdown(renderer.BalancesMarkdown(bankroll.NewDayBalances(movements)))
	return s.close(subcommands.ExitSuccess)
}
