package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the bankroll dashboard" }
func (*summaryCmd) Usage() string {
	return `bkr summary

Show the total balance, pending alerts, accounts, goals and latest movements.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d := bankroll.NewDashboard(s.book.State(), s.book.Alerts())
	printMarkdown(renderer.SummaryMarkdown(d))
	return s.close(subcommands.ExitSuccess)
}

type historyCmd struct {
	account string
	kind    string
	query   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list balance movements" }
func (*historyCmd) Usage() string {
	return `bkr history [-a <account>] [-k gain|loss|flat] [-q <text>]

List every recorded balance with its change from the previous one, most
recent first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Only movements of this account")
	f.StringVar(&c.kind, "k", "", "Only movements of this kind: gain, loss or flat")
	f.StringVar(&c.query, "q", "", "Only movements whose account or date contains this text")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := bankroll.MovementFilter{Text: c.query}
	if c.kind != "" {
		kind, ok := bankroll.ParseMovementKind(c.kind)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown movement kind %q\n", c.kind)
			return subcommands.ExitUsageError
		}
		filter.Kind = kind
	}

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.account != "" {
		a, err := s.book.FindAccount(c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
		filter.Account = a.Name
	}
	movements := filter.Filter(bankroll.NewMovements(s.book.State()))
	printMarkdown(renderer.HistoryMarkdown(movements, filter))
	return s.close(subcommands.ExitSuccess)
}

type monthlyCmd struct {
	month string
	last  int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "show monthly reports" }
func (*monthlyCmd) Usage() string {
	return `bkr monthly [-m YYYY-MM] [-n <count>]

Show the opening and closing balance, gains and losses of the last 12 months
with recorded balances. -n changes the number of months, 0 shows them all.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Only this month, as YYYY-MM")
	f.IntVar(&c.last, "n", 12, "Number of months to show, 0 for all")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	reports := bankroll.NewMonthlyReports(s.book.State())
	if c.month != "" {
		reports = slices.DeleteFunc(reports, func(r bankroll.MonthlyReport) bool { return r.Label() != c.month })
		if len(reports) == 0 {
			fmt.Fprintf(os.Stderr, "No balance recorded in %s\n", c.month)
			return s.close(subcommands.ExitFailure)
		}
	}
	printMarkdown(renderer.MonthlyMarkdown(tail(reports, c.last)))
	return s.close(subcommands.ExitSuccess)
}

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show progress toward account goals" }
func (*goalsCmd) Usage() string {
	return `bkr goals

Show, for every account with a goal, the distance and progress toward it.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goals := bankroll.NewGoals(bankroll.NewAccountBalances(s.book.State()))
	printMarkdown(renderer.GoalsMarkdown(goals))
	return s.close(subcommands.ExitSuccess)
}

type evolutionCmd struct {
	account string
	limit   int
}

func (*evolutionCmd) Name() string     { return "evolution" }
func (*evolutionCmd) Synopsis() string { return "show the balance over time" }
func (*evolutionCmd) Usage() string {
	return `bkr evolution [-a <account>] [-n <points>]

Show the daily balance of an account, or the total of all accounts.
`
}

func (c *evolutionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or ID, all accounts if empty")
	f.IntVar(&c.limit, "n", 30, "Number of points to show, 0 for all")
}

func (c *evolutionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	name, id := "Total", ""
	if c.account != "" {
		a, err := s.book.FindAccount(c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
		name, id = a.Name, a.ID
	}
	points := bankroll.NewEvolution(s.book.State(), id, c.limit)
	printMarkdown(renderer.EvolutionMarkdown(name, points))
	return s.close(subcommands.ExitSuccess)
}

// head returns the first n items, all of them when n is not positive.
func head[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// tail returns the last n items, all of them when n is not positive.
func tail[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}
