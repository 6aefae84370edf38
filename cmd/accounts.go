package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type addAccountCmd struct {
	goal string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "register a betting account" }
func (*addAccountCmd) Usage() string {
	return `bkr add-account [-goal <amount>] <name>

Register a new betting account. Names are unique, ignoring case.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Target balance of the account")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: an account name is required")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	var goal bankroll.Money
	if c.goal != "" {
		if goal, err = s.money(c.goal); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitUsageError)
		}
	}
	a, err := s.book.AddAccount(name, goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding account: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	fmt.Printf("Account %q added (%s)\n", a.Name, a.ID)
	return s.close(subcommands.ExitSuccess)
}

type goalCmd struct {
	account string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set or clear the goal of an account" }
func (*goalCmd) Usage() string {
	return `bkr goal -a <account> <amount>

Set the target balance of an account. An amount of 0 clears the goal.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account name or ID")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: an account (-a) and an amount are required")
		return subcommands.ExitUsageError
	}
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	goal, err := s.money(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return s.close(subcommands.ExitUsageError)
	}
	a, err := s.book.SetGoal(c.account, goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting goal: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	if a.HasGoal() {
		fmt.Printf("Goal of %q set to %s\n", a.Name, a.Goal)
	} else {
		fmt.Printf("Goal of %q cleared\n", a.Name)
	}
	return s.close(subcommands.ExitSuccess)
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with their current balance" }
func (*accountsCmd) Usage() string {
	return `bkr accounts

List every account with its current balance and its latest variation.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(bankroll.NewAccountBalances(s.book.State())))
	return s.close(subcommands.ExitSuccess)
}

type rankingCmd struct {
	top int
}

func (*rankingCmd) Name() string     { return "ranking" }
func (*rankingCmd) Synopsis() string { return "rank accounts by balance" }
func (*rankingCmd) Usage() string {
	return `bkr ranking [-n <count>]

Rank the accounts holding a positive balance, with their share of the total.
Only the top 5 accounts are shown unless -n says otherwise, 0 shows them all.
`
}

func (c *rankingCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "n", 5, "Number of accounts to show, 0 for all")
}

func (c *rankingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	balances := bankroll.NewAccountBalances(s.book.State())
	printMarkdown(renderer.RankingMarkdown(head(bankroll.NewRanking(balances), c.top)))
	return s.close(subcommands.ExitSuccess)
}
