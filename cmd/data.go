package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/bankroll"
	"github.com/google/subcommands"
)

// create opens the output file, or stdout for an empty name.
func create(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type exportCSVCmd struct {
	output string
}

func (*exportCSVCmd) Name() string     { return "export-csv" }
func (*exportCSVCmd) Synopsis() string { return "export movements as CSV" }
func (*exportCSVCmd) Usage() string {
	return `bkr export-csv [-o <file>]

Write every movement, most recent first, as CSV.
`
}

func (c *exportCSVCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty")
}

func (c *exportCSVCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	w, err := create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	movements := bankroll.NewMovements(s.book.State())
	err = bankroll.EncodeMovementsCSV(w, movements, s.cfg.Export.DateLayout)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting movements: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	if c.output == "" {
		fmt.Println()
	}
	return s.close(subcommands.ExitSuccess)
}

type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "write a full JSON backup" }
func (*backupCmd) Usage() string {
	return `bkr backup [-o <file>]

Write accounts with their balance, movements and monthly reports as JSON.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, stdout if empty")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	w, err := create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	err = bankroll.EncodeBackup(w, s.book.State(), time.Now())
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	return s.close(subcommands.ExitSuccess)
}

type importWebCmd struct{}

func (*importWebCmd) Name() string     { return "import-web" }
func (*importWebCmd) Synopsis() string { return "import data from the web dashboard" }
func (*importWebCmd) Usage() string {
	return `bkr import-web <file>

Import accounts and balances from a dump of the web dashboard's localStorage.
Accounts are merged by name, and balances already imported are skipped.
`
}

func (*importWebCmd) SetFlags(f *flag.FlagSet) {}

func (*importWebCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a file to import is required")
		return subcommands.ExitUsageError
	}
	r, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, snapshots, err := bankroll.DecodeWebStorage(r, s.book.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", f.Arg(0), err)
		return s.close(subcommands.ExitFailure)
	}
	res, err := s.book.Import(accounts, snapshots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return s.close(subcommands.ExitFailure)
	}
	fmt.Printf("%d account(s) created, %d merged, %d balance(s) imported, %d skipped\n",
		res.Accounts, res.Merged, res.Snapshots, res.Skipped)
	return s.close(subcommands.ExitSuccess)
}
