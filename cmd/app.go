// Package cmd implements the bkr command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/config"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile   = flag.String("config", config.DefaultFile, "Path to the YAML configuration file")
	storePath    = flag.String("store", "", "Path to the store, overrides the configuration")
	storeBackend = flag.String("backend", "", "Store backend (dir, sqlite or mem), overrides the configuration")
	currency     = flag.String("currency", "", "ISO-4217 code of the bankroll currency, overrides the configuration")
)

// group of a command, as shown by 'bkr help'.
type group struct {
	name     string
	commands []subcommands.Command
}

func groups() []group {
	return []group{
		{"accounts", []subcommands.Command{&addAccountCmd{}, &goalCmd{}, &accountsCmd{}, &rankingCmd{}}},
		{"balances", []subcommands.Command{&recordCmd{}, &editCmd{}, &rmCmd{}, &balancesCmd{}}},
		{"reports", []subcommands.Command{&summaryCmd{}, &historyCmd{}, &monthlyCmd{}, &goalsCmd{}, &evolutionCmd{}}},
		{"alerts", []subcommands.Command{&alertsCmd{}, &alertConfigCmd{}}},
		{"data", []subcommands.Command{&exportCSVCmd{}, &backupCmd{}, &importWebCmd{}}},
		{"help", []subcommands.Command{&topicCmd{}}},
	}
}

// Commands returns every bkr command.
func Commands() []subcommands.Command {
	var res []subcommands.Command
	for _, g := range groups() {
		res = append(res, g.commands...)
	}
	return res
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// IsCommand reports whether name is a bkr command.
func IsCommand(name string) bool {
	for _, c := range Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// loadConfig reads the configuration. Global flags take precedence over the
// environment, which takes precedence over the file.
func loadConfig() (*config.Config, error) {
	for env, v := range map[string]string{
		config.EnvStorePath:    *storePath,
		config.EnvStoreBackend: *storeBackend,
		config.EnvCurrency:     *currency,
	} {
		if v != "" {
			os.Setenv(env, v)
		}
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is an open book and the store behind it.
type session struct {
	cfg   *config.Config
	store bankroll.Store
	book  *bankroll.Book
}

// openSession loads the configuration and opens the book.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	store, err := bankroll.OpenStore(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	book, err := bankroll.OpenBook(store, cfg.Currency)
	if err != nil {
		store.Close()
		return nil, err
	}
	alerts := bankroll.AlertConfig{
		LossThreshold: bankroll.Percent(cfg.Alerts.LossThreshold),
		GainThreshold: bankroll.Percent(cfg.Alerts.GainThreshold),
		Enabled:       !cfg.Alerts.Disabled,
	}
	if err := book.SetDefaultAlertConfig(alerts); err != nil {
		store.Close()
		return nil, err
	}
	return &session{cfg: cfg, store: store, book: book}, nil
}

// close closes the store and returns status, or a failure if something could
// not be saved.
func (s *session) close(status subcommands.ExitStatus) subcommands.ExitStatus {
	if err := s.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing the store: %v\n", err)
		status = subcommands.ExitFailure
	}
	if err := s.book.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: changes were applied but not all were saved: %v\n", err)
		status = subcommands.ExitFailure
	}
	return status
}

// money parses an amount in the bankroll currency.
func (s *session) money(amount string) (bankroll.Money, error) {
	m, err := bankroll.ParseMoney(amount, s.cfg.Currency)
	if err != nil {
		return bankroll.Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return m, nil
}

// printMarkdown renders markdown for the terminal, or prints it raw if that fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
