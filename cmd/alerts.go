package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

type alertsCmd struct {
	all    bool
	ack    string
	remove string
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "list, acknowledge or remove alerts" }
func (*alertsCmd) Usage() string {
	return `bkr alerts [-all] [-ack <id>|all] [-rm <id>]

List the pending alerts, or every alert with -all. Alerts are designated by
their ID or a unique prefix of it.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List acknowledged alerts too")
	f.StringVar(&c.ack, "ack", "", "Acknowledge an alert, or 'all' of them")
	f.StringVar(&c.remove, "rm", "", "Remove an alert")
}

func (c *alertsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.ack == "all":
		n := s.book.AcknowledgeAll()
		fmt.Printf("%d alert(s) acknowledged\n", n)
		return s.close(subcommands.ExitSuccess)
	case c.ack != "":
		if err := s.book.Acknowledge(c.ack); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
		fmt.Printf("Alert %s acknowledged\n", c.ack)
		return s.close(subcommands.ExitSuccess)
	case c.remove != "":
		if err := s.book.RemoveAlert(c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
		fmt.Printf("Alert %s removed\n", c.remove)
		return s.close(subcommands.ExitSuccess)
	}

	alerts := s.book.Alerts()
	if !c.all {
		alerts = bankroll.PendingAlerts(alerts)
	}
	printMarkdown(renderer.AlertsMarkdown(alerts, s.book.AlertConfig()))
	return s.close(subcommands.ExitSuccess)
}

type alertConfigCmd struct {
	loss    float64
	gain    float64
	enabled bool
}

func (*alertConfigCmd) Name() string     { return "alert-config" }
func (*alertConfigCmd) Synopsis() string { return "show or change alert thresholds" }
func (*alertConfigCmd) Usage() string {
	return `bkr alert-config [-loss <percent>] [-gain <percent>] [-enabled=true|false]

Show the alert configuration, or change the flags given.
`
}

func (c *alertConfigCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.loss, "loss", 0, "Loss, in percent of the previous balance, raising an alert")
	f.Float64Var(&c.gain, "gain", 0, "Gain, in percent of the previous balance, raising an alert")
	f.BoolVar(&c.enabled, "enabled", true, "Raise alerts when recording balances")
}

func (c *alertConfigCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := s.book.AlertConfig()
	changed := false
	f.Visit(func(fl *flag.Flag) {
		changed = true
		switch fl.Name {
		case "loss":
			cfg.LossThreshold = bankroll.Percent(c.loss)
		case "gain":
			cfg.GainThreshold = bankroll.Percent(c.gain)
		case "enabled":
			cfg.Enabled = c.enabled
		}
	})
	if changed {
		if err := s.book.SetAlertConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return s.close(subcommands.ExitFailure)
		}
	}

	fmt.Printf("loss:    %s\n", cfg.LossThreshold)
	fmt.Printf("gain:    %s\n", cfg.GainThreshold)
	fmt.Printf("enabled: %s\n", strconv.FormatBool(cfg.Enabled))
	return s.close(subcommands.ExitSuccess)
}
