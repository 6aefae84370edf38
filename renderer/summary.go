package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// recentMovements is the number of movements shown in the summary.
const recentMovements = 5

// SummaryMarkdown renders the dashboard: totals, balances, pending alerts and
// the latest movements.
func SummaryMarkdown(d *bankroll.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Bankroll Summary on %s", d.Date))

	t := d.Totals
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Balance"),
			md.Bold(t.Balance.String()),
		},
		Rows: [][]string{
			{"Variation", fmt.Sprintf("%s (%s)", t.Variation.SignedString(), t.VariationPercent.SignedString())},
			{"Accounts", fmt.Sprintf("%d (%d active)", t.Accounts, t.ActiveAccounts)},
			{"Snapshots", fmt.Sprint(t.Snapshots)},
		},
	})

	if len(d.Alerts) > 0 {
		doc.H2("Alerts")
		var items []string
		for _, a := range d.Alerts {
			items = append(items, Alert(a))
		}
		doc.BulletList(items...)
	}

	if len(d.Balances) > 0 {
		doc.H2("Accounts")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Account", "Balance", "Change", "Last Update"},
			Rows:   [][]string{},
		}
		for _, b := range d.Balances {
			table.Rows = append(table.Rows, []string{
				b.Account.Name,
				b.Current.String(),
				b.VariationPercent.SignedString(),
				lastUpdate(b),
			})
		}
		doc.Table(table)
	}

	if len(d.Goals) > 0 {
		doc.H2("Goals")
		var items []string
		for _, g := range d.Goals {
			items = append(items, fmt.Sprintf("%s %s %s", g.Account.Name, progressBar(g.Progress), g.Progress))
		}
		doc.BulletList(items...)
	}

	if recent := d.Recent(recentMovements); len(recent) > 0 {
		doc.H2("Latest Movements")
		doc.Table(movementsTable(recent))
	}

	return doc.String()
}

// Alert formats an alert as a single line.
func Alert(a bankroll.Alert) string {
	return fmt.Sprintf("%s: %s on %s, %s (%s)",
		a.Date, md.Bold(a.Kind.String()), a.AccountName, a.Delta.SignedString(), a.Percent.SignedString())
}
