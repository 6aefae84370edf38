package renderer

import (
	"bytes"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the recorded balances grouped by date, with the
// total of each day.
func BalancesMarkdown(days []bankroll.DayBalances) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balances")
	if len(days) == 0 {
		doc.PlainText("No snapshot recorded.")
		return doc.String()
	}
	for _, day := range days {
		doc.H2(day.Date.String())
		doc.PlainText("Total: " + md.Bold(day.Total.String()))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
			Header:    []string{"Account", "Balance", "Delta", "ID"},
			Rows:      [][]string{},
		}
		for _, m := range day.Entries {
			table.Rows = append(table.Rows, []string{
				m.AccountName,
				m.Balance.String(),
				m.Delta.SignedString(),
				shortID(m.SnapshotID),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
