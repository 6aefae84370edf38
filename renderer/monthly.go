package renderer

import (
	"bytes"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// MonthlyMarkdown renders one row per monthly report.
func MonthlyMarkdown(reports []bankroll.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Reports")
	if len(reports) == 0 {
		doc.PlainText("No snapshot recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Opening", "Closing", "Gains", "Losses", "Net", "Change"},
		Rows:   [][]string{},
	}
	for _, r := range reports {
		table.Rows = append(table.Rows, []string{
			r.Label(),
			r.Opening.String(),
			r.Closing.String(),
			r.Gains.SignedString(),
			r.Losses.SignedString(),
			md.Bold(r.Net.SignedString()),
			r.NetPercent.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
