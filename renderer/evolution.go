package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// EvolutionMarkdown renders a balance series. An empty name is the total of
// all accounts.
func EvolutionMarkdown(name string, points []bankroll.EvolutionPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if name == "" {
		doc.H1("Evolution of the Total Balance")
	} else {
		doc.H1(fmt.Sprintf("Evolution of %s", name))
	}
	if len(points) == 0 {
		doc.PlainText("No snapshot recorded.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Balance", "Variation", "Change"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.Balance.String(),
			p.Variation.SignedString(),
			p.VariationPercent.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
