package renderer

import (
	"bytes"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// GoalsMarkdown renders the progress of the accounts with a goal.
func GoalsMarkdown(goals []bankroll.GoalProgress) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goals")
	if len(goals) == 0 {
		doc.PlainText("No goal set, use `bkr goal -a <account> <amount>`.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Account", "Balance", "Goal", "Remaining", "Progress", "%"},
		Rows:   [][]string{},
	}
	for _, g := range goals {
		remaining := g.Distance.String()
		if g.Met {
			remaining = md.Bold("met")
		}
		table.Rows = append(table.Rows, []string{
			g.Account.Name,
			g.Current.String(),
			g.Goal.String(),
			remaining,
			progressBar(g.Progress),
			g.Progress.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
