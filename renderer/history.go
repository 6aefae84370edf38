package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

func movementsTable(movements []bankroll.Movement) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Account", "Balance", "Delta", "Change", "Kind", "ID"},
		Rows:   [][]string{},
	}
	for _, m := range movements {
		table.Rows = append(table.Rows, []string{
			m.Date.String(),
			m.AccountName,
			m.Balance.String(),
			m.Delta.SignedString(),
			m.DeltaPercent.SignedString(),
			string(m.Kind),
			shortID(m.SnapshotID),
		})
	}
	return table
}

// HistoryMarkdown renders movements already selected by filter, most recent
// first. The filter only describes the selection in the caption.
func HistoryMarkdown(selected []bankroll.Movement, filter bankroll.MovementFilter) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("History")

	var criteria []string
	if filter.Account != "" {
		criteria = append(criteria, "account "+md.Bold(filter.Account))
	}
	if filter.Kind != "" {
		criteria = append(criteria, "kind "+md.Bold(string(filter.Kind)))
	}
	if filter.Text != "" {
		criteria = append(criteria, fmt.Sprintf("matching %q", filter.Text))
	}

	summary := plural(len(selected), "movement")
	if len(criteria) > 0 {
		summary += " with " + strings.Join(criteria, ", ")
	}
	doc.PlainText(summary + ".")
	if len(selected) > 0 {
		doc.Table(movementsTable(selected))
	}
	return doc.String()
}
