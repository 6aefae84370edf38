package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// AlertsMarkdown renders the alerts and the thresholds raising them.
func AlertsMarkdown(alerts []bankroll.Alert, cfg bankroll.AlertConfig) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Alerts")
	if cfg.Enabled {
		doc.PlainText(fmt.Sprintf("Alerting on a loss of %s or a gain of %s.", cfg.LossThreshold, cfg.GainThreshold))
	} else {
		doc.PlainText("Alerts are disabled.")
	}

	if len(alerts) == 0 {
		doc.PlainText("No alert.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Kind", "Account", "Delta", "Change", "Read", "ID"},
		Rows:   [][]string{},
	}
	for _, a := range alerts {
		read := ""
		if a.Acknowledged {
			read = "✓"
		}
		table.Rows = append(table.Rows, []string{
			a.Date.String(),
			a.Kind.String(),
			a.AccountName,
			a.Delta.SignedString(),
			a.Percent.SignedString(),
			read,
			shortID(a.ID),
		})
	}
	doc.Table(table)
	return doc.String()
}
