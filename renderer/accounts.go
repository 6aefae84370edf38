package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/bankroll"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown lists the registered accounts with their current balance.
func AccountsMarkdown(balances []bankroll.AccountBalance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(balances) == 0 {
		doc.PlainText("No account yet, add one with `bkr add-account <name>`.")
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
		Header: []string{"Account", "Balance", "Variation", "Change", "Last Update", "Goal"},
		Rows:   [][]string{},
	}
	for _, b := range balances {
		goal := "-"
		if b.Account.HasGoal() {
			goal = b.Account.Goal.String()
		}
		table.Rows = append(table.Rows, []string{
			b.Account.Name,
			b.Current.String(),
			b.Variation.SignedString(),
			b.VariationPercent.SignedString(),
			lastUpdate(b),
			goal,
		})
	}
	doc.Table(table)

	return doc.String()
}

// RankingMarkdown renders the accounts holding a positive balance, largest
// first.
func RankingMarkdown(ranking []bankroll.RankEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ranking")
	if len(ranking) == 0 {
		doc.PlainText("No account holds a positive balance.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Account", "Balance", "Share", "Change"},
		Rows:   [][]string{},
	}
	for _, r := range ranking {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.Rank),
			r.Account.Name,
			r.Current.String(),
			r.Share.String(),
			r.VariationPercent.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
