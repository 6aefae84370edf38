package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/bankroll"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parsed is the structure of a rendered markdown document.
type parsed struct {
	headings []string
	tables   [][][]string // rows of cells, the header row first.
}

// nodeText concatenates the text of all descendants of n.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for child := t.FirstChild(); child != nil; child = child.NextSibling() {
				if txt, ok := child.(*ast.Text); ok {
					b.Write(txt.Segment.Value(src))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func parseMarkdown(t *testing.T, doc string) parsed {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var p parsed
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			p.headings = append(p.headings, nodeText(n, src))
			return ast.WalkSkipChildren, nil
		case extast.KindTable:
			var rows [][]string
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, nodeText(cell, src))
				}
				rows = append(rows, cells)
			}
			p.tables = append(p.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return p
}

func (p parsed) hasHeading(h string) bool {
	for _, x := range p.headings {
		if x == h {
			return true
		}
	}
	return false
}

// column returns the cells of column i in table k, header excluded.
func (p parsed) column(k, i int) []string {
	var res []string
	for _, row := range p.tables[k][1:] {
		res = append(res, row[i])
	}
	return res
}

func sampleState() bankroll.State {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return bankroll.State{
		Currency: "BRL",
		Accounts: []bankroll.Account{
			{ID: "a1", Name: "Bet365", CreatedAt: at, Goal: bankroll.M(1000, "BRL")},
			{ID: "a2", Name: "Betano", CreatedAt: at},
			{ID: "a3", Name: "Empty", CreatedAt: at},
		},
		Snapshots: []bankroll.Snapshot{
			{ID: "s1", AccountID: "a1", Date: bankroll.NewDate(2024, 2, 20), Balance: bankroll.M(450, "BRL"), RecordedAt: at},
			{ID: "s2", AccountID: "a1", Date: bankroll.NewDate(2024, 3, 1), Balance: bankroll.M(500.5, "BRL"), RecordedAt: at},
			{ID: "s3", AccountID: "a2", Date: bankroll.NewDate(2024, 3, 2), Balance: bankroll.M(800, "BRL"), RecordedAt: at},
			{ID: "s4", AccountID: "gone", Date: bankroll.NewDate(2024, 3, 3), Balance: bankroll.M(10, "BRL"), RecordedAt: at},
		},
	}
}

func TestAccountsMarkdown(t *testing.T) {
	p := parseMarkdown(t, AccountsMarkdown(bankroll.NewAccountBalances(sampleState())))

	if !p.hasHeading("Accounts") {
		t.Errorf("missing heading, got %q", p.headings)
	}
	if len(p.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(p.tables))
	}
	got := strings.Join(p.column(0, 0), ",")
	if want := "Bet365,Betano,Empty"; got != want {
		t.Errorf("accounts = %q, want %q", got, want)
	}
	if last := p.tables[0][3][4]; last != "-" {
		t.Errorf("last update of an account without snapshot = %q, want %q", last, "-")
	}
}

func TestRankingMarkdown(t *testing.T) {
	ranking := bankroll.NewRanking(bankroll.NewAccountBalances(sampleState()))
	p := parseMarkdown(t, RankingMarkdown(ranking))

	if len(p.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(p.tables))
	}
	got := strings.Join(p.column(0, 1), ",")
	if want := "Betano,Bet365"; got != want {
		t.Errorf("ranking = %q, want %q", got, want)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	movements := bankroll.NewMovements(sampleState())

	tests := []struct {
		name   string
		filter bankroll.MovementFilter
		want   string // account column
	}{
		{"all", bankroll.MovementFilter{}, "(unknown account),Betano,Bet365,Bet365"},
		{"account", bankroll.MovementFilter{Account: "Bet365"}, "Bet365,Bet365"},
		{"kind", bankroll.MovementFilter{Kind: bankroll.Gain}, "Bet365"},
		{"text", bankroll.MovementFilter{Text: "2024-03-02"}, "Betano"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := parseMarkdown(t, HistoryMarkdown(tc.filter.Filter(movements), tc.filter))
			if len(p.tables) != 1 {
				t.Fatalf("got %d tables, want 1", len(p.tables))
			}
			if got := strings.Join(p.column(0, 1), ","); got != tc.want {
				t.Errorf("accounts = %q, want %q", got, tc.want)
			}
		})
	}

	t.Run("none", func(t *testing.T) {
		p := parseMarkdown(t, HistoryMarkdown(nil, bankroll.MovementFilter{Account: "nobody"}))
		if len(p.tables) != 0 {
			t.Errorf("got %d tables, want none", len(p.tables))
		}
	})

	t.Run("selection is rendered as given", func(t *testing.T) {
		doc := HistoryMarkdown(movements, bankroll.MovementFilter{Account: "nobody"})
		p := parseMarkdown(t, doc)
		if len(p.tables) != 1 || len(p.tables[0]) != len(movements)+1 {
			t.Fatalf("got tables %q, want every movement", p.tables)
		}
		if want := "4 movements with account"; !strings.Contains(doc, want) {
			t.Errorf("caption does not contain %q:\n%s", want, doc)
		}
	})
}

func TestBalancesMarkdown(t *testing.T) {
	state := sampleState()
	state.Snapshots = append(state.Snapshots, bankroll.Snapshot{
		ID:         "s5",
		AccountID:  "a2",
		Date:       bankroll.NewDate(2024, 3, 1),
		Balance:    bankroll.M(100, "BRL"),
		RecordedAt: time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
	})
	doc := BalancesMarkdown(bankroll.NewDayBalances(bankroll.NewMovements(state)))
	p := parseMarkdown(t, doc)

	if got, want := strings.Join(p.headings, ","), "Balances,2024-03-03,2024-03-02,2024-03-01,2024-02-20"; got != want {
		t.Errorf("headings = %q, want %q", got, want)
	}
	if len(p.tables) != 4 {
		t.Fatalf("got %d tables, want 4", len(p.tables))
	}
	if got, want := strings.Join(p.column(2, 0), ","), "Betano,Bet365"; got != want {
		t.Errorf("2024-03-01 accounts = %q, want %q", got, want)
	}
	if total := bankroll.M(600.5, "BRL").String(); !strings.Contains(doc, total) {
		t.Errorf("missing the 2024-03-01 total %s:\n%s", total, doc)
	}

	empty := parseMarkdown(t, BalancesMarkdown(nil))
	if len(empty.tables) != 0 {
		t.Errorf("got %d tables without snapshot, want none", len(empty.tables))
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	p := parseMarkdown(t, MonthlyMarkdown(bankroll.NewMonthlyReports(sampleState())))
	if len(p.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(p.tables))
	}
	if got, want := strings.Join(p.column(0, 0), ","), "2024-02,2024-03"; got != want {
		t.Errorf("months = %q, want %q", got, want)
	}
}

func TestGoalsMarkdown(t *testing.T) {
	goals := bankroll.NewGoals(bankroll.NewAccountBalances(sampleState()))
	p := parseMarkdown(t, GoalsMarkdown(goals))
	if len(p.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(p.tables))
	}
	row := p.tables[0][1]
	if row[0] != "Bet365" || row[5] != "50.05%" {
		t.Errorf("got row %q, want Bet365 at 50.05%%", row)
	}

	empty := parseMarkdown(t, GoalsMarkdown(nil))
	if len(empty.tables) != 0 {
		t.Errorf("got %d tables without goal, want none", len(empty.tables))
	}
}

func TestAlertsMarkdown(t *testing.T) {
	alerts := []bankroll.Alert{
		{ID: "0123456789", Kind: bankroll.HeavyLoss, AccountName: "Bet365", Delta: bankroll.M(-200, "BRL"), Percent: -20, Date: bankroll.NewDate(2024, 3, 1)},
		{ID: "abc", Kind: bankroll.StrongGain, AccountName: "Betano", Delta: bankroll.M(300, "BRL"), Percent: 30, Date: bankroll.NewDate(2024, 3, 2), Acknowledged: true},
	}
	p := parseMarkdown(t, AlertsMarkdown(alerts, bankroll.DefaultAlertConfig()))
	if len(p.tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(p.tables))
	}
	if got, want := strings.Join(p.column(0, 1), ","), "heavy loss,strong gain"; got != want {
		t.Errorf("kinds = %q, want %q", got, want)
	}
	if got, want := strings.Join(p.column(0, 6), ","), "01234567,abc"; got != want {
		t.Errorf("ids = %q, want %q", got, want)
	}
}

func TestEvolutionMarkdown(t *testing.T) {
	points := bankroll.NewEvolution(sampleState(), "", 0)
	p := parseMarkdown(t, EvolutionMarkdown("", points))
	if !p.hasHeading("Evolution of the Total Balance") {
		t.Errorf("missing heading, got %q", p.headings)
	}
	if len(p.tables) != 1 || len(p.tables[0]) != len(points)+1 {
		t.Fatalf("got tables %q, want one row per point", p.tables)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	state := sampleState()
	alerts := []bankroll.Alert{
		{ID: "x", Kind: bankroll.StrongGain, AccountName: "Bet365", Delta: bankroll.M(50.5, "BRL"), Percent: 11.22, Date: bankroll.NewDate(2024, 3, 1)},
	}
	p := parseMarkdown(t, SummaryMarkdown(bankroll.NewDashboard(state, alerts)))

	for _, h := range []string{"Alerts", "Accounts", "Goals", "Latest Movements"} {
		if !p.hasHeading(h) {
			t.Errorf("missing heading %q in %q", h, p.headings)
		}
	}
	// totals, accounts and movements.
	if len(p.tables) != 3 {
		t.Fatalf("got %d tables, want 3", len(p.tables))
	}
	if got := p.tables[0][3][1]; got != "4" {
		t.Errorf("snapshot count = %q, want 4", got)
	}
}
