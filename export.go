package bankroll

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// CSVHeader is the first line of a movements CSV export.
const CSVHeader = "Date,Account,Balance,Delta,DeltaPercent,Kind"

// DefaultCSVDateLayout writes dates day first, like "01/03/2024".
const DefaultCSVDateLayout = "02/01/2006"

// quoteCSV always quotes a field, doubling inner quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// MovementCSVRow formats one movement as a CSV line, without line break. An
// empty layout uses DefaultCSVDateLayout.
func MovementCSVRow(m Movement, layout string) string {
	if layout == "" {
		layout = DefaultCSVDateLayout
	}
	return strings.Join([]string{
		m.Date.Format(layout),
		quoteCSV(m.AccountName),
		m.Balance.Fixed(2),
		m.Delta.Fixed(2),
		fmt.Sprintf("%.2f", float64(m.DeltaPercent)),
		string(m.Kind),
	}, ",")
}

// EncodeMovementsCSV writes the header and one row per movement, joined by
// newlines, with the dates laid out as in MovementCSVRow.
func EncodeMovementsCSV(w io.Writer, movements []Movement, layout string) error {
	lines := make([]string, 0, len(movements)+1)
	lines = append(lines, CSVHeader)
	for _, m := range movements {
		lines = append(lines, MovementCSVRow(m, layout))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

// EncodeBackup writes the full JSON backup of the state, indented.
func EncodeBackup(w io.Writer, state State, exportedAt time.Time) error {
	var obj jsonObjectWriter
	obj.Append("accounts_with_balance", NewAccountBalances(state))
	obj.Append("movements", NewMovements(state))
	obj.Append("monthly_reports", NewMonthlyReports(state))
	obj.Append("exportedAt", exportedAt.UTC().Format(DatetimeFormat))
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to indent backup: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}
