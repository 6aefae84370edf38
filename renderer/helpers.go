package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/bankroll"
)

// shortID keeps the first characters of an ID, enough to type it back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// progressBar draws a percentage as a ten-block bar.
func progressBar(p bankroll.Percent) string {
	n := int(p / 10)
	n = max(0, min(n, 10))
	return strings.Repeat("█", n) + strings.Repeat("░", 10-n)
}

// lastUpdate formats the date of the latest snapshot, or a dash.
func lastUpdate(b bankroll.AccountBalance) string {
	if !b.HasSnapshot() {
		return "-"
	}
	return b.LastUpdate.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
