package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Game pages print the tip-off time in the federation's localized format,
// e.g. "12/10/2024 - 18h30". Records store a sortable form instead.
const (
	pageDateLayout   = "02/01/2006 - 15h04"
	recordDateLayout = "2006-01-02 15:04"
)

// ExtractDateTime reads and normalizes the match datetime. A missing or
// unparsable date is reported as an error but callers treat it as a
// data-quality warning, not a reason to drop the game.
func ExtractDateTime(doc *goquery.Document) (string, error) {
	raw := strings.TrimSpace(doc.Find("#gameDate").Text())
	if raw == "" {
		return "", fmt.Errorf("game date section not found")
	}
	parsed, err := time.Parse(pageDateLayout, raw)
	if err != nil {
		return "", fmt.Errorf("parsing game date %q: %w", raw, err)
	}
	return parsed.Format(recordDateLayout), nil
}
