package render

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var romanianMonths = [...]string{
	"ianuarie", "februarie", "martie", "aprilie", "mai", "iunie",
	"iulie", "august", "septembrie", "octombrie", "noiembrie", "decembrie",
}

// CampaignProgress returns the funding percentage clamped to [0, 100].
// A zero or negative goal reads as 0% rather than dividing by zero.
func CampaignProgress(goal, raised float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := raised / goal * 100
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// YearsActive returns whole years since founding, never less than 1: an
// organization founded this calendar year is "in its first year", not zero
// years old.
func YearsActive(founded, now time.Time) int {
	if founded.IsZero() || founded.After(now) {
		return 1
	}
	years := now.Year() - founded.Year()
	if now.Month() < founded.Month() ||
		(now.Month() == founded.Month() && now.Day() < founded.Day()) {
		years--
	}
	if years < 1 {
		return 1
	}
	return years
}

// FormatAmount renders an amount with Romanian digit grouping: dot for
// thousands, comma for decimals, decimals shown only when present.
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	frac := math.Round((v - float64(whole)) * 100)
	if frac >= 100 {
		whole++
		frac = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String()
	if frac > 0 {
		out = fmt.Sprintf("%s,%02d", out, int(frac))
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatRON renders an amount with the currency suffix used on the public page.
func FormatRON(v float64) string {
	return FormatAmount(v) + " RON"
}

// FormatDateRO renders an ISO date in Romanian long form ("3 martie 2026").
// Unparseable input is returned as-is; a bad date must not break the page.
func FormatDateRO(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return fmt.Sprintf("%d %s %d", t.Day(), romanianMonths[t.Month()-1], t.Year())
		}
	}
	return iso
}
