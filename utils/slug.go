package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Romanian diacritics, including the legacy cedilla forms still common in
// older registry data.
var diacritics = strings.NewReplacer(
	"ă", "a", "â", "a", "î", "i", "ș", "s", "ț", "t",
	"Ă", "a", "Â", "a", "Î", "i", "Ș", "s", "Ț", "t",
	"ş", "s", "ţ", "t", "Ş", "s", "Ţ", "t",
)

// ValidSlug reports whether s is a lowercase hyphenated slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify turns an organization name into a URL slug, transliterating
// Romanian diacritics and collapsing everything else to hyphens.
func Slugify(name string) string {
	s := strings.ToLower(diacritics.Replace(name))
	var b strings.Builder
	lastHyphen := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
