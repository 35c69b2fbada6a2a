package hostfuncs

import "strings"

// FQCNCaseIgnore identifies the case-insensitive, whitespace-collapsing
// normalizer backing caseIgnoreMatch-family matching rules.
const FQCNCaseIgnore = "hostfuncs.CaseIgnore"

// NormalizeCaseIgnore lowercases value and collapses interior whitespace
// runs to a single space, trimming the ends, matching RFC 4517's
// caseIgnoreMatch preparation.
func NormalizeCaseIgnore(value string) (string, error) {
	return normalizeSpace(strings.ToLower(value)), nil
}

// CompareCaseIgnore reports whether a and b are equal once both are
// run through NormalizeCaseIgnore.
func CompareCaseIgnore(a, b string) (bool, error) {
	na, err := NormalizeCaseIgnore(a)
	if err != nil {
		return false, err
	}
	nb, err := NormalizeCaseIgnore(b)
	if err != nil {
		return false, err
	}
	return na == nb, nil
}

func normalizeSpace(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	lastSpace := true
	for _, r := range strings.TrimSpace(value) {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if lastSpace {
				continue
			}
			lastSpace = true
			b.WriteByte(' ')
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
