package hostfuncs

import (
	"fmt"
	"time"
)

// FQCNGeneralizedTime identifies the normalizer/checker pair for the
// Generalized Time syntax (RFC 4517 §3.3.13).
const FQCNGeneralizedTime = "hostfuncs.GeneralizedTime"

const generalizedTimeLayout = "20060102150405Z0700"

// NormalizeGeneralizedTime reduces a Generalized Time value to UTC with
// an explicit "Z" offset, dropping fractional seconds, so that values
// written with differing offsets or precision compare equal.
func NormalizeGeneralizedTime(value string) (string, error) {
	t, err := parseGeneralizedTime(value)
	if err != nil {
		return "", err
	}
	return t.UTC().Format("20060102150405Z"), nil
}

// CheckGeneralizedTime reports a non-nil error when value is not a
// well-formed Generalized Time string.
func CheckGeneralizedTime(value string) error {
	_, err := parseGeneralizedTime(value)
	return err
}

func parseGeneralizedTime(value string) (time.Time, error) {
	for _, layout := range []string{
		"20060102150405Z",
		"20060102150405-0700",
		"20060102150405.999Z",
		"20060102150405.999-0700",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("hostfuncs: %q is not a valid GeneralizedTime", value)
}
