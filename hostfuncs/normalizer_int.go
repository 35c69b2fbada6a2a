package hostfuncs

import (
	"fmt"
	"strconv"
)

// FQCNInteger identifies the normalizer/checker pair for the Integer
// syntax (RFC 4517 §3.3.16).
const FQCNInteger = "hostfuncs.Integer"

// NormalizeInteger re-renders a decimal integer without leading zeros
// or a redundant "+" sign, so "007" and "7" compare equal.
func NormalizeInteger(value string) (string, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", fmt.Errorf("hostfuncs: %q is not a valid Integer: %w", value, err)
	}
	return strconv.FormatInt(n, 10), nil
}

// CheckInteger reports a non-nil error unless value parses as a
// base-10 integer.
func CheckInteger(value string) error {
	_, err := NormalizeInteger(value)
	return err
}
