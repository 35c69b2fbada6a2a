package hostfuncs

import (
	"fmt"

	"github.com/google/uuid"
)

// FQCNUUID identifies the normalizer/checker pair for the UUID syntax
// (RFC 4530), used by entryUUID-shaped attributes.
const FQCNUUID = "hostfuncs.UUID"

// NormalizeUUID parses value in any form google/uuid accepts and
// re-renders it in canonical lower-case hyphenated form.
func NormalizeUUID(value string) (string, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", fmt.Errorf("hostfuncs: %q is not a valid UUID: %w", value, err)
	}
	return id.String(), nil
}

// CheckUUID reports a non-nil error unless value parses as a UUID.
func CheckUUID(value string) error {
	_, err := NormalizeUUID(value)
	return err
}
