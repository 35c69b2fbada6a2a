package hostfuncs

import (
	"strings"

	"github.com/jsimonetti/pwscheme/ssha"
	"github.com/jsimonetti/pwscheme/ssha256"
	"github.com/jsimonetti/pwscheme/ssha512"
	"golang.org/x/crypto/bcrypt"
)

// FQCNUserPassword identifies the comparator for userPassword-shaped
// attributes, dispatching on the storage scheme prefix the same way
// the teacher's bind handler does before delegating to a scheme
// library.
const FQCNUserPassword = "hostfuncs.UserPassword"

// CompareUserPassword reports whether input satisfies stored, which
// carries one of the "{SSHA}", "{SSHA256}", "{SSHA512}" or
// "{CRYPT-BCRYPT}" scheme prefixes, or is taken as a plaintext value
// if none match.
func CompareUserPassword(input, stored string) (bool, error) {
	switch {
	case strings.HasPrefix(stored, "{SSHA}"):
		return ssha.Validate(input, stored)
	case strings.HasPrefix(stored, "{SSHA256}"):
		return ssha256.Validate(input, stored)
	case strings.HasPrefix(stored, "{SSHA512}"):
		return ssha512.Validate(input, stored)
	case strings.HasPrefix(stored, "{CRYPT-BCRYPT}"):
		hash := strings.TrimPrefix(stored, "{CRYPT-BCRYPT}")
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input))
		return err == nil, nil
	default:
		return input == stored, nil
	}
}
