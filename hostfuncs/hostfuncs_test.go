package hostfuncs

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNormalizeCaseIgnore(t *testing.T) {
	v, err := NormalizeCaseIgnore("  Jane   Doe ")
	require.NoError(t, err)
	require.Equal(t, "jane doe", v)
}

func TestCompareCaseIgnore(t *testing.T) {
	ok, err := CompareCaseIgnore("Jane  Doe", " jane doe ")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNormalizeGeneralizedTime(t *testing.T) {
	v, err := NormalizeGeneralizedTime("20260101120000-0500")
	require.NoError(t, err)
	require.Equal(t, "20260101170000Z", v)
}

func TestCheckGeneralizedTimeRejectsGarbage(t *testing.T) {
	require.Error(t, CheckGeneralizedTime("not-a-time"))
}

func TestNormalizeBoolean(t *testing.T) {
	v, err := NormalizeBoolean("true")
	require.NoError(t, err)
	require.Equal(t, "TRUE", v)

	_, err = NormalizeBoolean("yes")
	require.Error(t, err)
}

func TestNormalizeInteger(t *testing.T) {
	v, err := NormalizeInteger("0042")
	require.NoError(t, err)
	require.Equal(t, "42", v)
}

func TestNormalizeUUID(t *testing.T) {
	v, err := NormalizeUUID("550E8400-E29B-41D4-A716-446655440000")
	require.NoError(t, err)
	require.Equal(t, "550e8400-e29b-41d4-a716-446655440000", v)
}

func TestNormalizeDN(t *testing.T) {
	v, err := NormalizeDN(`CN=Jane Doe, OU=People,DC=example,DC=com`)
	require.NoError(t, err)
	require.Equal(t, "cn=Jane Doe,ou=People,dc=example,dc=com", v)
}

func TestNormalizeDNMultiValuedRDN(t *testing.T) {
	v, err := NormalizeDN("CN=Jane+UID=jdoe,DC=example,DC=com")
	require.NoError(t, err)
	require.Equal(t, "cn=Jane+uid=jdoe,dc=example,dc=com", v)
}

func TestCheckDNRejectsMissingEquals(t *testing.T) {
	require.Error(t, CheckDN("not-a-dn"))
}

func TestCompareUserPasswordBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	ok, err := CompareUserPassword("s3cret", "{CRYPT-BCRYPT}"+string(hash))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = CompareUserPassword("wrong", "{CRYPT-BCRYPT}"+string(hash))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompareUserPasswordPlaintext(t *testing.T) {
	ok, err := CompareUserPassword("hunter2", "hunter2")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()

	v, err := r.Normalize(FQCNCaseIgnore, "HELLO")
	require.NoError(t, err)
	require.Equal(t, "hello", v)

	require.NoError(t, r.Check(FQCNUUID, "550e8400-e29b-41d4-a716-446655440000"))

	_, err = r.Normalize("hostfuncs.Unknown", "x")
	require.Error(t, err)
}
