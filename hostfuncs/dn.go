package hostfuncs

import (
	"encoding/hex"
	"fmt"
	"strings"

	ber "gopkg.in/asn1-ber.v1"
)

// FQCNDistinguishedName identifies the normalizer/checker pair for the
// DN syntax (RFC 4517 §3.3.9). Unlike the teacher's DN type, which
// carries a parsed RDN/AttributeTypeAndValue graph through an entire
// directory entry's lifetime, this host function only needs the
// narrower value-level transform: take a DN string in, hand back its
// normalized string form or a syntax error.
const FQCNDistinguishedName = "hostfuncs.DistinguishedName"

// NormalizeDN lower-cases each RDN's attribute type, unescapes
// RFC 4514 escape sequences and "#"-prefixed BER-encoded binary values,
// and rejoins the result with a single "," between RDNs and "+" between
// multi-valued RDN components.
func NormalizeDN(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	rdns, err := splitDN(value)
	if err != nil {
		return "", err
	}

	norm := make([]string, len(rdns))
	for i, rdn := range rdns {
		avas, err := splitRDN(rdn)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(avas))
		for j, ava := range avas {
			t, v, err := normalizeAVA(ava)
			if err != nil {
				return "", err
			}
			parts[j] = t + "=" + v
		}
		norm[i] = strings.Join(parts, "+")
	}
	return strings.Join(norm, ","), nil
}

// CheckDN reports a non-nil error unless value parses as a syntactically
// well-formed DN.
func CheckDN(value string) error {
	_, err := NormalizeDN(value)
	return err
}

func splitDN(dn string) ([]string, error) {
	return splitUnescaped(dn, ',', ';')
}

func splitRDN(rdn string) ([]string, error) {
	return splitUnescaped(rdn, '+')
}

// splitUnescaped splits s on any of seps, honoring backslash escapes
// and double-quoted spans so a separator inside an escaped or quoted
// value is not treated as a boundary.
func splitUnescaped(s string, seps ...byte) ([]string, error) {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case !inQuotes && isSep(c, seps):
			parts = append(parts, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if inQuotes {
		return nil, fmt.Errorf("hostfuncs: unterminated quoted value in %q", s)
	}
	parts = append(parts, strings.TrimSpace(cur.String()))
	return parts, nil
}

func isSep(c byte, seps []byte) bool {
	for _, s := range seps {
		if c == s {
			return true
		}
	}
	return false
}

func normalizeAVA(ava string) (typeName, value string, err error) {
	eq := strings.Index(ava, "=")
	if eq < 0 {
		return "", "", fmt.Errorf("hostfuncs: %q is not a valid AttributeTypeAndValue", ava)
	}
	typeName = strings.ToLower(strings.TrimSpace(ava[:eq]))
	if typeName == "" {
		return "", "", fmt.Errorf("hostfuncs: empty attribute type in %q", ava)
	}
	raw := strings.TrimSpace(ava[eq+1:])

	if strings.HasPrefix(raw, "#") {
		decoded, err := decodeBERValue(raw[1:])
		if err != nil {
			return "", "", err
		}
		return typeName, decoded, nil
	}
	return typeName, unescapeRDNValue(raw), nil
}

// decodeBERValue decodes a "#"-prefixed hex-encoded BER value per
// RFC 4514 §3, returning the underlying octets as a string.
func decodeBERValue(hexStr string) (string, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return "", fmt.Errorf("hostfuncs: invalid hex in BER-encoded DN value: %w", err)
	}
	packet := ber.DecodePacket(raw)
	if packet == nil {
		return "", fmt.Errorf("hostfuncs: could not decode BER-encoded DN value")
	}
	if s, ok := packet.Value.(string); ok {
		return s, nil
	}
	return string(packet.Data.Bytes()), nil
}

func unescapeRDNValue(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			b.WriteByte(v[i+1])
			i++
			continue
		}
		b.WriteByte(v[i])
	}
	return b.String()
}
