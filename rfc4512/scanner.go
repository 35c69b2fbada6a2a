// Package rfc4512 turns RFC 4512 §4.1 descriptor strings — the text
// form attribute types, object classes and the rest of a subschema
// subentry are published in — into the schema.Parsed* structs the core
// schema package consumes. This is the "external collaborator" the
// core deliberately has no dependency on.
package rfc4512

import (
	"fmt"
	"strconv"
	"strings"
)

// scanner walks a descriptor string token by token. It is not a general
// ABNF parser: it knows just enough of RFC 4512's grammar (parenthesized
// body, quoted strings, single-or-parenthesized-list keywords, bare
// tokens) to pull out the KEYWORD VALUE pairs every one of the eight
// descriptor kinds is built from, generalizing the teacher's one-off
// per-kind regexes into a single reusable tokenizer.
type scanner struct {
	s   string
	pos int
}

func newScanner(raw string) *scanner {
	return &scanner{s: strings.TrimSpace(raw)}
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && sc.s[sc.pos] == ' ' {
		sc.pos++
	}
}

func (sc *scanner) eof() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	sc.skipSpace()
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// expect consumes a single literal byte, failing if it's not next.
func (sc *scanner) expect(b byte) error {
	sc.skipSpace()
	if sc.pos >= len(sc.s) || sc.s[sc.pos] != b {
		return fmt.Errorf("rfc4512: expected %q at position %d in %q", b, sc.pos, sc.s)
	}
	sc.pos++
	return nil
}

// token reads a bare, unquoted run of non-space characters — used for
// the leading numeric OID and for bare keywords like OBSOLETE.
func (sc *scanner) token() string {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] != ' ' && sc.s[sc.pos] != ')' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// qdstring reads a single '...'-quoted string.
func (sc *scanner) qdstring() (string, error) {
	if err := sc.expect('\''); err != nil {
		return "", err
	}
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] != '\'' {
		sc.pos++
	}
	if sc.pos >= len(sc.s) {
		return "", fmt.Errorf("rfc4512: unterminated quoted string in %q", sc.s)
	}
	val := sc.s[start:sc.pos]
	sc.pos++ // closing quote
	return val, nil
}

// qdescrs reads either a single qdstring or a parenthesized,
// space-separated list of them — RFC 4512's "qdescrs" production, used
// for NAME.
func (sc *scanner) qdescrs() ([]string, error) {
	if sc.peek() == '(' {
		sc.pos++
		var out []string
		for {
			sc.skipSpace()
			if sc.peek() == ')' {
				sc.pos++
				break
			}
			v, err := sc.qdstring()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	v, err := sc.qdstring()
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}

// oidlist reads a single oid/descr or a parenthesized "$"-separated
// list of them — used for SUP, MUST, MAY, AUX, NOT and APPLIES.
func (sc *scanner) oidlist() ([]string, error) {
	if sc.peek() == '(' {
		sc.pos++
		var out []string
		for {
			sc.skipSpace()
			tok := sc.oidToken()
			if tok == "" {
				return nil, fmt.Errorf("rfc4512: empty oid in list %q", sc.s)
			}
			out = append(out, tok)
			sc.skipSpace()
			if sc.peek() == '$' {
				sc.pos++
				continue
			}
			if err := sc.expect(')'); err != nil {
				return nil, err
			}
			break
		}
		return out, nil
	}
	tok := sc.oidToken()
	if tok == "" {
		return nil, fmt.Errorf("rfc4512: expected oid in %q", sc.s)
	}
	return []string{tok}, nil
}

// oidToken reads a single numericoid or descr, stopping at whitespace,
// ')' or '$'.
func (sc *scanner) oidToken() string {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		if c == ' ' || c == ')' || c == '$' {
			break
		}
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// ruleidlist reads an integer rule-id or a parenthesized,
// space-separated list of them (RFC 4512 "ruleids"), for
// DitStructureRule's SUP.
func (sc *scanner) ruleidlist() ([]int, error) {
	var toks []string
	if sc.peek() == '(' {
		sc.pos++
		for tok := sc.oidToken(); tok != ""; tok = sc.oidToken() {
			toks = append(toks, tok)
		}
		if err := sc.expect(')'); err != nil {
			return nil, err
		}
	} else {
		toks = []string{sc.oidToken()}
	}
	out := make([]int, 0, len(toks))
	for _, t := range toks {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("rfc4512: rule id %q is not an integer: %w", t, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// keyword reads the next bare uppercase keyword if one is present,
// without consuming anything when the next token doesn't look like a
// keyword (i.e. we've reached the closing paren).
func (sc *scanner) keyword() (string, bool) {
	if sc.peek() == ')' || sc.eof() {
		return "", false
	}
	save := sc.pos
	tok := sc.token()
	if tok == "" {
		sc.pos = save
		return "", false
	}
	return tok, true
}
