package rfc4512

import (
	"encoding/base64"
	"fmt"

	"github.com/cloudldap/schemadirectory/schema"
)

// ParseAttributeType parses one attributeTypeDescription (RFC 4512 §4.1.2).
func ParseAttributeType(raw string) (schema.ParsedAttributeType, error) {
	var p schema.ParsedAttributeType
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	if p.OID == "" {
		return p, fmt.Errorf("rfc4512: missing OID in %q", raw)
	}
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "SUP":
			var sup []string
			sup, err = sc.oidlist()
			if err == nil && len(sup) > 0 {
				p.SuperiorOID = sup[0]
			}
		case "EQUALITY":
			p.EqualityOID = sc.token()
		case "ORDERING":
			p.OrderingOID = sc.token()
		case "SUBSTR":
			p.SubstringOID = sc.token()
		case "SYNTAX":
			p.SyntaxOID = sc.token()
		case "SINGLE-VALUE":
			p.SingleValued = true
		case "COLLECTIVE":
			p.Collective = true
		case "NO-USER-MODIFICATION":
			p.NoUserModification = true
		case "USAGE":
			p.Usage = schema.Usage(sc.token())
		default:
			return p, fmt.Errorf("rfc4512: unrecognized attributeType keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if p.Usage == "" {
		p.Usage = schema.UsageUserApplications
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseObjectClass parses one objectClassDescription (RFC 4512 §4.1.1).
func ParseObjectClass(raw string) (schema.ParsedObjectClass, error) {
	var p schema.ParsedObjectClass
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	if p.OID == "" {
		return p, fmt.Errorf("rfc4512: missing OID in %q", raw)
	}
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "SUP":
			p.SuperiorOIDs, err = sc.oidlist()
		case "ABSTRACT":
			p.ClassKind = schema.ObjectClassAbstract
		case "STRUCTURAL":
			p.ClassKind = schema.ObjectClassStructural
		case "AUXILIARY":
			p.ClassKind = schema.ObjectClassAuxiliary
		case "MUST":
			p.MustOIDs, err = sc.oidlist()
		case "MAY":
			p.MayOIDs, err = sc.oidlist()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized objectClass keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if p.ClassKind == "" {
		p.ClassKind = schema.ObjectClassStructural
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseMatchingRule parses one matchingRuleDescription (RFC 4512 §4.1.3).
func ParseMatchingRule(raw string) (schema.ParsedMatchingRule, error) {
	var p schema.ParsedMatchingRule
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "SYNTAX":
			p.SyntaxOID = sc.token()
		case "NORMALIZER":
			p.NormalizerOID = sc.token()
		case "COMPARATOR":
			p.ComparatorOID = sc.token()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized matchingRule keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseMatchingRuleUse parses one matchingRuleUseDescription (§4.1.4).
func ParseMatchingRuleUse(raw string) (schema.ParsedMatchingRuleUse, error) {
	var p schema.ParsedMatchingRuleUse
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "APPLIES":
			p.ApplicableAttributeOIDs, err = sc.oidlist()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized matchingRuleUse keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseLdapSyntax parses one ldapSyntaxDescription (§4.1.5). Syntaxes
// carry no NAME; M-SYNTAX-CHECKER is a subschema extension the teacher's
// pack never modeled, so it's read from the non-standard
// X-SYNTAX-CHECKER extension token if present.
func ParseLdapSyntax(raw string) (schema.ParsedLdapSyntax, error) {
	var p schema.ParsedLdapSyntax
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	p.HumanReadable = true
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "DESC":
			p.Description, err = sc.qdstring()
		case "X-SYNTAX-CHECKER":
			p.SyntaxCheckerOID = sc.token()
		case "X-NOT-HUMAN-READABLE":
			p.HumanReadable = false
		default:
			return p, fmt.Errorf("rfc4512: unrecognized ldapSyntax keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseDitContentRule parses one DITContentRuleDescription (§4.1.6).
func ParseDitContentRule(raw string) (schema.ParsedDitContentRule, error) {
	var p schema.ParsedDitContentRule
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "AUX":
			p.AuxOIDs, err = sc.oidlist()
		case "MUST":
			p.MustOIDs, err = sc.oidlist()
		case "MAY":
			p.MayOIDs, err = sc.oidlist()
		case "NOT":
			p.NotOIDs, err = sc.oidlist()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized ditContentRule keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseDitStructureRule parses one DITStructureRuleDescription (§4.1.7).
// Its leading token is a bare integer rule id, not an OID.
func ParseDitStructureRule(raw string) (schema.ParsedDitStructureRule, error) {
	var p schema.ParsedDitStructureRule
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	idTok := sc.token()
	if _, err := fmt.Sscanf(idTok, "%d", &p.RuleID); err != nil {
		return p, fmt.Errorf("rfc4512: rule id %q is not an integer in %q", idTok, raw)
	}
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "FORM":
			p.NameFormOID = sc.token()
		case "SUP":
			p.SuperiorRuleIDs, err = sc.ruleidlist()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized ditStructureRule keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseImplementation parses one normalizer/comparator/syntaxChecker
// extension descriptor: a subschema subentry value of the form
// "( OID [NAME ...] [DESC '...'] M-FQCN '...' [M-BYTECODE '...'] )",
// the M-FQCN/M-BYTECODE extension spec.md's subschema-subentry section
// names for all three of those attributes. M-BYTECODE, when present, is
// standard Base64 and is decoded eagerly so schema.ParsedImplementation
// always carries raw bytes, never an encoded string.
func ParseImplementation(raw string) (schema.ParsedImplementation, error) {
	var p schema.ParsedImplementation
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	if p.OID == "" {
		return p, fmt.Errorf("rfc4512: missing OID in %q", raw)
	}
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "M-FQCN":
			p.FQCN, err = sc.qdstring()
		case "M-BYTECODE":
			var encoded string
			encoded, err = sc.qdstring()
			if err == nil {
				p.Bytecode, err = base64.StdEncoding.DecodeString(encoded)
				if err != nil {
					err = fmt.Errorf("rfc4512: invalid M-BYTECODE in %q: %w", raw, err)
				}
			}
		default:
			return p, fmt.Errorf("rfc4512: unrecognized implementation keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if p.FQCN == "" {
		return p, fmt.Errorf("rfc4512: missing M-FQCN in %q", raw)
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}

// ParseNameForm parses one NameFormDescription (§4.1.7.2).
func ParseNameForm(raw string) (schema.ParsedNameForm, error) {
	var p schema.ParsedNameForm
	sc := newScanner(raw)
	if err := sc.expect('('); err != nil {
		return p, err
	}
	p.OID = sc.token()
	for {
		kw, ok := sc.keyword()
		if !ok {
			break
		}
		var err error
		switch kw {
		case "NAME":
			p.Names, err = sc.qdescrs()
		case "DESC":
			p.Description, err = sc.qdstring()
		case "OBSOLETE":
			p.Obsolete = true
		case "OC":
			p.ObjectClassOID = sc.token()
		case "MUST":
			p.MustOIDs, err = sc.oidlist()
		case "MAY":
			p.MayOIDs, err = sc.oidlist()
		default:
			return p, fmt.Errorf("rfc4512: unrecognized nameForm keyword %q in %q", kw, raw)
		}
		if err != nil {
			return p, err
		}
	}
	if err := sc.expect(')'); err != nil {
		return p, err
	}
	return p, nil
}
