package schema

import (
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// orderedSections accumulates rendered descriptor lines grouped by
// their subschema attribute name (ldapSyntaxes, attributeTypes, ...),
// preserving first-seen section order rather than a map's unspecified
// iteration order.
type orderedSections struct {
	m *orderedmap.OrderedMap
}

func newOrderedSections() *orderedSections {
	return &orderedSections{m: orderedmap.New()}
}

func (s *orderedSections) add(section, line string) {
	existing, ok := s.m.Get(section)
	if !ok {
		s.m.Set(section, []string{line})
		return
	}
	lines := existing.([]string)
	s.m.Set(section, append(lines, line))
}

func (s *orderedSections) render() string {
	var b strings.Builder
	for _, section := range s.m.Keys() {
		v, _ := s.m.Get(section)
		lines := v.([]string)
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "# %s\n", section)
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func quotedNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("NAME '%s' ", names[0])
	default:
		return fmt.Sprintf("NAME ( '%s' ) ", strings.Join(names, "' '"))
	}
}

func oidList(prefix string, oids []string) string {
	if len(oids) == 0 {
		return ""
	}
	if len(oids) == 1 {
		return fmt.Sprintf("%s %s ", prefix, oids[0])
	}
	return fmt.Sprintf("%s ( %s ) ", prefix, strings.Join(oids, " $ "))
}

func dumpAttributeType(at *AttributeType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", at.OID, quotedNames(at.Names))
	if at.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", at.Description)
	}
	if at.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	if at.SuperiorOID != "" {
		fmt.Fprintf(&b, "SUP %s ", at.SuperiorOID)
	}
	if at.EqualityOID != "" {
		fmt.Fprintf(&b, "EQUALITY %s ", at.EqualityOID)
	}
	if at.OrderingOID != "" {
		fmt.Fprintf(&b, "ORDERING %s ", at.OrderingOID)
	}
	if at.SubstringOID != "" {
		fmt.Fprintf(&b, "SUBSTR %s ", at.SubstringOID)
	}
	if at.SyntaxOID != "" {
		fmt.Fprintf(&b, "SYNTAX %s ", at.SyntaxOID)
	}
	if at.SingleValued {
		b.WriteString("SINGLE-VALUE ")
	}
	if at.Collective {
		b.WriteString("COLLECTIVE ")
	}
	if at.NoUserModification {
		b.WriteString("NO-USER-MODIFICATION ")
	}
	if at.Usage != "" && at.Usage != UsageUserApplications {
		fmt.Fprintf(&b, "USAGE %s ", at.Usage)
	}
	b.WriteString(")")
	return b.String()
}

func dumpObjectClass(oc *ObjectClass) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", oc.OID, quotedNames(oc.Names))
	if oc.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", oc.Description)
	}
	if oc.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	b.WriteString(oidList("SUP", oc.SuperiorOIDs))
	if oc.ClassKind != "" {
		fmt.Fprintf(&b, "%s ", oc.ClassKind)
	}
	b.WriteString(oidList("MUST", oc.MustOIDs))
	b.WriteString(oidList("MAY", oc.MayOIDs))
	b.WriteString(")")
	return b.String()
}

func dumpMatchingRule(mr *MatchingRule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", mr.OID, quotedNames(mr.Names))
	if mr.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", mr.Description)
	}
	if mr.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	fmt.Fprintf(&b, "SYNTAX %s )", mr.SyntaxOID)
	return b.String()
}

func dumpMatchingRuleUse(u *MatchingRuleUse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", u.OID, quotedNames(u.Names))
	if u.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", u.Description)
	}
	if u.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	b.WriteString(oidList("APPLIES", u.ApplicableAttributeOIDs))
	b.WriteString(")")
	return b.String()
}

func dumpLdapSyntax(s *LdapSyntax) string {
	if s.Description != "" {
		return fmt.Sprintf("( %s DESC '%s' )", s.OID, s.Description)
	}
	return fmt.Sprintf("( %s )", s.OID)
}

func dumpNameForm(f *NameForm) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", f.OID, quotedNames(f.Names))
	if f.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", f.Description)
	}
	if f.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	fmt.Fprintf(&b, "OC %s ", f.ObjectClassOID)
	b.WriteString(oidList("MUST", f.MustOIDs))
	b.WriteString(oidList("MAY", f.MayOIDs))
	b.WriteString(")")
	return b.String()
}

func dumpDitContentRule(r *DitContentRule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %s %s", r.OID, quotedNames(r.Names))
	if r.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", r.Description)
	}
	if r.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	b.WriteString(oidList("AUX", r.AuxOIDs))
	b.WriteString(oidList("MUST", r.MustOIDs))
	b.WriteString(oidList("MAY", r.MayOIDs))
	b.WriteString(oidList("NOT", r.NotOIDs))
	b.WriteString(")")
	return b.String()
}

func dumpDitStructureRule(r *DitStructureRule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "( %d %s", r.RuleID, quotedNames(r.Names))
	if r.Description != "" {
		fmt.Fprintf(&b, "DESC '%s' ", r.Description)
	}
	if r.Obsolete {
		b.WriteString("OBSOLETE ")
	}
	fmt.Fprintf(&b, "FORM %s ", r.NameFormOID)
	if len(r.SuperiorRuleIDs) > 0 {
		parts := make([]string, len(r.SuperiorRuleIDs))
		for i, id := range r.SuperiorRuleIDs {
			parts[i] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(&b, "SUP ( %s ) ", strings.Join(parts, " "))
	}
	b.WriteString(")")
	return b.String()
}
