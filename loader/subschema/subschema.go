// Package subschema implements schema.Loader by fetching a live LDAP
// server's subschema subentry (RFC 4512 §4.4) over the wire, using
// go-ldap/ldap/v3 the same way the teacher's handler code drives that
// client for bind and search operations.
package subschema

import (
	"context"
	"fmt"

	ldap "github.com/go-ldap/ldap/v3"
	"github.com/pkg/errors"

	"github.com/cloudldap/schemadirectory/rfc4512"
	"github.com/cloudldap/schemadirectory/schema"
)

var subschemaAttrs = []string{
	"attributeTypes",
	"objectClasses",
	"matchingRules",
	"matchingRuleUse",
	"ldapSyntaxes",
	"dITContentRules",
	"dITStructureRules",
	"nameForms",
	"normalizers",
	"comparators",
	"syntaxCheckers",
}

// Loader fetches subschema content from a remote directory server.
// There is only one subentry to fetch, so ListSchemas always reports
// exactly one pseudo-schema name: the one configured at construction.
type Loader struct {
	addr   string
	bindDN string
	bindPW string
	name   string
}

// New returns a Loader that dials addr (an "ldap://host:port" or
// "ldaps://host:port" URL), binds as bindDN/bindPW (both may be empty
// for an anonymous bind), and treats the fetched subentry as a single
// schema named name.
func New(addr, bindDN, bindPW, name string) *Loader {
	return &Loader{addr: addr, bindDN: bindDN, bindPW: bindPW, name: name}
}

// ListSchemas always returns the single configured pseudo-schema name.
func (l *Loader) ListSchemas(ctx context.Context) ([]string, error) {
	return []string{l.name}, nil
}

// LoadSchema connects, discovers the root DSE's subschemaSubentry, and
// reads its descriptor attributes into a schema.SchemaDescriptor. name
// must match the Loader's configured pseudo-schema name.
func (l *Loader) LoadSchema(ctx context.Context, name string) (*schema.SchemaDescriptor, error) {
	if name != l.name {
		return nil, fmt.Errorf("subschema: unknown schema %q", name)
	}

	conn, err := ldap.DialURL(l.addr)
	if err != nil {
		return nil, errors.Wrapf(err, "subschema: dial %q", l.addr)
	}
	defer conn.Close()

	if l.bindDN != "" {
		if err := conn.Bind(l.bindDN, l.bindPW); err != nil {
			return nil, errors.Wrap(err, "subschema: bind")
		}
	}

	entryDN, err := l.subschemaEntryDN(conn)
	if err != nil {
		return nil, err
	}

	res, err := conn.Search(ldap.NewSearchRequest(
		entryDN, ldap.ScopeBaseObject, ldap.NeverDerefAliases, 0, 0, false,
		"(objectClass=subschema)", subschemaAttrs, nil,
	))
	if err != nil {
		return nil, errors.Wrapf(err, "subschema: search %q", entryDN)
	}
	if len(res.Entries) == 0 {
		return nil, fmt.Errorf("subschema: no subschema entry at %q", entryDN)
	}
	entry := res.Entries[0]

	desc := &schema.SchemaDescriptor{Name: l.name}
	for _, raw := range entry.GetAttributeValues("attributeTypes") {
		addParsed(desc, "attributeTypes", raw, func(p schema.ParsedAttributeType) { desc.AttributeTypes = append(desc.AttributeTypes, p) }, rfc4512.ParseAttributeType)
	}
	for _, raw := range entry.GetAttributeValues("objectClasses") {
		addParsed(desc, "objectClasses", raw, func(p schema.ParsedObjectClass) { desc.ObjectClasses = append(desc.ObjectClasses, p) }, rfc4512.ParseObjectClass)
	}
	for _, raw := range entry.GetAttributeValues("matchingRules") {
		addParsed(desc, "matchingRules", raw, func(p schema.ParsedMatchingRule) { desc.MatchingRules = append(desc.MatchingRules, p) }, rfc4512.ParseMatchingRule)
	}
	for _, raw := range entry.GetAttributeValues("matchingRuleUse") {
		addParsed(desc, "matchingRuleUse", raw, func(p schema.ParsedMatchingRuleUse) { desc.MatchingRuleUses = append(desc.MatchingRuleUses, p) }, rfc4512.ParseMatchingRuleUse)
	}
	for _, raw := range entry.GetAttributeValues("ldapSyntaxes") {
		addParsed(desc, "ldapSyntaxes", raw, func(p schema.ParsedLdapSyntax) { desc.Syntaxes = append(desc.Syntaxes, p) }, rfc4512.ParseLdapSyntax)
	}
	for _, raw := range entry.GetAttributeValues("dITContentRules") {
		addParsed(desc, "dITContentRules", raw, func(p schema.ParsedDitContentRule) { desc.DitContentRules = append(desc.DitContentRules, p) }, rfc4512.ParseDitContentRule)
	}
	for _, raw := range entry.GetAttributeValues("dITStructureRules") {
		addParsed(desc, "dITStructureRules", raw, func(p schema.ParsedDitStructureRule) { desc.DitStructureRules = append(desc.DitStructureRules, p) }, rfc4512.ParseDitStructureRule)
	}
	for _, raw := range entry.GetAttributeValues("nameForms") {
		addParsed(desc, "nameForms", raw, func(p schema.ParsedNameForm) { desc.NameForms = append(desc.NameForms, p) }, rfc4512.ParseNameForm)
	}
	for _, raw := range entry.GetAttributeValues("normalizers") {
		addParsed(desc, "normalizers", raw, func(p schema.ParsedImplementation) { desc.Normalizers = append(desc.Normalizers, p) }, rfc4512.ParseImplementation)
	}
	for _, raw := range entry.GetAttributeValues("comparators") {
		addParsed(desc, "comparators", raw, func(p schema.ParsedImplementation) { desc.Comparators = append(desc.Comparators, p) }, rfc4512.ParseImplementation)
	}
	for _, raw := range entry.GetAttributeValues("syntaxCheckers") {
		addParsed(desc, "syntaxCheckers", raw, func(p schema.ParsedImplementation) { desc.SyntaxCheckers = append(desc.SyntaxCheckers, p) }, rfc4512.ParseImplementation)
	}

	return desc, nil
}

func (l *Loader) subschemaEntryDN(conn *ldap.Conn) (string, error) {
	res, err := conn.Search(ldap.NewSearchRequest(
		"", ldap.ScopeBaseObject, ldap.NeverDerefAliases, 0, 0, false,
		"(objectClass=*)", []string{"subschemaSubentry"}, nil,
	))
	if err != nil {
		return "", errors.Wrap(err, "subschema: search root DSE")
	}
	if len(res.Entries) == 0 {
		return "", errors.New("subschema: root DSE returned no entries")
	}
	dn := res.Entries[0].GetAttributeValue("subschemaSubentry")
	if dn == "" {
		return "", errors.New("subschema: root DSE has no subschemaSubentry attribute")
	}
	return dn, nil
}

// addParsed parses raw with parse and, on success, hands the result to
// add; on failure it records a ParseError instead of aborting the rest
// of the subentry.
func addParsed[T any](desc *schema.SchemaDescriptor, attr, raw string, add func(T), parse func(string) (T, error)) {
	v, err := parse(raw)
	if err != nil {
		desc.ParseErrors = append(desc.ParseErrors, fmt.Errorf("%s: %w", attr, err))
		return
	}
	add(v)
}
