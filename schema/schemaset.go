package schema

// Schema is a named grouping of descriptors with declared dependencies
// on other schemas, per §4.3. It carries no entities directly; entities
// record the schema they belong to on their own Header.SchemaName.
type Schema struct {
	Name         string
	Enabled      bool
	Dependencies []string
}

// RegistrySet is the full, versioned collection of typed registries plus
// the shared OidRegistry and the loaded Schema set. A SchemaManager owns
// exactly one live RegistrySet and stages mutations in a cloned one
// before committing, per the copy-on-write design note in §9.
type RegistrySet struct {
	Oids *OidRegistry

	AttributeTypes    *Registry[*AttributeType]
	ObjectClasses     *Registry[*ObjectClass]
	MatchingRules     *Registry[*MatchingRule]
	MatchingRuleUses  *Registry[*MatchingRuleUse]
	Syntaxes          *Registry[*LdapSyntax]
	DitContentRules   *Registry[*DitContentRule]
	DitStructureRules *Registry[*DitStructureRule]
	NameForms         *Registry[*NameForm]
	Normalizers       *Registry[*Normalizer]
	Comparators       *Registry[*Comparator]
	SyntaxCheckers    *Registry[*SyntaxChecker]

	Schemas map[string]*Schema
}

// NewRegistrySet returns an empty registry set with no schemas loaded.
func NewRegistrySet() *RegistrySet {
	oids := NewOidRegistry()
	return &RegistrySet{
		Oids:              oids,
		AttributeTypes:    newRegistry[*AttributeType](KindAttributeType, oids),
		ObjectClasses:     newRegistry[*ObjectClass](KindObjectClass, oids),
		MatchingRules:     newRegistry[*MatchingRule](KindMatchingRule, oids),
		MatchingRuleUses:  newRegistry[*MatchingRuleUse](KindMatchingRuleUse, oids),
		Syntaxes:          newRegistry[*LdapSyntax](KindLdapSyntax, oids),
		DitContentRules:   newRegistry[*DitContentRule](KindDitContentRule, oids),
		DitStructureRules: newRegistry[*DitStructureRule](KindDitStructureRule, oids),
		NameForms:         newRegistry[*NameForm](KindNameForm, oids),
		Normalizers:       newRegistry[*Normalizer](KindNormalizer, oids),
		Comparators:       newRegistry[*Comparator](KindComparator, oids),
		SyntaxCheckers:    newRegistry[*SyntaxChecker](KindSyntaxChecker, oids),
		Schemas:           make(map[string]*Schema),
	}
}

// Clone returns a staged copy sharing no mutable state with the
// original: a mutation applies to the clone, and is discarded by simply
// dropping it on validation failure.
func (rs *RegistrySet) Clone() *RegistrySet {
	oids := rs.Oids.Clone()
	schemas := make(map[string]*Schema, len(rs.Schemas))
	for k, v := range rs.Schemas {
		cp := *v
		cp.Dependencies = append([]string(nil), v.Dependencies...)
		schemas[k] = &cp
	}
	return &RegistrySet{
		Oids:              oids,
		AttributeTypes:    rs.AttributeTypes.Clone(oids),
		ObjectClasses:     rs.ObjectClasses.Clone(oids),
		MatchingRules:     rs.MatchingRules.Clone(oids),
		MatchingRuleUses:  rs.MatchingRuleUses.Clone(oids),
		Syntaxes:          rs.Syntaxes.Clone(oids),
		DitContentRules:   rs.DitContentRules.Clone(oids),
		DitStructureRules: rs.DitStructureRules.Clone(oids),
		NameForms:         rs.NameForms.Clone(oids),
		Normalizers:       rs.Normalizers.Clone(oids),
		Comparators:       rs.Comparators.Clone(oids),
		SyntaxCheckers:    rs.SyntaxCheckers.Clone(oids),
		Schemas:           schemas,
	}
}

// EntityByOID finds an entity of any kind by its OID, used by the
// resolver and by generic Delete.
func (rs *RegistrySet) EntityByOID(oid string) (Entity, bool) {
	_, kind, ok := rs.Oids.Resolve(oid)
	if !ok {
		return nil, false
	}
	switch kind {
	case KindAttributeType:
		return rs.AttributeTypes.Lookup(oid)
	case KindObjectClass:
		return rs.ObjectClasses.Lookup(oid)
	case KindMatchingRule:
		return rs.MatchingRules.Lookup(oid)
	case KindMatchingRuleUse:
		return rs.MatchingRuleUses.Lookup(oid)
	case KindLdapSyntax:
		return rs.Syntaxes.Lookup(oid)
	case KindDitContentRule:
		return rs.DitContentRules.Lookup(oid)
	case KindDitStructureRule:
		return rs.DitStructureRules.Lookup(oid)
	case KindNameForm:
		return rs.NameForms.Lookup(oid)
	case KindNormalizer:
		return rs.Normalizers.Lookup(oid)
	case KindComparator:
		return rs.Comparators.Lookup(oid)
	case KindSyntaxChecker:
		return rs.SyntaxCheckers.Lookup(oid)
	default:
		return nil, false
	}
}

// unregisterAny removes oid from whichever typed registry owns it.
func (rs *RegistrySet) unregisterAny(oid string, kind Kind) {
	switch kind {
	case KindAttributeType:
		rs.AttributeTypes.Unregister(oid)
	case KindObjectClass:
		rs.ObjectClasses.Unregister(oid)
	case KindMatchingRule:
		rs.MatchingRules.Unregister(oid)
	case KindMatchingRuleUse:
		rs.MatchingRuleUses.Unregister(oid)
	case KindLdapSyntax:
		rs.Syntaxes.Unregister(oid)
	case KindDitContentRule:
		rs.DitContentRules.Unregister(oid)
	case KindDitStructureRule:
		rs.DitStructureRules.Unregister(oid)
	case KindNameForm:
		rs.NameForms.Unregister(oid)
	case KindNormalizer:
		rs.Normalizers.Unregister(oid)
	case KindComparator:
		rs.Comparators.Unregister(oid)
	case KindSyntaxChecker:
		rs.SyntaxCheckers.Unregister(oid)
	}
}

// enabledSchemaSet returns the set of schema names currently enabled.
func (rs *RegistrySet) enabledSchemaSet() map[string]bool {
	m := make(map[string]bool, len(rs.Schemas))
	for name, s := range rs.Schemas {
		if s.Enabled {
			m[name] = true
		}
	}
	return m
}
