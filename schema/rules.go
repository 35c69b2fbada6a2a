package schema

// validateAttributeType implements §4.8 rules 1-8 exactly, against a
// proposed AttributeType and the registry set it would be added to
// (which already contains the proposed entity, via the factory, so
// inheritance lookups see it consistently).
func validateAttributeType(rs *RegistrySet, at *AttributeType) []*SchemaViolation {
	var out []*SchemaViolation

	// Rule 4: superior resolution and acyclicity.
	if at.SuperiorOID != "" {
		if at.SuperiorOID == at.OID {
			out = append(out, newInheritanceCycle(at.OID, KindAttributeType))
		} else if !rs.AttributeTypes.Has(at.SuperiorOID) {
			out = append(out, newUnknownSuperior(at.OID, KindAttributeType, at.SuperiorOID))
		} else if hasAttributeTypeCycle(rs, at.OID) {
			out = append(out, newInheritanceCycle(at.OID, KindAttributeType))
		}
	}

	// Rule 3: any set matching-rule OID must resolve.
	for _, ref := range []string{at.EqualityOID, at.OrderingOID, at.SubstringOID} {
		if ref != "" && !rs.MatchingRules.Has(ref) {
			out = append(out, newUnknownMatchingRule(at.OID, KindAttributeType, ref))
		}
	}

	// Rule 1: syntax presence, directly or inherited, and the syntax
	// must resolve.
	syn, syntaxOK, chainOK := effectiveSyntax(rs, at)
	if !chainOK {
		// Dangling or cyclic superior already reported above; don't
		// double-report NoSyntax for the same root cause.
	} else if !syntaxOK {
		out = append(out, newNoSyntax(at.OID))
	} else if !rs.Syntaxes.Has(syn) {
		out = append(out, newUnknownSyntax(at.OID, KindAttributeType, syn))
	}

	// Rule 2: at least one matching facility, directly or inherited.
	_, eqOK := effectiveMatchingRule(rs, at, func(a *AttributeType) string { return a.EqualityOID })
	_, ordOK := effectiveMatchingRule(rs, at, func(a *AttributeType) string { return a.OrderingOID })
	_, subOK := effectiveMatchingRule(rs, at, func(a *AttributeType) string { return a.SubstringOID })
	if !eqOK && !ordOK && !subOK {
		out = append(out, newNoMatchingRule(at.OID))
	}

	// Rule 5: usage compatibility with superior.
	if at.SuperiorOID != "" {
		if sup, ok := rs.AttributeTypes.Lookup(at.SuperiorOID); ok && sup.Usage != at.Usage {
			out = append(out, newUsageMismatch(at.OID))
		}
	}

	// Rule 6: collective implies userApplications.
	if at.Collective && at.Usage != UsageUserApplications {
		out = append(out, newCollectiveOperational(at.OID))
	}

	// Rule 7: noUserModification implies operational usage.
	if at.NoUserModification && !at.Usage.isOperational() {
		out = append(out, newNoUserModUserApp(at.OID))
	}

	// Rule 8: collective attribute types cannot be single-valued.
	if at.Collective && at.SingleValued {
		out = append(out, newCollectiveSingleValued(at.OID))
	}

	return out
}

// validateObjectClass implements §4.9.
func validateObjectClass(rs *RegistrySet, oc *ObjectClass) []*SchemaViolation {
	var out []*SchemaViolation

	isRoot := oc.OID == rootObjectClassOID(rs)
	if len(oc.SuperiorOIDs) == 0 && !isRoot {
		out = append(out, newKindIncompatibility(oc.OID, "at least one superior is required"))
	}

	for _, sup := range oc.SuperiorOIDs {
		if sup == oc.OID {
			out = append(out, newInheritanceCycle(oc.OID, KindObjectClass))
			continue
		}
		if !rs.ObjectClasses.Has(sup) {
			out = append(out, newUnknownSuperior(oc.OID, KindObjectClass, sup))
		}
	}
	if len(oc.SuperiorOIDs) > 0 && hasObjectClassCycle(rs, oc.OID) {
		out = append(out, newInheritanceCycle(oc.OID, KindObjectClass))
	}

	for _, ref := range oc.MustOIDs {
		if !rs.AttributeTypes.Has(ref) {
			out = append(out, newUnknownAttributeType(oc.OID, KindObjectClass, ref))
		}
	}
	for _, ref := range oc.MayOIDs {
		if !rs.AttributeTypes.Has(ref) {
			out = append(out, newUnknownAttributeType(oc.OID, KindObjectClass, ref))
		}
	}
	if overlap := intersectFold(oc.MustOIDs, oc.MayOIDs); len(overlap) > 0 {
		for _, attr := range overlap {
			out = append(out, newMustMayOverlap(oc.OID, attr))
		}
	}

	for _, sup := range oc.SuperiorOIDs {
		supOC, ok := rs.ObjectClasses.Lookup(sup)
		if !ok {
			continue
		}
		switch oc.ClassKind {
		case ObjectClassStructural:
			if supOC.ClassKind == ObjectClassAuxiliary {
				out = append(out, newKindIncompatibility(oc.OID, "STRUCTURAL class may not have an AUXILIARY-only superior chain"))
			}
		case ObjectClassAuxiliary:
			if supOC.ClassKind == ObjectClassStructural {
				out = append(out, newKindIncompatibility(oc.OID, "AUXILIARY class may not inherit from a STRUCTURAL class"))
			}
		case ObjectClassAbstract:
			if supOC.ClassKind != ObjectClassAbstract {
				out = append(out, newKindIncompatibility(oc.OID, "ABSTRACT class may only inherit from ABSTRACT classes"))
			}
		}
	}

	return out
}

// rootObjectClassOID returns the OID of the one object class the
// registry treats as having no required superior (conventionally
// "top", 2.5.6.0). If no object class named "top" is registered yet,
// the empty string never matches any real OID, so the "at least one
// superior" rule applies to every class until top is loaded.
func rootObjectClassOID(rs *RegistrySet) string {
	if oid, kind, ok := rs.Oids.Resolve("top"); ok && kind == KindObjectClass {
		return oid
	}
	return ""
}

func intersectFold(a, b []string) []string {
	var out []string
	for _, x := range a {
		if containsFold(b, x) {
			out = append(out, x)
		}
	}
	return out
}

// validateMatchingRule checks completeness per §3 invariant 6.
func validateMatchingRule(rs *RegistrySet, mr *MatchingRule) []*SchemaViolation {
	var out []*SchemaViolation
	if mr.SyntaxOID == "" {
		out = append(out, newUnknownSyntax(mr.OID, KindMatchingRule, ""))
	} else if !rs.Syntaxes.Has(mr.SyntaxOID) {
		out = append(out, newUnknownSyntax(mr.OID, KindMatchingRule, mr.SyntaxOID))
	}
	if mr.NormalizerOID == "" || !rs.Normalizers.Has(mr.NormalizerOID) {
		out = append(out, newMissingNormalizer(mr.OID, KindMatchingRule))
	}
	if mr.ComparatorOID == "" || !rs.Comparators.Has(mr.ComparatorOID) {
		out = append(out, newMissingComparator(mr.OID, KindMatchingRule))
	}
	return out
}

// validateLdapSyntax checks completeness per §3 invariant 7.
func validateLdapSyntax(rs *RegistrySet, s *LdapSyntax) []*SchemaViolation {
	if s.SyntaxCheckerOID == "" || !rs.SyntaxCheckers.Has(s.SyntaxCheckerOID) {
		return []*SchemaViolation{newMissingSyntaxChecker(s.OID, KindLdapSyntax)}
	}
	return nil
}

// validateMatchingRuleUse checks its matching rule and every applicable
// attribute type resolve, per §4.6.
func validateMatchingRuleUse(rs *RegistrySet, u *MatchingRuleUse) []*SchemaViolation {
	var out []*SchemaViolation
	if !rs.MatchingRules.Has(u.OID) {
		out = append(out, newUnknownMatchingRule(u.OID, KindMatchingRuleUse, u.OID))
	}
	for _, ref := range u.ApplicableAttributeOIDs {
		if !rs.AttributeTypes.Has(ref) {
			out = append(out, newUnknownAttributeType(u.OID, KindMatchingRuleUse, ref))
		}
	}
	return out
}

// validateNameForm checks the referenced object class and MUST/MAY
// attribute types resolve, per §4.6.
func validateNameForm(rs *RegistrySet, f *NameForm) []*SchemaViolation {
	return checkNameFormReferences(rs, f)
}

// validateDitContentRule checks referenced classes and attributes
// resolve, per §4.6.
func validateDitContentRule(rs *RegistrySet, r *DitContentRule) []*SchemaViolation {
	return checkDitContentRuleReferences(rs, r)
}

// validateDitStructureRule checks the referenced name form and any
// superior rule IDs resolve, per §4.6.
func validateDitStructureRule(rs *RegistrySet, r *DitStructureRule) []*SchemaViolation {
	return checkDitStructureRuleReferences(rs, r)
}
