package schema

// Resolver walks the entire object graph confirming every OID reference
// resolves to a present entity of the expected kind, per §4.6. It never
// panics or returns early on the first problem; it accumulates every
// violation it finds across every entity.
type Resolver struct{}

// Resolve checks every entity in rs and returns every violation found.
// A successfully committed RegistrySet must produce an empty slice here
// (§8 property 3).
func (Resolver) Resolve(rs *RegistrySet) []*SchemaViolation {
	var out []*SchemaViolation

	for _, at := range rs.AttributeTypes.Iterate() {
		out = append(out, checkAttributeTypeReferences(rs, at)...)
	}
	for _, oc := range rs.ObjectClasses.Iterate() {
		out = append(out, checkObjectClassReferences(rs, oc)...)
	}
	for _, mr := range rs.MatchingRules.Iterate() {
		out = append(out, checkMatchingRuleReferences(rs, mr)...)
	}
	for _, syn := range rs.Syntaxes.Iterate() {
		out = append(out, checkSyntaxReferences(rs, syn)...)
	}
	for _, mru := range rs.MatchingRuleUses.Iterate() {
		out = append(out, checkMatchingRuleUseReferences(rs, mru)...)
	}
	for _, dcr := range rs.DitContentRules.Iterate() {
		out = append(out, checkDitContentRuleReferences(rs, dcr)...)
	}
	for _, nf := range rs.NameForms.Iterate() {
		out = append(out, checkNameFormReferences(rs, nf)...)
	}
	for _, dsr := range rs.DitStructureRules.Iterate() {
		out = append(out, checkDitStructureRuleReferences(rs, dsr)...)
	}

	return out
}

func checkAttributeTypeReferences(rs *RegistrySet, at *AttributeType) []*SchemaViolation {
	var out []*SchemaViolation

	if at.SuperiorOID != "" {
		if !rs.AttributeTypes.Has(at.SuperiorOID) {
			out = append(out, newUnknownSuperior(at.OID, KindAttributeType, at.SuperiorOID))
		} else if hasAttributeTypeCycle(rs, at.OID) {
			out = append(out, newInheritanceCycle(at.OID, KindAttributeType))
		}
	}
	for _, ref := range []string{at.EqualityOID, at.OrderingOID, at.SubstringOID} {
		if ref != "" && !rs.MatchingRules.Has(ref) {
			out = append(out, newUnknownMatchingRule(at.OID, KindAttributeType, ref))
		}
	}
	if syn, ok, _ := effectiveSyntax(rs, at); !ok || !rs.Syntaxes.Has(syn) {
		out = append(out, newUnknownSyntax(at.OID, KindAttributeType, syn))
	}
	return out
}

func checkObjectClassReferences(rs *RegistrySet, oc *ObjectClass) []*SchemaViolation {
	var out []*SchemaViolation

	for _, sup := range oc.SuperiorOIDs {
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
	return out
}

func checkMatchingRuleReferences(rs *RegistrySet, mr *MatchingRule) []*SchemaViolation {
	var out []*SchemaViolation
	if mr.SyntaxOID == "" || !rs.Syntaxes.Has(mr.SyntaxOID) {
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

func checkSyntaxReferences(rs *RegistrySet, s *LdapSyntax) []*SchemaViolation {
	if s.SyntaxCheckerOID == "" || !rs.SyntaxCheckers.Has(s.SyntaxCheckerOID) {
		return []*SchemaViolation{newMissingSyntaxChecker(s.OID, KindLdapSyntax)}
	}
	return nil
}

func checkMatchingRuleUseReferences(rs *RegistrySet, u *MatchingRuleUse) []*SchemaViolation {
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

func checkDitContentRuleReferences(rs *RegistrySet, r *DitContentRule) []*SchemaViolation {
	var out []*SchemaViolation
	if !rs.ObjectClasses.Has(r.OID) {
		out = append(out, newUnknownObjectClass(r.OID, KindDitContentRule, r.OID))
	}
	for _, ref := range r.AuxOIDs {
		if !rs.ObjectClasses.Has(ref) {
			out = append(out, newUnknownObjectClass(r.OID, KindDitContentRule, ref))
		}
	}
	for _, list := range [][]string{r.MustOIDs, r.MayOIDs, r.NotOIDs} {
		for _, ref := range list {
			if !rs.AttributeTypes.Has(ref) {
				out = append(out, newUnknownAttributeType(r.OID, KindDitContentRule, ref))
			}
		}
	}
	return out
}

func checkNameFormReferences(rs *RegistrySet, f *NameForm) []*SchemaViolation {
	var out []*SchemaViolation
	if !rs.ObjectClasses.Has(f.ObjectClassOID) {
		out = append(out, newUnknownObjectClass(f.OID, KindNameForm, f.ObjectClassOID))
	}
	for _, list := range [][]string{f.MustOIDs, f.MayOIDs} {
		for _, ref := range list {
			if !rs.AttributeTypes.Has(ref) {
				out = append(out, newUnknownAttributeType(f.OID, KindNameForm, ref))
			}
		}
	}
	return out
}

func checkDitStructureRuleReferences(rs *RegistrySet, r *DitStructureRule) []*SchemaViolation {
	var out []*SchemaViolation
	if !rs.NameForms.Has(r.NameFormOID) {
		out = append(out, violation(CodeNoSuchEntity, r.OID, KindDitStructureRule, r.NameFormOID, "name form does not resolve"))
	}
	for _, supID := range r.SuperiorRuleIDs {
		if !ditStructureRuleIDExists(rs, supID) {
			out = append(out, violation(CodeNoSuchEntity, r.OID, KindDitStructureRule, "", "superior rule id %d does not resolve", supID))
		}
	}
	return out
}

func ditStructureRuleIDExists(rs *RegistrySet, ruleID int) bool {
	for _, r := range rs.DitStructureRules.Iterate() {
		if r.RuleID == ruleID {
			return true
		}
	}
	return false
}

// hasAttributeTypeCycle walks the superior chain from oid using a
// grey/black DFS marking set, per the cycle-detection design note.
func hasAttributeTypeCycle(rs *RegistrySet, oid string) bool {
	grey := map[string]bool{}
	cur := oid
	for {
		at, ok := rs.AttributeTypes.Lookup(cur)
		if !ok || at.SuperiorOID == "" {
			return false
		}
		if grey[at.SuperiorOID] || at.SuperiorOID == oid {
			return true
		}
		grey[cur] = true
		cur = at.SuperiorOID
	}
}

// hasObjectClassCycle performs the analogous DFS over the (possibly
// multi-parent) ObjectClass superior DAG.
func hasObjectClassCycle(rs *RegistrySet, oid string) bool {
	const (
		white = 0
		grey  = 1
		black = 2
	)
	color := map[string]int{}

	var visit func(string) bool
	visit = func(cur string) bool {
		switch color[cur] {
		case grey:
			return true
		case black:
			return false
		}
		color[cur] = grey
		oc, ok := rs.ObjectClasses.Lookup(cur)
		if ok {
			for _, sup := range oc.SuperiorOIDs {
				if visit(sup) {
					return true
				}
			}
		}
		color[cur] = black
		return false
	}

	return visit(oid)
}

// effectiveSyntax returns the syntax OID an attribute type would use at
// lookup time: its own if set, else the nearest superior's, per §4.8
// rule 9. The bool return is false if none resolves anywhere in the
// chain (including a dangling superior).
func effectiveSyntax(rs *RegistrySet, at *AttributeType) (oid string, ok bool, chainOK bool) {
	cur := at
	visited := map[string]bool{}
	for {
		if cur.SyntaxOID != "" {
			return cur.SyntaxOID, true, true
		}
		if cur.SuperiorOID == "" {
			return "", false, true
		}
		if visited[cur.SuperiorOID] {
			return "", false, false
		}
		visited[cur.SuperiorOID] = true
		next, ok := rs.AttributeTypes.Lookup(cur.SuperiorOID)
		if !ok {
			return "", false, false
		}
		cur = next
	}
}

// effectiveMatchingRule returns the OID of the requested matching-rule
// facet (equality, ordering or substring) honoring inheritance, per
// §4.8 rule 9. get extracts the relevant field from an AttributeType.
func effectiveMatchingRule(rs *RegistrySet, at *AttributeType, get func(*AttributeType) string) (oid string, ok bool) {
	cur := at
	visited := map[string]bool{}
	for {
		if v := get(cur); v != "" {
			return v, true
		}
		if cur.SuperiorOID == "" {
			return "", false
		}
		if visited[cur.SuperiorOID] {
			return "", false
		}
		visited[cur.SuperiorOID] = true
		next, ok := rs.AttributeTypes.Lookup(cur.SuperiorOID)
		if !ok {
			return "", false
		}
		cur = next
	}
}

// effectiveUsage resolves the usage that applies after inheritance rule
// checks (§4.8 rule 5 requires it match the superior's directly, so this
// is mostly a convenience reader of at.Usage, retained for symmetry).
func effectiveUsage(at *AttributeType) Usage {
	return at.Usage
}

// referenceCount returns how many entities (of any kind) hold a
// reference to oid, excluding the entity that owns oid itself.
// References are compared as stored strings. SchemaManager.Delete calls
// this before unregistering an entity; Registry.Unregister itself does
// not.
func referenceCount(rs *RegistrySet, oid string) int {
	count := 0

	for _, at := range rs.AttributeTypes.Iterate() {
		if at.OID == oid {
			continue
		}
		if at.SuperiorOID == oid || at.EqualityOID == oid || at.OrderingOID == oid ||
			at.SubstringOID == oid || at.SyntaxOID == oid {
			count++
		}
	}
	for _, oc := range rs.ObjectClasses.Iterate() {
		if oc.OID == oid {
			continue
		}
		if containsFold(oc.SuperiorOIDs, oid) || containsFold(oc.MustOIDs, oid) || containsFold(oc.MayOIDs, oid) {
			count++
		}
	}
	for _, mr := range rs.MatchingRules.Iterate() {
		if mr.SyntaxOID == oid || mr.NormalizerOID == oid || mr.ComparatorOID == oid {
			count++
		}
	}
	for _, mru := range rs.MatchingRuleUses.Iterate() {
		if mru.OID == oid {
			continue
		}
		if containsFold(mru.ApplicableAttributeOIDs, oid) {
			count++
		}
	}
	for _, s := range rs.Syntaxes.Iterate() {
		if s.SyntaxCheckerOID == oid {
			count++
		}
	}
	for _, r := range rs.DitContentRules.Iterate() {
		if containsFold(r.AuxOIDs, oid) || containsFold(r.MustOIDs, oid) || containsFold(r.MayOIDs, oid) || containsFold(r.NotOIDs, oid) {
			count++
		}
	}
	for _, f := range rs.NameForms.Iterate() {
		if f.ObjectClassOID == oid || containsFold(f.MustOIDs, oid) || containsFold(f.MayOIDs, oid) {
			count++
		}
	}
	for _, r := range rs.DitStructureRules.Iterate() {
		if r.NameFormOID == oid {
			count++
		}
	}

	return count
}
