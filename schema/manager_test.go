package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testSyntaxOID  = "1.3.6.1.4.1.1466.115.121.1.15"
	testCheckerOID = "1.1.1.1"
	testNormOID    = "1.1.1.2"
	testCompOID    = "1.1.1.3"
	testMatchOID   = "2.5.13.2"
)

// bootstrap returns a manager with just enough wired up (a syntax, its
// checker, a matching rule with its normalizer/comparator) that
// AttributeType and ObjectClass adds in the tests below only have to
// exercise the rule under test, not the whole completeness chain.
func bootstrap(t *testing.T) *SchemaManager {
	t.Helper()
	m := NewSchemaManager(nil)

	require.True(t, m.AddSyntaxChecker(ParsedImplementation{OID: testCheckerOID, FQCN: "fakeSyntaxChecker"}, "core"))
	require.True(t, m.AddLdapSyntax(ParsedLdapSyntax{OID: testSyntaxOID, SyntaxCheckerOID: testCheckerOID, HumanReadable: true}, "core"))
	require.True(t, m.AddNormalizer(ParsedImplementation{OID: testNormOID, FQCN: "fakeNormalizer"}, "core"))
	require.True(t, m.AddComparator(ParsedImplementation{OID: testCompOID, FQCN: "fakeComparator"}, "core"))
	require.True(t, m.AddMatchingRule(ParsedMatchingRule{
		OID:           testMatchOID,
		Names:         []string{"caseIgnoreMatch"},
		SyntaxOID:     testSyntaxOID,
		NormalizerOID: testNormOID,
		ComparatorOID: testCompOID,
	}, "core"))
	require.True(t, m.AddObjectClass(ParsedObjectClass{
		OID:       "2.5.6.0",
		Names:     []string{"top"},
		ClassKind: ObjectClassAbstract,
	}, "core"))
	return m
}

func TestAddAttributeTypeMissingSyntax(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{OID: "1.1.1", Names: []string{"noSyntax"}}, "test")
	require.False(t, ok)
	require.NotEmpty(t, m.GetErrors())
	require.Equal(t, CodeNoSyntax, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeCollectiveMustBeUserApplications(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.2", Names: []string{"badCollective"},
		SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
		Collective: true, Usage: UsageDirectoryOperation,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeCollectiveOperational, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeNoUserModificationRequiresOperational(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.3", Names: []string{"badNoUserMod"},
		SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
		NoUserModification: true, Usage: UsageUserApplications,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeNoUserModUserApp, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeCollectiveSingleValued(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.4", Names: []string{"badCollectiveSV"},
		SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
		Collective: true, SingleValued: true, Usage: UsageUserApplications,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeCollectiveSingleValued, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeInheritsSyntaxAndMatchingRule(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.5", Names: []string{"base"},
		SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
		Usage: UsageUserApplications,
	}, "test"))

	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.6", Names: []string{"derived"},
		SuperiorOID: "1.1.5", Usage: UsageUserApplications,
	}, "test"), "%v", m.GetErrors())

	eff, ok := m.LookupAttributeType("derived")
	require.True(t, ok)
	require.Equal(t, testSyntaxOID, eff.EffectiveSyntaxOID)
	require.Equal(t, testMatchOID, eff.EffectiveEqualityOID)
}

func TestAddAttributeTypeUsageMustMatchSuperior(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.7", Names: []string{"baseUserApp"},
		SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID, Usage: UsageUserApplications,
	}, "test"))

	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.8", Names: []string{"mismatchedUsage"},
		SuperiorOID: "1.1.7", Usage: UsageDirectoryOperation,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeUsageMismatch, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeSelfReferenceCycle(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.9", Names: []string{"selfSup"},
		SuperiorOID: "1.1.9", SyntaxOID: testSyntaxOID,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeInheritanceCycle, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeAlreadyExists(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.10", Names: []string{"dup"}, SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
	}, "test"))

	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.10", Names: []string{"dup2"}, SyntaxOID: testSyntaxOID,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeAlreadyExists, m.GetErrors()[0].Code)
}

func TestAddAttributeTypeInvalidMatchingRuleReference(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddAttributeType(ParsedAttributeType{
		OID: "1.1.11", Names: []string{"badMR"},
		SyntaxOID: testSyntaxOID, EqualityOID: "9.9.9.9",
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeUnknownMatchingRule, m.GetErrors()[0].Code)
}

func TestAddObjectClassRequiresSuperiorExceptRoot(t *testing.T) {
	m := bootstrap(t)
	ok := m.AddObjectClass(ParsedObjectClass{OID: "1.2.1", Names: []string{"orphan"}, ClassKind: ObjectClassStructural}, "test")
	require.False(t, ok)
	require.Equal(t, CodeKindIncompatibility, m.GetErrors()[0].Code)
}

func TestAddObjectClassMustMayOverlap(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{OID: "1.2.2", Names: []string{"attr"}, SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID}, "test"))
	ok := m.AddObjectClass(ParsedObjectClass{
		OID: "1.2.3", Names: []string{"overlap"}, SuperiorOIDs: []string{"top"},
		ClassKind: ObjectClassStructural, MustOIDs: []string{"attr"}, MayOIDs: []string{"attr"},
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeMustMayOverlap, m.GetErrors()[0].Code)
}

func TestAddObjectClassAuxiliaryCannotInheritStructural(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddObjectClass(ParsedObjectClass{
		OID: "1.2.4", Names: []string{"structBase"}, SuperiorOIDs: []string{"top"}, ClassKind: ObjectClassStructural,
	}, "test"))
	ok := m.AddObjectClass(ParsedObjectClass{
		OID: "1.2.5", Names: []string{"badAux"}, SuperiorOIDs: []string{"structBase"}, ClassKind: ObjectClassAuxiliary,
	}, "test")
	require.False(t, ok)
	require.Equal(t, CodeKindIncompatibility, m.GetErrors()[0].Code)
}

func TestDeleteRefusesWhileReferenced(t *testing.T) {
	m := bootstrap(t)
	ok := m.Delete(testSyntaxOID)
	require.False(t, ok)
	require.Equal(t, CodeStillReferenced, m.GetErrors()[0].Code)
}

func TestDeleteSucceedsOnceUnreferenced(t *testing.T) {
	m := NewSchemaManager(nil)
	require.True(t, m.AddSyntaxChecker(ParsedImplementation{OID: testCheckerOID, FQCN: "fakeSyntaxChecker"}, "core"))
	require.True(t, m.AddLdapSyntax(ParsedLdapSyntax{OID: testSyntaxOID, SyntaxCheckerOID: testCheckerOID}, "core"))
	require.True(t, m.Delete(testSyntaxOID))
	_, ok := m.LookupLdapSyntax(testSyntaxOID)
	require.False(t, ok)
}

func TestEnableRequiresDependenciesLoaded(t *testing.T) {
	m := NewSchemaManager(nil)
	m.mutate(func(rs *RegistrySet) []*SchemaViolation {
		rs.Schemas["a"] = &Schema{Name: "a", Dependencies: []string{"b"}}
		rs.Schemas["b"] = &Schema{Name: "b"}
		return nil
	})
	require.False(t, m.Enable("a"))
	require.Equal(t, CodeSchemaDependencyMissing, m.GetErrors()[0].Code)

	require.True(t, m.Enable("b"))
	require.True(t, m.Enable("a"))
}

func TestDisableRefusesWhileDependedOn(t *testing.T) {
	m := NewSchemaManager(nil)
	m.mutate(func(rs *RegistrySet) []*SchemaViolation {
		rs.Schemas["a"] = &Schema{Name: "a", Dependencies: []string{"b"}}
		rs.Schemas["b"] = &Schema{Name: "b"}
		return nil
	})
	require.True(t, m.Enable("b"))
	require.True(t, m.Enable("a"))
	require.False(t, m.Disable("b"))
	require.Equal(t, CodeSchemaStillDepended, m.GetErrors()[0].Code)
}

func TestVerifyIsCleanAfterValidCommits(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.3.1", Names: []string{"clean"}, SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
	}, "test"))
	require.Empty(t, m.Verify())
}

func TestDumpIsStableAcrossCalls(t *testing.T) {
	m := bootstrap(t)
	require.True(t, m.AddAttributeType(ParsedAttributeType{
		OID: "1.3.2", Names: []string{"dumped"}, SyntaxOID: testSyntaxOID, EqualityOID: testMatchOID,
	}, "test"))
	require.Equal(t, m.Dump(), m.Dump())
	require.Contains(t, m.Dump(), "dumped")
}
