package schema

import (
	"fmt"
)

// Code is a stable error code from §7's taxonomy. Only codes are
// normative; the Detail string is for logs and debugging, never for
// programmatic branching.
type Code string

const (
	// Structural
	CodeAlreadyExists Code = "AlreadyExists"
	CodeNoSuchEntity  Code = "NoSuchEntity"
	CodeDuplicateName Code = "DuplicateName"

	// Reference
	CodeUnknownSuperior      Code = "UnknownSuperior"
	CodeUnknownSyntax        Code = "UnknownSyntax"
	CodeUnknownMatchingRule  Code = "UnknownMatchingRule"
	CodeUnknownObjectClass   Code = "UnknownObjectClass"
	CodeUnknownAttributeType Code = "UnknownAttributeType"
	CodeStillReferenced      Code = "StillReferenced"

	// Cycle
	CodeInheritanceCycle Code = "InheritanceCycle"

	// Semantic (attribute types)
	CodeNoSyntax               Code = "NoSyntax"
	CodeNoMatchingRule         Code = "NoMatchingRule"
	CodeUsageMismatch          Code = "UsageMismatch"
	CodeCollectiveOperational  Code = "CollectiveOperational"
	CodeNoUserModUserApp       Code = "NoUserModUserApp"
	CodeCollectiveSingleValued Code = "CollectiveSingleValued"

	// Semantic (object classes)
	CodeKindIncompatibility Code = "KindIncompatibility"
	CodeMustMayOverlap      Code = "MustMayOverlap"

	// Completeness
	CodeMissingNormalizer     Code = "MissingNormalizer"
	CodeMissingComparator     Code = "MissingComparator"
	CodeMissingSyntaxChecker  Code = "MissingSyntaxChecker"

	// Schema
	CodeSchemaDependencyMissing Code = "SchemaDependencyMissing"
	CodeSchemaStillDepended     Code = "SchemaStillDepended"
)

// SchemaViolation is the structured failure type every core operation
// reports through, modeled on the teacher's util.LDAPError (Code/Msg
// pair with New* constructors) but widened per §7 with the subject and
// referenced OIDs a consumer needs to locate the problem in the graph.
type SchemaViolation struct {
	Code          Code
	SubjectOID    string
	SubjectKind   Kind
	ReferencedOID string
	Detail        string
}

func (v *SchemaViolation) Error() string {
	if v.ReferencedOID != "" {
		return fmt.Sprintf("%s: %s %s references unresolved %s (%s)", v.Code, v.SubjectKind, v.SubjectOID, v.ReferencedOID, v.Detail)
	}
	return fmt.Sprintf("%s: %s %s: %s", v.Code, v.SubjectKind, v.SubjectOID, v.Detail)
}

// Is lets errors.Is/xerrors.Is match on Code alone.
func (v *SchemaViolation) Is(target error) bool {
	other, ok := target.(*SchemaViolation)
	if !ok {
		return false
	}
	return v.Code == other.Code
}

func violation(code Code, oid string, kind Kind, ref string, detail string, args ...interface{}) *SchemaViolation {
	return &SchemaViolation{
		Code:          code,
		SubjectOID:    oid,
		SubjectKind:   kind,
		ReferencedOID: ref,
		Detail:        fmt.Sprintf(detail, args...),
	}
}

func newAlreadyExists(oid string, kind Kind) *SchemaViolation {
	return violation(CodeAlreadyExists, oid, kind, "", "an entity with this OID is already registered")
}

func newDuplicateName(oid string, kind Kind, name string) *SchemaViolation {
	return violation(CodeDuplicateName, oid, kind, "", "name %q is already bound to a different OID", name)
}

func newNoSuchEntity(oidOrName string, kind Kind) *SchemaViolation {
	return violation(CodeNoSuchEntity, oidOrName, kind, "", "no such entity")
}

func newStillReferenced(oid string, kind Kind, by string) *SchemaViolation {
	return violation(CodeStillReferenced, oid, kind, by, "still referenced by %s", by)
}

func newUnknownSuperior(oid string, kind Kind, ref string) *SchemaViolation {
	return violation(CodeUnknownSuperior, oid, kind, ref, "superior does not resolve")
}

func newUnknownSyntax(oid string, kind Kind, ref string) *SchemaViolation {
	return violation(CodeUnknownSyntax, oid, kind, ref, "syntax does not resolve")
}

func newUnknownMatchingRule(oid string, kind Kind, ref string) *SchemaViolation {
	return violation(CodeUnknownMatchingRule, oid, kind, ref, "matching rule does not resolve")
}

func newUnknownObjectClass(oid string, kind Kind, ref string) *SchemaViolation {
	return violation(CodeUnknownObjectClass, oid, kind, ref, "object class does not resolve")
}

func newUnknownAttributeType(oid string, kind Kind, ref string) *SchemaViolation {
	return violation(CodeUnknownAttributeType, oid, kind, ref, "attribute type does not resolve")
}

func newInheritanceCycle(oid string, kind Kind) *SchemaViolation {
	return violation(CodeInheritanceCycle, oid, kind, "", "superior chain forms a cycle")
}

func newNoSyntax(oid string) *SchemaViolation {
	return violation(CodeNoSyntax, oid, KindAttributeType, "", "no syntax set or inherited")
}

func newNoMatchingRule(oid string) *SchemaViolation {
	return violation(CodeNoMatchingRule, oid, KindAttributeType, "", "no equality, ordering or substring rule set or inherited")
}

func newUsageMismatch(oid string) *SchemaViolation {
	return violation(CodeUsageMismatch, oid, KindAttributeType, "", "usage does not match superior's usage")
}

func newCollectiveOperational(oid string) *SchemaViolation {
	return violation(CodeCollectiveOperational, oid, KindAttributeType, "", "collective attribute types must have usage userApplications")
}

func newNoUserModUserApp(oid string) *SchemaViolation {
	return violation(CodeNoUserModUserApp, oid, KindAttributeType, "", "noUserModification requires an operational usage")
}

func newCollectiveSingleValued(oid string) *SchemaViolation {
	return violation(CodeCollectiveSingleValued, oid, KindAttributeType, "", "collective attribute types cannot be single-valued")
}

func newKindIncompatibility(oid string, detail string, args ...interface{}) *SchemaViolation {
	return violation(CodeKindIncompatibility, oid, KindObjectClass, "", detail, args...)
}

func newMustMayOverlap(oid string, attr string) *SchemaViolation {
	return violation(CodeMustMayOverlap, oid, KindObjectClass, "", "attribute %q is in both MUST and MAY", attr)
}

func newMissingNormalizer(oid string, kind Kind) *SchemaViolation {
	return violation(CodeMissingNormalizer, oid, kind, "", "matching rule has no normalizer")
}

func newMissingComparator(oid string, kind Kind) *SchemaViolation {
	return violation(CodeMissingComparator, oid, kind, "", "matching rule has no comparator")
}

func newMissingSyntaxChecker(oid string, kind Kind) *SchemaViolation {
	return violation(CodeMissingSyntaxChecker, oid, kind, "", "syntax has no syntax checker")
}

func newSchemaDependencyMissing(schemaName string, dep string) *SchemaViolation {
	return violation(CodeSchemaDependencyMissing, schemaName, KindUnknown, dep, "dependency %q is not loaded", dep)
}

func newSchemaStillDepended(schemaName string, dependent string) *SchemaViolation {
	return violation(CodeSchemaStillDepended, schemaName, KindUnknown, dependent, "still depended on by %q", dependent)
}
