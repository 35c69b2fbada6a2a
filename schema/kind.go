package schema

// Kind identifies which typed registry an OID or name belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindAttributeType
	KindObjectClass
	KindMatchingRule
	KindMatchingRuleUse
	KindLdapSyntax
	KindDitContentRule
	KindDitStructureRule
	KindNameForm
	KindNormalizer
	KindComparator
	KindSyntaxChecker
)

func (k Kind) String() string {
	switch k {
	case KindAttributeType:
		return "AttributeType"
	case KindObjectClass:
		return "ObjectClass"
	case KindMatchingRule:
		return "MatchingRule"
	case KindMatchingRuleUse:
		return "MatchingRuleUse"
	case KindLdapSyntax:
		return "LdapSyntax"
	case KindDitContentRule:
		return "DitContentRule"
	case KindDitStructureRule:
		return "DitStructureRule"
	case KindNameForm:
		return "NameForm"
	case KindNormalizer:
		return "Normalizer"
	case KindComparator:
		return "Comparator"
	case KindSyntaxChecker:
		return "SyntaxChecker"
	default:
		return "Unknown"
	}
}

// Header is the common identity every schema entity carries: its primary
// OID, its case-insensitive name aliases and the schema it was loaded
// from. Kind-specific payload lives on the concrete struct that embeds
// Header, per the tagged-variant-over-deep-inheritance design note.
type Header struct {
	OID        string
	Names      []string
	SchemaName string
}

// Entity is implemented by every schema object the registries store.
// Head returns the common identity header; Kind returns which typed
// registry owns the entity.
type Entity interface {
	Head() *Header
	Kind() Kind
}
