package schema

// The Parsed* types are the interchange shape between an external RFC
// 4512 descriptor parser (package rfc4512) and the entity factory below.
// Per §1, grammars that turn descriptor text into these structs are an
// external collaborator; the core only ever consumes already-parsed
// descriptors, which is why AddAttributeType et al. take a Parsed*
// value rather than a string.

type ParsedAttributeType struct {
	OID                string
	Names              []string
	Description        string
	Obsolete           bool
	SuperiorOID        string
	EqualityOID        string
	OrderingOID        string
	SubstringOID       string
	SyntaxOID          string
	SingleValued       bool
	Collective         bool
	NoUserModification bool
	Usage              Usage
}

type ParsedObjectClass struct {
	OID          string
	Names        []string
	Description  string
	Obsolete     bool
	SuperiorOIDs []string
	ClassKind    ObjectClassKind
	MustOIDs     []string
	MayOIDs      []string
}

type ParsedMatchingRule struct {
	OID           string
	Names         []string
	Description   string
	Obsolete      bool
	SyntaxOID     string
	NormalizerOID string
	ComparatorOID string
}

type ParsedMatchingRuleUse struct {
	OID                     string
	Names                   []string
	Description             string
	Obsolete                bool
	ApplicableAttributeOIDs []string
}

type ParsedLdapSyntax struct {
	OID              string
	Description      string
	SyntaxCheckerOID string
	HumanReadable    bool
}

type ParsedDitContentRule struct {
	OID         string
	Names       []string
	Description string
	Obsolete    bool
	AuxOIDs     []string
	MustOIDs    []string
	MayOIDs     []string
	NotOIDs     []string
}

type ParsedDitStructureRule struct {
	RuleID          int
	Names           []string
	Description     string
	Obsolete        bool
	NameFormOID     string
	SuperiorRuleIDs []int
}

type ParsedNameForm struct {
	OID            string
	Names          []string
	Description    string
	Obsolete       bool
	ObjectClassOID string
	MustOIDs       []string
	MayOIDs        []string
}

type ParsedImplementation struct {
	OID         string
	Names       []string
	Description string
	FQCN        string
	Bytecode    []byte
}
