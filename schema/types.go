package schema

// Usage classifies an AttributeType's visibility and modifiability, per
// RFC 4512 §2.5.1 and spec §3.
type Usage string

const (
	UsageUserApplications    Usage = "userApplications"
	UsageDirectoryOperation  Usage = "directoryOperation"
	UsageDistributedOperation Usage = "distributedOperation"
	UsageDSAOperation        Usage = "dSAOperation"
)

func (u Usage) isOperational() bool {
	return u == UsageDirectoryOperation || u == UsageDistributedOperation || u == UsageDSAOperation
}

// ObjectClassKind is one of ABSTRACT, STRUCTURAL or AUXILIARY.
type ObjectClassKind string

const (
	ObjectClassAbstract   ObjectClassKind = "ABSTRACT"
	ObjectClassStructural ObjectClassKind = "STRUCTURAL"
	ObjectClassAuxiliary  ObjectClassKind = "AUXILIARY"
)

// AttributeType describes one LDAP attribute: its syntax, matching
// rules, usage and flags. Superior and matching-rule/syntax fields are
// stored as OID references, never as embedded objects, per the
// ownership rule in §3.
type AttributeType struct {
	Header
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

func (a *AttributeType) Head() *Header { return &a.Header }
func (a *AttributeType) Kind() Kind    { return KindAttributeType }

// ObjectClass describes a directory entry template: its superiors and
// required/permitted attribute types, stored as OID references.
type ObjectClass struct {
	Header
	Description string
	Obsolete    bool
	SuperiorOIDs []string
	ClassKind    ObjectClassKind
	MustOIDs     []string
	MayOIDs      []string
}

func (o *ObjectClass) Head() *Header { return &o.Header }
func (o *ObjectClass) Kind() Kind { return KindObjectClass }

// MatchingRule defines how attribute values of a bound syntax compare.
type MatchingRule struct {
	Header
	Description   string
	Obsolete      bool
	SyntaxOID     string
	NormalizerOID string
	ComparatorOID string
}

func (m *MatchingRule) Head() *Header { return &m.Header }
func (m *MatchingRule) Kind() Kind { return KindMatchingRule }

// MatchingRuleUse narrows which attribute types a matching rule applies
// to. Its OID is the matching rule's own OID.
type MatchingRuleUse struct {
	Header
	Description             string
	Obsolete                bool
	ApplicableAttributeOIDs []string
}

func (u *MatchingRuleUse) Head() *Header { return &u.Header }
func (u *MatchingRuleUse) Kind() Kind { return KindMatchingRuleUse }

// LdapSyntax defines an attribute's value space.
type LdapSyntax struct {
	Header
	Description      string
	SyntaxCheckerOID string
	HumanReadable    bool
}

func (s *LdapSyntax) Head() *Header { return &s.Header }
func (s *LdapSyntax) Kind() Kind { return KindLdapSyntax }

// DitContentRule restricts which auxiliary classes and MUST/MAY/NOT
// attributes are permitted for entries of a structural object class.
// Its OID is the structural object class's OID.
type DitContentRule struct {
	Header
	Description  string
	Obsolete     bool
	AuxOIDs      []string
	MustOIDs     []string
	MayOIDs      []string
	NotOIDs      []string
}

func (r *DitContentRule) Head() *Header { return &r.Header }
func (r *DitContentRule) Kind() Kind { return KindDitContentRule }

// DitStructureRule relates a name form to permitted superior structure
// rules, by ordinal rule ID rather than OID.
type DitStructureRule struct {
	Header
	RuleID            int
	Description       string
	Obsolete          bool
	NameFormOID       string
	SuperiorRuleIDs   []int
}

func (r *DitStructureRule) Head() *Header { return &r.Header }
func (r *DitStructureRule) Kind() Kind { return KindDitStructureRule }

// NameForm binds a structural object class to the attribute types that
// may name its entries' RDNs.
type NameForm struct {
	Header
	Description     string
	Obsolete        bool
	ObjectClassOID  string
	MustOIDs        []string
	MayOIDs         []string
}

func (f *NameForm) Head() *Header { return &f.Header }
func (f *NameForm) Kind() Kind { return KindNameForm }

// Implementation identifies an extensible function by a fully-qualified
// class/functor name plus optional Base64-carried bytecode, per the
// M-FQCN/M-BYTECODE subschema extension in §6. The core treats this as
// opaque: presence and identity, never invocation.
type Implementation struct {
	FQCN     string
	Bytecode []byte
}

// Normalizer is an opaque, host-materialized value-normalization
// function identified by OID.
type Normalizer struct {
	Header
	Description string
	Impl        Implementation
}

func (n *Normalizer) Head() *Header { return &n.Header }
func (n *Normalizer) Kind() Kind { return KindNormalizer }

// Comparator is an opaque, host-materialized value-comparison function
// identified by OID.
type Comparator struct {
	Header
	Description string
	Impl        Implementation
}

func (c *Comparator) Head() *Header { return &c.Header }
func (c *Comparator) Kind() Kind { return KindComparator }

// SyntaxChecker is an opaque, host-materialized syntax-validation
// function identified by OID.
type SyntaxChecker struct {
	Header
	Description string
	Impl        Implementation
}

func (c *SyntaxChecker) Head() *Header { return &c.Header }
func (c *SyntaxChecker) Kind() Kind { return KindSyntaxChecker }
