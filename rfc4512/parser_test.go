package rfc4512

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudldap/schemadirectory/schema"
)

func TestParseAttributeType(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want schema.ParsedAttributeType
	}{
		{
			name: "minimal",
			raw:  "( 1.3.6.1.4.1.1466.115.121.1.15 NAME 'description' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )",
			want: schema.ParsedAttributeType{
				OID:       "1.3.6.1.4.1.1466.115.121.1.15",
				Names:     []string{"description"},
				SyntaxOID: "1.3.6.1.4.1.1466.115.121.1.15",
				Usage:     schema.UsageUserApplications,
			},
		},
		{
			name: "full",
			raw:  "( 2.5.4.3 NAME ( 'cn' 'commonName' ) DESC 'RFC4519: common name' SUP name EQUALITY caseIgnoreMatch SUBSTR caseIgnoreSubstringsMatch SINGLE-VALUE )",
			want: schema.ParsedAttributeType{
				OID:          "2.5.4.3",
				Names:        []string{"cn", "commonName"},
				Description:  "RFC4519: common name",
				SuperiorOID:  "name",
				EqualityOID:  "caseIgnoreMatch",
				SubstringOID: "caseIgnoreSubstringsMatch",
				SingleValued: true,
				Usage:        schema.UsageUserApplications,
			},
		},
		{
			name: "operational",
			raw:  "( 2.5.18.1 NAME 'createTimestamp' EQUALITY generalizedTimeMatch ORDERING generalizedTimeOrderingMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.24 SINGLE-VALUE NO-USER-MODIFICATION USAGE directoryOperation )",
			want: schema.ParsedAttributeType{
				OID:                "2.5.18.1",
				Names:              []string{"createTimestamp"},
				EqualityOID:        "generalizedTimeMatch",
				OrderingOID:        "generalizedTimeOrderingMatch",
				SyntaxOID:          "1.3.6.1.4.1.1466.115.121.1.24",
				SingleValued:       true,
				NoUserModification: true,
				Usage:              schema.UsageDirectoryOperation,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAttributeType(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseObjectClass(t *testing.T) {
	raw := "( 2.5.6.6 NAME 'person' SUP top STRUCTURAL MUST ( sn $ cn ) MAY ( userPassword $ telephoneNumber ) )"
	got, err := ParseObjectClass(raw)
	require.NoError(t, err)
	require.Equal(t, schema.ParsedObjectClass{
		OID:          "2.5.6.6",
		Names:        []string{"person"},
		SuperiorOIDs: []string{"top"},
		ClassKind:    schema.ObjectClassStructural,
		MustOIDs:     []string{"sn", "cn"},
		MayOIDs:      []string{"userPassword", "telephoneNumber"},
	}, got)
}

func TestParseObjectClassDefaultsToStructural(t *testing.T) {
	got, err := ParseObjectClass("( 9.9.9 NAME 'widget' SUP top )")
	require.NoError(t, err)
	require.Equal(t, schema.ObjectClassStructural, got.ClassKind)
}

func TestParseMatchingRule(t *testing.T) {
	raw := "( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )"
	got, err := ParseMatchingRule(raw)
	require.NoError(t, err)
	require.Equal(t, "2.5.13.2", got.OID)
	require.Equal(t, []string{"caseIgnoreMatch"}, got.Names)
	require.Equal(t, "1.3.6.1.4.1.1466.115.121.1.15", got.SyntaxOID)
}

func TestParseDitStructureRule(t *testing.T) {
	raw := "( 1 NAME 'orgStructure' FORM orgNameForm SUP ( 2 3 ) )"
	got, err := ParseDitStructureRule(raw)
	require.NoError(t, err)
	require.Equal(t, 1, got.RuleID)
	require.Equal(t, "orgNameForm", got.NameFormOID)
	require.Equal(t, []int{2, 3}, got.SuperiorRuleIDs)
}

func TestParseNameForm(t *testing.T) {
	raw := "( 1.2.3 NAME 'orgNameForm' OC organization MUST o )"
	got, err := ParseNameForm(raw)
	require.NoError(t, err)
	require.Equal(t, "organization", got.ObjectClassOID)
	require.Equal(t, []string{"o"}, got.MustOIDs)
}

func TestParseImplementation(t *testing.T) {
	raw := "( 1.3.6.1.4.1.99999.1.1 NAME 'caseIgnoreNormalizer' DESC 'lowercases and folds whitespace' M-FQCN 'hostfuncs.CaseIgnore' M-BYTECODE 'aGVsbG8=' )"
	got, err := ParseImplementation(raw)
	require.NoError(t, err)
	require.Equal(t, "1.3.6.1.4.1.99999.1.1", got.OID)
	require.Equal(t, []string{"caseIgnoreNormalizer"}, got.Names)
	require.Equal(t, "lowercases and folds whitespace", got.Description)
	require.Equal(t, "hostfuncs.CaseIgnore", got.FQCN)
	require.Equal(t, []byte("hello"), got.Bytecode)
}

func TestParseImplementationWithoutBytecode(t *testing.T) {
	raw := "( 9.9.9.9 M-FQCN 'hostfuncs.UUID' )"
	got, err := ParseImplementation(raw)
	require.NoError(t, err)
	require.Equal(t, "hostfuncs.UUID", got.FQCN)
	require.Nil(t, got.Bytecode)
}

func TestParseImplementationRequiresFQCN(t *testing.T) {
	_, err := ParseImplementation("( 9.9.9.9 DESC 'no fqcn here' )")
	require.Error(t, err)
}

func TestParseRejectsUnknownKeyword(t *testing.T) {
	_, err := ParseAttributeType("( 1.1 NAME 'x' BOGUS 1 )")
	require.Error(t, err)
}
