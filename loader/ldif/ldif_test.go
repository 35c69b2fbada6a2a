package ldif

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleLDIF = `dn: cn=schema
objectClass: top
objectClass: ldapSubentry
objectClass: subschema
# depends: core
ldapSyntaxes: ( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' )
attributeTypes: ( 2.5.4.3 NAME 'cn' SUP name EQUALITY caseIgnoreMatch SYNTAX
  1.3.6.1.4.1.1466.115.121.1.15 )
objectClasses: ( 2.5.6.6 NAME 'person' SUP top STRUCTURAL MUST ( sn $ cn ) )
`

func TestLoadSchemaParsesFoldedLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.ldif"), []byte(sampleLDIF), 0o644))

	l := New(dir)
	desc, err := l.LoadSchema(context.Background(), "people")
	require.NoError(t, err)

	require.Equal(t, []string{"core"}, desc.Dependencies)
	require.Len(t, desc.Syntaxes, 1)
	require.Len(t, desc.AttributeTypes, 1)
	require.Equal(t, "1.3.6.1.4.1.1466.115.121.1.15", desc.AttributeTypes[0].SyntaxOID)
	require.Len(t, desc.ObjectClasses, 1)
	require.Empty(t, desc.ParseErrors)
}

const implementationLDIF = `dn: cn=schema
normalizers: ( 1.1.1 NAME 'caseIgnoreNormalizer' M-FQCN 'hostfuncs.CaseIgnore' )
comparators: ( 1.1.2 NAME 'caseIgnoreComparator' M-FQCN 'hostfuncs.CaseIgnore' )
syntaxCheckers: ( 1.1.3 NAME 'booleanCheck' M-FQCN 'hostfuncs.Boolean' )
`

func TestLoadSchemaParsesImplementations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impls.ldif"), []byte(implementationLDIF), 0o644))

	l := New(dir)
	desc, err := l.LoadSchema(context.Background(), "impls")
	require.NoError(t, err)

	require.Empty(t, desc.ParseErrors)
	require.Len(t, desc.Normalizers, 1)
	require.Equal(t, "hostfuncs.CaseIgnore", desc.Normalizers[0].FQCN)
	require.Len(t, desc.Comparators, 1)
	require.Equal(t, "hostfuncs.CaseIgnore", desc.Comparators[0].FQCN)
	require.Len(t, desc.SyntaxCheckers, 1)
	require.Equal(t, "hostfuncs.Boolean", desc.SyntaxCheckers[0].FQCN)
}

func TestListSchemas(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ldif"), []byte(sampleLDIF), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ldif"), []byte(sampleLDIF), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	l := New(dir)
	names, err := l.ListSchemas(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)
}
