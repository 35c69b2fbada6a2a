package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRunNoArgs(t *testing.T) {
	if code := run([]string{"schemadctl"}); code != 1 {
		t.Errorf("expected exit code 1 for no args, got %d", code)
	}
}

func TestRunHelp(t *testing.T) {
	for _, args := range [][]string{
		{"schemadctl", "help"},
		{"schemadctl", "-h"},
		{"schemadctl", "--help"},
	} {
		if code := run(args); code != 0 {
			t.Errorf("expected exit code 0 for %v, got %d", args, code)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := run([]string{"schemadctl", "bogus"}); code != 1 {
		t.Errorf("expected exit code 1 for unknown command, got %d", code)
	}
}

func TestRunLoadWithoutConfig(t *testing.T) {
	if code := run([]string{"schemadctl", "load"}); code != 1 {
		t.Errorf("expected exit code 1 for load without -config, got %d", code)
	}
}

// sampleSchemaLDIF is a genuinely complete schema: the syntax carries a
// syntax checker (§3 invariant 7) and the matching rule carries both a
// normalizer and a comparator (§3 invariant 6), so loading it actually
// exercises a clean commit rather than relying on Verify() running
// against an empty, never-populated RegistrySet.
const sampleSchemaLDIF = `dn: cn=schema
normalizers: ( 1.3.6.1.4.1.99999.1.1 NAME 'caseIgnoreNormalizer' M-FQCN 'hostfuncs.CaseIgnore' )
comparators: ( 1.3.6.1.4.1.99999.1.2 NAME 'caseIgnoreComparator' M-FQCN 'hostfuncs.CaseIgnore' )
syntaxCheckers: ( 1.3.6.1.4.1.99999.1.3 NAME 'directoryStringCheck' M-FQCN 'hostfuncs.CaseIgnore' )
ldapSyntaxes: ( 1.3.6.1.4.1.1466.115.121.1.15 DESC 'Directory String' X-SYNTAX-CHECKER 1.3.6.1.4.1.99999.1.3 )
matchingRules: ( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 NORMALIZER 1.3.6.1.4.1.99999.1.1 COMPARATOR 1.3.6.1.4.1.99999.1.2 )
attributeTypes: ( 2.5.4.3 NAME 'cn' EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
objectClasses: ( 2.5.6.0 NAME 'top' ABSTRACT )
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "core.ldif"), []byte(sampleSchemaLDIF), 0o644); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "schemadctl.yaml")
	contents := "ldifRoot: " + dir + "\nenabledSchemas: [core]\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func TestRunLoadVerifyDump(t *testing.T) {
	configPath := writeSampleConfig(t)

	if code := run([]string{"schemadctl", "load", "-config", configPath}); code != 0 {
		t.Errorf("expected exit code 0 for load, got %d", code)
	}
	if code := run([]string{"schemadctl", "verify", "-config", configPath}); code != 0 {
		t.Errorf("expected exit code 0 for verify, got %d", code)
	}
	if code := run([]string{"schemadctl", "dump", "-config", configPath}); code != 0 {
		t.Errorf("expected exit code 0 for dump, got %d", code)
	}
}

// TestBuildManagerLoadsEntities calls buildManager directly (rather than
// just checking run()'s exit code) so a regression that leaves the
// schema commit silently empty - e.g. Enable failing quietly, or Verify
// running against a RegistrySet nothing ever landed in - actually fails
// the test instead of an untouched manager trivially reporting zero
// violations.
func TestBuildManagerLoadsEntities(t *testing.T) {
	configPath := writeSampleConfig(t)
	cfg, err := loadConfig(configPath)
	if err != nil {
		t.Fatal(err)
	}

	mgr, closeFn, err := buildManager(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()

	if violations := mgr.Verify(); len(violations) != 0 {
		t.Fatalf("expected a clean commit, got violations: %v", violations)
	}

	if _, ok := mgr.LookupAttributeType("cn"); !ok {
		t.Error("expected attribute type \"cn\" to be loaded")
	}
	if _, ok := mgr.LookupObjectClass("top"); !ok {
		t.Error("expected object class \"top\" to be loaded")
	}
	if _, ok := mgr.LookupMatchingRule("caseIgnoreMatch"); !ok {
		t.Error("expected matching rule \"caseIgnoreMatch\" to be loaded")
	}
	if _, ok := mgr.LookupLdapSyntax("1.3.6.1.4.1.1466.115.121.1.15"); !ok {
		t.Error("expected the Directory String syntax to be loaded")
	}
	if _, ok := mgr.LookupNormalizer("caseIgnoreNormalizer"); !ok {
		t.Error("expected normalizer \"caseIgnoreNormalizer\" to be loaded")
	}
	if _, ok := mgr.LookupComparator("caseIgnoreComparator"); !ok {
		t.Error("expected comparator \"caseIgnoreComparator\" to be loaded")
	}
	if _, ok := mgr.LookupSyntaxChecker("directoryStringCheck"); !ok {
		t.Error("expected syntax checker \"directoryStringCheck\" to be loaded")
	}

	dump := mgr.Dump()
	if dump == "" {
		t.Error("expected Dump() to render the loaded schema content")
	}
}
