// Package ldif implements schema.Loader against a directory of LDIF
// files, one per schema, each holding a "cn=schema"-style entry whose
// attributeTypes/objectClasses/... attributes carry RFC 4512
// descriptor strings. The line-folding scan is modeled on a
// bufio.Scanner walk over continuation lines (any line starting with a
// space extends the previous attribute's value).
package ldif

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/cloudldap/schemadirectory/rfc4512"
	"github.com/cloudldap/schemadirectory/schema"
)

// Loader reads "<root>/<name>.ldif" files. Dependencies between
// schemas are declared via a leading "# depends: a, b" comment line,
// since RFC 4512 LDIF has no native concept of schema-to-schema
// dependency.
type Loader struct {
	root string
}

// New returns a Loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{root: dir}
}

// ListSchemas returns every "*.ldif" file's basename (minus extension)
// found directly under the loader's root, sorted.
func (l *Loader) ListSchemas(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, errors.Wrapf(err, "ldif: read dir %q", l.root)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".ldif") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".ldif"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadSchema parses "<root>/<name>.ldif" into a schema.SchemaDescriptor.
func (l *Loader) LoadSchema(ctx context.Context, name string) (*schema.SchemaDescriptor, error) {
	path := filepath.Join(l.root, name+".ldif")
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ldif: open %q", path)
	}
	defer f.Close()

	desc, err := ParseBody(name, f)
	if err != nil {
		return nil, errors.Wrapf(err, "ldif: parse %q", path)
	}
	return desc, nil
}

// ParseBody scans r as an RFC 4512 LDIF schema entry (line-folded
// attribute: value pairs, "# depends:" comment for schema
// dependencies) into a schema.SchemaDescriptor named name. Exported so
// loader/jar can parse a zip entry's body the same way without
// duplicating the scan.
func ParseBody(name string, r io.Reader) (*schema.SchemaDescriptor, error) {
	desc := &schema.SchemaDescriptor{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pendingAttr, pendingValue string
	commit := func() {
		if pendingAttr == "" {
			return
		}
		v := strings.TrimSpace(pendingValue)
		if v != "" {
			parseInto(desc, strings.ToLower(pendingAttr), v)
		}
		pendingAttr, pendingValue = "", ""
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "# depends:") {
			for _, d := range strings.Split(strings.TrimPrefix(line, "# depends:"), ",") {
				if d = strings.TrimSpace(d); d != "" {
					desc.Dependencies = append(desc.Dependencies, d)
				}
			}
			continue
		}
		if line == "" || strings.HasPrefix(line, "#") {
			commit()
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			pendingValue += " " + strings.TrimLeft(line, " \t")
			continue
		}

		commit()
		colon := strings.Index(line, ":")
		if colon == -1 {
			continue
		}
		pendingAttr = strings.TrimSpace(line[:colon])
		pendingValue = strings.TrimSpace(line[colon+1:])
	}
	commit()

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ldif: scan body")
	}
	return desc, nil
}

func parseInto(desc *schema.SchemaDescriptor, attr, value string) {
	var err error
	switch attr {
	case "attributetypes":
		var p schema.ParsedAttributeType
		if p, err = rfc4512.ParseAttributeType(value); err == nil {
			desc.AttributeTypes = append(desc.AttributeTypes, p)
		}
	case "objectclasses":
		var p schema.ParsedObjectClass
		if p, err = rfc4512.ParseObjectClass(value); err == nil {
			desc.ObjectClasses = append(desc.ObjectClasses, p)
		}
	case "matchingrules":
		var p schema.ParsedMatchingRule
		if p, err = rfc4512.ParseMatchingRule(value); err == nil {
			desc.MatchingRules = append(desc.MatchingRules, p)
		}
	case "matchingruleuse":
		var p schema.ParsedMatchingRuleUse
		if p, err = rfc4512.ParseMatchingRuleUse(value); err == nil {
			desc.MatchingRuleUses = append(desc.MatchingRuleUses, p)
		}
	case "ldapsyntaxes":
		var p schema.ParsedLdapSyntax
		if p, err = rfc4512.ParseLdapSyntax(value); err == nil {
			desc.Syntaxes = append(desc.Syntaxes, p)
		}
	case "ditcontentrules":
		var p schema.ParsedDitContentRule
		if p, err = rfc4512.ParseDitContentRule(value); err == nil {
			desc.DitContentRules = append(desc.DitContentRules, p)
		}
	case "ditstructurerules":
		var p schema.ParsedDitStructureRule
		if p, err = rfc4512.ParseDitStructureRule(value); err == nil {
			desc.DitStructureRules = append(desc.DitStructureRules, p)
		}
	case "nameforms":
		var p schema.ParsedNameForm
		if p, err = rfc4512.ParseNameForm(value); err == nil {
			desc.NameForms = append(desc.NameForms, p)
		}
	case "normalizers":
		var p schema.ParsedImplementation
		if p, err = rfc4512.ParseImplementation(value); err == nil {
			desc.Normalizers = append(desc.Normalizers, p)
		}
	case "comparators":
		var p schema.ParsedImplementation
		if p, err = rfc4512.ParseImplementation(value); err == nil {
			desc.Comparators = append(desc.Comparators, p)
		}
	case "syntaxcheckers":
		var p schema.ParsedImplementation
		if p, err = rfc4512.ParseImplementation(value); err == nil {
			desc.SyntaxCheckers = append(desc.SyntaxCheckers, p)
		}
	default:
		return
	}
	if err != nil {
		desc.ParseErrors = append(desc.ParseErrors, fmt.Errorf("%s: %w", attr, err))
	}
}
