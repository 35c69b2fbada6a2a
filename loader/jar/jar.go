// Package jar implements schema.Loader against a zip/jar archive
// bundling one ".ldif" or ".schema" entry per named schema. No library
// in the retrieved pack reads jar/zip archives, so this uses the
// standard archive/zip package directly; everything past unzipping
// (line folding, descriptor parsing) reuses loader/ldif's body parser.
package jar

import (
	"archive/zip"
	"context"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/cloudldap/schemadirectory/loader/ldif"
	"github.com/cloudldap/schemadirectory/schema"
)

// Loader reads schema entries out of a single zip/jar archive, each
// named "<name>.ldif" or "<name>.schema"; the directory part of an
// entry's path is ignored.
type Loader struct {
	archivePath string
}

// New returns a Loader reading archivePath on demand; the archive is
// opened fresh for every call rather than held open across the
// Loader's lifetime.
func New(archivePath string) *Loader {
	return &Loader{archivePath: archivePath}
}

func (l *Loader) open() (*zip.ReadCloser, error) {
	r, err := zip.OpenReader(l.archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, "jar: open %q", l.archivePath)
	}
	return r, nil
}

func schemaNameOf(entryName string) (string, bool) {
	base := path.Base(entryName)
	for _, ext := range []string{".ldif", ".schema"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext), true
		}
	}
	return "", false
}

// ListSchemas returns every entry's schema name, sorted.
func (l *Loader) ListSchemas(ctx context.Context) ([]string, error) {
	r, err := l.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if name, ok := schemaNameOf(f.Name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadSchema finds the archive entry for name and parses it the same
// way loader/ldif parses a file on disk.
func (l *Loader) LoadSchema(ctx context.Context, name string) (*schema.SchemaDescriptor, error) {
	r, err := l.open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var match *zip.File
	for _, f := range r.File {
		if n, ok := schemaNameOf(f.Name); ok && n == name {
			match = f
			break
		}
	}
	if match == nil {
		return nil, errors.Errorf("jar: no entry for schema %q in %q", name, l.archivePath)
	}

	rc, err := match.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "jar: open entry %q", match.Name)
	}
	defer rc.Close()

	desc, err := ldif.ParseBody(name, rc)
	if err != nil {
		return nil, errors.Wrapf(err, "jar: parse entry %q", match.Name)
	}
	return desc, nil
}
