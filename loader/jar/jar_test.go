package jar

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestLoadSchemaFromArchive(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "bundle.jar")
	writeTestArchive(t, archivePath, map[string]string{
		"core.ldif": "attributeTypes: ( 2.5.4.3 NAME 'cn' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )\n",
		"extra.schema": "objectClasses: ( 2.5.6.6 NAME 'person' SUP top STRUCTURAL MUST cn )\n",
		"README.txt": "not a schema",
	})

	l := New(archivePath)

	names, err := l.ListSchemas(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"core", "extra"}, names)

	core, err := l.LoadSchema(context.Background(), "core")
	require.NoError(t, err)
	require.Len(t, core.AttributeTypes, 1)
	require.Equal(t, "cn", core.AttributeTypes[0].Names[0])

	extra, err := l.LoadSchema(context.Background(), "extra")
	require.NoError(t, err)
	require.Len(t, extra.ObjectClasses, 1)
}

func TestLoadSchemaUnknownEntry(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "bundle.jar")
	writeTestArchive(t, archivePath, map[string]string{"core.ldif": ""})

	l := New(archivePath)
	_, err := l.LoadSchema(context.Background(), "missing")
	require.Error(t, err)
}
