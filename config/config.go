// Package config loads the settings a schemadctl process needs at
// startup: where schema descriptors live, which schemas to enable, and
// where (if anywhere) to persist an audit trail of schema changes.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SchemaManagerConfig is the top-level schemadctl configuration file
// shape, unmarshaled from YAML.
type SchemaManagerConfig struct {
	// LDIFRoot is a directory of *.ldif schema descriptor files, loaded
	// by loader/ldif.
	LDIFRoot string `yaml:"ldifRoot"`

	// SubschemaURL, if set, points at a live LDAP server's subschema
	// subentry to load from; it is used only when LDIFRoot is empty.
	SubschemaURL string `yaml:"subschemaUrl"`

	// EnabledSchemas lists the schema names to enable, in order, once
	// loaded. A schema not named here stays loaded-but-disabled.
	EnabledSchemas []string `yaml:"enabledSchemas"`

	// AuditDSN, if set, is a postgres DSN persist.NewAuditLog connects
	// to for a load/unload audit trail. Empty disables auditing.
	AuditDSN string `yaml:"auditDsn"`

	// CacheSize bounds schema/cache.go's LRU. Zero uses the package
	// default.
	CacheSize int `yaml:"cacheSize"`
}

// Load reads and parses the YAML configuration file at path.
func Load(path string) (*SchemaManagerConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %q", path)
	}
	var cfg SchemaManagerConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parse %q", path)
	}
	return &cfg, nil
}
