package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cloudldap/schemadirectory/config"
	"github.com/cloudldap/schemadirectory/loader/ldif"
	"github.com/cloudldap/schemadirectory/loader/jar"
	"github.com/cloudldap/schemadirectory/loader/subschema"
	"github.com/cloudldap/schemadirectory/persist"
	"github.com/cloudldap/schemadirectory/schema"
)

// buildManager loads cfg.LDIFRoot (or cfg.SubschemaURL, if LDIFRoot is
// empty) through schema.SchemaManager.LoadWithDeps for every schema the
// loader reports, then enables cfg.EnabledSchemas in order. If
// cfg.AuditDSN is set, a persist.AuditLog is wired in as a listener
// before any loading happens so the audit trail covers the initial
// load too.
func buildManager(ctx context.Context, cfg *config.SchemaManagerConfig) (*schema.SchemaManager, func(), error) {
	loader, err := pickLoader(cfg)
	if err != nil {
		return nil, nil, err
	}

	mgr := schema.NewSchemaManagerWithCacheSize(loader, cfg.CacheSize)

	closeFn := func() {}
	if cfg.AuditDSN != "" {
		audit, err := persist.NewAuditLog(ctx, cfg.AuditDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("schemadctl: audit log: %w", err)
		}
		mgr.AddListener(audit)
		closeFn = func() {
			if err := audit.Close(); err != nil {
				log.Printf("warn: closing audit log: %s", err)
			}
		}
	}

	names, err := loader.ListSchemas(ctx)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("schemadctl: list schemas: %w", err)
	}
	for _, name := range names {
		if err := mgr.LoadWithDeps(ctx, name); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("schemadctl: load %q: %w", name, err)
		}
	}

	for _, name := range cfg.EnabledSchemas {
		if !mgr.Enable(name) {
			log.Printf("warn: could not enable schema %q: %v", name, mgr.GetErrors())
		}
	}

	return mgr, closeFn, nil
}

func pickLoader(cfg *config.SchemaManagerConfig) (schema.Loader, error) {
	switch {
	case cfg.LDIFRoot != "" && isArchive(cfg.LDIFRoot):
		return jar.New(cfg.LDIFRoot), nil
	case cfg.LDIFRoot != "":
		return ldif.New(cfg.LDIFRoot), nil
	case cfg.SubschemaURL != "":
		return subschema.New(cfg.SubschemaURL, "", "", "remote"), nil
	default:
		return nil, fmt.Errorf("schemadctl: config has neither ldifRoot nor subschemaUrl set")
	}
}

func isArchive(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func loadConfig(path string) (*config.SchemaManagerConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("schemadctl: -config is required")
	}
	return config.Load(path)
}
