// Package persist records schema load/unload events to Postgres as an
// audit trail, bound to a schema.SchemaManager as a schema.Listener.
// It never stores schema content itself — the manager's live
// RegistrySet is the only copy of record — only the history of which
// named schema was loaded or unloaded and when, modeled on the
// teacher's withDBTx/named-query repository idiom.
package persist

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

const createAuditTableSQL = `
CREATE TABLE IF NOT EXISTS schema_audit_log (
	id          BIGSERIAL PRIMARY KEY,
	schema_name VARCHAR(255) NOT NULL,
	event       VARCHAR(16)  NOT NULL,
	occurred_at TIMESTAMPTZ  NOT NULL
)`

const insertAuditRowSQL = `
INSERT INTO schema_audit_log (schema_name, event, occurred_at)
VALUES (:schema_name, :event, :occurred_at)`

// AuditLog is a schema.Listener that appends one row per load/unload
// event to a Postgres table, via sqlx named-parameter exec the same
// way the teacher's repository package issues its inserts.
type AuditLog struct {
	db *sqlx.DB
}

// NewAuditLog opens db (a postgres DSN, via lib/pq) and ensures the
// audit table exists.
func NewAuditLog(ctx context.Context, dsn string) (*AuditLog, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "persist: connect")
	}
	if _, err := db.ExecContext(ctx, createAuditTableSQL); err != nil {
		return nil, errors.Wrap(err, "persist: create audit table")
	}
	return &AuditLog{db: db}, nil
}

// withTx runs fn inside a transaction, committing on success and
// rolling back (and logging the rollback error, if any) otherwise —
// the same withDBTx shape the teacher's repository package uses around
// every multi-statement write.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "persist: begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("error: persist: rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (a *AuditLog) record(event, schemaName string) {
	ctx := context.Background()
	err := withTx(ctx, a.db, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, insertAuditRowSQL, map[string]interface{}{
			"schema_name": schemaName,
			"event":       event,
			"occurred_at": time.Now(),
		})
		return errors.Wrapf(err, "persist: insert audit row for %q", schemaName)
	})
	if err != nil {
		log.Printf("error: persist: %v", err)
		return
	}
	log.Printf("info: persist: recorded %s of schema %q", event, schemaName)
}

// SchemaLoaded implements schema.Listener.
func (a *AuditLog) SchemaLoaded(name string) { a.record("loaded", name) }

// SchemaUnloaded implements schema.Listener.
func (a *AuditLog) SchemaUnloaded(name string) { a.record("unloaded", name) }

// Close releases the underlying database handle.
func (a *AuditLog) Close() error {
	return a.db.Close()
}
