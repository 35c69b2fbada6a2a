package schema

import "strings"

// Registry is a passive, single-kind store. It enforces only local
// uniqueness (via the shared OidRegistry); cross-kind rules live in
// rules.go and resolver.go. Entities are immutable once registered.
type Registry[T Entity] struct {
	kind     Kind
	oids     *OidRegistry
	entities map[string]T
}

func newRegistry[T Entity](kind Kind, oids *OidRegistry) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		oids:     oids,
		entities: make(map[string]T),
	}
}

// Register adds entity, failing on a duplicate OID or a name collision
// reported by the OidRegistry.
func (r *Registry[T]) Register(entity T) error {
	h := entity.Head()
	if err := r.oids.Register(h.OID, h.Names, r.kind); err != nil {
		return err
	}
	r.entities[h.OID] = entity
	return nil
}

// Unregister removes oid unconditionally. Reference-integrity checks are
// the resolver's and SchemaManager's responsibility, not the registry's.
func (r *Registry[T]) Unregister(oid string) {
	delete(r.entities, oid)
	r.oids.Unregister(oid)
}

// Lookup resolves oidOrName to its entity.
func (r *Registry[T]) Lookup(oidOrName string) (T, bool) {
	var zero T
	oid, kind, ok := r.oids.Resolve(oidOrName)
	if !ok || kind != r.kind {
		return zero, false
	}
	e, ok := r.entities[oid]
	return e, ok
}

// Has reports whether oidOrName (an OID or one of its name aliases)
// resolves to an entity registered in this registry specifically.
func (r *Registry[T]) Has(oidOrName string) bool {
	_, ok := r.Lookup(oidOrName)
	return ok
}

// Iterate returns entities in a stable (OID-sorted) order, for integrity
// checks and deterministic Dump output.
func (r *Registry[T]) Iterate() []T {
	oids := make([]string, 0, len(r.entities))
	for oid := range r.entities {
		oids = append(oids, oid)
	}
	sortStrings(oids)
	out := make([]T, 0, len(oids))
	for _, oid := range oids {
		out = append(out, r.entities[oid])
	}
	return out
}

// GetSchemaName returns the schema an entity belongs to, or "" if unset.
func (r *Registry[T]) GetSchemaName(oid string) string {
	if e, ok := r.entities[oid]; ok {
		return e.Head().SchemaName
	}
	return ""
}

// Len reports how many entities are registered.
func (r *Registry[T]) Len() int { return len(r.entities) }

// Clone returns a shallow copy (new map, same entity pointers) sharing
// no mutable state with the original, suitable for a staged mutation.
func (r *Registry[T]) Clone(oids *OidRegistry) *Registry[T] {
	c := newRegistry[T](r.kind, oids)
	for k, v := range r.entities {
		c.entities[k] = v
	}
	return c
}

func sortStrings(s []string) {
	// insertion sort: registries are small (schema definitions, not data)
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && strings.Compare(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
