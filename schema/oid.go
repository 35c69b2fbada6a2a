package schema

import (
	"strings"
)

// OidRegistry maps OIDs to their case-insensitive name aliases and back,
// and records which kind of entity each OID denotes. It is the single
// source of truth for name-to-OID resolution across every typed
// registry in a RegistrySet.
//
// Names are normalized by lowercasing and collapsing internal whitespace,
// matching the teacher's map-key convention of strings.ToLower on every
// AttributeType/ObjectClass lookup.
type OidRegistry struct {
	oidToNames map[string][]string
	oidToKind  map[string]Kind
	nameToOid  map[string]string
}

// NewOidRegistry returns an empty registry.
func NewOidRegistry() *OidRegistry {
	return &OidRegistry{
		oidToNames: make(map[string][]string),
		oidToKind:  make(map[string]Kind),
		nameToOid:  make(map[string]string),
	}
}

// normalizeName lowercases and collapses internal whitespace, per §4.1.
func normalizeName(name string) string {
	return normalizeSpace(strings.ToLower(name))
}

// HasOid reports whether oid is already registered, of any kind.
func (r *OidRegistry) HasOid(oid string) bool {
	_, ok := r.oidToKind[oid]
	return ok
}

// Register binds oid to the given kind and names. It fails if oid is
// already registered, or if any name already maps to a different OID.
func (r *OidRegistry) Register(oid string, names []string, kind Kind) error {
	if r.HasOid(oid) {
		return newAlreadyExists(oid, kind)
	}

	norm := make([]string, 0, len(names))
	for _, n := range names {
		nn := normalizeName(n)
		if nn == "" {
			continue
		}
		if existing, ok := r.nameToOid[nn]; ok && existing != oid {
			return newDuplicateName(oid, kind, n)
		}
		norm = append(norm, nn)
	}

	r.oidToKind[oid] = kind
	r.oidToNames[oid] = append([]string(nil), names...)
	for _, nn := range norm {
		r.nameToOid[nn] = oid
	}
	return nil
}

// Unregister removes oid and every name alias pointing to it. It does not
// check reference integrity; callers (typed registries, via the
// resolver) are responsible for that.
func (r *OidRegistry) Unregister(oid string) {
	for _, n := range r.oidToNames[oid] {
		nn := normalizeName(n)
		if r.nameToOid[nn] == oid {
			delete(r.nameToOid, nn)
		}
	}
	delete(r.oidToNames, oid)
	delete(r.oidToKind, oid)
}

// LookupByName resolves a bare name (not an OID) to its OID and kind.
func (r *OidRegistry) LookupByName(name string) (oid string, kind Kind, ok bool) {
	oid, ok = r.nameToOid[normalizeName(name)]
	if !ok {
		return "", KindUnknown, false
	}
	return oid, r.oidToKind[oid], true
}

// Resolve accepts either an OID or a name and returns the canonical OID
// and kind. An input that looks like a dotted-decimal OID is tried
// directly first, falling back to name resolution (an OID is never also
// a valid registered name under normal schema content).
func (r *OidRegistry) Resolve(oidOrName string) (oid string, kind Kind, ok bool) {
	if r.HasOid(oidOrName) {
		return oidOrName, r.oidToKind[oidOrName], true
	}
	return r.LookupByName(oidOrName)
}

// NamesOf returns the registered name aliases for oid.
func (r *OidRegistry) NamesOf(oid string) []string {
	return append([]string(nil), r.oidToNames[oid]...)
}

// Clone returns an independent copy suitable for staging a mutation.
func (r *OidRegistry) Clone() *OidRegistry {
	c := NewOidRegistry()
	for k, v := range r.oidToNames {
		c.oidToNames[k] = append([]string(nil), v...)
	}
	for k, v := range r.oidToKind {
		c.oidToKind[k] = v
	}
	for k, v := range r.nameToOid {
		c.nameToOid[k] = v
	}
	return c
}
