// Package hostfuncs materializes the opaque Normalizer, Comparator and
// SyntaxChecker entities the schema package stores by OID and FQCN
// reference only. The core never invokes a value function itself (see
// schema.Implementation's doc comment); a host program links this
// package in, builds a Registry, and calls Normalize/Compare/Check by
// FQCN whenever it needs to actually touch an attribute value.
package hostfuncs

import "fmt"

// NormalizeFunc reduces an attribute value to its canonical form for
// comparison and storage.
type NormalizeFunc func(value string) (string, error)

// CompareFunc reports whether two values are equal under a matching
// rule's semantics.
type CompareFunc func(a, b string) (bool, error)

// CheckFunc reports a non-nil error when value does not conform to a
// syntax.
type CheckFunc func(value string) error

// Registry binds FQCNs (the same strings stored in
// schema.Implementation.FQCN) to concrete Go functions.
type Registry struct {
	normalizers map[string]NormalizeFunc
	comparators map[string]CompareFunc
	checkers    map[string]CheckFunc
}

// NewRegistry returns a Registry preloaded with every host-provided
// implementation in this package.
func NewRegistry() *Registry {
	r := &Registry{
		normalizers: make(map[string]NormalizeFunc),
		comparators: make(map[string]CompareFunc),
		checkers:    make(map[string]CheckFunc),
	}
	registerBuiltins(r)
	return r
}

// RegisterNormalizer adds or replaces the function for fqcn.
func (r *Registry) RegisterNormalizer(fqcn string, fn NormalizeFunc) {
	r.normalizers[fqcn] = fn
}

// RegisterComparator adds or replaces the function for fqcn.
func (r *Registry) RegisterComparator(fqcn string, fn CompareFunc) {
	r.comparators[fqcn] = fn
}

// RegisterChecker adds or replaces the function for fqcn.
func (r *Registry) RegisterChecker(fqcn string, fn CheckFunc) {
	r.checkers[fqcn] = fn
}

// Normalize looks up fqcn and applies it to value.
func (r *Registry) Normalize(fqcn, value string) (string, error) {
	fn, ok := r.normalizers[fqcn]
	if !ok {
		return "", fmt.Errorf("hostfuncs: no normalizer registered for %q", fqcn)
	}
	return fn(value)
}

// Compare looks up fqcn and applies it to a and b.
func (r *Registry) Compare(fqcn, a, b string) (bool, error) {
	fn, ok := r.comparators[fqcn]
	if !ok {
		return false, fmt.Errorf("hostfuncs: no comparator registered for %q", fqcn)
	}
	return fn(a, b)
}

// Check looks up fqcn and applies it to value.
func (r *Registry) Check(fqcn, value string) error {
	fn, ok := r.checkers[fqcn]
	if !ok {
		return fmt.Errorf("hostfuncs: no syntax checker registered for %q", fqcn)
	}
	return fn(value)
}

func registerBuiltins(r *Registry) {
	r.RegisterNormalizer(FQCNCaseIgnore, NormalizeCaseIgnore)
	r.RegisterComparator(FQCNCaseIgnore, CompareCaseIgnore)

	r.RegisterNormalizer(FQCNGeneralizedTime, NormalizeGeneralizedTime)
	r.RegisterChecker(FQCNGeneralizedTime, CheckGeneralizedTime)

	r.RegisterNormalizer(FQCNBoolean, NormalizeBoolean)
	r.RegisterChecker(FQCNBoolean, CheckBoolean)

	r.RegisterNormalizer(FQCNInteger, NormalizeInteger)
	r.RegisterChecker(FQCNInteger, CheckInteger)

	r.RegisterNormalizer(FQCNUUID, NormalizeUUID)
	r.RegisterChecker(FQCNUUID, CheckUUID)

	r.RegisterNormalizer(FQCNDistinguishedName, NormalizeDN)
	r.RegisterChecker(FQCNDistinguishedName, CheckDN)

	r.RegisterComparator(FQCNUserPassword, CompareUserPassword)
}
