package extop

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/singleflight"

	"github.com/KilimcininKorOglu/obaext/internal/logging"
)

// DuplicatePolicy decides what Register does when the OID already has a factory.
type DuplicatePolicy int

const (
	// DuplicateReject makes Register fail with ErrDuplicateOID.
	DuplicateReject DuplicatePolicy = iota
	// DuplicateReplace makes the newest registration authoritative.
	DuplicateReplace
	// DuplicateKeep keeps the first registration and ignores later ones.
	DuplicateKeep
)

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateReject:
		return "reject"
	case DuplicateReplace:
		return "replace"
	case DuplicateKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy parses "reject", "replace" or "keep".
// The empty string selects DuplicateReject.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "", "reject":
		return DuplicateReject, nil
	case "replace":
		return DuplicateReplace, nil
	case "keep":
		return DuplicateKeep, nil
	default:
		return DuplicateReject, fmt.Errorf("extop: unknown duplicate policy %q", s)
	}
}

// Extension groups the factories one extension contributes. Register is
// called at most once per Registry by Install and should use Ensure so a
// retried installation is harmless.
type Extension interface {
	Name() string
	Register(r *Registry) error
}

// Registry maps response OIDs to the factories that decode them.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	installed map[string]bool
	policy    DuplicatePolicy
	group     singleflight.Group
	logger    logging.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithDuplicatePolicy sets the policy applied by Register.
func WithDuplicatePolicy(p DuplicatePolicy) RegistryOption {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithRegistryLogger sets the logger used for registration events.
func WithRegistryLogger(l logging.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		installed: make(map[string]bool),
		policy:    DuplicateReject,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultRegistry is the process-wide registry. Extensions install their
// response factories here on first use; it is never cleared.
var DefaultRegistry = NewRegistry()

// Policy returns the registry's duplicate policy.
func (r *Registry) Policy() DuplicatePolicy {
	return r.policy
}

func checkEntry(oid string, factory Factory) error {
	if err := ValidateOID(oid); err != nil {
		return err
	}
	if factory == nil {
		return ErrNilFactory
	}
	return nil
}

// Register adds factory for oid, applying the registry's DuplicatePolicy when
// the OID is already registered.
func (r *Registry) Register(oid string, factory Factory) error {
	if err := checkEntry(oid, factory); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[oid]; exists {
		switch r.policy {
		case DuplicateReplace:
			r.factories[oid] = factory
			r.logger.Debug("response factory replaced", "oid", oid)
			return nil
		case DuplicateKeep:
			return nil
		default:
			return fmt.Errorf("%w: %s", ErrDuplicateOID, oid)
		}
	}

	r.factories[oid] = factory
	r.logger.Debug("response factory registered", "oid", oid)
	return nil
}

// Replace sets factory for oid regardless of the duplicate policy.
func (r *Registry) Replace(oid string, factory Factory) error {
	if err := checkEntry(oid, factory); err != nil {
		return err
	}

	r.mu.Lock()
	r.factories[oid] = factory
	r.mu.Unlock()

	r.logger.Debug("response factory replaced", "oid", oid)
	return nil
}

// Ensure registers factory for oid only if no factory is present and reports
// whether it inserted. It is the idempotent form used on first use of an
// extension; concurrent callers agree on a single winner.
func (r *Registry) Ensure(oid string, factory Factory) (bool, error) {
	if err := checkEntry(oid, factory); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[oid]; exists {
		return false, nil
	}
	r.factories[oid] = factory
	r.logger.Debug("response factory registered", "oid", oid)
	return true, nil
}

// Unregister removes the factory for oid.
// Returns true if a factory was removed, false if none was registered.
func (r *Registry) Unregister(oid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[oid]; exists {
		delete(r.factories, oid)
		return true
	}
	return false
}

// Lookup returns the factory for oid. It never fails; ok is false for an
// unknown OID.
func (r *Registry) Lookup(oid string) (factory Factory, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok = r.factories[oid]
	return factory, ok
}

// Has reports whether a factory is registered for oid.
func (r *Registry) Has(oid string) bool {
	_, ok := r.Lookup(oid)
	return ok
}

// Len returns the number of registered OIDs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.factories)
}

// OIDs returns the registered OIDs in sorted order.
func (r *Registry) OIDs() []string {
	r.mu.RLock()
	oids := maps.Keys(r.factories)
	r.mu.RUnlock()

	slices.Sort(oids)
	return oids
}

// Install runs ext.Register once for this registry. Concurrent first callers
// for the same extension share one installation and its error; a failed
// installation is retried by the next call.
func (r *Registry) Install(ext Extension) error {
	if ext == nil {
		return ErrNilExtension
	}
	name := ext.Name()
	if r.isInstalled(name) {
		return nil
	}

	_, err, _ := r.group.Do(name, func() (interface{}, error) {
		if r.isInstalled(name) {
			return nil, nil
		}
		if err := ext.Register(r); err != nil {
			r.logger.Warn("extension installation failed", "extension", name, "error", err.Error())
			return nil, err
		}

		r.mu.Lock()
		r.installed[name] = true
		r.mu.Unlock()

		r.logger.Debug("extension installed", "extension", name)
		return nil, nil
	})
	return err
}

// Installed reports whether the named extension has been installed.
func (r *Registry) Installed(name string) bool {
	return r.isInstalled(name)
}

func (r *Registry) isInstalled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.installed[name]
}
