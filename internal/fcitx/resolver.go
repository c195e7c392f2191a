package fcitx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// State is the lifecycle of a Resolver.
type State int

const (
	StateUninitialized State = iota
	StateProbing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateProbing:
		return "probing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolver turns the id reported by the chosen client into a display name.
// The client and catalog are fixed at Probe time.
type Resolver struct {
	client  Client
	catalog *Catalog
	state   State
}

// Probe asks each candidate for its input method list, in order, and builds
// a Resolver from the first one that answers. A candidate whose peer is
// unavailable or does not support the dialect is skipped. Any other failure
// is returned as is. When every candidate is skipped the error wraps
// ErrNoBackend.
func Probe(ctx context.Context, logger *slog.Logger, candidates ...Client) (*Resolver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Resolver{state: StateUninitialized}

	var skipped []error
	for _, c := range candidates {
		r.state = StateProbing
		logger.Debug("probing input method framework", "dialect", c.Dialect())

		list, err := c.InputMethods(ctx)
		if err != nil {
			if !fallbackAllowed(err) {
				r.state = StateFailed
				return nil, fmt.Errorf("probe %s: %w", c.Dialect(), err)
			}
			logger.Debug("input method framework not available",
				"dialect", c.Dialect(), "error", err)
			skipped = append(skipped, fmt.Errorf("%s: %w", c.Dialect(), err))
			continue
		}

		r.client = c
		r.catalog = NewCatalog(list)
		r.state = StateReady
		logger.Info("input method framework ready",
			"dialect", c.Dialect(), "input_methods", r.catalog.Len())
		return r, nil
	}

	r.state = StateFailed
	if len(skipped) == 0 {
		return nil, ErrNoBackend
	}
	return nil, fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(skipped...))
}

// NewResolver builds a Resolver from a known client and catalog.
func NewResolver(client Client, catalog *Catalog) *Resolver {
	return &Resolver{client: client, catalog: catalog, state: StateReady}
}

// State returns the lifecycle state.
func (r *Resolver) State() State { return r.state }

// Dialect returns the dialect chosen at Probe time.
func (r *Resolver) Dialect() Dialect { return r.client.Dialect() }

// Catalog returns the catalog built at Probe time.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// DisplayName maps an input method id to its display name. An empty id means
// no input method is active and yields an empty name.
func (r *Resolver) DisplayName(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	im, ok := r.catalog.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: %q (%s)", ErrUnknownInputMethod, id, r.client.Dialect())
	}
	return im.DisplayName, nil
}

// Current queries the active input method and returns its display name.
func (r *Resolver) Current(ctx context.Context) (string, error) {
	id, err := r.client.CurrentInputMethod(ctx)
	if err != nil {
		return "", err
	}
	return r.DisplayName(id)
}
