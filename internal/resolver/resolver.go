package resolver

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/specialistvlad/classreflect/internal/ctxlog"
	"github.com/specialistvlad/classreflect/internal/reflection"
)

// ErrNilDatabase is returned by New when no database is supplied.
var ErrNilDatabase = errors.New("reflection database is nil")

// Resolver answers class hierarchy queries against a single, immutable
// reflection database.
type Resolver struct {
	db     *reflection.Database
	cfg    Config
	logger *slog.Logger
}

// New creates a Resolver over db. The logger is taken from ctx. db must not be
// mutated once it has been handed to New.
func New(ctx context.Context, db *reflection.Database, cfg Config) (*Resolver, error) {
	if db == nil {
		return nil, ErrNilDatabase
	}

	validCfg, err := NewConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid resolver config: %w", err)
	}

	logger := ctxlog.FromContext(ctx).With("component", "resolver")
	logger.Debug("Resolver created.", "classes", db.Len(), "root_class", validCfg.RootClass, "service_tag", string(validCfg.ServiceTag))

	return &Resolver{
		db:     db,
		cfg:    *validCfg,
		logger: logger,
	}, nil
}

// ClassExists reports whether className is a class of the database. It does
// not consult superclass links.
func (r *Resolver) ClassExists(className string) bool {
	return r.db.HasClass(className)
}

// Ancestors iterates the superclass chain of className, starting with
// className itself. Each step yields the class name and its descriptor.
//
// When a name on the chain is missing from the database the iterator yields
// that name with a nil descriptor and stops. The same happens when the chain
// is longer than the database, which can only be caused by a superclass cycle.
func (r *Resolver) Ancestors(className string) iter.Seq2[string, *reflection.ClassDescriptor] {
	return func(yield func(string, *reflection.ClassDescriptor) bool) {
		current := className
		for steps := 0; ; steps++ {
			if steps > r.db.Len() {
				r.logger.Warn("Superclass chain is longer than the database, assuming a cycle.", "class", className, "stopped_at", current)
				yield(current, nil)
				return
			}

			class, ok := r.db.Class(current)
			if !ok {
				yield(current, nil)
				return
			}
			if !yield(current, class) {
				return
			}
			if !class.HasSuperclass() {
				return
			}
			current = class.Superclass
		}
	}
}
