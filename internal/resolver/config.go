package resolver

import (
	"fmt"

	"github.com/specialistvlad/classreflect/internal/reflection"
)

const (
	// DefaultRootClass is the implicit ancestor of every class.
	DefaultRootClass = "Instance"
	// DefaultServiceTag is the tag that marks service classes.
	DefaultServiceTag = reflection.Service
)

// Config holds the naming conventions a Resolver applies to the database.
type Config struct {
	// RootClass is treated as an ancestor of every class name, present in
	// the database or not.
	RootClass string

	// ServiceTag is the class tag ClassIsAService looks for.
	ServiceTag reflection.ClassTag
}

// DefaultConfig returns the configuration used for standard reflection
// databases.
func DefaultConfig() Config {
	return Config{
		RootClass:  DefaultRootClass,
		ServiceTag: DefaultServiceTag,
	}
}

// NewConfig fills unset fields with their defaults and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RootClass == "" {
		cfg.RootClass = DefaultRootClass
	}
	if cfg.ServiceTag == "" {
		cfg.ServiceTag = DefaultServiceTag
	}

	if !cfg.ServiceTag.IsKnown() {
		return nil, fmt.Errorf("ServiceTag %q is not a known class tag", cfg.ServiceTag)
	}

	return &cfg, nil
}
