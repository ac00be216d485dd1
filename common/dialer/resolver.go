package dialer

import (
	"fmt"
	"os"
	"strings"
)

// Resolver resolves a service, getting an endpoint URL.
type Resolver interface {
	// Resolve resolves a service, getting an endpoint URL (or an error).
	// An empty string with no error means this resolver has no answer.
	Resolve() (string, error)
}

// ConstantResolver always returns the same value
type ConstantResolver struct {
	s string
}

// NewConstantResolver creates a ConstantResolver
func NewConstantResolver(s string) *ConstantResolver {
	return &ConstantResolver{s: strings.TrimSpace(s)}
}

// Resolve returns the constant
func (r *ConstantResolver) Resolve() (string, error) {
	return r.s, nil
}

func (r *ConstantResolver) String() string {
	return fmt.Sprintf("constant(%q)", r.s)
}

// EnvResolver resolves by looking for a key in the OS Environment
type EnvResolver struct {
	key string
}

// NewEnvResolver creates a new EnvResolver
func NewEnvResolver(key string) *EnvResolver {
	return &EnvResolver{key: key}
}

// Resolve resolves by looking for a key in the OS Environment
func (r *EnvResolver) Resolve() (string, error) {
	return strings.TrimSpace(os.Getenv(r.key)), nil
}

func (r *EnvResolver) String() string {
	return "env($" + r.key + ")"
}

// CompositeResolver resolves by resolving, in order, via delegates
type CompositeResolver struct {
	dels []Resolver
}

// NewCompositeResolver creates a new CompositeResolver that resolves by looking through delegates (in order)
func NewCompositeResolver(dels ...Resolver) *CompositeResolver {
	return &CompositeResolver{dels: dels}
}

// Resolve returns the first non-empty answer, or the first error, of the delegates
func (r *CompositeResolver) Resolve() (string, error) {
	for _, d := range r.dels {
		if s, err := d.Resolve(); s != "" || err != nil {
			return s, err
		}
	}
	return "", fmt.Errorf("could not resolve: no delegate resolved: %v", r.dels)
}
