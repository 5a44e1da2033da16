// Package values resolves configured per-target value tables against the
// target the binary was compiled for.
package values

import (
	"errors"
	"fmt"
	"sort"

	"github.com/simplyzetax/platform"
	"github.com/simplyzetax/platform/internal/config"
)

var (
	ErrNoDefault       = errors.New("no default value")
	ErrUnknownTarget   = errors.New("unknown target")
	ErrDuplicateTarget = errors.New("target set more than once")
	ErrUnknownKey      = errors.New("unknown value")
)

// Resolve picks the value a table takes on this build. Overrides are applied
// in platform.Targets order, so when an OS and an architecture both match,
// the architecture entry wins.
func Resolve(table config.ValueTable) (string, error) {
	def, ok := table[config.DefaultKey]
	if !ok {
		return "", ErrNoDefault
	}

	overrides := make(map[string]string, len(table))
	for name, value := range table {
		if name == config.DefaultKey {
			continue
		}
		t, ok := platform.Lookup(name)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}
		if _, dup := overrides[t.Name]; dup {
			return "", fmt.Errorf("%w: %s", ErrDuplicateTarget, t.Name)
		}
		overrides[t.Name] = value
	}

	v := platform.Select(def)
	for _, t := range platform.Targets() {
		if alt, ok := overrides[t.Name]; ok {
			v = v.On(t, alt)
		}
	}
	return v.Get(), nil
}

// Lookup resolves a single key from tables.
func Lookup(tables map[string]config.ValueTable, key string) (string, error) {
	table, ok := tables[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	value, err := Resolve(table)
	if err != nil {
		return "", fmt.Errorf("value %q: %w", key, err)
	}
	return value, nil
}

// ResolveAll resolves every table, stopping at the first error.
func ResolveAll(tables map[string]config.ValueTable) (map[string]string, error) {
	keys := make([]string, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resolved := make(map[string]string, len(tables))
	for _, key := range keys {
		value, err := Lookup(tables, key)
		if err != nil {
			return nil, err
		}
		resolved[key] = value
	}
	return resolved, nil
}
