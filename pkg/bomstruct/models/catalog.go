package models

import (
	"fmt"
	"strings"
)

// AmbiguousAliasError indicates an alias string is registered under more
// than one canonical component type. This is a catalog configuration defect.
type AmbiguousAliasError struct {
	Alias string
	Keys  []string
}

func (e *AmbiguousAliasError) Error() string {
	return fmt.Sprintf("component alias %q is registered under multiple types: %s",
		e.Alias, strings.Join(e.Keys, ", "))
}

// CatalogEntry is one canonical component type and its known free-text
// spellings. The perfect-match alias should be listed last.
type CatalogEntry struct {
	Key     string
	Aliases []string
}

// Catalog maps canonical component-type names to the alias spellings seen in
// source data. Alias ownership is case-insensitive and unique.
type Catalog struct {
	aliases []string
	owner   map[string]string
}

// NewCatalog builds a catalog from entries, validating that no alias is
// claimed by two canonical keys.
func NewCatalog(entries []CatalogEntry) (*Catalog, error) {
	c := &Catalog{owner: make(map[string]string)}
	for _, e := range entries {
		for _, alias := range e.Aliases {
			folded := foldAlias(alias)
			if prev, ok := c.owner[folded]; ok && prev != e.Key {
				return nil, &AmbiguousAliasError{Alias: alias, Keys: []string{prev, e.Key}}
			}
			c.owner[folded] = e.Key
			c.aliases = append(c.aliases, alias)
		}
	}
	return c, nil
}

// Aliases returns every alias string in catalog order.
func (c *Catalog) Aliases() []string {
	return c.aliases
}

// KeyFor returns the canonical component type owning an alias.
func (c *Catalog) KeyFor(alias string) (string, bool) {
	key, ok := c.owner[foldAlias(alias)]
	return key, ok
}

func foldAlias(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
