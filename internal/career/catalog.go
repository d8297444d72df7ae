package career

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/futurehub/horizon/internal/horizon"
)

//go:embed data/roles.yaml
var rolesYAML []byte

// Role is one catalog entry: skill requirements, matching keywords and
// static market data.
type Role struct {
	Key         string                 `yaml:"key"`
	Title       string                 `yaml:"title"`
	Required    []string               `yaml:"required"`
	Helpful     []string               `yaml:"helpful"`
	Keywords    []string               `yaml:"keywords"`
	Market      horizon.MarketInsights `yaml:"market"`
	TimeToReady map[string]string      `yaml:"time_to_ready"`
}

// ReadyIn returns the time-to-ready estimate for the given level, with the
// catalog-wide default when the level is not listed.
func (r *Role) ReadyIn(level horizon.Level) string {
	if estimate, ok := r.TimeToReady[string(level)]; ok {
		return estimate
	}
	return "12 months"
}

// MatchesKeywords reports whether any role keyword appears in the lowercased
// interest text.
func (r *Role) MatchesKeywords(text string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Catalog is the ordered read-only role table. Order is significant: score
// ties between roles keep catalog order.
type Catalog struct {
	roles []Role
	byKey map[string]*Role
}

type catalogFile struct {
	Roles []Role `yaml:"roles"`
}

var (
	defaultCatalog *Catalog
	catalogOnce    sync.Once
	catalogErr     error
)

// DefaultCatalog returns the catalog decoded from the embedded role table.
func DefaultCatalog() *Catalog {
	catalogOnce.Do(func() {
		defaultCatalog, catalogErr = loadCatalog(rolesYAML)
	})
	if catalogErr != nil {
		panic(catalogErr)
	}
	return defaultCatalog
}

func loadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding embedded role catalog: %w", err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("embedded role catalog is empty")
	}

	catalog := &Catalog{roles: file.Roles, byKey: make(map[string]*Role, len(file.Roles))}
	for i := range catalog.roles {
		role := &catalog.roles[i]
		if role.Key == "" || role.Title == "" {
			return nil, fmt.Errorf("role %d is missing key or title", i)
		}
		catalog.byKey[role.Key] = role
	}
	return catalog, nil
}

// Roles returns the catalog entries in declaration order.
func (c *Catalog) Roles() []Role {
	return c.roles
}

// ByKey looks a role up by its catalog key.
func (c *Catalog) ByKey(key string) (*Role, bool) {
	role, ok := c.byKey[key]
	return role, ok
}

// ByTitle looks a role up by its display title, case-insensitively.
func (c *Catalog) ByTitle(title string) (*Role, bool) {
	for i := range c.roles {
		if strings.EqualFold(c.roles[i].Title, title) {
			return &c.roles[i], true
		}
	}
	return nil, false
}
