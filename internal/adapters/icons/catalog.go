package icons

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"betternotes/internal/domain"
	"betternotes/internal/ports"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Entry is one icon the catalog knows about
type Entry struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

type catalogFile struct {
	Items   []Entry `yaml:"items"`
	Sprites []Entry `yaml:"sprites"`
}

// Catalog resolves item and sprite ids to terminal glyphs. Lookups are
// cached; a missing id resolves with ok=false.
type Catalog struct {
	items   map[int]Entry
	sprites map[int]Entry
	cache   *cache.Cache
	logger  *zap.Logger
}

// Ensure Catalog implements IconResolver
var _ ports.IconResolver = (*Catalog)(nil)

// NewCatalog builds the built-in catalog, extended by the YAML file at path
// when path is not empty. Entries from the file win.
func NewCatalog(path string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Catalog{
		items:   make(map[int]Entry),
		sprites: make(map[int]Entry),
		cache:   cache.New(30*time.Minute, 10*time.Minute),
		logger:  logger.Named("icons"),
	}

	if err := c.merge(defaultCatalog); err != nil {
		return nil, fmt.Errorf("failed to parse built-in catalog: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read icon catalog: %w", err)
		}
		if err := c.merge(data); err != nil {
			return nil, fmt.Errorf("failed to parse icon catalog %s: %w", path, err)
		}
	}

	c.logger.Debug("icon catalog ready",
		zap.Int("items", len(c.items)),
		zap.Int("sprites", len(c.sprites)),
	)
	return c, nil
}

func (c *Catalog) merge(data []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	for _, e := range f.Items {
		c.items[e.ID] = e
	}
	for _, e := range f.Sprites {
		c.sprites[e.ID] = e
	}
	return nil
}

// Resolve looks the icon up on a new goroutine and reports through callback
func (c *Catalog) Resolve(icon domain.Icon, callback func(img ports.IconImage, ok bool)) {
	go func() {
		img, ok := c.Lookup(icon)
		callback(img, ok)
	}()
}

// Lookup resolves an icon synchronously
func (c *Catalog) Lookup(icon domain.Icon) (ports.IconImage, bool) {
	kind, id := icon.Active()
	if kind == domain.IconKindNone {
		return ports.IconImage{}, false
	}

	key := kind.String() + ":" + strconv.Itoa(id)
	if x, found := c.cache.Get(key); found {
		img, ok := x.(ports.IconImage)
		return img, ok
	}

	table := c.items
	if kind == domain.IconKindSprite {
		table = c.sprites
	}

	entry, found := table[id]
	if !found {
		c.logger.Debug("unknown icon", zap.String("kind", kind.String()), zap.Int("id", id))
		return ports.IconImage{}, false
	}

	img := ports.IconImage{Kind: kind, ID: id, Glyph: entry.Glyph, Label: entry.Name}
	c.cache.Set(key, img, cache.DefaultExpiration)
	return img, true
}

// Sprites lists the sprite entries ordered by name, for the sprite picker
func (c *Catalog) Sprites() []Entry {
	return sorted(c.sprites)
}

// SearchItems returns items whose name contains query, ordered by name. An
// empty query returns every item.
func (c *Catalog) SearchItems(query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Entry
	for _, e := range sorted(c.items) {
		if query == "" || strings.Contains(strings.ToLower(e.Name), query) {
			out = append(out, e)
		}
	}
	return out
}

func sorted(m map[int]Entry) []Entry {
	out := make([]Entry, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
