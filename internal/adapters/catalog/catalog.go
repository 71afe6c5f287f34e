package catalog

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

//go:embed items.yaml
var defaultItemsYAML []byte

// Item is one entry of the static item catalog
type Item struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Type            string  `yaml:"type"`
	Minable         bool    `yaml:"minable"`
	Product         string  `yaml:"product,omitempty"`
	ProductQuantity float64 `yaml:"product_quantity,omitempty"`
	ProductionTime  float64 `yaml:"production_time,omitempty"`
	MaxEmployee     int     `yaml:"max_employee,omitempty"`
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// Catalog resolves machine numbers from item ids.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	items        map[string]Item
	defaultCycle float64
}

// New builds a catalog from items. defaultCycle is the cycle time used for
// known items that declare no production_time.
func New(items []Item, defaultCycle time.Duration) (*Catalog, error) {
	byID := make(map[string]Item, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item without id")
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item: %s", item.ID)
		}
		if err := checkAmount(item.ProductionTime); err != nil {
			return nil, fmt.Errorf("catalog item %s: production_time %w", item.ID, err)
		}
		if err := checkAmount(item.ProductQuantity); err != nil {
			return nil, fmt.Errorf("catalog item %s: product_quantity %w", item.ID, err)
		}
		byID[item.ID] = item
	}

	return &Catalog{items: byID, defaultCycle: defaultCycle.Seconds()}, nil
}

// checkAmount accepts zero (unset) and finite positive values
func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("must be finite")
	}
	if v < 0 {
		return fmt.Errorf("cannot be negative")
	}
	return nil
}

// Load reads the catalog from path, or from the embedded items when path is empty
func Load(path string, defaultCycle time.Duration) (*Catalog, error) {
	data := defaultItemsYAML
	source := "embedded catalog"

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		data = raw
		source = path
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	return New(file.Items, defaultCycle)
}

// Lookup returns the item with the given id
func (c *Catalog) Lookup(id string) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}

// ResolveMachine implements economy.ItemCatalog.
// Unknown items keep a zero cycle time, which marks the machine as not configured.
func (c *Catalog) ResolveMachine(m *economy.Machine) {
	if m == nil {
		return
	}

	m.OutputQuantityPerCycle = 1

	item, ok := c.items[m.ItemID]
	if !ok {
		m.CycleTimeSeconds = 0
		return
	}

	m.CycleTimeSeconds = item.ProductionTime
	if m.CycleTimeSeconds == 0 {
		m.CycleTimeSeconds = c.defaultCycle
	}
	if item.ProductQuantity > 0 {
		m.OutputQuantityPerCycle = item.ProductQuantity
	}
}
