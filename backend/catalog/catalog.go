// ABOUTME: Immutable cabinet and processor catalog with lookup-by-id
// ABOUTME: Cabinet resolution is total: unknown ids fall back to the default cabinet

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/markalston/ledwall-calc/backend/models"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no cabinets or no processors
	ErrEmptyCatalog = errors.New("catalog must contain at least one cabinet and one processor")
	// ErrDuplicateID is returned when two entries of the same kind share an id
	ErrDuplicateID = errors.New("duplicate catalog id")
)

var validate = validator.New()

// Catalog is an ordered, read-only table of cabinets and processors.
// It is safe for concurrent use.
type Catalog struct {
	cabinets     []models.Cabinet
	processors   []models.Processor
	cabinetIdx   map[string]int
	processorIdx map[string]int
	defaultIdx   int
}

// file is the on-disk YAML shape
type file struct {
	DefaultCabinet string             `yaml:"default_cabinet"`
	Cabinets       []models.Cabinet   `yaml:"cabinets"`
	Processors     []models.Processor `yaml:"processors"`
}

// New builds a catalog from the given entries. defaultCabinet may be empty,
// in which case the first cabinet is the default.
func New(cabinets []models.Cabinet, processors []models.Processor, defaultCabinet string) (*Catalog, error) {
	if len(cabinets) == 0 || len(processors) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		cabinets:     append([]models.Cabinet(nil), cabinets...),
		processors:   append([]models.Processor(nil), processors...),
		cabinetIdx:   make(map[string]int, len(cabinets)),
		processorIdx: make(map[string]int, len(processors)),
	}

	for i, cab := range c.cabinets {
		if err := validate.Struct(cab); err != nil {
			return nil, fmt.Errorf("cabinet %d (%q): %w", i, cab.ID, formatValidationError(err))
		}
		if _, exists := c.cabinetIdx[cab.ID]; exists {
			return nil, fmt.Errorf("%w: cabinet %q", ErrDuplicateID, cab.ID)
		}
		c.cabinetIdx[cab.ID] = i
	}

	for i, proc := range c.processors {
		if err := validate.Struct(proc); err != nil {
			return nil, fmt.Errorf("processor %d (%q): %w", i, proc.ID, formatValidationError(err))
		}
		if _, exists := c.processorIdx[proc.ID]; exists {
			return nil, fmt.Errorf("%w: processor %q", ErrDuplicateID, proc.ID)
		}
		c.processorIdx[proc.ID] = i
	}

	if defaultCabinet != "" {
		idx, ok := c.cabinetIdx[defaultCabinet]
		if !ok {
			return nil, fmt.Errorf("default cabinet %q not found in catalog", defaultCabinet)
		}
		c.defaultIdx = idx
	}

	return c, nil
}

// Load parses a YAML catalog
func Load(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(f.Cabinets, f.Processors, f.DefaultCabinet)
}

// LoadFile parses the YAML catalog at path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WithDefault returns a copy of the catalog with a different default cabinet
func (c *Catalog) WithDefault(id string) (*Catalog, error) {
	return New(c.cabinets, c.processors, id)
}

// Cabinets returns all cabinets in catalog order
func (c *Catalog) Cabinets() []models.Cabinet {
	return append([]models.Cabinet(nil), c.cabinets...)
}

// Processors returns all processors in catalog order
func (c *Catalog) Processors() []models.Processor {
	return append([]models.Processor(nil), c.processors...)
}

// DefaultCabinet returns the cabinet used when an id cannot be resolved
func (c *Catalog) DefaultCabinet() models.Cabinet {
	return c.cabinets[c.defaultIdx]
}

// LookupCabinet finds a cabinet by id
func (c *Catalog) LookupCabinet(id string) (models.Cabinet, bool) {
	idx, ok := c.cabinetIdx[id]
	if !ok {
		return models.Cabinet{}, false
	}
	return c.cabinets[idx], true
}

// LookupProcessor finds a processor by id
func (c *Catalog) LookupProcessor(id string) (models.Processor, bool) {
	idx, ok := c.processorIdx[id]
	if !ok {
		return models.Processor{}, false
	}
	return c.processors[idx], true
}

// Cabinet resolves id to a cabinet, falling back to the default cabinet
func (c *Catalog) Cabinet(id string) models.Cabinet {
	if cab, ok := c.LookupCabinet(id); ok {
		return cab
	}
	return c.DefaultCabinet()
}

// formatValidationError flattens validator errors into a single readable message
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("%s: failed %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s: failed %s", fe.Field(), fe.Tag())
}
