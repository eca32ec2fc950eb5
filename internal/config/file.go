package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/monify-labs/sysfetch/internal/ascii"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// Option keys besides the category toggles
const (
	KeyInfoOffset   = "info_offset"
	KeyImageName    = "image_name"
	KeyGap          = "gap"
	KeyReserveEmpty = "reserve_empty"
	KeyColor        = "color"
	KeyOffline      = "offline"
)

// DefaultGap is the number of spaces between the logo and the facts
const DefaultGap = 2

// Config is the user configuration
type Config struct {
	Categories   map[models.Category]bool
	InfoOffset   int    // Rows the facts are shifted down beside the logo
	ImageName    string // Logo selector
	Gap          int
	ReserveEmpty bool // Empty disk or GPU lists still take one line
	Color        bool
	Offline      bool // Skip providers that need the network

	// Warnings collects non-fatal problems found while loading
	Warnings []Warning
}

// Warning describes a key that was ignored while loading
type Warning struct {
	Key        string
	Line       int
	Suggestion string
}

func (w Warning) String() string {
	if w.Suggestion != "" {
		return fmt.Sprintf("unknown key %q on line %d, did you mean %q?", w.Key, w.Line, w.Suggestion)
	}
	return fmt.Sprintf("unknown key %q on line %d", w.Key, w.Line)
}

// Default returns the configuration used when no file exists: every
// category disabled
func Default() *Config {
	return &Config{
		Categories: make(map[models.Category]bool),
		ImageName:  ascii.Default,
		Gap:        DefaultGap,
		Color:      true,
	}
}

// AllEnabled returns the default configuration with every category enabled
func AllEnabled() *Config {
	cfg := Default()
	for _, c := range models.Categories() {
		cfg.Categories[c] = true
	}
	return cfg
}

// Enabled reports whether a category is switched on
func (c *Config) Enabled(cat models.Category) bool {
	return c.Categories[cat]
}

// Load reads the configuration file at path. A missing file returns an
// error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML configuration document
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return cfg, nil // Empty document
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping of keys to values", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if err := cfg.set(key, value); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", key.Line, key.Value, err)
		}
	}
	return cfg, nil
}

func (c *Config) set(key, value *yaml.Node) error {
	if cat, ok := models.ParseCategory(key.Value); ok {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		c.Categories[cat] = enabled
		return nil
	}

	switch key.Value {
	case KeyInfoOffset:
		if err := value.Decode(&c.InfoOffset); err != nil {
			return err
		}
		if c.InfoOffset < 0 {
			return errors.New("must not be negative")
		}
	case KeyGap:
		if err := value.Decode(&c.Gap); err != nil {
			return err
		}
		if c.Gap < 0 {
			return errors.New("must not be negative")
		}
	case KeyImageName:
		return value.Decode(&c.ImageName)
	case KeyReserveEmpty:
		return value.Decode(&c.ReserveEmpty)
	case KeyColor:
		return value.Decode(&c.Color)
	case KeyOffline:
		return value.Decode(&c.Offline)
	default:
		c.Warnings = append(c.Warnings, Warning{
			Key:        key.Value,
			Line:       key.Line,
			Suggestion: Suggest(key.Value),
		})
	}
	return nil
}

// Keys returns every recognised key in file order
func Keys() []string {
	keys := make([]string, 0, len(models.Categories())+6)
	for _, c := range models.Categories() {
		keys = append(keys, c.Key())
	}
	return append(keys, KeyInfoOffset, KeyImageName, KeyGap, KeyReserveEmpty, KeyColor, KeyOffline)
}

// Suggest returns the closest known key to an unknown one, or "" when
// nothing is close enough
func Suggest(key string) string {
	best, bestDist := "", 4
	for _, k := range Keys() {
		if d := levenshtein.ComputeDistance(key, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// Marshal encodes the configuration with keys in display order
func (c *Config) Marshal() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key, tag, value string) {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value},
		)
	}

	for _, cat := range models.Categories() {
		add(cat.Key(), "!!bool", strconv.FormatBool(c.Enabled(cat)))
	}
	add(KeyInfoOffset, "!!int", strconv.Itoa(c.InfoOffset))
	add(KeyImageName, "!!str", c.ImageName)
	add(KeyGap, "!!int", strconv.Itoa(c.Gap))
	add(KeyReserveEmpty, "!!bool", strconv.FormatBool(c.ReserveEmpty))
	add(KeyColor, "!!bool", strconv.FormatBool(c.Color))
	add(KeyOffline, "!!bool", strconv.FormatBool(c.Offline))
	root.Content[0].HeadComment = AppName + " configuration: set a category to false to hide it"

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to path, creating its directory
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
