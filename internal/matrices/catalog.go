// Package matrices holds the selectable matrix catalog: a fixed list of
// named 2x2 presets plus a re-randomizing "random" choice.
package matrices

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eigshow/internal/vec"
)

// Random is the catalog entry that draws a fresh matrix on every selection.
const Random = "random"

type Preset struct {
	Name string        `yaml:"name"`
	Rows [2][2]float64 `yaml:"rows"`
}

func (p Preset) Mat() vec.Mat2 {
	return vec.Mat2{
		A11: p.Rows[0][0], A12: p.Rows[0][1],
		A21: p.Rows[1][0], A22: p.Rows[1][1],
	}
}

type Catalog struct {
	Presets []Preset `yaml:"presets"`
}

// Builtin returns the classic eigshow matrix list, in menu order.
func Builtin() *Catalog {
	return &Catalog{Presets: []Preset{
		{Name: "diag(5/4, 3/4)", Rows: [2][2]float64{{1.25, 0}, {0, 0.75}}},
		{Name: "diag(5/4, -3/4)", Rows: [2][2]float64{{1.25, 0}, {0, -0.75}}},
		{Name: "identity", Rows: [2][2]float64{{1, 0}, {0, 1}}},
		{Name: "swap", Rows: [2][2]float64{{0, 1}, {1, 0}}},
		{Name: "rotation", Rows: [2][2]float64{{0, 1}, {-1, 0}}},
		{Name: "[1 3; 4 2]/4", Rows: [2][2]float64{{0.25, 0.75}, {1, 0.5}}},
		{Name: "[1 3; 2 4]/4", Rows: [2][2]float64{{0.25, 0.75}, {0.5, 1}}},
		{Name: "[3 1; 4 2]/4", Rows: [2][2]float64{{0.75, 0.25}, {1, 0.5}}},
		{Name: "[8 3; 2 7]/10", Rows: [2][2]float64{{0.8, 0.3}, {0.2, 0.7}}},
		{Name: "[2 3; 1 4]/5", Rows: [2][2]float64{{0.4, 0.6}, {0.2, 0.8}}},
		{Name: "reflect-x", Rows: [2][2]float64{{-1, 0}, {0, 1}}},
	}}
}

// Load reads a preset catalog from a YAML file. An empty presets list is an
// error; callers wanting the built-in list should not pass a file at all.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(c.Presets) == 0 {
		return nil, fmt.Errorf("catalog %s has no presets", path)
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog %s: preset without a name", path)
		}
		if p.Name == Random {
			return nil, fmt.Errorf("catalog %s: %q is a reserved name", path, Random)
		}
	}
	return &c, nil
}

func Save(path string, c *Catalog) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Find returns the preset with the given name, if present.
func (c *Catalog) Find(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Default is the matrix used before any selection has been made.
func (c *Catalog) Default() Preset {
	if len(c.Presets) == 0 {
		return Preset{Name: "identity", Rows: [2][2]float64{{1, 0}, {0, 1}}}
	}
	return c.Presets[0]
}

// Names returns every selectable choice in menu order, the random choice
// last.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Presets)+1)
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	return append(names, Random)
}
