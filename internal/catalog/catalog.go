// Package catalog serves the read-only team index used by the team
// picker. The engine only ever consumes selection events; the index
// itself comes from a JSON file shipped next to the binary.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

type Logos struct {
	SVG string `json:"svg"`
	PNG string `json:"png"`
}

type Team struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Country     string `json:"country"`
	EnglishName string `json:"englishName"`
	Logos       Logos  `json:"logos"`
}

type Catalog struct {
	teams []Team
	byID  map[string]int
}

// Load reads the index file. An empty path yields an empty catalog:
// the overlay works fine without logos.
func Load(path string) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int)}
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if err := json.Unmarshal(data, &c.teams); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	for i, t := range c.teams {
		c.byID[t.ID] = i
	}
	return c, nil
}

func (c *Catalog) Teams() []Team { return c.teams }

func (c *Catalog) ByID(id string) (Team, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Team{}, false
	}
	return c.teams[i], true
}
