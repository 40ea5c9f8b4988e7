package content

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog wraps every validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// LoadFile reads a YAML balance file and overlays it on the default catalog
// Sections absent from the file keep their defaults; present sections replace them whole
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data over the defaults and validates the result
func Parse(data []byte) (*Catalog, error) {
	var override Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&override); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := Default()
	if len(override.Upgrades) > 0 {
		cat.Upgrades = override.Upgrades
	}
	if len(override.Bonuses) > 0 {
		cat.Bonuses = override.Bonuses
	}
	if len(override.Tips) > 0 {
		cat.Tips = override.Tips
	}
	if len(override.Questions) > 0 {
		cat.Questions = override.Questions
	}
	if override.Feedback != (Feedback{}) {
		cat.Feedback = override.Feedback
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Validate checks the invariants the game relies on
// Every effect and bonus multiplier must be positive so the multiplier never reaches zero
func (c *Catalog) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidCatalog}, args...)...))
	}

	if len(c.Upgrades) == 0 {
		fail("no upgrades")
	}
	seen := make(map[string]bool)
	for i, u := range c.Upgrades {
		switch {
		case u.ID == "":
			fail("upgrade %d: empty id", i)
		case seen[u.ID]:
			fail("upgrade %q: duplicate id", u.ID)
		}
		seen[u.ID] = true
		if u.BaseCost <= 0 {
			fail("upgrade %q: cost %v must be positive", u.ID, u.BaseCost)
		}
		if u.Effect <= 0 {
			fail("upgrade %q: effect %v must be positive", u.ID, u.Effect)
		}
	}

	clear(seen)
	for i, b := range c.Bonuses {
		switch {
		case b.ID == "":
			fail("bonus %d: empty id", i)
		case seen[b.ID]:
			fail("bonus %q: duplicate id", b.ID)
		}
		seen[b.ID] = true
		if b.Cost <= 0 {
			fail("bonus %q: cost %v must be positive", b.ID, b.Cost)
		}
		if b.Duration <= 0 {
			fail("bonus %q: duration %v must be positive", b.ID, b.Duration)
		}
		if !b.AutoPedal && b.Multiplier <= 0 {
			fail("bonus %q: multiplier %v must be positive", b.ID, b.Multiplier)
		}
	}

	for i, t := range c.Tips {
		if t.Title == "" && t.Content == "" {
			fail("tip %d: empty", i)
		}
	}

	for i, q := range c.Questions {
		if len(q.Options) < 2 {
			fail("question %d: needs at least 2 options, has %d", i, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			fail("question %d: correct index %d out of range", i, q.Correct)
		}
	}

	return errors.Join(errs...)
}
