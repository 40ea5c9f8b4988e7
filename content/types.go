package content

import "time"

// UpgradeDef is a permanent upgrade as shipped in the catalog
type UpgradeDef struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	BaseCost    float64 `yaml:"cost"`
	Effect      float64 `yaml:"effect"`
}

// BonusDef is a temporary bonus archetype
// Multiplier is zero for bonuses that do not scale clicks (auto-pedal)
type BonusDef struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Multiplier  float64       `yaml:"multiplier"`
	Duration    time.Duration `yaml:"duration"`
	Cost        float64       `yaml:"cost"`
	AutoPedal   bool          `yaml:"auto_pedal"`
}

// Tip is an eco tip shown in the notice slot
type Tip struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

// Question is a quiz prompt; Correct indexes Options
type Question struct {
	Text    string   `yaml:"question"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Feedback is the notice shown after a quiz answer
type Feedback struct {
	CorrectTitle   string `yaml:"correct_title"`
	CorrectContent string `yaml:"correct_content"`
	WrongTitle     string `yaml:"wrong_title"`
	WrongContent   string `yaml:"wrong_content"`
}

// Catalog is the complete static game content
type Catalog struct {
	Upgrades  []UpgradeDef `yaml:"upgrades"`
	Bonuses   []BonusDef   `yaml:"bonuses"`
	Tips      []Tip        `yaml:"tips"`
	Questions []Question   `yaml:"questions"`
	Feedback  Feedback     `yaml:"feedback"`
}

// Upgrade returns the upgrade definition with id
func (c *Catalog) Upgrade(id string) (UpgradeDef, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeDef{}, false
}

// Bonus returns the bonus definition with id
func (c *Catalog) Bonus(id string) (BonusDef, bool) {
	for _, b := range c.Bonuses {
		if b.ID == id {
			return b, true
		}
	}
	return BonusDef{}, false
}
