package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Len(t, cat.Upgrades, 9)
	assert.Len(t, cat.Bonuses, 3)
	assert.Len(t, cat.Tips, 3)
	assert.Len(t, cat.Questions, 3)

	helmet, ok := cat.Upgrade("helmet")
	require.True(t, ok)
	assert.Equal(t, 10.0, helmet.BaseCost)
	assert.Equal(t, 1.1, helmet.Effect)

	gravity, ok := cat.Upgrade("gravity-bike")
	require.True(t, ok)
	assert.Equal(t, 12000.0, gravity.BaseCost)
	assert.Equal(t, 7.0, gravity.Effect)

	for _, q := range cat.Questions {
		assert.Len(t, q.Options, 2, q.Text)
	}
}

func TestDefaultBonusTable(t *testing.T) {
	cat := Default()

	tests := []struct {
		id         string
		multiplier float64
		duration   time.Duration
		cost       float64
		auto       bool
	}{
		{"sprint", 3, 30 * time.Second, 50, false},
		{"peloton", 5, 15 * time.Second, 100, false},
		{"auto-pedal", 0, 60 * time.Second, 200, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			b, ok := cat.Bonus(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.multiplier, b.Multiplier)
			assert.Equal(t, tt.duration, b.Duration)
			assert.Equal(t, tt.cost, b.Cost)
			assert.Equal(t, tt.auto, b.AutoPedal)
		})
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()
	a.Upgrades[0].BaseCost = 999
	assert.Equal(t, 10.0, b.Upgrades[0].BaseCost)
}

func TestParseOverridesSections(t *testing.T) {
	data := []byte(`
tips:
  - title: "Commute"
    content: "Half of car trips in cities are under 5 km."
bonuses:
  - id: sprint
    name: Sprint
    multiplier: 2
    duration: 10s
    cost: 20
`)
	cat, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, cat.Tips, 1)
	assert.Equal(t, "Commute", cat.Tips[0].Title)

	require.Len(t, cat.Bonuses, 1)
	assert.Equal(t, 10*time.Second, cat.Bonuses[0].Duration)

	// Untouched sections keep defaults
	assert.Len(t, cat.Upgrades, 9)
	assert.Len(t, cat.Questions, 3)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero effect", "upgrades:\n  - {id: x, name: X, cost: 10, effect: 0}\n"},
		{"negative cost", "upgrades:\n  - {id: x, name: X, cost: -1, effect: 1.2}\n"},
		{"duplicate upgrade", "upgrades:\n  - {id: x, cost: 1, effect: 1.2}\n  - {id: x, cost: 2, effect: 1.3}\n"},
		{"bonus without multiplier", "bonuses:\n  - {id: b, cost: 5, duration: 5s}\n"},
		{"correct out of range", "questions:\n  - {question: q, options: [a, b], correct: 2}\n"},
		{"single option", "questions:\n  - {question: q, options: [a], correct: 0}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte("tipz: []\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("feedback:\n  correct_title: Yes\n  correct_content: x2\n  wrong_title: No\n  wrong_content: /2\n"), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Yes", cat.Feedback.CorrectTitle)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
