package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/lixenwraith/eco-clicker/events"
	"github.com/lixenwraith/eco-clicker/game"
)

// candidate is one fuzzy-searchable catalog entry
type candidate struct {
	ID   string
	Name string
}

// candidates implements fuzzy.Source over ids and display names
type candidates []candidate

func (c candidates) String(i int) string {
	return strings.ToLower(c[i].ID + " " + c[i].Name)
}

func (c candidates) Len() int { return len(c) }

// resolve picks the best match for query
// A 1-based number selects by position
func resolve(query string, items candidates) (int, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(items) == 0 {
		return 0, false
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	matches := fuzzy.FindFrom(query, items)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}

// verbs are the command mode keywords
var verbs = candidates{
	{ID: "buy", Name: "purchase upgrade"},
	{ID: "bonus", Name: "boost activate"},
	{ID: "answer", Name: "quiz"},
	{ID: "stats", Name: "statistics"},
	{ID: "quit", Name: "exit"},
}

// commandResult is the outcome of one command line
type commandResult struct {
	event       *events.GameEvent
	message     string
	toggleStats bool
	quit        bool
}

// executeCommand parses line against the snapshot's catalog
func executeCommand(line string, snap *game.Snapshot) commandResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return commandResult{}
	}
	arg := strings.Join(fields[1:], " ")

	vi, ok := resolveVerb(fields[0])
	if !ok {
		return commandResult{message: fmt.Sprintf("unknown command: %s", fields[0])}
	}

	switch verbs[vi].ID {
	case "buy":
		items := make(candidates, len(snap.Upgrades))
		for i, u := range snap.Upgrades {
			items[i] = candidate{ID: u.ID, Name: u.Name}
		}
		i, ok := resolve(arg, items)
		if !ok {
			return commandResult{message: fmt.Sprintf("no upgrade matches %q", arg)}
		}
		return commandResult{
			event:   &events.GameEvent{Type: events.EventPurchase, Payload: &events.PurchasePayload{UpgradeID: items[i].ID}},
			message: "buy " + items[i].Name,
		}

	case "bonus":
		items := make(candidates, len(snap.BonusTypes))
		for i, b := range snap.BonusTypes {
			items[i] = candidate{ID: b.ID, Name: b.Name}
		}
		i, ok := resolve(arg, items)
		if !ok {
			return commandResult{message: fmt.Sprintf("no bonus matches %q", arg)}
		}
		return commandResult{
			event:   &events.GameEvent{Type: events.EventActivateBonus, Payload: &events.ActivateBonusPayload{BonusID: items[i].ID}},
			message: "boost " + items[i].Name,
		}

	case "answer":
		if !snap.Quiz.Visible {
			return commandResult{message: "no quiz open"}
		}
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 || n > len(snap.Quiz.Options) {
			return commandResult{message: fmt.Sprintf("answer 1-%d", len(snap.Quiz.Options))}
		}
		return commandResult{
			event:   &events.GameEvent{Type: events.EventAnswerQuiz, Payload: &events.AnswerQuizPayload{Index: n - 1}},
			message: "answered " + snap.Quiz.Options[n-1],
		}

	case "stats":
		return commandResult{toggleStats: true}

	case "quit":
		return commandResult{quit: true}
	}
	return commandResult{}
}

// resolveVerb matches the command keyword; exact prefixes win over fuzzy matches
func resolveVerb(word string) (int, bool) {
	word = strings.ToLower(word)
	for i, v := range verbs {
		if strings.HasPrefix(v.ID, word) {
			return i, true
		}
	}
	matches := fuzzy.Find(word, verbIDs())
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Index, true
}

func verbIDs() []string {
	ids := make([]string, len(verbs))
	for i, v := range verbs {
		ids[i] = v.ID
	}
	return ids
}
