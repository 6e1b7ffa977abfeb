package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lakeview-games/fishbot/internal/fish"
)

// Card is the rendered sharing payload for one catch.
type Card struct {
	FishID   string
	Weight   float64
	Rarity   string
	Caption  string
	ImageURL string
}

// BuildCard parses a pipe-delimited "fishId|weight[|rarity]" payload into
// a caption and a deterministic image reference. Anything malformed or
// unknown yields no card.
func BuildCard(payload, baseURL string, table *fish.Table) (Card, bool) {
	parts := strings.Split(strings.TrimSpace(payload), "|")
	if len(parts) < 2 || len(parts) > 3 {
		return Card{}, false
	}

	entry, ok := table.Get(parts[0])
	if !ok {
		return Card{}, false
	}

	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || weight < 0 {
		return Card{}, false
	}

	rarity := ""
	if len(parts) == 3 {
		rarity = strings.TrimSpace(parts[2])
	}

	var caption string
	if entry.IsTrash {
		caption = fmt.Sprintf("I fished out a %s %s!", entry.Emoji, entry.ID)
	} else {
		class := fish.WeightClassFor(entry, weight).String()
		caption = fmt.Sprintf("I caught %s %s %s %s weighing %.2f kg!", indefArticle(class), class, entry.Emoji, entry.ID, weight)
	}
	if rarity != "" {
		caption += fmt.Sprintf(" (%s)", rarity)
	}

	return Card{
		FishID:   entry.ID,
		Weight:   weight,
		Rarity:   rarity,
		Caption:  caption,
		ImageURL: fmt.Sprintf("%s/static/fish/%s.png", strings.TrimRight(baseURL, "/"), entry.ID),
	}, true
}

// TODO: some words beginning with consonants use 'an' (hour, heir, honest).
func indefArticle(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
