package store

import (
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/JN-EPHEC/discovery-api/schema"
	"github.com/JN-EPHEC/discovery-api/utils"
)

var (
	ErrPartyGameListNotFound = fmt.Errorf("party game list not found")
)

// defaultPartyGames declares the catalog entries; names are resolved from
// the translation bundle per language.
var defaultPartyGames = []struct {
	ID         string
	MinPlayers int
	MaxPlayers int
}{
	{"game_1", 3, 0},
	{"game_2", 3, 0},
	{"game_3", 8, 18},
	{"game_4", 4, 0},
	{"game_5", 2, 0},
	{"game_6", 2, 0},
	{"game_7", 4, 8},
	{"game_8", 3, 0},
	{"game_9", 2, 0},
	{"game_10", 4, 12},
	{"game_11", 3, 0},
	{"game_12", 5, 0},
}

// featuredPartyGameID marks the games that are highlighted by the API when
// a client asks for featured suggestions only.
var featuredPartyGameID = map[string]struct{}{
	"game_1": {}, "game_2": {}, "game_3": {}, "game_6": {}, "game_8": {},
}

var defaultPartyGameList = map[string][]schema.PartyGame{}

// LoadDefaultPartyGames loads the party game catalog from the translation
// bundle and caches it per language.
func LoadDefaultPartyGames(lang string) error {
	if lang == "" {
		lang = "en"
	}

	lang = strings.ReplaceAll(strings.ToLower(lang), "-", "_")

	if _, ok := defaultPartyGameList[lang]; ok {
		return nil
	}

	localizer := utils.NewLocalizer(lang)
	games := make([]schema.PartyGame, 0, len(defaultPartyGames))
	for _, entry := range defaultPartyGames {
		name, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: fmt.Sprintf("partygames.%s.name", entry.ID)})
		if err != nil {
			log.WithField("prefix", "i18n").WithError(err).Error("fail to load party game in proper language")
			return err
		}

		game := schema.PartyGame{
			ID:         entry.ID,
			Name:       name,
			MinPlayers: entry.MinPlayers,
			MaxPlayers: entry.MaxPlayers,
		}
		if _, ok := featuredPartyGameID[entry.ID]; ok {
			game.Featured = true
		}

		games = append(games, game)
	}

	defaultPartyGameList[lang] = games

	return nil
}

// ListPartyGames returns the party game suggestions for a language,
// optionally narrowed down to the featured ones.
func ListPartyGames(lang string, featuredOnly bool) ([]schema.PartyGame, error) {
	if lang == "" {
		lang = "en"
	}

	lang = strings.ReplaceAll(strings.ToLower(lang), "-", "_")

	if err := LoadDefaultPartyGames(lang); err != nil {
		return nil, err
	}

	games, ok := defaultPartyGameList[lang]
	if !ok {
		return nil, ErrPartyGameListNotFound
	}

	if !featuredOnly {
		return games, nil
	}

	featured := make([]schema.PartyGame, 0, len(featuredPartyGameID))
	for _, game := range games {
		if game.Featured {
			featured = append(featured, game)
		}
	}

	return featured, nil
}
