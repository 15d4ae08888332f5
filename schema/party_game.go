package schema

// PartyGame is an entry of the party-game suggestion catalog. Names come
// from the translation bundle so they follow the requested language.
type PartyGame struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	MinPlayers int    `json:"min_players" bson:"min_players"`
	MaxPlayers int    `json:"max_players,omitempty" bson:"max_players"`
	Featured   bool   `json:"-" bson:"-"`
}
