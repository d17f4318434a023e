package pokeapi

// Response shapes for the subset of PokeAPI the normalizer reads. Fields the
// dataset has no use for are left out.

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type LocalizedName struct {
	Name     string        `json:"name"`
	Language NamedResource `json:"language"`
}

// FlavorText covers both entry shapes: moves and abilities use
// "flavor_text", items use "text".
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Text       string        `json:"text"`
	Language   NamedResource `json:"language"`
}

func (f FlavorText) Value() string {
	if f.FlavorText != "" {
		return f.FlavorText
	}
	return f.Text
}

type Genus struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type PokemonAbility struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Ability  NamedResource `json:"ability"`
}

type Pokemon struct {
	ID        int              `json:"id"`
	Name      string           `json:"name"`
	Height    int              `json:"height"`
	Weight    int              `json:"weight"`
	Stats     []PokemonStat    `json:"stats"`
	Types     []PokemonType    `json:"types"`
	Abilities []PokemonAbility `json:"abilities"`
	Species   NamedResource    `json:"species"`
}

type Species struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Names       []LocalizedName `json:"names"`
	Genera      []Genus         `json:"genera"`
	GrowthRate  NamedResource   `json:"growth_rate"`
	GenderRate  *int            `json:"gender_rate"`
	CaptureRate int             `json:"capture_rate"`
	EggGroups   []NamedResource `json:"egg_groups"`
}

type Move struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Names             []LocalizedName `json:"names"`
	Type              NamedResource   `json:"type"`
	DamageClass       NamedResource   `json:"damage_class"`
	Power             *int            `json:"power"`
	Accuracy          *int            `json:"accuracy"`
	PP                *int            `json:"pp"`
	FlavorTextEntries []FlavorText    `json:"flavor_text_entries"`
	Generation        NamedResource   `json:"generation"`
}

type AbilityPokemon struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Pokemon  NamedResource `json:"pokemon"`
}

type Ability struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Names             []LocalizedName  `json:"names"`
	FlavorTextEntries []FlavorText     `json:"flavor_text_entries"`
	Generation        NamedResource    `json:"generation"`
	Pokemon           []AbilityPokemon `json:"pokemon"`
}

type GenerationGameIndex struct {
	GameIndex  int           `json:"game_index"`
	Generation NamedResource `json:"generation"`
}

type Item struct {
	ID                int                   `json:"id"`
	Name              string                `json:"name"`
	Names             []LocalizedName       `json:"names"`
	Category          NamedResource         `json:"category"`
	FlavorTextEntries []FlavorText          `json:"flavor_text_entries"`
	GameIndices       []GenerationGameIndex `json:"game_indices"`
}
