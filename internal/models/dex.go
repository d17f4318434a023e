package models

import "time"

// Entity is a canonical, storage-ready record of one of the four kinds.
type Entity interface {
	Kind() Kind
	// NaturalKey is the externally meaningful unique key: the national dex
	// number, move id or ability id as an int, or the display name of an item.
	NaturalKey() any
}

type Pokemon struct {
	ID             int       `json:"id"`
	NationalDex    int       `json:"national_dex"`
	Name           string    `json:"name"`
	JapaneseName   string    `json:"japanese_name"`
	EnglishName    string    `json:"english_name"`
	Type1          string    `json:"type1"`
	Type2          *string   `json:"type2"`
	Classification string    `json:"classification"`
	Height         float64   `json:"height"`
	Weight         float64   `json:"weight"`
	HP             int       `json:"hp"`
	Attack         int       `json:"attack"`
	Defense        int       `json:"defense"`
	SpAttack       int       `json:"sp_attack"`
	SpDefense      int       `json:"sp_defense"`
	Speed          int       `json:"speed"`
	TotalStats     int       `json:"total_stats"`
	CatchRate      int       `json:"catch_rate"`
	ExperienceType string    `json:"experience_type"`
	GenderRatio    string    `json:"gender_ratio"`
	EggGroups      []string  `json:"egg_groups"`
	Abilities      []string  `json:"abilities"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Pokemon) Kind() Kind      { return KindPokemon }
func (p *Pokemon) NaturalKey() any { return p.NationalDex }

// StatTotal is the sum of the six base stats.
func (p *Pokemon) StatTotal() int {
	return p.HP + p.Attack + p.Defense + p.SpAttack + p.SpDefense + p.Speed
}

type Move struct {
	ID           int       `json:"id"`
	MoveID       int       `json:"move_id"`
	Name         string    `json:"name"`
	JapaneseName string    `json:"japanese_name"`
	EnglishName  string    `json:"english_name"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Power        *int      `json:"power"`
	Accuracy     *int      `json:"accuracy"`
	PP           *int      `json:"pp"`
	Description  string    `json:"description"`
	Generation   string    `json:"generation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (m *Move) Kind() Kind      { return KindMove }
func (m *Move) NaturalKey() any { return m.MoveID }

type Ability struct {
	ID           int       `json:"id"`
	AbilityID    int       `json:"ability_id"`
	Name         string    `json:"name"`
	JapaneseName string    `json:"japanese_name"`
	EnglishName  string    `json:"english_name"`
	Description  string    `json:"description"`
	CommonCount  int       `json:"common_count"`
	HiddenCount  int       `json:"hidden_count"`
	Generation   string    `json:"generation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (a *Ability) Kind() Kind      { return KindAbility }
func (a *Ability) NaturalKey() any { return a.AbilityID }

type Item struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	JapaneseName string    `json:"japanese_name"`
	EnglishName  string    `json:"english_name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Generation   string    `json:"generation"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i *Item) Kind() Kind      { return KindItem }
func (i *Item) NaturalKey() any { return i.Name }
