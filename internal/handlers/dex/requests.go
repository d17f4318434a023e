package dex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/translate"
	"github.com/lrstanley/chix"
)

type pokemonCreateRequest struct {
	NationalDex    int      `json:"national_dex" validate:"required,min=1"`
	Name           string   `json:"name" validate:"required"`
	JapaneseName   string   `json:"japanese_name"`
	EnglishName    string   `json:"english_name"`
	Type1          string   `json:"type1" validate:"required"`
	Type2          *string  `json:"type2"`
	Classification string   `json:"classification"`
	Height         float64  `json:"height" validate:"min=0"`
	Weight         float64  `json:"weight" validate:"min=0"`
	HP             int      `json:"hp" validate:"min=0,max=255"`
	Attack         int      `json:"attack" validate:"min=0,max=255"`
	Defense        int      `json:"defense" validate:"min=0,max=255"`
	SpAttack       int      `json:"sp_attack" validate:"min=0,max=255"`
	SpDefense      int      `json:"sp_defense" validate:"min=0,max=255"`
	Speed          int      `json:"speed" validate:"min=0,max=255"`
	CatchRate      int      `json:"catch_rate" validate:"min=0,max=255"`
	ExperienceType string   `json:"experience_type"`
	GenderRatio    string   `json:"gender_ratio"`
	EggGroups      []string `json:"egg_groups"`
	Abilities      []string `json:"abilities"`
}

func (req *pokemonCreateRequest) entity() *models.Pokemon {
	return &models.Pokemon{
		NationalDex:    req.NationalDex,
		Name:           req.Name,
		JapaneseName:   req.JapaneseName,
		EnglishName:    req.EnglishName,
		Type1:          translate.Translate(translate.Type, req.Type1),
		Type2:          secondType(req.Type2),
		Classification: req.Classification,
		Height:         req.Height,
		Weight:         req.Weight,
		HP:             req.HP,
		Attack:         req.Attack,
		Defense:        req.Defense,
		SpAttack:       req.SpAttack,
		SpDefense:      req.SpDefense,
		Speed:          req.Speed,
		CatchRate:      req.CatchRate,
		ExperienceType: translate.Translate(translate.GrowthRate, req.ExperienceType),
		GenderRatio:    req.GenderRatio,
		EggGroups:      translate.TranslateAll(translate.EggGroup, req.EggGroups),
		Abilities:      req.Abilities,
	}
}

// pokemonUpdateRequest holds the mutable fields; nil means unchanged. The
// national dex number and the stat total cannot be set.
type pokemonUpdateRequest struct {
	Name           *string   `json:"name" validate:"omitnil,min=1"`
	JapaneseName   *string   `json:"japanese_name"`
	EnglishName    *string   `json:"english_name"`
	Type1          *string   `json:"type1" validate:"omitnil,min=1"`
	Type2          *string   `json:"type2"`
	Classification *string   `json:"classification"`
	Height         *float64  `json:"height" validate:"omitnil,min=0"`
	Weight         *float64  `json:"weight" validate:"omitnil,min=0"`
	HP             *int      `json:"hp" validate:"omitnil,min=0,max=255"`
	Attack         *int      `json:"attack" validate:"omitnil,min=0,max=255"`
	Defense        *int      `json:"defense" validate:"omitnil,min=0,max=255"`
	SpAttack       *int      `json:"sp_attack" validate:"omitnil,min=0,max=255"`
	SpDefense      *int      `json:"sp_defense" validate:"omitnil,min=0,max=255"`
	Speed          *int      `json:"speed" validate:"omitnil,min=0,max=255"`
	CatchRate      *int      `json:"catch_rate" validate:"omitnil,min=0,max=255"`
	ExperienceType *string   `json:"experience_type"`
	GenderRatio    *string   `json:"gender_ratio"`
	EggGroups      *[]string `json:"egg_groups"`
	Abilities      *[]string `json:"abilities"`
}

func (req *pokemonUpdateRequest) apply(p *models.Pokemon) {
	set(&p.Name, req.Name)
	set(&p.JapaneseName, req.JapaneseName)
	set(&p.EnglishName, req.EnglishName)
	set(&p.Type1, translated(translate.Type, req.Type1))
	if req.Type2 != nil {
		p.Type2 = secondType(req.Type2)
	}
	set(&p.Classification, req.Classification)
	set(&p.Height, req.Height)
	set(&p.Weight, req.Weight)
	set(&p.HP, req.HP)
	set(&p.Attack, req.Attack)
	set(&p.Defense, req.Defense)
	set(&p.SpAttack, req.SpAttack)
	set(&p.SpDefense, req.SpDefense)
	set(&p.Speed, req.Speed)
	set(&p.CatchRate, req.CatchRate)
	set(&p.ExperienceType, translated(translate.GrowthRate, req.ExperienceType))
	set(&p.GenderRatio, req.GenderRatio)
	if req.EggGroups != nil {
		p.EggGroups = translate.TranslateAll(translate.EggGroup, *req.EggGroups)
	}
	set(&p.Abilities, req.Abilities)
	p.TotalStats = p.StatTotal()
}

type moveCreateRequest struct {
	MoveID       int    `json:"move_id" validate:"required,min=1"`
	Name         string `json:"name" validate:"required"`
	JapaneseName string `json:"japanese_name"`
	EnglishName  string `json:"english_name"`
	Type         string `json:"type" validate:"required"`
	Category     string `json:"category"`
	Power        *int   `json:"power" validate:"omitnil,min=0"`
	Accuracy     *int   `json:"accuracy" validate:"omitnil,min=0,max=100"`
	PP           *int   `json:"pp" validate:"omitnil,min=0"`
	Description  string `json:"description"`
	Generation   string `json:"generation"`
}

func (req *moveCreateRequest) entity() *models.Move {
	return &models.Move{
		MoveID:       req.MoveID,
		Name:         req.Name,
		JapaneseName: req.JapaneseName,
		EnglishName:  req.EnglishName,
		Type:         translate.Translate(translate.Type, req.Type),
		Category:     translate.Translate(translate.MoveCategory, req.Category),
		Power:        req.Power,
		Accuracy:     req.Accuracy,
		PP:           req.PP,
		Description:  req.Description,
		Generation:   translate.GenerationLabel(req.Generation),
	}
}

// moveUpdateRequest holds the mutable move fields. Power, accuracy and pp can
// be cleared with an explicit null.
type moveUpdateRequest struct {
	Name         *string     `json:"name" validate:"omitnil,min=1"`
	JapaneseName *string     `json:"japanese_name"`
	EnglishName  *string     `json:"english_name"`
	Type         *string     `json:"type" validate:"omitnil,min=1"`
	Category     *string     `json:"category"`
	Power        nullableInt `json:"power"`
	Accuracy     nullableInt `json:"accuracy"`
	PP           nullableInt `json:"pp"`
	Description  *string     `json:"description"`
	Generation   *string     `json:"generation"`
}

func (req *moveUpdateRequest) Validate() error {
	if err := chix.DefaultValidator.Struct(req); err != nil {
		return err
	}
	return errors.Join(
		req.Power.between("power", 0, -1),
		req.Accuracy.between("accuracy", 0, 100),
		req.PP.between("pp", 0, -1),
	)
}

func (req *moveUpdateRequest) apply(m *models.Move) {
	set(&m.Name, req.Name)
	set(&m.JapaneseName, req.JapaneseName)
	set(&m.EnglishName, req.EnglishName)
	set(&m.Type, translated(translate.Type, req.Type))
	set(&m.Category, translated(translate.MoveCategory, req.Category))
	req.Power.assign(&m.Power)
	req.Accuracy.assign(&m.Accuracy)
	req.PP.assign(&m.PP)
	set(&m.Description, req.Description)
	set(&m.Generation, generation(req.Generation))
}

type abilityCreateRequest struct {
	AbilityID    int    `json:"ability_id" validate:"required,min=1"`
	Name         string `json:"name" validate:"required"`
	JapaneseName string `json:"japanese_name"`
	EnglishName  string `json:"english_name"`
	Description  string `json:"description"`
	CommonCount  int    `json:"common_count" validate:"min=0"`
	HiddenCount  int    `json:"hidden_count" validate:"min=0"`
	Generation   string `json:"generation"`
}

func (req *abilityCreateRequest) entity() *models.Ability {
	return &models.Ability{
		AbilityID:    req.AbilityID,
		Name:         req.Name,
		JapaneseName: req.JapaneseName,
		EnglishName:  req.EnglishName,
		Description:  req.Description,
		CommonCount:  req.CommonCount,
		HiddenCount:  req.HiddenCount,
		Generation:   translate.GenerationLabel(req.Generation),
	}
}

type abilityUpdateRequest struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	JapaneseName *string `json:"japanese_name"`
	EnglishName  *string `json:"english_name"`
	Description  *string `json:"description"`
	CommonCount  *int    `json:"common_count" validate:"omitnil,min=0"`
	HiddenCount  *int    `json:"hidden_count" validate:"omitnil,min=0"`
	Generation   *string `json:"generation"`
}

func (req *abilityUpdateRequest) apply(a *models.Ability) {
	set(&a.Name, req.Name)
	set(&a.JapaneseName, req.JapaneseName)
	set(&a.EnglishName, req.EnglishName)
	set(&a.Description, req.Description)
	set(&a.CommonCount, req.CommonCount)
	set(&a.HiddenCount, req.HiddenCount)
	set(&a.Generation, generation(req.Generation))
}

type itemCreateRequest struct {
	Name         string `json:"name" validate:"required"`
	JapaneseName string `json:"japanese_name"`
	EnglishName  string `json:"english_name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Generation   string `json:"generation"`
}

func (req *itemCreateRequest) entity() *models.Item {
	return &models.Item{
		Name:         req.Name,
		JapaneseName: req.JapaneseName,
		EnglishName:  req.EnglishName,
		Category:     translate.Translate(translate.ItemCategory, req.Category),
		Description:  req.Description,
		Generation:   translate.GenerationLabel(req.Generation),
	}
}

type itemUpdateRequest struct {
	JapaneseName *string `json:"japanese_name"`
	EnglishName  *string `json:"english_name"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	Generation   *string `json:"generation"`
}

func (req *itemUpdateRequest) apply(it *models.Item) {
	set(&it.JapaneseName, req.JapaneseName)
	set(&it.EnglishName, req.EnglishName)
	set(&it.Category, translated(translate.ItemCategory, req.Category))
	set(&it.Description, req.Description)
	set(&it.Generation, generation(req.Generation))
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// translated maps a code to its display label. Labels pass through unchanged.
func translated(domain translate.Domain, v *string) *string {
	if v == nil {
		return nil
	}
	label := translate.Translate(domain, *v)
	return &label
}

func generation(v *string) *string {
	if v == nil {
		return nil
	}
	label := translate.GenerationLabel(*v)
	return &label
}

// secondType treats an empty second type as none.
func secondType(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return translated(translate.Type, v)
}

// nullableInt tells an absent field apart from an explicit null.
type nullableInt struct {
	Set   bool
	Value *int
}

func (n *nullableInt) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

func (n nullableInt) assign(dst **int) {
	if n.Set {
		*dst = n.Value
	}
}

// between checks a present value against min and, when max is not negative,
// max.
func (n nullableInt) between(name string, minValue, maxValue int) error {
	if n.Value == nil {
		return nil
	}
	if *n.Value < minValue || (maxValue >= 0 && *n.Value > maxValue) {
		return fmt.Errorf("%s %d is out of range", name, *n.Value)
	}
	return nil
}
