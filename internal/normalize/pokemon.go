package normalize

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/FlagBrew/local-dex/internal/translate"
	"github.com/apex/log"
)

// statOrder is the order PokeAPI lists base stats in. It is only used for
// entries that carry no stat name.
var statOrder = []string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

func (n *Normalizer) pokemon(ctx context.Context, raw *pokeapi.RawRecord) (*models.Pokemon, error) {
	var src pokeapi.Pokemon
	if err := raw.Decode(&src); err != nil {
		return nil, err
	}

	p := &models.Pokemon{
		NationalDex: src.ID,
		Height:      float64(src.Height) / 10,
		Weight:      float64(src.Weight) / 10,
		Abilities:   make([]string, 0, len(src.Abilities)),
	}
	if p.NationalDex == 0 {
		p.NationalDex = raw.ID
	}

	applyStats(p, src.Stats)
	p.TotalStats = p.StatTotal()

	types := slices.Clone(src.Types)
	slices.SortStableFunc(types, func(a, b pokeapi.PokemonType) int { return a.Slot - b.Slot })
	if len(types) > 0 {
		p.Type1 = translate.Translate(translate.Type, types[0].Type.Name)
	}
	if len(types) > 1 {
		t2 := translate.Translate(translate.Type, types[1].Type.Name)
		p.Type2 = &t2
	}

	for _, a := range src.Abilities {
		p.Abilities = append(p.Abilities, a.Ability.Name)
	}

	species, err := n.species(ctx, src.Species.URL)
	if err != nil {
		log.FromContext(ctx).
			WithError(err).
			WithField("national_dex", p.NationalDex).
			Warn("species unavailable, using defaults")
		applySpeciesDefaults(p, src.Name)
		return p, nil
	}

	names := resolveNames(species.Names, src.Name)
	p.Name = names.Name
	p.JapaneseName = names.Japanese
	p.EnglishName = names.English
	p.Classification = localized(species.Genera, genusValue, chineseLanguages, "")
	p.CatchRate = species.CaptureRate
	p.ExperienceType = translate.Translate(translate.GrowthRate, species.GrowthRate.Name)
	p.GenderRatio = translate.GenderRatio(species.GenderRate)
	p.EggGroups = make([]string, 0, len(species.EggGroups))
	for _, g := range species.EggGroups {
		p.EggGroups = append(p.EggGroups, translate.Translate(translate.EggGroup, g.Name))
	}
	return p, nil
}

func (n *Normalizer) species(ctx context.Context, url string) (*pokeapi.Species, error) {
	if n.resolver == nil || url == "" {
		return nil, errNoSpecies
	}

	body, err := n.resolver.FetchURL(ctx, url)
	if err != nil {
		return nil, err
	}

	var s pokeapi.Species
	if err = json.Unmarshal(body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func applySpeciesDefaults(p *models.Pokemon, primary string) {
	p.Name = primary
	p.JapaneseName = primary
	p.EnglishName = primary
	p.Classification = ""
	p.CatchRate = 0
	p.ExperienceType = ""
	p.GenderRatio = translate.UnknownGenderRatio
	p.EggGroups = []string{}
}

// applyStats assigns base stats by their stat name. Entries without a name
// fall back to their position in statOrder.
func applyStats(p *models.Pokemon, stats []pokeapi.PokemonStat) {
	for i, s := range stats {
		name := s.Stat.Name
		if name == "" && i < len(statOrder) {
			name = statOrder[i]
		}

		switch name {
		case "hp":
			p.HP = s.BaseStat
		case "attack":
			p.Attack = s.BaseStat
		case "defense":
			p.Defense = s.BaseStat
		case "special-attack":
			p.SpAttack = s.BaseStat
		case "special-defense":
			p.SpDefense = s.BaseStat
		case "speed":
			p.Speed = s.BaseStat
		}
	}
}
