package normalize

import (
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/FlagBrew/local-dex/internal/translate"
)

func (n *Normalizer) ability(raw *pokeapi.RawRecord) (*models.Ability, error) {
	var src pokeapi.Ability
	if err := raw.Decode(&src); err != nil {
		return nil, err
	}

	names := resolveNames(src.Names, src.Name)
	a := &models.Ability{
		AbilityID:    src.ID,
		Name:         names.Name,
		JapaneseName: names.Japanese,
		EnglishName:  names.English,
		Description:  description(src.FlavorTextEntries),
		Generation:   translate.GenerationLabel(src.Generation.Name),
	}
	if a.AbilityID == 0 {
		a.AbilityID = raw.ID
	}

	for _, p := range src.Pokemon {
		if p.IsHidden {
			a.HiddenCount++
		} else {
			a.CommonCount++
		}
	}
	return a, nil
}
