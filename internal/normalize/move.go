package normalize

import (
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/FlagBrew/local-dex/internal/translate"
)

func (n *Normalizer) move(raw *pokeapi.RawRecord) (*models.Move, error) {
	var src pokeapi.Move
	if err := raw.Decode(&src); err != nil {
		return nil, err
	}

	names := resolveNames(src.Names, src.Name)
	m := &models.Move{
		MoveID:       src.ID,
		Name:         names.Name,
		JapaneseName: names.Japanese,
		EnglishName:  names.English,
		Type:         translate.Translate(translate.Type, src.Type.Name),
		Category:     translate.Translate(translate.MoveCategory, src.DamageClass.Name),
		Power:        src.Power,
		Accuracy:     src.Accuracy,
		PP:           src.PP,
		Description:  description(src.FlavorTextEntries),
		Generation:   translate.GenerationLabel(src.Generation.Name),
	}
	if m.MoveID == 0 {
		m.MoveID = raw.ID
	}
	return m, nil
}
