package normalize

import (
	"fmt"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/FlagBrew/local-dex/internal/translate"
)

func (n *Normalizer) item(raw *pokeapi.RawRecord) (*models.Item, error) {
	var src pokeapi.Item
	if err := raw.Decode(&src); err != nil {
		return nil, err
	}

	names := resolveNames(src.Names, src.Name)
	if names.Name == "" {
		return nil, fmt.Errorf("item %d has no name", raw.ID)
	}

	return &models.Item{
		Name:         names.Name,
		JapaneseName: names.Japanese,
		EnglishName:  names.English,
		Category:     translate.Translate(translate.ItemCategory, src.Category.Name),
		Description:  description(src.FlavorTextEntries),
		Generation:   earliestGeneration(src.GameIndices),
	}, nil
}

// earliestGeneration labels the oldest generation an item has a game index
// in. Items have no generation of their own.
func earliestGeneration(indices []pokeapi.GenerationGameIndex) string {
	best, bestRank := "", 0
	for _, gi := range indices {
		rank := translate.GenerationRank(gi.Generation.Name)
		if rank == 0 {
			continue
		}
		if bestRank == 0 || rank < bestRank {
			best, bestRank = gi.Generation.Name, rank
		}
	}
	if best == "" {
		return ""
	}
	return translate.GenerationLabel(best)
}
