// Package normalize turns raw PokeAPI records into storage-ready entities.
package normalize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
)

// Resolver fetches linked resources such as a Pokémon's species record.
type Resolver interface {
	FetchURL(ctx context.Context, url string) (json.RawMessage, error)
}

type Normalizer struct {
	resolver Resolver
}

// New returns a Normalizer. A nil resolver is allowed; linked records are then
// treated as unavailable.
func New(resolver Resolver) *Normalizer {
	return &Normalizer{resolver: resolver}
}

// Normalize converts raw into the entity for kind. Only a primary record that
// cannot be decoded is an error; missing optional data degrades to defaults.
func (n *Normalizer) Normalize(ctx context.Context, kind models.Kind, raw *pokeapi.RawRecord) (models.Entity, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalize %s: nil record", kind)
	}

	switch kind {
	case models.KindPokemon:
		return n.pokemon(ctx, raw)
	case models.KindMove:
		return n.move(raw)
	case models.KindAbility:
		return n.ability(raw)
	case models.KindItem:
		return n.item(raw)
	default:
		return nil, fmt.Errorf("normalize: unknown kind %q", kind)
	}
}

var errNoSpecies = errors.New("species link missing")
