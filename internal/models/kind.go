package models

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four reference entity kinds.
type Kind string

const (
	KindPokemon Kind = "pokemon"
	KindMove    Kind = "move"
	KindAbility Kind = "ability"
	KindItem    Kind = "item"
)

// Kinds lists every kind in the order a full ingestion runs them.
var Kinds = []Kind{KindPokemon, KindMove, KindAbility, KindItem}

// IDRange is an inclusive range of source identifiers.
type IDRange struct {
	Start int
	End   int
}

func (r IDRange) Len() int {
	return r.End - r.Start + 1
}

func (r IDRange) Validate() error {
	if r.Start < 1 {
		return fmt.Errorf("start id must be at least 1, got %d", r.Start)
	}
	if r.End < r.Start {
		return fmt.Errorf("end id %d is before start id %d", r.End, r.Start)
	}
	return nil
}

// DefaultRange returns the range ingested when the operator does not pick one.
func (k Kind) DefaultRange() IDRange {
	switch k {
	case KindPokemon:
		return IDRange{Start: 1, End: 151}
	case KindMove:
		return IDRange{Start: 1, End: 100}
	default:
		return IDRange{Start: 1, End: 50}
	}
}

func (k Kind) Valid() bool {
	switch k {
	case KindPokemon, KindMove, KindAbility, KindItem:
		return true
	}
	return false
}

// ParseKind accepts the singular or plural form of a kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "pokemon", "pokémon":
		return KindPokemon, nil
	case "move", "moves":
		return KindMove, nil
	case "ability", "abilities":
		return KindAbility, nil
	case "item", "items":
		return KindItem, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}
