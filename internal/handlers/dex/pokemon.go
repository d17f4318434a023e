package dex

import (
	"net/http"
	"strconv"

	"github.com/FlagBrew/local-dex/internal/auth"
	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/translate"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

func (h *Handler) pokemonRoutes(r chi.Router) {
	r.Get("/", h.listPokemon)
	r.Get("/type/{type}", h.pokemonByType)
	r.Get("/search/{query}", h.searchPokemon)
	r.Get("/{key}", h.getPokemon)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(h.auth))
		r.Post("/", h.createPokemon)
		r.Put("/{id}", h.updatePokemon)
		r.Delete("/{id}", h.deletePokemon)
	})
}

func (h *Handler) listPokemon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writePokemonList(w, r, database.PokemonFilter{
		Type:   translate.Translate(translate.Type, q.Get("type")),
		Search: q.Get("search"),
	})
}

func (h *Handler) pokemonByType(w http.ResponseWriter, r *http.Request) {
	h.writePokemonList(w, r, database.PokemonFilter{
		Type: translate.Translate(translate.Type, chi.URLParam(r, "type")),
	})
}

func (h *Handler) searchPokemon(w http.ResponseWriter, r *http.Request) {
	h.writePokemonList(w, r, database.PokemonFilter{Search: chi.URLParam(r, "query")})
}

func (h *Handler) writePokemonList(w http.ResponseWriter, r *http.Request, filter database.PokemonFilter) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	page := h.page(r)
	list, total, err := db.ListPokemon(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	for _, p := range list {
		pokemonResponse(p)
	}
	chix.JSON(w, r, http.StatusOK, newListResponse(list, total, page))
}

// getPokemon accepts a national dex number or a display/English name.
func (h *Handler) getPokemon(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	key := chi.URLParam(r, "key")

	var (
		p   *models.Pokemon
		err error
	)
	if dex, convErr := strconv.Atoi(key); convErr == nil {
		p, err = db.GetPokemonByDex(r.Context(), dex)
	} else {
		p, err = db.GetPokemonByName(r.Context(), key)
	}
	if err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	chix.JSON(w, r, http.StatusOK, pokemonResponse(p))
}

func (h *Handler) createPokemon(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	var payload pokemonCreateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindPokemon, "create", http.StatusBadRequest)
		return
	}

	p := payload.entity()
	if err := db.Insert(r.Context(), p); err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	h.written(models.KindPokemon, "create", http.StatusCreated)
	chix.JSON(w, r, http.StatusCreated, pokemonResponse(p))
}

func (h *Handler) updatePokemon(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var payload pokemonUpdateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindPokemon, "update", http.StatusBadRequest)
		return
	}

	p, err := db.GetPokemon(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	payload.apply(p)
	if err = db.UpdatePokemon(r.Context(), p); err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	h.written(models.KindPokemon, "update", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, pokemonResponse(p))
}

func (h *Handler) deletePokemon(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := db.DeletePokemon(r.Context(), id); err != nil {
		h.fail(w, r, err, "pokemon")
		return
	}

	h.written(models.KindPokemon, "delete", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, chix.M{"message": "pokemon deleted"})
}
