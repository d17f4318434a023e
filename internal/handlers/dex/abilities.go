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

func (h *Handler) abilityRoutes(r chi.Router) {
	r.Get("/", h.listAbilities)
	r.Get("/{key}", h.getAbility)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(h.auth))
		r.Post("/", h.createAbility)
		r.Put("/{id}", h.updateAbility)
		r.Delete("/{id}", h.deleteAbility)
	})
}

func (h *Handler) listAbilities(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	// Accepts "第三世代", "iii" or "generation-iii".
	filter := database.AbilityFilter{
		Generation: translate.GenerationLabel(r.URL.Query().Get("generation")),
	}

	page := h.page(r)
	list, total, err := db.ListAbilities(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err, "ability")
		return
	}
	chix.JSON(w, r, http.StatusOK, newListResponse(list, total, page))
}

func (h *Handler) getAbility(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	key := chi.URLParam(r, "key")

	var (
		a   *models.Ability
		err error
	)
	if abilityID, convErr := strconv.Atoi(key); convErr == nil {
		a, err = db.GetAbilityByAbilityID(r.Context(), abilityID)
	} else {
		a, err = db.GetAbilityByName(r.Context(), key)
	}
	if err != nil {
		h.fail(w, r, err, "ability")
		return
	}

	chix.JSON(w, r, http.StatusOK, a)
}

func (h *Handler) createAbility(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	var payload abilityCreateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindAbility, "create", http.StatusBadRequest)
		return
	}

	a := payload.entity()
	if err := db.Insert(r.Context(), a); err != nil {
		h.fail(w, r, err, "ability")
		return
	}

	h.written(models.KindAbility, "create", http.StatusCreated)
	chix.JSON(w, r, http.StatusCreated, a)
}

func (h *Handler) updateAbility(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var payload abilityUpdateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindAbility, "update", http.StatusBadRequest)
		return
	}

	a, err := db.GetAbility(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "ability")
		return
	}

	payload.apply(a)
	if err = db.UpdateAbility(r.Context(), a); err != nil {
		h.fail(w, r, err, "ability")
		return
	}

	h.written(models.KindAbility, "update", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, a)
}

func (h *Handler) deleteAbility(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := db.DeleteAbility(r.Context(), id); err != nil {
		h.fail(w, r, err, "ability")
		return
	}

	h.written(models.KindAbility, "delete", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, chix.M{"message": "ability deleted"})
}
