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

func (h *Handler) moveRoutes(r chi.Router) {
	r.Get("/", h.listMoves)
	r.Get("/type/{type}", h.movesByType)
	r.Get("/{key}", h.getMove)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(h.auth))
		r.Post("/", h.createMove)
		r.Put("/{id}", h.updateMove)
		r.Delete("/{id}", h.deleteMove)
	})
}

func (h *Handler) listMoves(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeMoveList(w, r, database.MoveFilter{
		Type:     translate.Translate(translate.Type, q.Get("type")),
		Category: translate.Translate(translate.MoveCategory, q.Get("category")),
	})
}

func (h *Handler) movesByType(w http.ResponseWriter, r *http.Request) {
	h.writeMoveList(w, r, database.MoveFilter{
		Type: translate.Translate(translate.Type, chi.URLParam(r, "type")),
	})
}

func (h *Handler) writeMoveList(w http.ResponseWriter, r *http.Request, filter database.MoveFilter) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	page := h.page(r)
	list, total, err := db.ListMoves(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err, "move")
		return
	}
	chix.JSON(w, r, http.StatusOK, newListResponse(list, total, page))
}

func (h *Handler) getMove(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	key := chi.URLParam(r, "key")

	var (
		m   *models.Move
		err error
	)
	if moveID, convErr := strconv.Atoi(key); convErr == nil {
		m, err = db.GetMoveByMoveID(r.Context(), moveID)
	} else {
		m, err = db.GetMoveByName(r.Context(), key)
	}
	if err != nil {
		h.fail(w, r, err, "move")
		return
	}

	chix.JSON(w, r, http.StatusOK, m)
}

func (h *Handler) createMove(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	var payload moveCreateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindMove, "create", http.StatusBadRequest)
		return
	}

	m := payload.entity()
	if err := db.Insert(r.Context(), m); err != nil {
		h.fail(w, r, err, "move")
		return
	}

	h.written(models.KindMove, "create", http.StatusCreated)
	chix.JSON(w, r, http.StatusCreated, m)
}

func (h *Handler) updateMove(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var payload moveUpdateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindMove, "update", http.StatusBadRequest)
		return
	}

	m, err := db.GetMove(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "move")
		return
	}

	payload.apply(m)
	if err = db.UpdateMove(r.Context(), m); err != nil {
		h.fail(w, r, err, "move")
		return
	}

	h.written(models.KindMove, "update", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, m)
}

func (h *Handler) deleteMove(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := db.DeleteMove(r.Context(), id); err != nil {
		h.fail(w, r, err, "move")
		return
	}

	h.written(models.KindMove, "delete", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, chix.M{"message": "move deleted"})
}
