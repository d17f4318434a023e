package dex

import (
	"net/http"

	"github.com/FlagBrew/local-dex/internal/auth"
	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/translate"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

func (h *Handler) itemRoutes(r chi.Router) {
	r.Get("/", h.listItems)
	r.Get("/category/{category}", h.itemsByCategory)
	r.Get("/{name}", h.getItem)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(h.auth))
		r.Post("/", h.createItem)
		r.Put("/{name}", h.updateItem)
		r.Delete("/{name}", h.deleteItem)
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeItemList(w, r, database.ItemFilter{
		Category:   translate.Translate(translate.ItemCategory, q.Get("category")),
		Generation: translate.GenerationLabel(q.Get("generation")),
	})
}

func (h *Handler) itemsByCategory(w http.ResponseWriter, r *http.Request) {
	h.writeItemList(w, r, database.ItemFilter{
		Category: translate.Translate(translate.ItemCategory, chi.URLParam(r, "category")),
	})
}

func (h *Handler) writeItemList(w http.ResponseWriter, r *http.Request, filter database.ItemFilter) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	page := h.page(r)
	list, total, err := db.ListItems(r.Context(), filter, page)
	if err != nil {
		h.fail(w, r, err, "item")
		return
	}
	chix.JSON(w, r, http.StatusOK, newListResponse(list, total, page))
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	it, err := db.GetItem(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.fail(w, r, err, "item")
		return
	}
	chix.JSON(w, r, http.StatusOK, it)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	var payload itemCreateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindItem, "create", http.StatusBadRequest)
		return
	}

	it := payload.entity()
	if err := db.Insert(r.Context(), it); err != nil {
		h.fail(w, r, err, "item")
		return
	}

	h.written(models.KindItem, "create", http.StatusCreated)
	chix.JSON(w, r, http.StatusCreated, it)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	var payload itemUpdateRequest
	if chix.Error(w, r, chix.Bind(r, &payload)) {
		h.written(models.KindItem, "update", http.StatusBadRequest)
		return
	}

	it, err := db.GetItem(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.fail(w, r, err, "item")
		return
	}

	payload.apply(it)
	if err = db.UpdateItem(r.Context(), it); err != nil {
		h.fail(w, r, err, "item")
		return
	}

	h.written(models.KindItem, "update", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, it)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	db := h.db(w, r)
	if db == nil {
		return
	}

	it, err := db.GetItem(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.fail(w, r, err, "item")
		return
	}

	if err = db.DeleteItem(r.Context(), it.Name); err != nil {
		h.fail(w, r, err, "item")
		return
	}

	h.written(models.KindItem, "delete", http.StatusOK)
	chix.JSON(w, r, http.StatusOK, chix.M{"message": "item deleted"})
}
