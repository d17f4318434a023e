package dex

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/FlagBrew/local-dex/internal/auth"
	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/metrics"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/lrstanley/chix"
)

type Handler struct {
	cfg  *models.HTTPConfig
	auth auth.Authenticator
}

func NewHandler(cfg *models.HTTPConfig, a auth.Authenticator) *Handler {
	return &Handler{
		cfg:  cfg,
		auth: a,
	}
}

func (h *Handler) Route(r chi.Router) {
	r.Route("/pokemon", h.pokemonRoutes)
	r.Route("/moves", h.moveRoutes)
	r.Route("/abilities", h.abilityRoutes)
	r.Route("/items", h.itemRoutes)
}

func (h *Handler) db(w http.ResponseWriter, r *http.Request) *database.Client {
	db := database.FromContext(r.Context())
	if db == nil {
		log.FromContext(r.Context()).Error("db is nil")
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": "db is nil"})
	}
	return db
}

// fail maps storage errors onto response codes.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, what string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		chix.JSON(w, r, http.StatusNotFound, chix.M{"error": what + " not found"})
	case errors.Is(err, database.ErrConflict):
		chix.JSON(w, r, http.StatusConflict, chix.M{"error": what + " already exists"})
	default:
		log.FromContext(r.Context()).WithError(err).Errorf("failed to handle %s", what)
		chix.JSON(w, r, http.StatusInternalServerError, chix.M{"error": fmt.Sprintf("failed to handle %s", what)})
	}
}

func (h *Handler) written(kind models.Kind, op string, status int) {
	metrics.APIWrites.WithLabelValues(string(kind), op, strconv.Itoa(status)).Inc()
}

// idParam reads a positive integer path parameter, answering 400 otherwise.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		chix.JSON(w, r, http.StatusBadRequest, chix.M{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
