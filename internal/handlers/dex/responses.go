package dex

import (
	"net/http"
	"strconv"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
)

type listResponse[T any] struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Pages    int  `json:"pages"`
	Total    int  `json:"total"`
	HasNext  bool `json:"has_next"`
	Data     []T  `json:"data"`
}

func newListResponse[T any](data []T, total int, page database.Page) listResponse[T] {
	if data == nil {
		data = []T{}
	}

	pages := (total + page.Size - 1) / page.Size
	return listResponse[T]{
		Page:     page.Number,
		PageSize: page.Size,
		Pages:    pages,
		Total:    total,
		HasNext:  page.Number < pages,
		Data:     data,
	}
}

// page reads page and page_size from the query string. Missing or out of
// range values fall back to the defaults.
func (h *Handler) page(r *http.Request) database.Page {
	p := database.Page{Number: 1, Size: h.cfg.DefaultPageSize}
	if p.Size < 1 {
		p.Size = 20
	}

	maxSize := h.cfg.MaxPageSize
	if maxSize < 1 {
		maxSize = 100
	}

	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		p.Number = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 && v <= maxSize {
		p.Size = v
	}
	return p
}

// pokemonResponse always reports a stat total consistent with the stats.
func pokemonResponse(p *models.Pokemon) *models.Pokemon {
	p.TotalStats = p.StatTotal()
	return p
}
