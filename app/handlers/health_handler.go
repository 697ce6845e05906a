package handlers

import (
	"net/http"

	"github.com/unrolled/render"
)

type HealthHandler struct {
	render *render.Render
}

func NewHealthHandler(render *render.Render) *HealthHandler {
	return &HealthHandler{render: render}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
