package handler

import (
	"net/http"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{svc: s}
}

// GetOverview godoc
//
//	@Summary		Dashboard stats
//	@Description	Project and contact aggregates for the admin dashboard
//	@Tags			stats
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.StatsOverview}
//	@Router			/admin/stats [get]
func (h *StatsHandler) GetOverview(c *gin.Context) {
	out, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
