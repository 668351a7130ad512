package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/services"
)

type ProjectionHandler struct {
	log        *logger.Logger
	projection services.ProjectionService
}

func NewProjectionHandler(log *logger.Logger, projection services.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{
		log:        log.With("handler", "ProjectionHandler"),
		projection: projection,
	}
}

// Project handles GET /api/projection?score=72&horizons=5,10,20.
// horizons and optimal are optional and fall back to server defaults.
func (h *ProjectionHandler) Project(c *gin.Context) {
	score, err := strconv.ParseFloat(strings.TrimSpace(c.Query("score")), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("score query parameter must be a number"))
		return
	}

	var horizons []int
	if raw := strings.TrimSpace(c.Query("horizons")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			years, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || years <= 0 {
				RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("horizons must be positive integers"))
				return
			}
			horizons = append(horizons, years)
		}
	}

	var optimal float64
	if raw := strings.TrimSpace(c.Query("optimal")); raw != "" {
		optimal, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("optimal must be a number"))
			return
		}
	}

	projections := h.projection.Project(score, horizons, optimal)
	RespondOK(c, gin.H{"projections": projections})
}
