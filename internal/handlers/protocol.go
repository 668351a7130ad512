package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/requestdata"
	"github.com/yungbote/longevity-backend/internal/services"
)

type ProtocolHandler struct {
	log      *logger.Logger
	protocol services.ProtocolService
}

func NewProtocolHandler(log *logger.Logger, protocol services.ProtocolService) *ProtocolHandler {
	return &ProtocolHandler{
		log:      log.With("handler", "ProtocolHandler"),
		protocol: protocol,
	}
}

// Generate handles POST /api/protocol/generate. Authenticated only; guests
// can score assessments but must register before generating a protocol.
func (h *ProtocolHandler) Generate(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("authentication required"))
		return
	}

	summary, err := h.protocol.Generate(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoAssessmentData) {
			RespondError(c, http.StatusConflict, "no_assessment_data", fmt.Errorf("complete an assessment first"))
			return
		}
		h.log.Error("protocol generation failed", "user_id", userID, "error", err)
		RespondError(c, http.StatusInternalServerError, "generation_failed", fmt.Errorf("could not generate protocol, try again"))
		return
	}
	RespondOK(c, summary)
}

// GetActive handles GET /api/protocol.
func (h *ProtocolHandler) GetActive(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", fmt.Errorf("authentication required"))
		return
	}

	active, err := h.protocol.GetActiveProtocol(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "fetch_failed", err)
		return
	}
	if active == nil {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("no protocol yet"))
		return
	}
	RespondOK(c, active)
}

func authedUser(c *gin.Context) (uuid.UUID, bool) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, false
	}
	return rd.UserID, true
}
