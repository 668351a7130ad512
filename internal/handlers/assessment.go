package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/longevity-backend/internal/logger"
	"github.com/yungbote/longevity-backend/internal/requestdata"
	"github.com/yungbote/longevity-backend/internal/scoring"
	"github.com/yungbote/longevity-backend/internal/services"
)

type AssessmentHandler struct {
	log   *logger.Logger
	score services.ScoreService
}

func NewAssessmentHandler(log *logger.Logger, score services.ScoreService) *AssessmentHandler {
	return &AssessmentHandler{
		log:   log.With("handler", "AssessmentHandler"),
		score: score,
	}
}

type scoreRequest struct {
	Answers map[string]string `json:"answers"`
	Prior   map[string]string `json:"prior,omitempty"`
}

// Score handles POST /api/assessments/:type/score. Public: guests identify
// themselves with an X-Session-ID header, authenticated users through the
// request context set by the auth middleware.
func (h *AssessmentHandler) Score(c *gin.Context) {
	assessmentType := scoring.AssessmentType(strings.TrimSpace(c.Param("type")))
	if assessmentType == "" {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("assessment type required"))
		return
	}

	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	owner, err := resolveOwner(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session", err)
		return
	}

	outcome, err := h.score.ScoreAssessment(c.Request.Context(), owner, assessmentType, req.Answers, req.Prior)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "score_failed", err)
		return
	}
	RespondOK(c, outcome)
}

// GetLatest handles GET /api/assessments/latest: the most recent result per
// assessment type for the caller.
func (h *AssessmentHandler) GetLatest(c *gin.Context) {
	owner, err := resolveOwner(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_session", err)
		return
	}

	results, err := h.score.GetLatestResults(c.Request.Context(), owner)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "fetch_failed", err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}

// resolveOwner prefers the authenticated user; anonymous callers must supply
// a valid X-Session-ID so retakes land on the same guest identity.
func resolveOwner(c *gin.Context) (services.Owner, error) {
	if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
		return services.Owner{UserID: rd.UserID}, nil
	}

	raw := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	if raw == "" {
		return services.Owner{}, fmt.Errorf("missing X-Session-ID header for anonymous request")
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return services.Owner{}, fmt.Errorf("invalid X-Session-ID header")
	}
	return services.Owner{SessionID: sessionID}, nil
}
