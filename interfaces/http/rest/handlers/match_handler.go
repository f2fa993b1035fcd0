package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"novena-backend/application/services"
	"novena-backend/pkg/common"
	apperrors "novena-backend/pkg/errors"
)

// MatchHandler serves intention matching requests.
type MatchHandler struct {
	matcher  *services.MatchService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(matcher *services.MatchService, logger *zap.Logger) *MatchHandler {
	return &MatchHandler{
		matcher:  matcher,
		validate: validator.New(),
		logger:   logger,
	}
}

// MatchRequest is the request body for matching an intention.
type MatchRequest struct {
	Intention string `json:"intention" validate:"required,max=2000"`
}

// MatchResponse is the matched novena returned to the client.
type MatchResponse struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	PatronSaint string `json:"patron_saint"`
	MatchReason string `json:"match_reason"`
}

// Match handles POST /api/v1/match. Matching never fails: every
// well-formed request gets a novena back.
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := common.ParseJSONBody(r, &req, 1<<16); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("invalid request body").
			WithCode(common.StandardErrorCodes.BadRequest).
			WithDetails(map[string]interface{}{"error": err.Error()}))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.RespondAppError(w, apperrors.NewValidationError("validation error").
			WithDetails(map[string]interface{}{"error": err.Error()}))
		return
	}

	result := h.matcher.Match(r.Context(), req.Intention)

	userID, _ := common.GetUserID(r.Context())
	h.logger.Info("intention matched",
		zap.String("user_id", userID),
		zap.String("slug", result.Entry.Slug),
		zap.String("patron_saint", result.PatronSaint),
	)

	common.RespondJSON(w, http.StatusOK, MatchResponse{
		Slug:        result.Entry.Slug,
		Title:       result.Entry.Title,
		Category:    string(result.Entry.Category),
		PatronSaint: result.PatronSaint,
		MatchReason: result.MatchReason,
	})
}
