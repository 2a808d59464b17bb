package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stackroast/stackroast/internal/api/dto"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/utils"
	"github.com/stackroast/stackroast/internal/pkg/validator"
	"github.com/stackroast/stackroast/internal/services"
)

// ScoreHandler handles ad-hoc scoring requests that don't touch saved
// stacks. This is the endpoint anonymous visitors hit from the landing
// page form.
type ScoreHandler struct {
	stacks    *services.StackService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(stacks *services.StackService, log *logger.Logger, val *validator.Validator) *ScoreHandler {
	return &ScoreHandler{
		stacks:    stacks,
		logger:    log,
		validator: val,
	}
}

// Score handles ad-hoc stack scoring
// @Summary Score a list of tools
// @Description Score an ad-hoc list of catalog tool IDs against a context without saving anything
// @Tags Scoring
// @Accept json
// @Produce json
// @Param request body dto.ScoreRequest true "Tools and context"
// @Success 200 {object} scoring.StackScore "Stack score"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Router /score [post]
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req dto.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	score, err := h.stacks.ScoreTools(r.Context(), req.ToolIDs, req.Context)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to score tools")
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, score)
}

// Percentile handles percentile lookups
// @Summary Percentile for a score
// @Description Report where a score lands in the current score distribution
// @Tags Scoring
// @Produce json
// @Param score query int true "Overall score (0-100)"
// @Success 200 {object} map[string]int "Percentile"
// @Failure 400 {object} utils.ErrorResponse "Invalid score"
// @Router /scores/percentile [get]
func (h *ScoreHandler) Percentile(w http.ResponseWriter, r *http.Request) {
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil || score < 0 || score > 100 {
		utils.WriteError(w, errors.BadRequest("score must be an integer between 0 and 100"))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]int{
		"score":      score,
		"percentile": h.stacks.PercentileOf(score),
	})
}
