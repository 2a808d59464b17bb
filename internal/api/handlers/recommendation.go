package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stackroast/stackroast/internal/api/dto"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/utils"
	"github.com/stackroast/stackroast/internal/pkg/validator"
	"github.com/stackroast/stackroast/internal/savings"
	"github.com/stackroast/stackroast/internal/scoring"
	"github.com/stackroast/stackroast/internal/services"
)

// RecommendationHandler handles recommendation and savings requests
type RecommendationHandler struct {
	service   *services.RecommendationService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	service *services.RecommendationService,
	log *logger.Logger,
	val *validator.Validator,
) *RecommendationHandler {
	return &RecommendationHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Hosting handles hosting recommendations
// @Summary Recommend a hosting provider
// @Description Recommend a hosting provider for a usage context given as query parameters
// @Tags Recommendations
// @Produce json
// @Param expected_users query int false "Expected user count"
// @Param budget query string false "Budget tier (low, medium, high, enterprise)"
// @Param complexity query string false "Project complexity (low, medium, high)"
// @Param use_case query string false "Stage (side-project, startup, production, enterprise)"
// @Success 200 {object} recommend.Recommendation "Recommendation"
// @Router /recommendations/hosting [get]
func (h *RecommendationHandler) Hosting(w http.ResponseWriter, r *http.Request) {
	rec := h.service.Hosting(contextFromQuery(r))
	utils.WriteSuccess(w, http.StatusOK, rec)
}

// Database handles database recommendations
// @Summary Recommend a database platform
// @Description Recommend a database platform for a usage context given as query parameters
// @Tags Recommendations
// @Produce json
// @Param expected_users query int false "Expected user count"
// @Param budget query string false "Budget tier (low, medium, high, enterprise)"
// @Param complexity query string false "Project complexity (low, medium, high)"
// @Param use_case query string false "Stage (side-project, startup, production, enterprise)"
// @Success 200 {object} recommend.Recommendation "Recommendation"
// @Router /recommendations/database [get]
func (h *RecommendationHandler) Database(w http.ResponseWriter, r *http.Request) {
	rec := h.service.Database(contextFromQuery(r))
	utils.WriteSuccess(w, http.StatusOK, rec)
}

// Explain handles switch explanations
// @Summary Explain a recommended switch
// @Description Narrate why a specific current-to-recommended tool switch makes sense
// @Tags Recommendations
// @Produce json
// @Param current query string true "Current tool name"
// @Param recommended query string true "Recommended tool name"
// @Success 200 {object} map[string]string "Explanation"
// @Router /recommendations/explain [get]
func (h *RecommendationHandler) Explain(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("current")
	recommended := r.URL.Query().Get("recommended")
	if current == "" || recommended == "" {
		utils.WriteError(w, errors.BadRequest("current and recommended are required"))
		return
	}

	explanation := h.service.Explain(current, recommended, scoring.NormalizeContext(contextFromQuery(r)))

	utils.WriteSuccess(w, http.StatusOK, map[string]string{
		"current":     current,
		"recommended": recommended,
		"explanation": explanation,
	})
}

// Savings handles savings calculations
// @Summary Calculate switch savings
// @Description Calculate the money and time saved by a set of tool substitutions
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.SavingsRequest true "Substitutions and migration estimate"
// @Success 200 {object} savings.Breakdown "Savings breakdown"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or unknown tool ID"
// @Router /savings [post]
func (h *RecommendationHandler) Savings(w http.ResponseWriter, r *http.Request) {
	var req dto.SavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	switches := make([]services.SwitchRequest, 0, len(req.Changes))
	for _, c := range req.Changes {
		switches = append(switches, services.SwitchRequest{FromID: c.From, ToID: c.To})
	}

	migration := savings.MigrationEstimate{
		TimeRequired: req.Migration.TimeRequired,
		Complexity:   req.Migration.Complexity,
		Steps:        req.Migration.Steps,
	}

	breakdown, err := h.service.Savings(r.Context(), switches, migration)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, breakdown)
}
