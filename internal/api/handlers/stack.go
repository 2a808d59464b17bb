package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stackroast/stackroast/internal/api/dto"
	"github.com/stackroast/stackroast/internal/api/middleware"
	"github.com/stackroast/stackroast/internal/domain/stack"
	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/utils"
	"github.com/stackroast/stackroast/internal/pkg/validator"
	"github.com/stackroast/stackroast/internal/services"
)

// StackHandler handles stack CRUD, scoring and roasting requests
type StackHandler struct {
	stacks    stack.Service
	tools     tool.Service
	roasts    *services.RoastService
	logger    *logger.Logger
	validator *validator.Validator
}

// NewStackHandler creates a new stack handler
func NewStackHandler(
	stacks stack.Service,
	tools tool.Service,
	roasts *services.RoastService,
	log *logger.Logger,
	val *validator.Validator,
) *StackHandler {
	return &StackHandler{
		stacks:    stacks,
		tools:     tools,
		roasts:    roasts,
		logger:    log,
		validator: val,
	}
}

// Create handles stack creation
// @Summary Create a stack
// @Description Save a named stack with its tools and usage context
// @Tags Stacks
// @Accept json
// @Produce json
// @Param request body dto.CreateStackRequest true "Stack details"
// @Success 201 {object} stack.Stack "Created stack"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /stacks [post]
func (h *StackHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	var req dto.CreateStackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	st := &stack.Stack{
		UserID:  userID,
		Name:    req.Name,
		ToolIDs: req.ToolIDs,
		Context: req.Context,
	}

	if err := h.stacks.Create(r.Context(), st); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, st)
}

// List handles stack listing for the current user
// @Summary List my stacks
// @Description List the authenticated user's stacks
// @Tags Stacks
// @Produce json
// @Success 200 {array} stack.Stack "Stacks"
// @Security BearerAuth
// @Router /stacks [get]
func (h *StackHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return
	}

	stacks, err := h.stacks.List(r.Context(), stack.Filter{UserID: userID})
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list stacks")
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, stacks)
}

// Get handles single stack retrieval
// @Summary Get a stack
// @Description Get one of the authenticated user's stacks
// @Tags Stacks
// @Produce json
// @Param id path string true "Stack ID"
// @Success 200 {object} stack.Stack "Stack"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id} [get]
func (h *StackHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	utils.WriteSuccess(w, http.StatusOK, st)
}

// Update handles stack updates
// @Summary Update a stack
// @Description Update a stack's name, tools or context
// @Tags Stacks
// @Accept json
// @Produce json
// @Param id path string true "Stack ID"
// @Param request body dto.UpdateStackRequest true "Fields to update"
// @Success 200 {object} stack.Stack "Updated stack"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id} [put]
func (h *StackHandler) Update(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.ToolIDs != nil {
		st.ToolIDs = *req.ToolIDs
	}
	if req.Context != nil {
		st.Context = *req.Context
	}

	if err := h.stacks.Update(r.Context(), st); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, st)
}

// Delete handles stack deletion
// @Summary Delete a stack
// @Description Delete one of the authenticated user's stacks
// @Tags Stacks
// @Param id path string true "Stack ID"
// @Success 200 {object} utils.SuccessResponse "Stack deleted"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id} [delete]
func (h *StackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	if err := h.stacks.Delete(r.Context(), st.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Stack deleted", nil)
}

// Score handles scoring of a saved stack
// @Summary Score a stack
// @Description Score a saved stack against its stored context and record the result
// @Tags Stacks
// @Produce json
// @Param id path string true "Stack ID"
// @Success 200 {object} scoring.StackScore "Stack score"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id}/score [post]
func (h *StackHandler) Score(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	score, err := h.stacks.Score(r.Context(), st.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, score)
}

// History handles score history retrieval
// @Summary Stack score history
// @Description List a stack's recorded scores, newest first
// @Tags Stacks
// @Produce json
// @Param id path string true "Stack ID"
// @Param limit query int false "Maximum records to return"
// @Success 200 {array} stack.ScoreRecord "Score history"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id}/scores [get]
func (h *StackHandler) History(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.stacks.ScoreHistory(r.Context(), st.ID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, records)
}

// Roast handles roast generation for a saved stack
// @Summary Roast a stack
// @Description Generate a humorous critique of a saved stack
// @Tags Stacks
// @Produce json
// @Param id path string true "Stack ID"
// @Success 200 {object} services.Roast "Roast"
// @Failure 404 {object} utils.ErrorResponse "Stack not found"
// @Security BearerAuth
// @Router /stacks/{id}/roast [post]
func (h *StackHandler) Roast(w http.ResponseWriter, r *http.Request) {
	st, ok := h.ownedStack(w, r)
	if !ok {
		return
	}

	score, err := h.stacks.ScoreTools(r.Context(), st.ToolIDs, st.Context)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	tools, err := h.tools.Resolve(r.Context(), st.ToolIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	roast := h.roasts.Generate(r.Context(), tools, score)

	utils.WriteSuccess(w, http.StatusOK, roast)
}

// ownedStack loads the stack from the URL and checks it belongs to the
// authenticated user. A foreign stack reads as not found rather than
// forbidden, so stack IDs don't leak.
func (h *StackHandler) ownedStack(w http.ResponseWriter, r *http.Request) (*stack.Stack, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		utils.WriteError(w, errors.Unauthorized("User not authenticated"))
		return nil, false
	}

	id := chi.URLParam(r, "id")
	st, err := h.stacks.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	if st.UserID != userID {
		utils.WriteError(w, errors.NotFound("Stack"))
		return nil, false
	}
	return st, true
}
