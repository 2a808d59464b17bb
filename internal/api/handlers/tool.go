package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stackroast/stackroast/internal/api/dto"
	"github.com/stackroast/stackroast/internal/domain/tool"
	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/logger"
	"github.com/stackroast/stackroast/internal/pkg/utils"
	"github.com/stackroast/stackroast/internal/pkg/validator"
)

// ToolHandler handles tool catalog requests
type ToolHandler struct {
	service   tool.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewToolHandler creates a new tool handler
func NewToolHandler(service tool.Service, log *logger.Logger, val *validator.Validator) *ToolHandler {
	return &ToolHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// List handles tool catalog listing
// @Summary List catalog tools
// @Description List tools, optionally filtered by category or name search
// @Tags Tools
// @Produce json
// @Param category query string false "Filter by category"
// @Param search query string false "Case-insensitive name search"
// @Success 200 {array} tool.Tool "Tools"
// @Router /tools [get]
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := tool.Filter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	tools, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list tools")
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, tools)
}

// Get handles single tool retrieval
// @Summary Get a catalog tool
// @Description Get one tool by its catalog ID
// @Tags Tools
// @Produce json
// @Param id path string true "Tool ID"
// @Success 200 {object} tool.Tool "Tool"
// @Failure 404 {object} utils.ErrorResponse "Tool not found"
// @Router /tools/{id} [get]
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, t)
}

// Create handles tool creation
// @Summary Add a catalog tool
// @Description Add a tool to the catalog (admin only)
// @Tags Tools
// @Accept json
// @Produce json
// @Param request body dto.CreateToolRequest true "Tool details"
// @Success 201 {object} tool.Tool "Created tool"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 409 {object} utils.ErrorResponse "Tool already exists"
// @Security BearerAuth
// @Router /tools [post]
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	t := &tool.Tool{
		ID:               req.ID,
		Name:             req.Name,
		Category:         req.Category,
		BasePrice:        req.BasePrice,
		SetupHours:       req.SetupHours,
		MaintenanceHours: req.MaintenanceHours,
		ComplexityScore:  req.ComplexityScore,
		LogoURL:          req.LogoURL,
		AffiliateURL:     req.AffiliateURL,
	}

	if err := h.service.Create(r.Context(), t); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, t)
}

// Update handles tool updates
// @Summary Update a catalog tool
// @Description Update a tool's catalog entry (admin only)
// @Tags Tools
// @Accept json
// @Produce json
// @Param id path string true "Tool ID"
// @Param request body dto.UpdateToolRequest true "Fields to update"
// @Success 200 {object} tool.Tool "Updated tool"
// @Failure 404 {object} utils.ErrorResponse "Tool not found"
// @Security BearerAuth
// @Router /tools/{id} [put]
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateToolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	t, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.BasePrice != nil {
		t.BasePrice = *req.BasePrice
	}
	if req.SetupHours != nil {
		t.SetupHours = *req.SetupHours
	}
	if req.MaintenanceHours != nil {
		t.MaintenanceHours = *req.MaintenanceHours
	}
	if req.ComplexityScore != nil {
		t.ComplexityScore = *req.ComplexityScore
	}
	if req.LogoURL != nil {
		t.LogoURL = *req.LogoURL
	}
	if req.AffiliateURL != nil {
		t.AffiliateURL = *req.AffiliateURL
	}

	if err := h.service.Update(r.Context(), t); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, t)
}

// Delete handles tool deletion
// @Summary Delete a catalog tool
// @Description Remove a tool from the catalog (admin only)
// @Tags Tools
// @Param id path string true "Tool ID"
// @Success 200 {object} utils.SuccessResponse "Tool deleted"
// @Failure 404 {object} utils.ErrorResponse "Tool not found"
// @Security BearerAuth
// @Router /tools/{id} [delete]
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Tool deleted", nil)
}
