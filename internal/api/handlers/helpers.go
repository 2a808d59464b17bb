package handlers

import (
	"net/http"
	"strconv"

	"github.com/stackroast/stackroast/internal/pkg/errors"
	"github.com/stackroast/stackroast/internal/pkg/utils"
	"github.com/stackroast/stackroast/internal/scoring"
)

// writeServiceError maps a service error onto the response. Services
// return AppErrors; anything else becomes an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal("Internal server error", err))
}

// contextFromQuery builds a stack context from query parameters.
// Missing or unparseable values are left zero; normalization fills in
// the defaults downstream.
func contextFromQuery(r *http.Request) scoring.StackContext {
	q := r.URL.Query()

	users, _ := strconv.Atoi(q.Get("expected_users"))
	scaling, _ := strconv.ParseBool(q.Get("scaling_needs"))

	return scoring.StackContext{
		ExpectedUsers: users,
		Budget:        scoring.Budget(q.Get("budget")),
		Complexity:    scoring.Complexity(q.Get("complexity")),
		UseCase:       scoring.UseCase(q.Get("use_case")),
		ScalingNeeds:  scaling,
	}
}
