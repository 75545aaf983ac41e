package handler

import (
	"net/http"

	"destinos/internal/delivery/http/response"
	"destinos/internal/domain/entity"
	"destinos/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DestinationHandler serves the catalog and the submission moderation queue.
type DestinationHandler struct {
	destinationUC usecase.DestinationUsecase
}

// NewDestinationHandler is the constructor for DestinationHandler
func NewDestinationHandler(destinationUC usecase.DestinationUsecase) *DestinationHandler {
	return &DestinationHandler{destinationUC: destinationUC}
}

// SubmitDestinationRequest is a destination proposed by a traveler.
type SubmitDestinationRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=200"`
	Category     string `json:"category" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Municipality string `json:"municipality"`
	Description  string `json:"description" validate:"max=2000"`
}

// ListDestinations handles GET /api/destinations
func (h *DestinationHandler) ListDestinations(c echo.Context) error {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return invalidQuery(c, "limit")
	}

	destinations, err := h.destinationUC.ListDestinations(c.Request().Context(), usecase.DestinationFilter{
		Department: c.QueryParam("department"),
		Category:   c.QueryParam("category"),
		Limit:      limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, destinations, "")
}

// SubmitDestination handles POST /api/destinations/submissions
func (h *DestinationHandler) SubmitDestination(c echo.Context) error {
	var req SubmitDestinationRequest
	if ok, err := bindAndValidate(c, &req, "Invalid submission input"); !ok {
		return err
	}

	submission, err := h.destinationUC.SubmitDestination(c.Request().Context(), usecase.SubmitDestinationInput{
		UserID:       req.UserID,
		Name:         req.Name,
		Category:     req.Category,
		Department:   req.Department,
		Municipality: req.Municipality,
		Description:  req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, submission, "Destination submitted for review")
}

// ListSubmissions handles GET /api/admin/submissions
func (h *DestinationHandler) ListSubmissions(c echo.Context) error {
	submissions, err := h.destinationUC.ListSubmissions(c.Request().Context(), entity.SubmissionStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submissions, "")
}

// ApproveSubmission handles POST /api/admin/submissions/:id/approve
func (h *DestinationHandler) ApproveSubmission(c echo.Context) error {
	submission, err := h.destinationUC.ApproveSubmission(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission, "Submission approved")
}

// RejectSubmission handles POST /api/admin/submissions/:id/reject
func (h *DestinationHandler) RejectSubmission(c echo.Context) error {
	submission, err := h.destinationUC.RejectSubmission(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, submission, "Submission rejected")
}
