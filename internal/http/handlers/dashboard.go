package handlers

import (
	"net/http"

	"voxia/internal/http/middleware"
	"voxia/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin dashboard aggregates and the travel
// request status workflow.
type DashboardHandler struct {
	Workflow func(c *gin.Context) services.WorkflowService
}

// NewDashboardHandler builds per-request workflow services so each carries
// the request id for logging.
func NewDashboardHandler(requests services.TravelRequestStore, users services.EmployeeStore) DashboardHandler {
	return DashboardHandler{
		Workflow: func(c *gin.Context) services.WorkflowService {
			return services.WorkflowService{
				Requests:  requests,
				Users:     users,
				RequestID: middleware.GetRequestID(c),
			}
		},
	}
}

// GET /api/dashboard/employee-count
func (h DashboardHandler) EmployeeCount(c *gin.Context) {
	count, err := h.Workflow(c).EmployeeCount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Employee count retrieved successfully", gin.H{"employeeCount": count})
}

// GET /api/dashboard/employees
func (h DashboardHandler) Employees(c *gin.Context) {
	employees, err := h.Workflow(c).Employees(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	out := make([]map[string]any, 0, len(employees))
	for _, u := range employees {
		out = append(out, u.Public())
	}
	RespondSuccess(c, http.StatusOK, "Employees retrieved successfully", gin.H{"employees": out})
}

// GET /api/dashboard/travel-request-count
func (h DashboardHandler) TravelRequestCount(c *gin.Context) {
	count, err := h.Workflow(c).TravelRequestCount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Travel request count retrieved successfully", gin.H{"travelRequestCount": count})
}

// GET /api/dashboard/pending-travel-request-count
func (h DashboardHandler) PendingTravelRequestCount(c *gin.Context) {
	count, err := h.Workflow(c).PendingTravelRequestCount(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Pending travel request count retrieved successfully", gin.H{"pendingRequestCount": count})
}

// GET /api/dashboard/travel-request-count/:id (owner email)
func (h DashboardHandler) TravelRequestCountForUser(c *gin.Context) {
	email := c.Param("id")
	count, err := h.Workflow(c).TravelRequestCountForOwner(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Travel request count retrieved successfully", gin.H{"travelRequestCount": count})
}

// GET /api/dashboard/accepted-travel-request-count/:id (owner email)
func (h DashboardHandler) AcceptedTravelRequestCountForUser(c *gin.Context) {
	email := c.Param("id")
	count, err := h.Workflow(c).AcceptedTravelRequestCountForOwner(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Accepted travel request count retrieved successfully", gin.H{"acceptedTravelRequestCount": count})
}

// GET /api/dashboard/travel-requests
func (h DashboardHandler) AllTravelRequests(c *gin.Context) {
	requests, err := h.Workflow(c).AllTravelRequests(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Travel requests retrieved successfully", gin.H{"travelRequests": requests})
}

// GET /api/dashboard/accepted-travel-requests
func (h DashboardHandler) AcceptedTravelRequests(c *gin.Context) {
	requests, err := h.Workflow(c).AcceptedTravelRequests(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Accepted travel requests retrieved successfully", gin.H{"acceptedTravelRequests": requests})
}

// GET /api/dashboard/travel-requests/:id (owner email)
func (h DashboardHandler) TravelRequestsForUser(c *gin.Context) {
	email := c.Param("id")
	requests, err := h.Workflow(c).TravelRequestsForOwner(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Travel requests retrieved successfully", gin.H{"travelRequests": requests})
}

// GET /api/dashboard/travel-requests/:id/latest-status (owner email)
func (h DashboardHandler) LatestStatusForUser(c *gin.Context) {
	email := c.Param("id")
	status, err := h.Workflow(c).LatestStatusForOwner(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if status == nil {
		// no requests for this owner: a null payload, not an error
		RespondSuccess(c, http.StatusOK, "No travel requests found", gin.H{"status": nil})
		return
	}
	RespondSuccess(c, http.StatusOK, "Latest travel request status retrieved successfully", gin.H{"status": *status})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/dashboard/travel-requests/:id/status
func (h DashboardHandler) UpdateTravelRequestStatus(c *gin.Context) {
	var req updateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	updated, err := h.Workflow(c).SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, "Travel request status updated successfully", gin.H{"updatedTravelRequest": updated})
}
