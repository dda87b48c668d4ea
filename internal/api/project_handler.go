package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elynrose/gpt-cells-app-sub001/internal/console"
	"github.com/elynrose/gpt-cells-app-sub001/internal/core"
	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// ProjectHandler handles the project endpoints. Regular users work inside
// their own subcollection; admins can list across all users.
type ProjectHandler struct {
	projects core.ProjectService
	auditor  core.AuditService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projects core.ProjectService, auditor core.AuditService) *ProjectHandler {
	return &ProjectHandler{projects: projects, auditor: auditor}
}

// AddSheetRequest is the body for appending a sheet to a project.
type AddSheetRequest struct {
	Name string `json:"name" binding:"required"`
}

// mapProjectErrorToStatus maps errors from core.ProjectService to HTTP responses.
func mapProjectErrorToStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrProjectNotFound.Error()})
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: core.ErrUserNotFound.Error()})
	default:
		log.Printf("project handler internal error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), userID, req)
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:projectId
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Project ID is required"})
		return
	}

	project, err := h.projects.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject handles PUT /projects/:projectId
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Project ID is required"})
		return
	}

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), userID, projectID, req)
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:projectId
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Project ID is required"})
		return
	}
	if !requireConfirm(c) {
		return
	}

	if err := h.projects.Delete(c.Request.Context(), userID, projectID); err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSheet handles POST /projects/:projectId/sheets
func (h *ProjectHandler) AddSheet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	projectID := c.Param("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Project ID is required"})
		return
	}

	var req AddSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	project, err := h.projects.AddSheet(c.Request.Context(), userID, projectID, req.Name)
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// ListAllProjects handles GET /admin/projects. Optional q and status
// parameters filter the result.
func (h *ProjectHandler) ListAllProjects(c *gin.Context) {
	projects, err := h.projects.ListAll(c.Request.Context())
	if err != nil {
		mapProjectErrorToStatus(c, err)
		return
	}

	filtered := console.FilterProjects(projects, c.Query("q"), models.ProjectStatus(c.Query("status")))
	c.JSON(http.StatusOK, filtered)
}
