package handlers

import (
	"net/http"

	"github.com/RS-Priyanshu/RSIH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListSpocs handles GET /admin/spocs
// @Summary List SPOC accounts
// @Description List all registered SPOCs, verified and pending
// @Tags admin
// @Produce json
// @Success 200 {array} service.UserResponse "SPOCs"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/spocs [get]
func (h *AdminHandler) ListSpocs(c *gin.Context) {
	spocs, err := h.adminService.ListSpocs()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, spocs)
}

// VerifySpoc handles PUT /admin/spoc/:id/verify
// @Summary Verify a SPOC
// @Description Mark a SPOC account as verified so it can log in
// @Tags admin
// @Produce json
// @Param id path string true "SPOC ID"
// @Success 200 {object} MessageResponse "Verified"
// @Failure 404 {object} ErrorResponse "SPOC not found"
// @Security BearerAuth
// @Router /admin/spoc/{id}/verify [put]
func (h *AdminHandler) VerifySpoc(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid SPOC ID"})
		return
	}

	if err := h.adminService.VerifySpoc(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "SPOC verified successfully"})
}

// CreateProblemStatement handles POST /admin/ps
// @Summary Create a problem statement
// @Tags admin
// @Accept json
// @Produce json
// @Param ps body service.ProblemStatementRequest true "Problem statement"
// @Success 201 {object} service.ProblemStatementResponse "Created"
// @Failure 400 {object} ErrorResponse "Missing fields"
// @Security BearerAuth
// @Router /admin/ps [post]
func (h *AdminHandler) CreateProblemStatement(c *gin.Context) {
	var req service.ProblemStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ps, err := h.adminService.CreateProblemStatement(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ps)
}

// ListProblemStatements handles GET /admin/ps
// @Summary List problem statements
// @Tags admin
// @Produce json
// @Success 200 {array} service.ProblemStatementResponse "Problem statements"
// @Security BearerAuth
// @Router /admin/ps [get]
func (h *AdminHandler) ListProblemStatements(c *gin.Context) {
	list, err := h.adminService.ListProblemStatements()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateProblemStatement handles PUT /admin/ps/:id
// @Summary Update a problem statement
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Problem statement ID"
// @Param ps body service.ProblemStatementRequest true "Updated fields"
// @Success 200 {object} service.ProblemStatementResponse "Updated"
// @Failure 404 {object} ErrorResponse "Problem statement not found"
// @Security BearerAuth
// @Router /admin/ps/{id} [put]
func (h *AdminHandler) UpdateProblemStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem statement ID"})
		return
	}

	var req service.ProblemStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ps, err := h.adminService.UpdateProblemStatement(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ps)
}

// DeleteProblemStatement handles DELETE /admin/ps/:id
// @Summary Delete a problem statement
// @Description Delete a problem statement; refused while submissions reference it
// @Tags admin
// @Produce json
// @Param id path string true "Problem statement ID"
// @Success 200 {object} MessageResponse "Deleted"
// @Failure 400 {object} ErrorResponse "Submissions reference this problem statement"
// @Failure 404 {object} ErrorResponse "Problem statement not found"
// @Security BearerAuth
// @Router /admin/ps/{id} [delete]
func (h *AdminHandler) DeleteProblemStatement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid problem statement ID"})
		return
	}

	if err := h.adminService.DeleteProblemStatement(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Problem statement deleted successfully"})
}

// ListSubmissions handles GET /admin/submissions
// @Summary List all submissions
// @Description List every idea submission with team and problem statement details
// @Tags admin
// @Produce json
// @Success 200 {array} service.SubmissionOverviewResponse "Submissions"
// @Security BearerAuth
// @Router /admin/submissions [get]
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.adminService.ListSubmissions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}
