package handlers

import (
	"net/http"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SpocHandler handles SPOC endpoints
type SpocHandler struct {
	spocService service.SpocServiceInterface
}

// NewSpocHandler creates a new SPOC handler
func NewSpocHandler(spocService service.SpocServiceInterface) *SpocHandler {
	return &SpocHandler{spocService: spocService}
}

// RegisterTeam handles POST /spoc/team
// @Summary Register a team
// @Description Register a team with its leader account under the caller's college
// @Tags spoc
// @Accept json
// @Produce json
// @Param team body service.RegisterTeamRequest true "Team and leader data"
// @Success 201 {object} service.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Missing fields or duplicate leader email"
// @Failure 403 {object} ErrorResponse "College does not belong to the caller"
// @Security BearerAuth
// @Router /spoc/team [post]
func (h *SpocHandler) RegisterTeam(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	var req service.RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.spocService.RegisterTeam(claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team registered successfully",
		"team":    team,
	})
}

// GetMyCollege handles GET /spoc/college
// @Summary Get the caller's college
// @Tags spoc
// @Produce json
// @Success 200 {object} service.CollegeResponse "College"
// @Failure 404 {object} ErrorResponse "No college registered for the caller"
// @Security BearerAuth
// @Router /spoc/college [get]
func (h *SpocHandler) GetMyCollege(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	college, err := h.spocService.GetMyCollege(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, college)
}

// GetMyTeams handles GET /spoc/teams
// @Summary List the caller's teams
// @Tags spoc
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Security BearerAuth
// @Router /spoc/teams [get]
func (h *SpocHandler) GetMyTeams(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	teams, err := h.spocService.GetMyTeams(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamsByCollege handles GET /spoc/college/:id/teams
// @Summary List teams of a college
// @Description List teams of a college; the college must belong to the caller
// @Tags spoc
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 403 {object} ErrorResponse "College does not belong to the caller"
// @Security BearerAuth
// @Router /spoc/college/{id}/teams [get]
func (h *SpocHandler) GetTeamsByCollege(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	collegeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid college ID"})
		return
	}

	teams, err := h.spocService.GetTeamsByCollege(claims.UserID, collegeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// CheckTeamSubmission handles GET /spoc/team/:id/submission
// @Summary Check a team's submission
// @Description Report whether a team in the caller's college has submitted an idea
// @Tags spoc
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamSubmissionCheckResponse "Submission status"
// @Failure 403 {object} ErrorResponse "Team does not belong to the caller's college"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /spoc/team/{id}/submission [get]
func (h *SpocHandler) CheckTeamSubmission(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team ID"})
		return
	}

	result, err := h.spocService.CheckTeamSubmission(claims.UserID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
