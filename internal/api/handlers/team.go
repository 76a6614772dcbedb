package handlers

import (
	"net/http"

	"github.com/RS-Priyanshu/RSIH/internal/auth"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles team leader endpoints
type TeamHandler struct {
	teamService service.TeamLeaderServiceInterface
}

// NewTeamHandler creates a new team leader handler
func NewTeamHandler(teamService service.TeamLeaderServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// SubmitIdea handles POST /team/submit
// @Summary Submit an idea
// @Description Submit the caller's team idea against a problem statement; one submission per team and problem statement
// @Tags team
// @Accept json
// @Produce json
// @Param submission body service.SubmitIdeaRequest true "Idea submission"
// @Success 201 {object} service.SubmissionResponse "Created submission"
// @Failure 400 {object} ErrorResponse "Missing fields or duplicate submission"
// @Failure 404 {object} ErrorResponse "Team or problem statement not found"
// @Security BearerAuth
// @Router /team/submit [post]
func (h *TeamHandler) SubmitIdea(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	var req service.SubmitIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.teamService.SubmitIdea(claims.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Idea submitted successfully",
		"submission": sub,
	})
}

// GetMySubmissions handles GET /team/submissions
// @Summary List the caller's submissions
// @Tags team
// @Produce json
// @Success 200 {array} service.SubmissionResponse "Submissions"
// @Security BearerAuth
// @Router /team/submissions [get]
func (h *TeamHandler) GetMySubmissions(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	subs, err := h.teamService.GetMySubmissions(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

// GetMyTeam handles GET /team/team
// @Summary Get the caller's team
// @Tags team
// @Produce json
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} ErrorResponse "No team for the caller"
// @Security BearerAuth
// @Router /team/team [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrTokenMissing.Error()})
		return
	}

	team, err := h.teamService.GetMyTeam(claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
