package handlers

import (
	"net/http"

	"github.com/RS-Priyanshu/RSIH/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler handles unauthenticated endpoints
type PublicHandler struct {
	publicService service.PublicServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(publicService service.PublicServiceInterface) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// ListProblemStatements handles GET /public/ps
// @Summary List problem statements
// @Description List all problem statements; served from cache when available
// @Tags public
// @Produce json
// @Success 200 {array} service.ProblemStatementResponse "Problem statements"
// @Router /public/ps [get]
func (h *PublicHandler) ListProblemStatements(c *gin.Context) {
	list, err := h.publicService.ListProblemStatements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetProblemStatement handles GET /public/ps/:slug
// @Summary Get a problem statement
// @Tags public
// @Produce json
// @Param slug path string true "Problem statement slug"
// @Success 200 {object} service.ProblemStatementResponse "Problem statement"
// @Failure 404 {object} ErrorResponse "Problem statement not found"
// @Router /public/ps/{slug} [get]
func (h *PublicHandler) GetProblemStatement(c *gin.Context) {
	ps, err := h.publicService.GetProblemStatementBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}
