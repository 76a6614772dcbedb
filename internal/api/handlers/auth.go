package handlers

import (
	"net/http"

	"github.com/RS-Priyanshu/RSIH/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /auth/register
// @Summary Register a user
// @Description Register an account; role defaults to TEAM_LEADER
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.UserResponse "Created user"
// @Failure 400 {object} ErrorResponse "Missing fields or duplicate email"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// RegisterSpoc handles POST /auth/register-spoc
// @Summary Register a SPOC
// @Description Register an institutional coordinator with a nomination PDF; the account awaits admin verification
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param age formData string false "Age"
// @Param email formData string true "Email"
// @Param phone formData string true "Phone"
// @Param institution formData string true "Institution name"
// @Param password formData string true "Password"
// @Param pdf formData file true "Nomination PDF"
// @Success 201 {object} MessageResponse "Pending verification"
// @Failure 400 {object} ErrorResponse "Missing fields, duplicate email or institution"
// @Router /auth/register-spoc [post]
func (h *AuthHandler) RegisterSpoc(c *gin.Context) {
	var req service.RegisterSpocRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	pdf, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nomination PDF is required"})
		return
	}

	if _, err := h.authService.RegisterSpoc(&req, pdf); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Message: "SPOC registered successfully. Awaiting admin verification.",
	})
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify credentials and issue a signed token valid for two hours
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Credentials"
// @Success 200 {object} service.LoginResponse "Token and user"
// @Failure 400 {object} ErrorResponse "Invalid credentials"
// @Failure 403 {object} ErrorResponse "SPOC not yet verified"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
