package api

import (
	"net/http"

	"dailywage-backend/internal/delivery/http/middleware"
	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// NewAuthHandler registers auth routes. public is expected to be rate limited.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)
	protected.GET("/me", handler.Me)
}

// Register godoc
// @Summary Register a provider or seeker
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterInput true "Account details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input domain.RegisterInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	res, err := h.authUC.Register(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Message: "Registered successfully",
		User:    res.User,
		Token:   res.Token,
	})
}

// Login godoc
// @Summary Log in with phone and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body domain.LoginInput true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input domain.LoginInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	res, err := h.authUC.Login(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Message: "Login success",
		User:    res.User,
		Token:   res.Token,
	})
}

// Me godoc
// @Summary Get the logged-in user
// @Tags Auth
// @Produce json
// @Success 200 {object} domain.User
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
