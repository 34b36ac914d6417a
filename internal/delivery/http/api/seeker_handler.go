package api

import (
	"net/http"

	"dailywage-backend/internal/delivery/http/middleware"
	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC domain.SeekerUsecase
}

// SeekerProfileResponse is returned after saving a seeker profile
type SeekerProfileResponse struct {
	Message string                    `json:"message"`
	Profile *domain.SeekerProfileView `json:"profile"`
}

// NewSeekerHandler registers seeker routes on an authenticated group
func NewSeekerHandler(protected *gin.RouterGroup, seekerUC domain.SeekerUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC}

	seeker := protected.Group("/seeker")
	{
		seeker.POST("/profile", handler.SaveProfile)
		seeker.GET("/profile", handler.GetProfile)
	}
}

// SaveProfile godoc
// @Summary Create or update the caller's seeker profile
// @Description Work types and available days replace the stored sets entirely.
// @Tags Seeker
// @Accept json
// @Produce json
// @Param request body domain.SeekerProfileInput true "Seeker profile"
// @Success 200 {object} SeekerProfileResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /seeker/profile [post]
// @Security BearerAuth
func (h *SeekerHandler) SaveProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var input domain.SeekerProfileInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.seekerUC.SaveProfile(c.Request.Context(), userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SeekerProfileResponse{
		Message: "Profile saved successfully",
		Profile: profile,
	})
}

// GetProfile godoc
// @Summary Get the caller's seeker profile
// @Tags Seeker
// @Produce json
// @Success 200 {object} domain.SeekerProfileView
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /seeker/profile [get]
// @Security BearerAuth
func (h *SeekerHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.seekerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
