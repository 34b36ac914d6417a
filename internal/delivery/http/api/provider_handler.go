package api

import (
	"net/http"

	"dailywage-backend/internal/delivery/http/middleware"
	"dailywage-backend/internal/domain"
	"dailywage-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	providerUC domain.ProviderUsecase
	listingUC  domain.ListingUsecase
}

// ProviderProfileResponse is returned after saving a provider profile
type ProviderProfileResponse struct {
	Message string                      `json:"message"`
	Profile *domain.ProviderProfileView `json:"profile"`
}

// SeekerListResponse wraps GET /provider/seekers
type SeekerListResponse struct {
	Seekers []domain.SeekerSummary `json:"seekers"`
}

// JobListResponse wraps GET /provider/jobs
type JobListResponse struct {
	Jobs []domain.JobListing `json:"jobs"`
}

// NewProviderHandler registers provider routes on an authenticated group
func NewProviderHandler(protected *gin.RouterGroup, providerUC domain.ProviderUsecase, listingUC domain.ListingUsecase) {
	handler := &ProviderHandler{
		providerUC: providerUC,
		listingUC:  listingUC,
	}

	provider := protected.Group("/provider")
	{
		provider.POST("/profile", handler.SaveProfile)
		provider.GET("/profile", handler.GetProfile)
		provider.GET("/seekers", handler.ListSeekers)
		provider.GET("/jobs", handler.ListJobs)
	}
}

// SaveProfile godoc
// @Summary Create or update the caller's job posting
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body domain.ProviderProfileInput true "Job posting"
// @Success 200 {object} ProviderProfileResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /provider/profile [post]
// @Security BearerAuth
func (h *ProviderHandler) SaveProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var input domain.ProviderProfileInput
	if err := bindJSON(c, &input); err != nil {
		c.Error(err)
		return
	}

	profile, err := h.providerUC.SaveProfile(c.Request.Context(), userID, input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ProviderProfileResponse{
		Message: "Profile saved successfully",
		Profile: profile,
	})
}

// GetProfile godoc
// @Summary Get the caller's job posting
// @Tags Provider
// @Produce json
// @Success 200 {object} domain.ProviderProfileView
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /provider/profile [get]
// @Security BearerAuth
func (h *ProviderHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.providerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListSeekers godoc
// @Summary Browse seekers
// @Description Newest 50 seekers. workType matches any of a seeker's work types, maxBudget caps expected wage, location is a case-insensitive substring.
// @Tags Provider
// @Produce json
// @Param workType query string false "Work type"
// @Param maxBudget query number false "Highest expected wage"
// @Param location query string false "Location contains"
// @Success 200 {object} SeekerListResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /provider/seekers [get]
// @Security BearerAuth
func (h *ProviderHandler) ListSeekers(c *gin.Context) {
	maxBudget, err := budgetParam(c, "maxBudget")
	if err != nil {
		c.Error(err)
		return
	}

	seekers, err := h.listingUC.ListSeekers(c.Request.Context(), domain.SeekerFilter{
		WorkType:  c.Query("workType"),
		MaxBudget: maxBudget,
		Location:  c.Query("location"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SeekerListResponse{Seekers: seekers})
}

// ListJobs godoc
// @Summary Browse job postings
// @Description Newest 50 postings. workType is an exact match, minBudget is a floor on budget per day, location is a case-insensitive substring.
// @Tags Provider
// @Produce json
// @Param workType query string false "Work type"
// @Param minBudget query number false "Lowest budget per day"
// @Param location query string false "Location contains"
// @Success 200 {object} JobListResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /provider/jobs [get]
// @Security BearerAuth
func (h *ProviderHandler) ListJobs(c *gin.Context) {
	minBudget, err := budgetParam(c, "minBudget")
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.listingUC.ListJobs(c.Request.Context(), domain.JobFilter{
		WorkType:  c.Query("workType"),
		MinBudget: minBudget,
		Location:  c.Query("location"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, JobListResponse{Jobs: jobs})
}
