package profiles

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/streaks/app/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description Get the caller's streak, multiplier, level and insurance state
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=ProfileResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/profiles/me [get]
func (h *Handler) GetMyProfile(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	profile, err := h.service.Get(c.Request.Context(), caller)
	if err != nil {
		api.HandleError(c, err, "fetch profile")
		return
	}

	api.SuccessResponse(c, 200, "Profile retrieved successfully", profile)
}

// PurchaseInsurance godoc
// @Summary Buy streak insurance
// @Description Buy a single use policy that stops the next loss from resetting the streak
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 201 {object} api.Response{data=ProfileResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/profiles/me/insurance [post]
func (h *Handler) PurchaseInsurance(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	profile, err := h.service.PurchaseInsurance(c.Request.Context(), caller)
	if err != nil {
		api.HandleError(c, err, "purchase insurance")
		return
	}

	api.CreatedResponse(c, "Insurance purchased successfully", profile)
}
