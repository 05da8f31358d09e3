package settlement

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/streaks/app/api"
)

// Handler handles HTTP requests for settlements
type Handler struct {
	service Service
}

// NewHandler creates a new settlement handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// callerAndID returns the authenticated caller and the path id, writing the
// error response when either is missing
func (h *Handler) callerAndID(c *gin.Context) (caller, id uuid.UUID, ok bool) {
	caller = api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid id format")
		return uuid.Nil, uuid.Nil, false
	}
	return caller, id, true
}

// Settle godoc
// @Summary Claim a winning bet
// @Description Pays out the caller's winning bet on a resolved market and extends their streak
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=SettlementResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/settle [post]
func (h *Handler) Settle(c *gin.Context) {
	caller, marketID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	result, err := h.service.Settle(c.Request.Context(), caller, marketID)
	if err != nil {
		api.HandleError(c, err, "settle bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet settled successfully", result)
}

// SettleBet godoc
// @Summary Claim a winning bet by its ID
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bet ID"
// @Success 200 {object} api.Response{data=SettlementResponse}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id}/settle [post]
func (h *Handler) SettleBet(c *gin.Context) {
	caller, betID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	result, err := h.service.SettleBet(c.Request.Context(), betID, caller)
	if err != nil {
		api.HandleError(c, err, "settle bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet settled successfully", result)
}

// SettleLoss godoc
// @Summary Apply a lost bet to the caller's streak
// @Description Resets the caller's streak, or consumes a live insurance policy instead
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=SettlementResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/settle-loss [post]
func (h *Handler) SettleLoss(c *gin.Context) {
	caller, marketID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	result, err := h.service.SettleLoss(c.Request.Context(), caller, marketID)
	if err != nil {
		api.HandleError(c, err, "settle loss")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Loss settled successfully", result)
}

// SweepLosses godoc
// @Summary Settle every outstanding loss on a market
// @Description Market creator applies all unsettled losing bets
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=SweepResponse}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/sweep-losses [post]
func (h *Handler) SweepLosses(c *gin.Context) {
	caller, marketID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	result, err := h.service.SweepLosses(c.Request.Context(), caller, marketID)
	if err != nil {
		api.HandleError(c, err, "sweep losses")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Losses swept successfully", result)
}

// GetMySettlements godoc
// @Summary List the caller's settlements
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=[]SettlementResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/settlements/me [get]
func (h *Handler) GetMySettlements(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	result, err := h.service.ListForUser(c.Request.Context(), caller, q.Page, q.PerPage)
	if err != nil {
		api.HandleError(c, err, "fetch settlements")
		return
	}

	if len(result.Settlements) == 0 {
		api.SuccessResponseWithMeta(c, http.StatusOK, "No settlements found", []SettlementResponse{}, api.PaginationMeta{})
		return
	}

	api.SuccessResponseWithMeta(c, http.StatusOK, "Settlements retrieved successfully", result.Settlements,
		api.NewPaginationMeta(result.Page, result.PerPage, result.Total))
}
