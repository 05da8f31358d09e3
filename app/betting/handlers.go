package betting

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/streaks/app/api"
)

// Handler handles HTTP requests for bets
type Handler struct {
	service Service
}

// NewHandler creates a new bet handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) parseUUIDFromParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		api.BadRequestResponse(c, "Invalid "+paramName+" format")
		return uuid.Nil, false
	}
	return id, true
}

// PlaceBet godoc
// @Summary Place a bet
// @Description Stake on one outcome of an open market. A user holds at most one bet per market.
// @Tags bets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body PlaceBetRequest true "Bet request"
// @Success 201 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	marketID, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	var req PlaceBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	bet, err := h.service.PlaceBet(c.Request.Context(), caller, marketID, &req)
	if err != nil {
		api.HandleError(c, err, "place bet")
		return
	}

	api.CreatedResponse(c, "Bet placed successfully", bet)
}

// GetMarketBets godoc
// @Summary List a market's bets
// @Description Get a paginated list of the bets placed on a market, oldest first
// @Tags bets
// @Produce json
// @Param id path string true "Market ID"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=[]BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/bets [get]
func (h *Handler) GetMarketBets(c *gin.Context) {
	marketID, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	result, err := h.service.ListByMarket(c.Request.Context(), marketID, q.Page, q.PerPage)
	if err != nil {
		api.HandleError(c, err, "fetch bets")
		return
	}

	if len(result.Bets) == 0 {
		api.SuccessResponseWithMeta(c, http.StatusOK, "No bets found", []BetResponse{}, api.PaginationMeta{})
		return
	}

	api.SuccessResponseWithMeta(c, http.StatusOK, "Bets retrieved successfully", result.Bets,
		api.NewPaginationMeta(result.Page, result.PerPage, result.Total))
}

// GetMyBet godoc
// @Summary Get the caller's bet on a market
// @Tags bets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/bets/me [get]
func (h *Handler) GetMyBet(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	marketID, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	bet, err := h.service.GetForUser(c.Request.Context(), marketID, caller)
	if err != nil {
		api.HandleError(c, err, "fetch bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet retrieved successfully", bet)
}

// GetBetByID godoc
// @Summary Get a bet
// @Tags bets
// @Produce json
// @Param id path string true "Bet ID"
// @Success 200 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/bets/{id} [get]
func (h *Handler) GetBetByID(c *gin.Context) {
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	bet, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.HandleError(c, err, "fetch bet")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Bet retrieved successfully", bet)
}
