package markets

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/streaks/app/api"
)

// Handler handles HTTP requests for markets
type Handler struct {
	service Service
}

// NewHandler creates a new market handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// parseUUIDFromParam extracts and validates UUID from path parameter
func (h *Handler) parseUUIDFromParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		api.BadRequestResponse(c, "Invalid "+paramName+" format")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSONRequest binds JSON request body to the provided struct
func (h *Handler) bindJSONRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return false
	}
	return true
}

// GetMarkets godoc
// @Summary List markets
// @Description Get a paginated list of markets with optional filters
// @Tags markets
// @Produce json
// @Param creator_id query string false "Filter by creator ID"
// @Param resolved query bool false "Filter by resolution state"
// @Param sort_by query string false "Sort field" Enums(created_at,resolution_time) default(created_at)
// @Param sort_order query string false "Sort direction" Enums(asc,desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=[]MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	var filters MarketFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	result, err := h.service.List(c.Request.Context(), &filters)
	if err != nil {
		api.HandleError(c, err, "fetch markets")
		return
	}

	if len(result.Markets) == 0 {
		api.SuccessResponseWithMeta(c, http.StatusOK, "No markets found", []MarketResponse{}, api.PaginationMeta{})
		return
	}

	api.SuccessResponseWithMeta(c, http.StatusOK, "Markets retrieved successfully", result.Markets,
		api.NewPaginationMeta(result.Page, result.PerPage, result.Total))
}

// GetMarketByID godoc
// @Summary Get market details
// @Description Get a market with its pools, implied odds and resolution state
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id} [get]
func (h *Handler) GetMarketByID(c *gin.Context) {
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	market, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		api.HandleError(c, err, "fetch market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market retrieved successfully", market)
}

// CreateMarket godoc
// @Summary Create a market
// @Description Create a market with 2 to 6 outcomes. The creator earns experience for it.
// @Tags markets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMarketRequest true "Market creation request"
// @Success 201 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets [post]
func (h *Handler) CreateMarket(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req CreateMarketRequest
	if !h.bindJSONRequest(c, &req) {
		return
	}

	market, err := h.service.Create(c.Request.Context(), caller, &req)
	if err != nil {
		api.HandleError(c, err, "create market")
		return
	}

	api.CreatedResponse(c, "Market created successfully", market)
}

// ResolveMarket godoc
// @Summary Resolve a market
// @Description Creator sets the winning outcome once the resolution time has passed
// @Tags markets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Param request body ResolveMarketRequest true "Winning outcome"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/resolve [post]
func (h *Handler) ResolveMarket(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	var req ResolveMarketRequest
	if !h.bindJSONRequest(c, &req) {
		return
	}

	market, err := h.service.Resolve(c.Request.Context(), id, caller, *req.WinningOutcome)
	if err != nil {
		api.HandleError(c, err, "resolve market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market resolved successfully", market)
}

// ResolveMarketWithOracle godoc
// @Summary Resolve a market from its price oracle
// @Description Creator resolves a price-conditioned market. Fails with 503 and changes nothing when no usable price is available.
// @Tags markets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 503 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/resolve/oracle [post]
func (h *Handler) ResolveMarketWithOracle(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	market, err := h.service.ResolveWithOracle(c.Request.Context(), id, caller)
	if err != nil {
		api.HandleError(c, err, "resolve market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market resolved successfully", market)
}
