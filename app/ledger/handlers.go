package ledger

import (
	"strconv"

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

// GetBalance godoc
// @Summary Get my balance
// @Description Get the caller's custody balance
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=BalanceResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/ledger/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	balance, err := h.service.Balance(c.Request.Context(), UserAccount(caller))
	if err != nil {
		api.HandleError(c, err, "fetch balance")
		return
	}

	api.SuccessResponse(c, 200, "Balance retrieved successfully", balance)
}

// GetEntries godoc
// @Summary List my ledger entries
// @Description Get a page of the caller's ledger entries, newest first
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(100)
// @Success 200 {object} api.Response{data=[]EntryResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/ledger/entries [get]
func (h *Handler) GetEntries(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))

	result, err := h.service.Entries(c.Request.Context(), UserAccount(caller), page, perPage)
	if err != nil {
		api.HandleError(c, err, "fetch entries")
		return
	}

	api.PaginatedResponse(c, "Entries retrieved successfully", result.Entries,
		api.NewPaginationMeta(result.Page, result.PerPage, result.Total))
}

// Airdrop godoc
// @Summary Airdrop test funds
// @Description Credit the caller's custody account. Only mounted in development.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AirdropRequest true "Airdrop request"
// @Success 200 {object} api.Response{data=BalanceResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/ledger/airdrop [post]
func (h *Handler) Airdrop(c *gin.Context) {
	caller := api.CallerID(c)
	if caller == uuid.Nil {
		api.UnauthorizedResponse(c)
		return
	}

	var req AirdropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	balance, err := h.service.Airdrop(c.Request.Context(), caller, &req)
	if err != nil {
		api.HandleError(c, err, "airdrop")
		return
	}

	api.SuccessResponse(c, 200, "Airdrop credited", balance)
}
