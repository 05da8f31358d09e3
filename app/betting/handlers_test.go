package betting

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/streaks/app/api"
	"github.com/joefazee/streaks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(h *Handler, caller uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if caller != uuid.Nil {
			api.SetCallerID(c, caller)
		}
		c.Next()
	})
	r.POST("/markets/:id/bets", h.PlaceBet)
	r.GET("/markets/:id/bets", h.GetMarketBets)
	r.GET("/markets/:id/bets/me", h.GetMyBet)
	r.GET("/bets/:id", h.GetBetByID)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_PlaceBet(t *testing.T) {
	caller := uuid.New()
	marketID := uuid.New()
	path := "/markets/" + marketID.String() + "/bets"
	body := `{"outcome_index":0,"amount":"1.5"}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"placed", nil, http.StatusCreated},
		{"duplicate", models.ErrDuplicateBet, http.StatusConflict},
		{"insufficient funds", models.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"closed", models.ErrBettingClosed, http.StatusUnprocessableEntity},
		{"resolved", models.ErrMarketResolved, http.StatusConflict},
		{"unknown market", models.ErrRecordNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			var resp *BetResponse
			if tt.err == nil {
				resp = &BetResponse{ID: uuid.New()}
			}
			svc.On("PlaceBet", mock.Anything, caller, marketID, mock.MatchedBy(func(r *PlaceBetRequest) bool {
				return *r.OutcomeIndex == 0 && r.Amount.String() == "1.5"
			})).Return(resp, tt.err)

			w := serve(newTestRouter(NewHandler(svc), caller), http.MethodPost, path, body)
			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}

	t.Run("missing outcome", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), caller), http.MethodPost, path, `{"amount":"1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad market id", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), caller), http.MethodPost, "/markets/nope/bets", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), uuid.Nil), http.MethodPost, path, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_GetMarketBets(t *testing.T) {
	marketID := uuid.New()
	svc := new(MockService)
	svc.On("ListByMarket", mock.Anything, marketID, 2, 5).
		Return(&BetListResponse{Bets: []BetResponse{{ID: uuid.New()}}, Total: 6, Page: 2, PerPage: 5}, nil)

	w := serve(newTestRouter(NewHandler(svc), uuid.Nil), http.MethodGet,
		"/markets/"+marketID.String()+"/bets?page=2&per_page=5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":6`)
	svc.AssertExpectations(t)
}

func TestHandler_GetMyBet(t *testing.T) {
	caller := uuid.New()
	marketID := uuid.New()

	svc := new(MockService)
	svc.On("GetForUser", mock.Anything, marketID, caller).Return(nil, models.ErrRecordNotFound)

	w := serve(newTestRouter(NewHandler(svc), caller), http.MethodGet, "/markets/"+marketID.String()+"/bets/me", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(newTestRouter(NewHandler(svc), uuid.Nil), http.MethodGet, "/markets/"+marketID.String()+"/bets/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetBetByID(t *testing.T) {
	id := uuid.New()
	svc := new(MockService)
	svc.On("Get", mock.Anything, id).Return(&BetResponse{ID: id}, nil)

	w := serve(newTestRouter(NewHandler(svc), uuid.Nil), http.MethodGet, "/bets/"+id.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}
