package markets

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
	r.GET("/markets", h.GetMarkets)
	r.GET("/markets/:id", h.GetMarketByID)
	r.POST("/markets", h.CreateMarket)
	r.POST("/markets/:id/resolve", h.ResolveMarket)
	r.POST("/markets/:id/resolve/oracle", h.ResolveMarketWithOracle)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateMarket(t *testing.T) {
	caller := uuid.New()
	body := `{"question":"Will it rain?","outcomes":["YES","NO"],"resolution_time":"2030-01-01T00:00:00Z"}`

	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, caller, mock.MatchedBy(func(r *CreateMarketRequest) bool {
			return r.Question == "Will it rain?" && len(r.Outcomes) == 2
		})).Return(&MarketResponse{ID: uuid.New()}, nil)

		w := serve(newTestRouter(NewHandler(svc), caller), http.MethodPost, "/markets", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate nonce", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Create", mock.Anything, caller, mock.Anything).Return(nil, models.ErrMarketExists)

		w := serve(newTestRouter(NewHandler(svc), caller), http.MethodPost, "/markets", body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), caller), http.MethodPost, "/markets", `{"question":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), uuid.Nil), http.MethodPost, "/markets", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_ResolveMarket(t *testing.T) {
	caller := uuid.New()
	id := uuid.New()

	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"resolved", `{"winning_outcome":0}`, nil, http.StatusOK},
		{"not creator", `{"winning_outcome":0}`, models.ErrUnauthorized, http.StatusForbidden},
		{"twice", `{"winning_outcome":1}`, models.ErrAlreadyResolved, http.StatusConflict},
		{"too early", `{"winning_outcome":0}`, models.ErrTooEarly, http.StatusUnprocessableEntity},
		{"bad index", `{"winning_outcome":9}`, models.ErrInvalidOutcome, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.err != nil {
				svc.On("Resolve", mock.Anything, id, caller, mock.AnythingOfType("int")).Return(nil, tt.err)
			} else {
				svc.On("Resolve", mock.Anything, id, caller, 0).Return(&MarketResponse{ID: id}, nil)
			}

			w := serve(newTestRouter(NewHandler(svc), caller), http.MethodPost, "/markets/"+id.String()+"/resolve", tt.body)
			assert.Equal(t, tt.status, w.Code)
			svc.AssertExpectations(t)
		})
	}

	t.Run("missing outcome", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), caller), http.MethodPost, "/markets/"+id.String()+"/resolve", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		w := serve(newTestRouter(NewHandler(new(MockService)), caller), http.MethodPost, "/markets/nope/resolve", `{"winning_outcome":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_ResolveMarketWithOracle_Unavailable(t *testing.T) {
	caller := uuid.New()
	id := uuid.New()
	svc := new(MockService)
	svc.On("ResolveWithOracle", mock.Anything, id, caller).Return(nil, models.ErrOracleUnavailable)

	w := serve(newTestRouter(NewHandler(svc), caller), http.MethodPost, "/markets/"+id.String()+"/resolve/oracle", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_GetMarkets(t *testing.T) {
	svc := new(MockService)
	svc.On("List", mock.Anything, mock.AnythingOfType("*markets.MarketFilters")).
		Return(&MarketListResponse{Markets: []MarketResponse{{ID: uuid.New()}}, Total: 1, Page: 1, PerPage: 20}, nil)

	w := serve(newTestRouter(NewHandler(svc), uuid.Nil), http.MethodGet, "/markets?resolved=false", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestHandler_GetMarketByID_NotFound(t *testing.T) {
	id := uuid.New()
	svc := new(MockService)
	svc.On("Get", mock.Anything, id).Return(nil, models.ErrRecordNotFound)

	w := serve(newTestRouter(NewHandler(svc), uuid.Nil), http.MethodGet, "/markets/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
