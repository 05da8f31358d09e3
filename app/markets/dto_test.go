package markets

import (
	"testing"
	"time"

	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validRequest(now time.Time) *CreateMarketRequest {
	return &CreateMarketRequest{
		Question:       "Will SOL close above 200 on Friday?",
		Outcomes:       []string{"YES", "NO"},
		ResolutionTime: now.Add(24 * time.Hour),
	}
}

func TestCreateMarketRequest_Sanitize(t *testing.T) {
	req := &CreateMarketRequest{
		Question: "  <b>Will BTC & ETH</b> rally?<script>alert(1)</script> ",
		Outcomes: []string{"<i>YES</i>", " NO "},
		Nonce:    " n-1 ",
		Oracle:   &OracleConditionRequest{Symbol: " sol/usd ", Comparison: "ABOVE"},
	}
	req.Sanitize(sanitizer.NewHTMLStripper())

	assert.Equal(t, "Will BTC & ETH rally?", req.Question)
	assert.Equal(t, []string{"YES", "NO"}, req.Outcomes)
	assert.Equal(t, "n-1", req.Nonce)
	assert.Equal(t, "SOL/USD", req.Oracle.Symbol)
	assert.Equal(t, "above", req.Oracle.Comparison)
}

func TestCreateMarketRequest_SanitizeKeepsLessThan(t *testing.T) {
	req := &CreateMarketRequest{Question: "Is x<y by Friday?", Outcomes: []string{"x<y", "x>=y"}}
	req.Sanitize(sanitizer.NewHTMLStripper())

	assert.Equal(t, "Is x<y by Friday?", req.Question)
	assert.Equal(t, []string{"x<y", "x>=y"}, req.Outcomes)
}

func TestCreateMarketRequest_Validate(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(*CreateMarketRequest)
		field  string
	}{
		{"valid", func(*CreateMarketRequest) {}, ""},
		{"blank question", func(r *CreateMarketRequest) { r.Question = "   " }, "question"},
		{"long question", func(r *CreateMarketRequest) { r.Question = string(make([]rune, 201)) }, "question"},
		{"one outcome", func(r *CreateMarketRequest) { r.Outcomes = []string{"YES"} }, "outcomes"},
		{"seven outcomes", func(r *CreateMarketRequest) { r.Outcomes = []string{"a", "b", "c", "d", "e", "f", "g"} }, "outcomes"},
		{"six outcomes", func(r *CreateMarketRequest) { r.Outcomes = []string{"a", "b", "c", "d", "e", "f"} }, ""},
		{"duplicate labels", func(r *CreateMarketRequest) { r.Outcomes = []string{"YES", "YES"} }, "outcomes"},
		{"long label", func(r *CreateMarketRequest) { r.Outcomes = []string{"YES", "a label over twenty runes"} }, "outcomes"},
		{"blank label", func(r *CreateMarketRequest) { r.Outcomes = []string{"YES", ""} }, "outcomes"},
		{"past resolution", func(r *CreateMarketRequest) { r.ResolutionTime = now }, "resolution_time"},
		{"long nonce", func(r *CreateMarketRequest) { r.Nonce = string(make([]rune, 65)) }, "nonce"},
		{"oracle on three outcomes", func(r *CreateMarketRequest) {
			r.Outcomes = []string{"a", "b", "c"}
			r.Oracle = &OracleConditionRequest{Symbol: "SOL/USD", Comparison: "above", Target: decimal.NewFromInt(200)}
		}, "oracle"},
		{"oracle bad comparison", func(r *CreateMarketRequest) {
			r.Oracle = &OracleConditionRequest{Symbol: "SOL/USD", Comparison: "equal", Target: decimal.NewFromInt(200)}
		}, "oracle.comparison"},
		{"oracle zero target", func(r *CreateMarketRequest) {
			r.Oracle = &OracleConditionRequest{Symbol: "SOL/USD", Comparison: "below"}
		}, "oracle.target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(now)
			tt.mutate(req)

			v := validator.New()
			ok := req.Validate(v, now, 64)
			if tt.field == "" {
				assert.True(t, ok, v.Errors)
				return
			}
			assert.False(t, ok)
			assert.Contains(t, v.Errors, tt.field)
		})
	}
}

func TestMarketFilters_Validate(t *testing.T) {
	v := validator.New()
	(&MarketFilters{SortBy: "resolution_time", SortOrder: "asc"}).Validate(v)
	assert.True(t, v.Valid())

	v = validator.New()
	(&MarketFilters{SortBy: "question; DROP TABLE markets", SortOrder: "sideways", Page: -1}).Validate(v)
	assert.Contains(t, v.Errors, "sort_by")
	assert.Contains(t, v.Errors, "sort_order")
	assert.Contains(t, v.Errors, "page")
}
