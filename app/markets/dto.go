package markets

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/streaks/internal/sanitizer"
	"github.com/joefazee/streaks/internal/validator"
	"github.com/joefazee/streaks/models"
	"github.com/shopspring/decimal"
)

// OracleConditionRequest ties a two-outcome market to a price condition
// @Description Price condition used for oracle resolution
type OracleConditionRequest struct {
	Symbol     string          `json:"symbol" example:"SOL/USD"`
	Comparison string          `json:"comparison" example:"above" enums:"above,below"`
	Target     decimal.Decimal `json:"target" swaggertype:"string" example:"200"`
}

// CreateMarketRequest represents the request to create a market
// @Description Request payload for creating a new market
type CreateMarketRequest struct {
	// Question shown to bettors, at most 200 characters
	Question string `json:"question" example:"Will SOL close above 200 on Friday?"`

	// Outcomes labels, 2 to 6, each at most 20 characters
	Outcomes []string `json:"outcomes" example:"YES,NO"`

	// ResolutionTime after which the creator may resolve and bets close
	ResolutionTime time.Time `json:"resolution_time"`

	// Nonce distinguishes markets of the same creator. Defaults to a random value.
	Nonce string `json:"nonce,omitempty"`

	Oracle *OracleConditionRequest `json:"oracle,omitempty"`
}

// Sanitize strips markup from the question and labels
func (r *CreateMarketRequest) Sanitize(s sanitizer.HTMLStripperer) {
	r.Question = s.PlainText(r.Question)
	for i := range r.Outcomes {
		r.Outcomes[i] = s.PlainText(r.Outcomes[i])
	}
	r.Nonce = strings.TrimSpace(r.Nonce)
	if r.Oracle != nil {
		r.Oracle.Symbol = strings.ToUpper(strings.TrimSpace(r.Oracle.Symbol))
		r.Oracle.Comparison = strings.ToLower(strings.TrimSpace(r.Oracle.Comparison))
	}
}

// Validate checks the request data against now
func (r *CreateMarketRequest) Validate(v *validator.Validator, now time.Time, maxNonce int) bool {
	v.Check(validator.NotBlank(r.Question), "question", "question is required")
	v.Check(validator.MaxRunes(r.Question, models.MaxQuestionLength), "question", "question must be at most 200 characters")

	v.Check(validator.Between(len(r.Outcomes), models.MinOutcomes, models.MaxOutcomes), "outcomes", "a market needs between 2 and 6 outcomes")
	for _, label := range r.Outcomes {
		v.Check(validator.NotBlank(label), "outcomes", "outcome labels must not be blank")
		v.Check(validator.MaxRunes(label, models.MaxOutcomeLength), "outcomes", "outcome labels must be at most 20 characters")
	}
	v.Check(validator.NoDuplicates(r.Outcomes), "outcomes", "outcome labels must be unique")

	v.Check(r.ResolutionTime.After(now), "resolution_time", "resolution time must be in the future")
	v.Check(validator.MaxRunes(r.Nonce, maxNonce), "nonce", "nonce is too long")

	if r.Oracle != nil {
		v.Check(len(r.Outcomes) == 2, "oracle", "oracle conditions need exactly two outcomes")
		v.Check(validator.NotBlank(r.Oracle.Symbol), "oracle.symbol", "symbol is required")
		v.Check(validator.In(models.Comparison(r.Oracle.Comparison), models.ComparisonAbove, models.ComparisonBelow),
			"oracle.comparison", "comparison must be above or below")
		v.Check(r.Oracle.Target.IsPositive(), "oracle.target", "target must be positive")
	}

	return v.Valid()
}

func (r *CreateMarketRequest) oracleCondition() *models.OracleCondition {
	if r.Oracle == nil {
		return nil
	}
	return &models.OracleCondition{
		Symbol:     r.Oracle.Symbol,
		Comparison: models.Comparison(r.Oracle.Comparison),
		Target:     r.Oracle.Target,
	}
}

// ResolveMarketRequest represents the request to resolve a market
// @Description Winning outcome index chosen by the creator
type ResolveMarketRequest struct {
	WinningOutcome *int `json:"winning_outcome" binding:"required" example:"0"`
}

// MarketFilters narrows market listings
type MarketFilters struct {
	CreatorID *uuid.UUID `form:"creator_id"`
	Resolved  *bool      `form:"resolved"`
	SortBy    string     `form:"sort_by"`
	SortOrder string     `form:"sort_order"`
	Page      int        `form:"page"`
	PerPage   int        `form:"per_page"`
}

// Validate checks the filter values
func (f *MarketFilters) Validate(v *validator.Validator) {
	v.Check(validator.In(f.SortBy, "", "created_at", "resolution_time"), "sort_by", "sort by must be created_at or resolution_time")
	v.Check(validator.In(f.SortOrder, "", "asc", "desc"), "sort_order", "sort order must be either asc or desc")
	v.Check(f.Page >= 0 && f.PerPage >= 0, "page", "page and per_page must not be negative")
}

// OutcomeResponse describes one outcome and its pool
type OutcomeResponse struct {
	Index       int             `json:"index"`
	Label       string          `json:"label"`
	Pool        decimal.Decimal `json:"pool" swaggertype:"string"`
	Probability decimal.Decimal `json:"probability" swaggertype:"string" example:"50"`
	PayoutRatio decimal.Decimal `json:"payout_ratio" swaggertype:"string" example:"2"`
	Winner      bool            `json:"winner"`
}

// OracleConditionResponse mirrors the stored price condition
type OracleConditionResponse struct {
	Symbol     string          `json:"symbol"`
	Comparison string          `json:"comparison"`
	Target     decimal.Decimal `json:"target" swaggertype:"string"`
}

// MarketResponse represents a market in API responses
// @Description Market with its outcome pools and resolution state
type MarketResponse struct {
	ID               uuid.UUID                `json:"id"`
	CreatorID        uuid.UUID                `json:"creator_id"`
	Nonce            string                   `json:"nonce"`
	Question         string                   `json:"question"`
	Outcomes         []OutcomeResponse        `json:"outcomes"`
	TotalPool        decimal.Decimal          `json:"total_pool" swaggertype:"string"`
	ResolutionTime   time.Time                `json:"resolution_time"`
	Resolved         bool                     `json:"resolved"`
	WinningOutcome   *int                     `json:"winning_outcome,omitempty"`
	ResolvedAt       *time.Time               `json:"resolved_at,omitempty"`
	ResolutionSource string                   `json:"resolution_source,omitempty"`
	FeeBpsPlatform   int                      `json:"fee_bps_platform"`
	FeeBpsCreator    int                      `json:"fee_bps_creator"`
	Oracle           *OracleConditionResponse `json:"oracle,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
}

// MarketListResponse is one page of markets
type MarketListResponse struct {
	Markets []MarketResponse `json:"markets"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// ToMarketResponse converts a market model to its response form
func ToMarketResponse(m *models.Market) *MarketResponse {
	resp := &MarketResponse{
		ID:               m.ID,
		CreatorID:        m.CreatorID,
		Nonce:            m.Nonce,
		Question:         m.Question,
		Outcomes:         quoteOutcomes(m),
		TotalPool:        m.TotalPool(),
		ResolutionTime:   m.ResolutionTime,
		Resolved:         m.Resolved,
		WinningOutcome:   m.WinningOutcome,
		ResolvedAt:       m.ResolvedAt,
		ResolutionSource: string(m.ResolutionSource),
		FeeBpsPlatform:   m.FeeBpsPlatform,
		FeeBpsCreator:    m.FeeBpsCreator,
		CreatedAt:        m.CreatedAt,
	}
	if m.Oracle != nil {
		resp.Oracle = &OracleConditionResponse{
			Symbol:     m.Oracle.Symbol,
			Comparison: string(m.Oracle.Comparison),
			Target:     m.Oracle.Target,
		}
	}
	return resp
}

// ToMarketResponseList converts a slice of markets
func ToMarketResponseList(markets []models.Market) []MarketResponse {
	out := make([]MarketResponse, len(markets))
	for i := range markets {
		out[i] = *ToMarketResponse(&markets[i])
	}
	return out
}
