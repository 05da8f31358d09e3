package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxQuestionLength = 200
	MaxOutcomeLength  = 20
	MinOutcomes       = 2
	MaxOutcomes       = 6

	// Outcome indexes used by two-outcome oracle markets.
	YesOutcome = 0
	NoOutcome  = 1
)

// ResolutionSource records how a market was resolved
type ResolutionSource string

const (
	ResolutionManual ResolutionSource = "manual"
	ResolutionOracle ResolutionSource = "oracle"
)

// Comparison is the direction of a price condition
type Comparison string

const (
	ComparisonAbove Comparison = "above"
	ComparisonBelow Comparison = "below"
)

// StringList is a jsonb encoded list of strings
type StringList []string

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// AmountList is a jsonb encoded list of decimals
type AmountList []decimal.Decimal

// Value implements driver.Valuer interface
func (l AmountList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]decimal.Decimal(l))
}

// Scan implements sql.Scanner interface
func (l *AmountList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// OracleCondition describes a price condition that can resolve a two-outcome market.
// A true condition resolves to YesOutcome, a false one to NoOutcome.
type OracleCondition struct {
	Symbol     string          `json:"symbol"`
	Comparison Comparison      `json:"comparison"`
	Target     decimal.Decimal `json:"target"`
}

// Value implements driver.Valuer interface
func (o OracleCondition) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan implements sql.Scanner interface
func (o *OracleCondition) Scan(value interface{}) error {
	return scanJSON(value, o)
}

// Validate checks the condition is well formed
func (o *OracleCondition) Validate() error {
	if o.Symbol == "" || !o.Target.IsPositive() {
		return ErrInvalidCondition
	}
	if o.Comparison != ComparisonAbove && o.Comparison != ComparisonBelow {
		return ErrInvalidCondition
	}
	return nil
}

// Evaluate reports whether price satisfies the condition. Both bounds are inclusive.
func (o *OracleCondition) Evaluate(price decimal.Decimal) bool {
	if o.Comparison == ComparisonAbove {
		return price.GreaterThanOrEqual(o.Target)
	}
	return price.LessThanOrEqual(o.Target)
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return errors.New("unsupported json column type")
}

// Market is a wager market with 2-6 outcomes and one pari-mutuel pool per outcome
type Market struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_markets_creator_nonce" json:"creator_id"`
	Nonce            string           `gorm:"type:varchar(64);not null;uniqueIndex:idx_markets_creator_nonce" json:"nonce"`
	Question         string           `gorm:"type:varchar(200);not null" json:"question"`
	Outcomes         StringList       `gorm:"type:jsonb;not null" json:"outcomes"`
	Pools            AmountList       `gorm:"type:jsonb;not null" json:"pools"`
	ResolutionTime   time.Time        `gorm:"type:timestamptz;not null;index" json:"resolution_time"`
	Resolved         bool             `gorm:"not null;default:false;index" json:"resolved"`
	WinningOutcome   *int             `json:"winning_outcome"`
	ResolvedAt       *time.Time       `gorm:"type:timestamptz" json:"resolved_at"`
	ResolutionSource ResolutionSource `gorm:"type:varchar(20)" json:"resolution_source,omitempty"`
	FeeBpsPlatform   int              `gorm:"not null;default:200" json:"fee_bps_platform"`
	FeeBpsCreator    int              `gorm:"not null;default:200" json:"fee_bps_creator"`
	Oracle           *OracleCondition `gorm:"type:jsonb" json:"oracle,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Market model
func (*Market) TableName() string {
	return "markets"
}

// BeforeCreate sets up the model before creation
func (m *Market) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if len(m.Pools) == 0 {
		m.Pools = make(AmountList, len(m.Outcomes))
	}
	return nil
}

// OutcomeCount returns the number of outcomes
func (m *Market) OutcomeCount() int {
	return len(m.Outcomes)
}

// HasOutcome reports whether i is a valid outcome index
func (m *Market) HasOutcome(i int) bool {
	return i >= 0 && i < len(m.Outcomes)
}

// PoolFor returns the amount staked on outcome i
func (m *Market) PoolFor(i int) decimal.Decimal {
	if i < 0 || i >= len(m.Pools) {
		return decimal.Zero
	}
	return m.Pools[i]
}

// TotalPool is the sum of every outcome pool
func (m *Market) TotalPool() decimal.Decimal {
	total := decimal.Zero
	for _, p := range m.Pools {
		total = total.Add(p)
	}
	return total
}

// AddToPool credits amount to outcome i
func (m *Market) AddToPool(i int, amount decimal.Decimal) error {
	if !m.HasOutcome(i) {
		return ErrInvalidOutcome
	}
	if !amount.IsPositive() {
		return ErrInvalidBetAmount
	}
	for len(m.Pools) < len(m.Outcomes) {
		m.Pools = append(m.Pools, decimal.Zero)
	}
	m.Pools[i] = m.Pools[i].Add(amount)
	return nil
}

// Resolve fixes the winning outcome. It can only succeed once.
func (m *Market) Resolve(winner int, source ResolutionSource, at time.Time) error {
	if m.Resolved {
		return ErrAlreadyResolved
	}
	if !m.HasOutcome(winner) {
		return ErrInvalidOutcome
	}
	m.Resolved = true
	m.WinningOutcome = &winner
	m.ResolvedAt = &at
	m.ResolutionSource = source
	return nil
}

// IsWinningOutcome reports whether i is the resolved winner
func (m *Market) IsWinningOutcome(i int) bool {
	return m.Resolved && m.WinningOutcome != nil && *m.WinningOutcome == i
}

// IsCreator reports whether user created the market
func (m *Market) IsCreator(user uuid.UUID) bool {
	return m.CreatorID == user
}

// Validate performs validation on the market model
func (m *Market) Validate() error {
	if m.CreatorID == uuid.Nil {
		return ErrInvalidUserID
	}
	if m.Question == "" || len([]rune(m.Question)) > MaxQuestionLength {
		return ErrInvalidQuestion
	}
	if len(m.Outcomes) < MinOutcomes || len(m.Outcomes) > MaxOutcomes {
		return ErrInvalidOutcomeCount
	}
	if len(m.Pools) != 0 && len(m.Pools) != len(m.Outcomes) {
		return ErrInvalidOutcomeCount
	}
	seen := make(map[string]bool, len(m.Outcomes))
	for _, o := range m.Outcomes {
		if o == "" || len([]rune(o)) > MaxOutcomeLength || seen[o] {
			return ErrInvalidOutcomeLabel
		}
		seen[o] = true
	}
	if m.Resolved != (m.WinningOutcome != nil) {
		return ErrInvalidOutcome
	}
	if m.WinningOutcome != nil && !m.HasOutcome(*m.WinningOutcome) {
		return ErrInvalidOutcome
	}
	return nil
}
