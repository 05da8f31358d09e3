package models

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAlreadyResolved   = errors.New("market is already resolved")
	ErrTooEarly          = errors.New("market resolution time has not passed")
	ErrMarketResolved    = errors.New("market is resolved and no longer accepts bets")
	ErrDuplicateBet      = errors.New("user already has a bet on this market")
	ErrMarketNotResolved = errors.New("market is not resolved yet")
	ErrAlreadyClaimed    = errors.New("bet already claimed")
	ErrNotAWinner        = errors.New("bet prediction was incorrect")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOracleUnavailable = errors.New("price oracle unavailable")

	ErrInvalidOutcome  = errors.New("invalid outcome index")
	ErrBettingClosed   = errors.New("market resolution time has passed")
	ErrMarketExists    = errors.New("market already exists for this creator and nonce")
	ErrAlreadySettled  = errors.New("loss already settled for this bet")
	ErrNotALoser       = errors.New("bet did not lose")
	ErrInsuranceActive = errors.New("streak insurance already active")
	ErrRecordNotFound  = errors.New("record not found")

	ErrInvalidQuestion     = errors.New("question must be between 1 and 200 characters")
	ErrInvalidOutcomeLabel = errors.New("outcome labels must be between 1 and 20 characters and unique")
	ErrInvalidOutcomeCount = errors.New("markets need between 2 and 6 outcomes")
	ErrInvalidBetAmount    = errors.New("bet amount must be greater than zero")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrInvalidMarketID     = errors.New("invalid market ID")
	ErrInvalidAccountKind  = errors.New("invalid account kind")
	ErrNegativeBalance     = errors.New("balance cannot be negative")
	ErrUnbalancedPosting   = errors.New("ledger postings must sum to zero")
	ErrInvalidCondition    = errors.New("invalid oracle condition")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrInvalidFeeBps                   = errors.New("fee basis points must be between 0 and 10000")
	ErrInvalidInsuranceCost            = errors.New("insurance cost must be greater than zero")
	ErrInvalidInsuranceDuration        = errors.New("insurance duration must be positive")
	ErrInvalidInsuranceUses            = errors.New("insurance must cover at least one loss")
	ErrInvalidXPReward                 = errors.New("xp rewards cannot be negative")
	ErrInvalidSweepConcurrency         = errors.New("sweep concurrency must be between 1 and 64")
	ErrInvalidSymmetricKey             = errors.New("symmetric key must be exactly 32 characters")
	ErrInvalidRateLimit                = errors.New("invalid rate limit")
	ErrInvalidOracleConfig             = errors.New("invalid oracle configuration")
	ErrInvalidQuestionLength           = errors.New("invalid question length limits")
)
