package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/streaks/internal/validator"
	"github.com/joefazee/streaks/models"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorTable is checked in order; the first sentinel matched by errors.Is wins.
var errorTable = []errorMapping{
	{models.ErrRecordNotFound, http.StatusNotFound, "NOT_FOUND"},
	{models.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED"},

	{models.ErrAlreadyResolved, http.StatusConflict, "ALREADY_RESOLVED"},
	{models.ErrMarketResolved, http.StatusConflict, "MARKET_RESOLVED"},
	{models.ErrDuplicateBet, http.StatusConflict, "DUPLICATE_BET"},
	{models.ErrAlreadyClaimed, http.StatusConflict, "ALREADY_CLAIMED"},
	{models.ErrAlreadySettled, http.StatusConflict, "ALREADY_SETTLED"},
	{models.ErrMarketExists, http.StatusConflict, "MARKET_EXISTS"},
	{models.ErrInsuranceActive, http.StatusConflict, "INSURANCE_ACTIVE"},

	{models.ErrTooEarly, http.StatusUnprocessableEntity, "TOO_EARLY"},
	{models.ErrBettingClosed, http.StatusUnprocessableEntity, "BETTING_CLOSED"},
	{models.ErrMarketNotResolved, http.StatusUnprocessableEntity, "MARKET_NOT_RESOLVED"},
	{models.ErrNotAWinner, http.StatusUnprocessableEntity, "NOT_A_WINNER"},
	{models.ErrNotALoser, http.StatusUnprocessableEntity, "NOT_A_LOSER"},
	{models.ErrInsufficientFunds, http.StatusUnprocessableEntity, "INSUFFICIENT_FUNDS"},

	{models.ErrOracleUnavailable, http.StatusServiceUnavailable, "ORACLE_UNAVAILABLE"},

	{models.ErrInvalidOutcome, http.StatusBadRequest, "INVALID_OUTCOME"},
	{models.ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidQuestion, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidOutcomeLabel, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidOutcomeCount, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidBetAmount, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidAmount, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidCondition, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidUserID, http.StatusBadRequest, "INVALID_INPUT"},
	{models.ErrInvalidMarketID, http.StatusBadRequest, "INVALID_INPUT"},
}

// StatusFor returns the HTTP status and error code for err.
// Unknown errors map to 500.
func StatusFor(err error) (int, string) {
	for _, m := range errorTable {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

// HandleError writes the error envelope for a failed service call. Internal
// failures are reported as "Failed to <operation>" without their cause.
func HandleError(c *gin.Context, err error, operation string) {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		ValidationErrorResponse(c, verr)
		return
	}

	status, code := StatusFor(err)
	if status == http.StatusInternalServerError {
		InternalErrorResponse(c, "Failed to "+operation)
		return
	}
	ErrorResponse(c, status, code, err.Error(), nil)
}
