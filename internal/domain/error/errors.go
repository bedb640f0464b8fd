package error

import (
	"errors"
	"fmt"
)

// Code is the stable, transport independent error code surfaced to callers.
type Code string

// Stable error codes
const (
	GameFull                Code = "GAME_FULL"
	ReservationExpired      Code = "RESERVATION_EXPIRED"
	ReservationMismatch     Code = "RESERVATION_MISMATCH"
	MissingPayment          Code = "MISSING_PAYMENT"
	TransactionConflict     Code = "TRANSACTION_CONFLICT"
	AlreadyRegistered       Code = "ALREADY_REGISTERED"
	NotRegistered           Code = "NOT_REGISTERED"
	InsufficientCredits     Code = "INSUFFICIENT_CREDITS"
	CreditsCurrencyMismatch Code = "CREDITS_CURRENCY_MISMATCH"
	InvalidAmount           Code = "INVALID_AMOUNT"
	GameNotFound            Code = "GAME_NOT_FOUND"
	GameStarted             Code = "GAME_STARTED"
	InvalidRequest          Code = "INVALID_REQUEST"
	Unauthorized            Code = "UNAUTHORIZED"
	Forbidden               Code = "FORBIDDEN"
	ConcurrentUpdate        Code = "CONCURRENT_UPDATE"
	Internal                Code = "INTERNAL"
)

// Numeric error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount           = 4001
	CodeInvalidRequest          = 4002
	CodeUnauthorized            = 4010
	CodeInsufficientCredits     = 4020
	CodeCreditsCurrencyMismatch = 4021
	CodeForbidden               = 4030
	CodeGameNotFound            = 4040
	CodeNotRegistered           = 4041
	CodeGameFull                = 4090
	CodeReservationExpired      = 4091
	CodeReservationMismatch     = 4092
	CodeAlreadyRegistered       = 4093
	CodeTransactionConflict     = 4094
	CodeGameStarted             = 4095
	CodeConcurrentUpdate        = 4096
	CodeMissingPayment          = 4220

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Capacity conflicts
var (
	// ErrGameFull is returned when confirmed plus live pending registrations already fill the game
	ErrGameFull = errors.New("game is full")

	// ErrReservationExpired is returned when a pending hold lapsed before confirmation
	ErrReservationExpired = errors.New("reservation has expired")

	// ErrReservationMismatch is returned when the supplied reservation id is not the caller's hold
	ErrReservationMismatch = errors.New("reservation does not match the held registration")

	// ErrGameStarted is returned when a hold is requested for a game that already started
	ErrGameStarted = errors.New("game has already started")
)

// Payment evidence conflicts
var (
	// ErrMissingPayment is returned when a priced confirmation carries no payment evidence
	ErrMissingPayment = errors.New("payment evidence is missing")

	// ErrTransactionConflict is returned when an external charge is already bound to another registration
	ErrTransactionConflict = errors.New("payment transaction is bound to another registration")
)

// Registration state conflicts
var (
	// ErrAlreadyRegistered is returned when the player already holds a confirmed registration
	ErrAlreadyRegistered = errors.New("player is already registered")

	// ErrNotRegistered is returned when the operation needs a registration the player does not have
	ErrNotRegistered = errors.New("player is not registered")
)

// Ledger conflicts
var (
	// ErrInsufficientCredits is returned when a debit exceeds the available balance
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrCreditsCurrencyMismatch is returned when an operation currency differs from the ledger currency
	ErrCreditsCurrencyMismatch = errors.New("credits currency mismatch")

	// ErrInvalidAmount is returned for non-positive or malformed amounts
	ErrInvalidAmount = errors.New("invalid amount")
)

// Lookup and request errors
var (
	ErrGameNotFound         = errors.New("game not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTransactionNotFound  = errors.New("payment transaction not found")
	ErrCreditsNotFound      = errors.New("credits account not found")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrInvalidGameID        = errors.New("game ID must be positive")
	ErrInvalidPlayerID      = errors.New("player ID must be positive")
	ErrUnauthorized         = errors.New("authentication required")
	ErrForbidden            = errors.New("operation not permitted")
)

// Infrastructure errors
var (
	// ErrConcurrentUpdate is returned when the store aborted a unit of work because of a
	// conflicting concurrent one. The whole operation can be retried.
	ErrConcurrentUpdate = errors.New("concurrent update, retry the operation")

	// ErrDuplicateKey is returned by repositories when a unique constraint rejected a write
	ErrDuplicateKey = errors.New("unique constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// CodeOf returns the stable error code for err
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrGameFull):
		return GameFull
	case errors.Is(err, ErrReservationExpired):
		return ReservationExpired
	case errors.Is(err, ErrReservationMismatch):
		return ReservationMismatch
	case errors.Is(err, ErrMissingPayment):
		return MissingPayment
	case errors.Is(err, ErrTransactionConflict):
		return TransactionConflict
	case errors.Is(err, ErrAlreadyRegistered):
		return AlreadyRegistered
	case errors.Is(err, ErrNotRegistered), errors.Is(err, ErrRegistrationNotFound):
		return NotRegistered
	case errors.Is(err, ErrInsufficientCredits):
		return InsufficientCredits
	case errors.Is(err, ErrCreditsCurrencyMismatch):
		return CreditsCurrencyMismatch
	case errors.Is(err, ErrInvalidAmount):
		return InvalidAmount
	case errors.Is(err, ErrGameNotFound):
		return GameNotFound
	case errors.Is(err, ErrGameStarted):
		return GameStarted
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidGameID), errors.Is(err, ErrInvalidPlayerID):
		return InvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized
	case errors.Is(err, ErrForbidden):
		return Forbidden
	case errors.Is(err, ErrConcurrentUpdate):
		return ConcurrentUpdate
	default:
		return Internal
	}
}

// ErrorCode returns standardized numeric codes for known errors
func ErrorCode(err error) int {
	switch CodeOf(err) {
	case GameFull:
		return CodeGameFull
	case ReservationExpired:
		return CodeReservationExpired
	case ReservationMismatch:
		return CodeReservationMismatch
	case MissingPayment:
		return CodeMissingPayment
	case TransactionConflict:
		return CodeTransactionConflict
	case AlreadyRegistered:
		return CodeAlreadyRegistered
	case NotRegistered:
		return CodeNotRegistered
	case InsufficientCredits:
		return CodeInsufficientCredits
	case CreditsCurrencyMismatch:
		return CodeCreditsCurrencyMismatch
	case InvalidAmount:
		return CodeInvalidAmount
	case GameNotFound:
		return CodeGameNotFound
	case GameStarted:
		return CodeGameStarted
	case InvalidRequest:
		return CodeInvalidRequest
	case Unauthorized:
		return CodeUnauthorized
	case Forbidden:
		return CodeForbidden
	case ConcurrentUpdate:
		return CodeConcurrentUpdate
	default:
		return CodeInternalServer
	}
}

// CapacityError carries the occupancy snapshot that caused a GAME_FULL rejection
type CapacityError struct {
	GameID     uint64
	Confirmed  int
	Pending    int
	MaxPlayers int
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("game %d is full: %d confirmed + %d pending of %d",
		e.GameID, e.Confirmed, e.Pending, e.MaxPlayers)
}

// Is checks if the target error is ErrGameFull
func (e *CapacityError) Is(target error) bool {
	return target == ErrGameFull
}

// LogFields returns a map of fields for structured logging
func (e *CapacityError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "capacity",
		"game_id":     e.GameID,
		"confirmed":   e.Confirmed,
		"pending":     e.Pending,
		"max_players": e.MaxPlayers,
		"error_code":  string(GameFull),
	}
}

// NewCapacityError creates a detailed GAME_FULL error
func NewCapacityError(gameID uint64, confirmed, pending, maxPlayers int) error {
	return &CapacityError{
		GameID:     gameID,
		Confirmed:  confirmed,
		Pending:    pending,
		MaxPlayers: maxPlayers,
	}
}

// RegistrationError wraps a registration state rejection with the identifiers involved
type RegistrationError struct {
	RegistrationID string
	GameID         uint64
	PlayerID       uint64
	Reason         string
	Err            error
}

// Error implements the error interface
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration %s (game %d, player %d): %s: %v",
		e.RegistrationID, e.GameID, e.PlayerID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RegistrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "registration",
		"registration_id": e.RegistrationID,
		"game_id":         e.GameID,
		"player_id":       e.PlayerID,
		"reason":          e.Reason,
		"error":           e.Err.Error(),
		"error_code":      string(CodeOf(e.Err)),
	}
}

// NewRegistrationError creates a detailed registration error
func NewRegistrationError(registrationID string, gameID, playerID uint64, reason string, err error) error {
	return &RegistrationError{
		RegistrationID: registrationID,
		GameID:         gameID,
		PlayerID:       playerID,
		Reason:         reason,
		Err:            err,
	}
}

// InsufficientCreditsError provides detailed information about a rejected debit
type InsufficientCreditsError struct {
	UserID   uint64
	Amount   int64
	Balance  int64
	Currency string
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %d: required %d %s, available %d",
		e.UserID, e.Amount, e.Currency, e.Balance)
}

// Is checks if the target error is ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"currency":   e.Currency,
		"error_code": string(InsufficientCredits),
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID uint64, amount, balance int64, currency string) error {
	return &InsufficientCreditsError{
		UserID:   userID,
		Amount:   amount,
		Balance:  balance,
		Currency: currency,
	}
}

// CurrencyMismatchError is returned when an operation currency differs from the account currency
type CurrencyMismatchError struct {
	UserID          uint64
	AccountCurrency string
	Requested       string
}

// Error implements the error interface
func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("credits for user %d are held in %s, operation used %s",
		e.UserID, e.AccountCurrency, e.Requested)
}

// Is checks if the target error is ErrCreditsCurrencyMismatch
func (e *CurrencyMismatchError) Is(target error) bool {
	return target == ErrCreditsCurrencyMismatch
}

// NewCurrencyMismatchError creates a new currency mismatch error
func NewCurrencyMismatchError(userID uint64, accountCurrency, requested string) error {
	return &CurrencyMismatchError{
		UserID:          userID,
		AccountCurrency: accountCurrency,
		Requested:       requested,
	}
}

// TransactionConflictError reports an external charge that is already bound elsewhere
type TransactionConflictError struct {
	Provider              string
	ExternalTransactionID string
	RegistrationID        string
	BoundRegistrationID   string
}

// Error implements the error interface
func (e *TransactionConflictError) Error() string {
	return fmt.Sprintf("transaction %s/%s is bound to registration %s, not %s",
		e.Provider, e.ExternalTransactionID, e.BoundRegistrationID, e.RegistrationID)
}

// Is checks if the target error is ErrTransactionConflict
func (e *TransactionConflictError) Is(target error) bool {
	return target == ErrTransactionConflict
}

// LogFields returns a map of fields for structured logging
func (e *TransactionConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":            "transaction_conflict",
		"provider":              e.Provider,
		"transaction_id":        e.ExternalTransactionID,
		"registration_id":       e.RegistrationID,
		"bound_registration_id": e.BoundRegistrationID,
		"error_code":            string(TransactionConflict),
	}
}

// NewTransactionConflictError creates a new transaction conflict error
func NewTransactionConflictError(provider, externalID, registrationID, boundRegistrationID string) error {
	return &TransactionConflictError{
		Provider:              provider,
		ExternalTransactionID: externalID,
		RegistrationID:        registrationID,
		BoundRegistrationID:   boundRegistrationID,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrGameNotFound) ||
		errors.Is(err, ErrRegistrationNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrCreditsNotFound)
}

// IsRetryable reports whether the whole operation can safely be retried by the caller
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, ErrDatabaseConnection)
}

// IsDomainError reports whether err carries a stable code other than INTERNAL
func IsDomainError(err error) bool {
	return err != nil && CodeOf(err) != Internal
}
