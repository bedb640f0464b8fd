package credits

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
)

// Ledger moves credits in and out of user balances. Each movement is one
// conditional update on the balance row paired with one ledger entry, both
// written through the caller's transactional context.
type Ledger struct {
	uow          persistence.UnitOfWork
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.CreditsLedger = (*Ledger)(nil)

// NewLedger creates a new credits ledger
func NewLedger(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Ledger {
	return &Ledger{
		uow:          uow,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Debit takes movement.Amount from the user. The balance never goes negative:
// the decrement only applies when the row holds enough in the same currency.
func (l *Ledger) Debit(ctx context.Context, movement entity.CreditMovement) (*entity.CreditTransaction, error) {
	movement, err := normalize(movement, entity.CreditUse)
	if err != nil {
		return nil, err
	}

	repo := l.uow.GetCreditsRepository(ctx)
	applied, err := repo.Decrement(ctx, movement.UserID, movement.Currency, movement.Amount)
	if err != nil {
		return nil, err
	}

	if !applied {
		return nil, l.explainRejectedDebit(ctx, repo, movement)
	}

	after, err := repo.Get(ctx, movement.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance after debit: %w", err)
	}

	return l.record(ctx, repo, movement, -movement.Amount, after.Balance)
}

// Credit adds movement.Amount to the user, opening the account in
// movement.Currency when the user has none yet
func (l *Ledger) Credit(ctx context.Context, movement entity.CreditMovement) (*entity.CreditTransaction, error) {
	movement, err := normalize(movement, entity.CreditAdminAdjustment)
	if err != nil {
		return nil, err
	}
	if movement.Type == entity.CreditUse {
		return nil, fmt.Errorf("%w: credit cannot be recorded as %s", errs.ErrInvalidRequest, entity.CreditUse)
	}

	repo := l.uow.GetCreditsRepository(ctx)
	applied, err := repo.IncrementOrCreate(ctx, movement.UserID, movement.Currency, movement.Amount)
	if err != nil {
		return nil, err
	}

	if !applied {
		existing, getErr := repo.Get(ctx, movement.UserID)
		if getErr != nil {
			return nil, getErr
		}
		if existing.Currency != movement.Currency {
			return nil, errs.NewCurrencyMismatchError(movement.UserID, existing.Currency, movement.Currency)
		}
		l.logger.Warn("Credit rejected, balance would overflow", map[string]any{
			"user_id": movement.UserID,
			"balance": existing.Balance,
			"amount":  movement.Amount,
		})
		return nil, fmt.Errorf("%w: balance %d cannot grow by %d", errs.ErrInvalidAmount, existing.Balance, movement.Amount)
	}

	after, err := repo.Get(ctx, movement.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance after credit: %w", err)
	}

	return l.record(ctx, repo, movement, movement.Amount, after.Balance)
}

// explainRejectedDebit inspects the balance row to report why the conditional
// decrement did not apply
func (l *Ledger) explainRejectedDebit(ctx context.Context, repo persistence.CreditsRepository, movement entity.CreditMovement) error {
	current, err := repo.Get(ctx, movement.UserID)
	if errors.Is(err, errs.ErrCreditsNotFound) {
		return errs.NewInsufficientCreditsError(movement.UserID, movement.Amount, 0, movement.Currency)
	}
	if err != nil {
		return err
	}

	if current.Currency != movement.Currency {
		return errs.NewCurrencyMismatchError(movement.UserID, current.Currency, movement.Currency)
	}
	return errs.NewInsufficientCreditsError(movement.UserID, movement.Amount, current.Balance, movement.Currency)
}

// record appends the ledger entry for a balance change of delta that left the balance at after
func (l *Ledger) record(
	ctx context.Context,
	repo persistence.CreditsRepository,
	movement entity.CreditMovement,
	delta int64,
	after int64,
) (*entity.CreditTransaction, error) {
	entry := &entity.CreditTransaction{
		ID:             l.idGenerator.NewID(),
		UserID:         movement.UserID,
		Amount:         delta,
		Type:           movement.Type,
		BalanceBefore:  after - delta,
		BalanceAfter:   after,
		Currency:       movement.Currency,
		RegistrationID: movement.RegistrationID,
		Description:    movement.Description,
		CreatedAt:      l.timeProvider.Now(),
	}

	if err := repo.AppendTransaction(ctx, entry); err != nil {
		return nil, err
	}

	l.logger.Info("Credits ledger entry recorded", map[string]any{
		"userId":        entry.UserID,
		"type":          string(entry.Type),
		"amount":        entry.Amount,
		"balanceBefore": entry.BalanceBefore,
		"balanceAfter":  entry.BalanceAfter,
		"currency":      entry.Currency,
	})
	return entry, nil
}

func normalize(movement entity.CreditMovement, defaultType entity.CreditTransactionType) (entity.CreditMovement, error) {
	if movement.UserID == 0 {
		return movement, errs.ErrInvalidPlayerID
	}
	if err := entity.ValidatePositiveAmount(movement.Amount); err != nil {
		return movement, err
	}

	movement.Currency = entity.NormalizeCurrency(movement.Currency)
	if movement.Currency == "" {
		return movement, fmt.Errorf("%w: currency is required", errs.ErrInvalidRequest)
	}

	if movement.Type == "" {
		movement.Type = defaultType
	}
	if !movement.Type.IsValid() {
		return movement, fmt.Errorf("%w: unknown ledger entry type %q", errs.ErrInvalidRequest, movement.Type)
	}
	return movement, nil
}
