package credits

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Service exposes balances, history and admin top-ups
type Service struct {
	runner          *unitofwork.Runner
	uow             persistence.UnitOfWork
	ledger          usecase.CreditsLedger
	defaultCurrency string
	logger          coreport.Logger
}

var _ usecase.CreditsUseCase = (*Service)(nil)

// NewService creates a new credits service
func NewService(
	runner *unitofwork.Runner,
	uow persistence.UnitOfWork,
	ledger usecase.CreditsLedger,
	defaultCurrency string,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:          runner,
		uow:             uow,
		ledger:          ledger,
		defaultCurrency: entity.NormalizeCurrency(defaultCurrency),
		logger:          logger,
	}
}

// TopUp credits a user with an admin_adjustment entry and returns the new balance
func (s *Service) TopUp(ctx context.Context, req usecase.TopUpRequest) (*entity.UserCredits, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "admin top-up"
	}

	var balance *entity.UserCredits
	err := s.runner.Do(ctx, "top_up_credits", func(txCtx context.Context) error {
		if _, err := s.ledger.Credit(txCtx, entity.CreditMovement{
			UserID:      req.UserID,
			Amount:      req.Amount,
			Currency:    req.Currency,
			Type:        entity.CreditAdminAdjustment,
			Description: description,
		}); err != nil {
			return err
		}

		var err error
		balance, err = s.uow.GetCreditsRepository(txCtx).Get(txCtx, req.UserID)
		return err
	})
	if err != nil {
		s.logger.Warn("Credits top-up rejected", map[string]any{
			"userId":    req.UserID,
			"errorCode": string(errs.CodeOf(err)),
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Credits topped up", map[string]any{
		"userId":   req.UserID,
		"amount":   req.Amount,
		"balance":  balance.Balance,
		"currency": balance.Currency,
	})
	return balance, nil
}

// GetBalance returns the user's balance, or a zero balance in the default
// currency when the user never had credits
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*entity.UserCredits, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	balance, err := s.uow.GetCreditsRepository(ctx).Get(ctx, userID)
	if errors.Is(err, errs.ErrCreditsNotFound) {
		return entity.ZeroCredits(userID, s.defaultCurrency), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credits balance: %w", err)
	}
	return balance, nil
}

// GetHistory returns ledger entries newest first
func (s *Service) GetHistory(ctx context.Context, userID uint64, limit, offset int) ([]*entity.CreditTransaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.uow.GetCreditsRepository(ctx).ListTransactions(ctx, userID, limit, offset)
}
