package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/game-booking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/game-booking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/capacity"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/lifecycle"
	"github.com/amirhossein-jamali/game-booking/internal/domain/usecase/unitofwork"
)

// Service moves registrations between pending, confirmed and cancelled.
// Confirmation is gated on payment evidence; cancellation of a paid seat
// refunds to credits before the registration is touched.
type Service struct {
	runner       *unitofwork.Runner
	uow          persistence.UnitOfWork
	capacity     *capacity.Ledger
	ledger       usecase.CreditsLedger
	notifier     *lifecycle.Notifier
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.RegistrationUseCase = (*Service)(nil)

// NewService creates a new registration service
func NewService(
	runner *unitofwork.Runner,
	uow persistence.UnitOfWork,
	capacityLedger *capacity.Ledger,
	creditsLedger usecase.CreditsLedger,
	notifier *lifecycle.Notifier,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:       runner,
		uow:          uow,
		capacity:     capacityLedger,
		ledger:       creditsLedger,
		notifier:     notifier,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ConfirmRegistration turns the player's hold into a confirmed seat.
// Priced games need a live hold and payment evidence; free games only need headroom.
func (s *Service) ConfirmRegistration(ctx context.Context, req usecase.ConfirmRequest) (*usecase.ConfirmResult, error) {
	if req.GameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if req.PlayerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	var result *usecase.ConfirmResult
	err := s.runner.Do(ctx, "confirm_registration", func(txCtx context.Context) error {
		result = nil
		now := s.timeProvider.Now()

		game, err := s.uow.GetGameRepository(txCtx).GetForUpdate(txCtx, req.GameID)
		if err != nil {
			return err
		}

		registrations := s.uow.GetRegistrationRepository(txCtx)
		existing, err := registrations.GetActive(txCtx, req.GameID, req.PlayerID)
		if err != nil && !errors.Is(err, errs.ErrRegistrationNotFound) {
			return err
		}

		if game.IsFree() {
			reg, err := s.confirmFree(txCtx, registrations, existing, game, req.PlayerID, now)
			if err != nil {
				return err
			}
			result = &usecase.ConfirmResult{Registration: reg}
			return nil
		}

		reg, err := checkPaidHold(existing, req, now)
		if err != nil {
			return err
		}

		transaction, err := s.settlePayment(txCtx, game, reg, req.Evidence, now)
		if err != nil {
			return err
		}

		if err := reg.Confirm(now, true); err != nil {
			return err
		}
		if err := registrations.Update(txCtx, reg); err != nil {
			return err
		}
		if err := s.capacity.RecordConfirmed(txCtx, game.ID); err != nil {
			return err
		}

		result = &usecase.ConfirmResult{Registration: reg, Transaction: transaction}
		return nil
	})
	if err != nil {
		s.logReject("Registration confirmation rejected", req.GameID, req.PlayerID, err)
		return nil, err
	}

	s.notifier.RegistrationChanged(ctx, entity.EventRegistrationConfirmed, result.Registration)

	fields := map[string]any{
		"gameId":         req.GameID,
		"playerId":       req.PlayerID,
		"registrationId": result.Registration.ID,
		"paymentStatus":  string(result.Registration.PaymentStatus),
	}
	if result.Transaction != nil {
		fields["provider"] = result.Transaction.Provider
		fields["transactionId"] = result.Transaction.ExternalTransactionID
	}
	s.logger.Info("Registration confirmed", fields)

	return result, nil
}

// confirmFree admits a player to a free game. A live hold of the player
// already counts toward capacity and is promoted as is.
func (s *Service) confirmFree(
	ctx context.Context,
	registrations persistence.RegistrationRepository,
	existing *entity.Registration,
	game *entity.Game,
	playerID uint64,
	now time.Time,
) (*entity.Registration, error) {
	reg := existing
	switch {
	case reg != nil && reg.IsConfirmed():
		return nil, errs.NewRegistrationError(reg.ID, game.ID, playerID, "already confirmed", errs.ErrAlreadyRegistered)

	case reg != nil && reg.IsLiveHold(now):
		// seat already counted

	default:
		if game.HasStarted(now) {
			return nil, fmt.Errorf("%w: game %d has already started", errs.ErrGameStarted, game.ID)
		}
		if _, err := s.capacity.EnsureHeadroom(ctx, game, now); err != nil {
			return nil, err
		}
	}

	if reg == nil {
		reg = entity.NewConfirmedRegistration(s.idGenerator.NewID(), game.ID, playerID, now)
		if err := registrations.Create(ctx, reg); err != nil {
			return nil, err
		}
	} else {
		if err := reg.Confirm(now, false); err != nil {
			return nil, err
		}
		if err := registrations.Update(ctx, reg); err != nil {
			return nil, err
		}
	}

	if err := s.capacity.RecordConfirmed(ctx, game.ID); err != nil {
		return nil, err
	}
	return reg, nil
}

// checkPaidHold validates the hold presented for a priced game
func checkPaidHold(existing *entity.Registration, req usecase.ConfirmRequest, now time.Time) (*entity.Registration, error) {
	evidence := req.Evidence

	if existing == nil {
		if evidence.ReservationID != nil && *evidence.ReservationID != "" {
			// the hold lapsed and was swept
			return nil, errs.NewRegistrationError(*evidence.ReservationID, req.GameID, req.PlayerID, "hold no longer exists", errs.ErrReservationExpired)
		}
		return nil, errs.NewRegistrationError("", req.GameID, req.PlayerID, "no reservation to confirm", errs.ErrNotRegistered)
	}

	if existing.IsConfirmed() {
		return nil, errs.NewRegistrationError(existing.ID, req.GameID, req.PlayerID, "already confirmed", errs.ErrAlreadyRegistered)
	}
	if evidence.ReservationID != nil && *evidence.ReservationID != "" && *evidence.ReservationID != existing.ID {
		return nil, errs.NewRegistrationError(existing.ID, req.GameID, req.PlayerID,
			fmt.Sprintf("reservation %s does not match held reservation", *evidence.ReservationID), errs.ErrReservationMismatch)
	}
	if existing.IsExpired(now) {
		return nil, errs.NewRegistrationError(existing.ID, req.GameID, req.PlayerID, "hold expired", errs.ErrReservationExpired)
	}
	if !evidence.HasPayment() {
		return nil, errs.NewRegistrationError(existing.ID, req.GameID, req.PlayerID, "no transaction id, widget confirmation or credits", errs.ErrMissingPayment)
	}
	return existing, nil
}

// settlePayment records the evidence that pays for reg. An external
// transaction id is bound to reg under the (provider, id) uniqueness
// constraint; useCredits debits the player inside the same unit of work.
// A bare widget confirmation records nothing.
func (s *Service) settlePayment(
	ctx context.Context,
	game *entity.Game,
	reg *entity.Registration,
	evidence entity.PaymentEvidence,
	now time.Time,
) (*entity.PaymentTransaction, error) {
	payments := s.uow.GetPaymentTransactionRepository(ctx)

	switch {
	case evidence.HasTransaction():
		transaction, err := entity.NewPaymentTransaction(
			s.idGenerator.NewID(),
			evidence.ProviderOrDefault(),
			*evidence.TransactionID,
			game.Price,
			game.Currency,
			reg.ID,
			now,
		)
		if err != nil {
			return nil, err
		}
		return s.bindTransaction(ctx, payments, transaction)

	case evidence.UseCredits:
		registrationID := reg.ID
		entry, err := s.ledger.Debit(ctx, entity.CreditMovement{
			UserID:         reg.PlayerID,
			Amount:         game.Price,
			Currency:       game.Currency,
			Type:           entity.CreditUse,
			RegistrationID: &registrationID,
			Description:    fmt.Sprintf("registration for game %d", game.ID),
		})
		if err != nil {
			return nil, err
		}

		transaction, err := entity.NewPaymentTransaction(
			s.idGenerator.NewID(),
			entity.CreditsProvider,
			entry.ID,
			game.Price,
			game.Currency,
			reg.ID,
			now,
		)
		if err != nil {
			return nil, err
		}
		return s.bindTransaction(ctx, payments, transaction)
	}

	return nil, nil
}

// bindTransaction inserts transaction unless its (provider, id) already
// exists. An existing row bound to the same registration is a retry; bound to
// another registration it is a replayed charge.
func (s *Service) bindTransaction(
	ctx context.Context,
	payments persistence.PaymentTransactionRepository,
	transaction *entity.PaymentTransaction,
) (*entity.PaymentTransaction, error) {
	inserted, err := payments.Create(ctx, transaction)
	if err != nil {
		return nil, err
	}
	if inserted {
		return transaction, nil
	}

	existing, err := payments.GetByExternalID(ctx, transaction.Provider, transaction.ExternalTransactionID)
	if err != nil {
		return nil, err
	}
	if !existing.IsBoundTo(transaction.RegistrationID) {
		return nil, errs.NewTransactionConflictError(
			transaction.Provider,
			transaction.ExternalTransactionID,
			transaction.RegistrationID,
			existing.RegistrationID,
		)
	}
	return existing, nil
}

// CancelRegistration cancels the player's confirmed seat. A paid seat is
// refunded to credits first; if the refund fails nothing changes.
func (s *Service) CancelRegistration(ctx context.Context, gameID, playerID uint64) (*usecase.CancelResult, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if playerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	var result *usecase.CancelResult
	err := s.runner.Do(ctx, "cancel_registration", func(txCtx context.Context) error {
		result = nil
		now := s.timeProvider.Now()

		game, err := s.uow.GetGameRepository(txCtx).GetForUpdate(txCtx, gameID)
		if err != nil {
			return err
		}

		registrations := s.uow.GetRegistrationRepository(txCtx)
		reg, err := registrations.GetActive(txCtx, gameID, playerID)
		if errors.Is(err, errs.ErrRegistrationNotFound) {
			return errs.NewRegistrationError("", gameID, playerID, "no confirmed registration", errs.ErrNotRegistered)
		}
		if err != nil {
			return err
		}
		if !reg.IsConfirmed() {
			return errs.NewRegistrationError(reg.ID, gameID, playerID, "registration is not confirmed", errs.ErrNotRegistered)
		}

		result = &usecase.CancelResult{}
		refunded := false
		if reg.RequiresRefund(game) {
			amount, err := s.refundAmount(txCtx, game, reg)
			if err != nil {
				return err
			}

			registrationID := reg.ID
			entry, err := s.ledger.Credit(txCtx, entity.CreditMovement{
				UserID:         playerID,
				Amount:         amount,
				Currency:       game.Currency,
				Type:           entity.CreditRefund,
				RegistrationID: &registrationID,
				Description:    fmt.Sprintf("refund for game %d", game.ID),
			})
			if err != nil {
				return fmt.Errorf("refund failed: %w", err)
			}

			refunded = true
			result.RefundReference = &entry.ID
			result.RefundAmount = amount
		}

		if err := reg.Cancel(now, refunded); err != nil {
			return err
		}
		if err := registrations.Update(txCtx, reg); err != nil {
			return err
		}
		if err := s.capacity.RecordCancelled(txCtx, game.ID); err != nil {
			return err
		}

		result.Registration = reg
		return nil
	})
	if err != nil {
		s.logReject("Registration cancellation rejected", gameID, playerID, err)
		return nil, err
	}

	s.notifier.RegistrationChanged(ctx, entity.EventRegistrationCancelled, result.Registration)

	s.logger.Info("Registration cancelled", map[string]any{
		"gameId":         gameID,
		"playerId":       playerID,
		"registrationId": result.Registration.ID,
		"refundAmount":   result.RefundAmount,
	})

	return result, nil
}

// refundAmount is what was actually charged for reg, falling back to the game
// price when the payment left no transaction row (widget confirmation)
func (s *Service) refundAmount(ctx context.Context, game *entity.Game, reg *entity.Registration) (int64, error) {
	transactions, err := s.uow.GetPaymentTransactionRepository(ctx).ListByRegistration(ctx, reg.ID)
	if err != nil {
		return 0, err
	}

	var paid int64
	for _, t := range transactions {
		if t.Status == entity.PaymentTransactionSucceeded {
			paid += t.Amount
		}
	}
	if paid > 0 {
		return paid, nil
	}
	return game.Price, nil
}

// GetRegistration returns the player's current registration. A lapsed hold
// no longer counts and is reported as NOT_REGISTERED.
func (s *Service) GetRegistration(ctx context.Context, gameID, playerID uint64) (*entity.Registration, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if playerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	reg, err := s.uow.GetRegistrationRepository(ctx).GetActive(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}
	if reg.IsExpired(s.timeProvider.Now()) {
		return nil, errs.NewRegistrationError(reg.ID, gameID, playerID, "hold expired", errs.ErrNotRegistered)
	}
	return reg, nil
}

func (s *Service) logReject(message string, gameID, playerID uint64, err error) {
	fields := map[string]any{
		"gameId":    gameID,
		"playerId":  playerID,
		"errorCode": string(errs.CodeOf(err)),
		"error":     err.Error(),
	}

	var regErr *errs.RegistrationError
	if errors.As(err, &regErr) && regErr.RegistrationID != "" {
		fields["registrationId"] = regErr.RegistrationID
	}

	if errs.IsDomainError(err) {
		s.logger.Info(message, fields)
		return
	}
	s.logger.Error(message, fields)
}
