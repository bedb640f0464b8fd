package payment

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

// Service records what the payment gateway reports about a charge. The
// gateway may call back late, twice, or never; a hold without a callback
// simply lapses.
type Service struct {
	runner        *unitofwork.Runner
	uow           persistence.UnitOfWork
	registrations usecase.RegistrationUseCase
	reservations  usecase.ReservationUseCase
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

var _ usecase.PaymentUseCase = (*Service)(nil)

// NewService creates a new payment signal service
func NewService(
	runner *unitofwork.Runner,
	uow persistence.UnitOfWork,
	registrations usecase.RegistrationUseCase,
	reservations usecase.ReservationUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		runner:        runner,
		uow:           uow,
		registrations: registrations,
		reservations:  reservations,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// HandleSignal dispatches signal by kind
func (s *Service) HandleSignal(ctx context.Context, signal entity.PaymentSignal) (*usecase.PaymentSignalResult, error) {
	if signal.GameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if signal.PlayerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	switch signal.Kind {
	case entity.PaymentSignalSuccess:
		return s.HandlePaymentSuccess(ctx, signal)
	case entity.PaymentSignalFailure:
		return s.HandlePaymentFailure(ctx, signal)
	case entity.PaymentSignalComplete:
		return s.HandlePaymentComplete(ctx, signal)
	default:
		return nil, fmt.Errorf("%w: unknown payment signal %q", errs.ErrInvalidRequest, signal.Kind)
	}
}

// HandlePaymentSuccess confirms the reservation with the reported charge.
// A registration that is already confirmed makes the signal a no-op.
func (s *Service) HandlePaymentSuccess(ctx context.Context, signal entity.PaymentSignal) (*usecase.PaymentSignalResult, error) {
	transactionID := strings.TrimSpace(signal.TransactionID)
	if transactionID == "" {
		return nil, fmt.Errorf("%w: success signal without transaction id", errs.ErrMissingPayment)
	}

	evidence := entity.PaymentEvidence{
		TransactionID: &transactionID,
		Provider:      signal.Provider,
	}
	if signal.ReservationID != "" {
		reservationID := signal.ReservationID
		evidence.ReservationID = &reservationID
	}

	confirmed, err := s.registrations.ConfirmRegistration(ctx, usecase.ConfirmRequest{
		GameID:   signal.GameID,
		PlayerID: signal.PlayerID,
		Evidence: evidence,
	})
	if errors.Is(err, errs.ErrAlreadyRegistered) {
		s.logger.Info("Payment success for an already confirmed registration ignored", map[string]any{
			"gameId":        signal.GameID,
			"playerId":      signal.PlayerID,
			"transactionId": transactionID,
		})
		return &usecase.PaymentSignalResult{Kind: signal.Kind, Ignored: true}, nil
	}
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentSignalResult{Kind: signal.Kind, Registration: confirmed.Registration}, nil
}

// HandlePaymentFailure records the failed charge on the live hold. The hold
// stays until the player releases it, retries the payment, or it lapses.
func (s *Service) HandlePaymentFailure(ctx context.Context, signal entity.PaymentSignal) (*usecase.PaymentSignalResult, error) {
	var updated *entity.Registration
	err := s.runner.Do(ctx, "payment_failure", func(txCtx context.Context) error {
		updated = nil
		registrations := s.uow.GetRegistrationRepository(txCtx)

		reg, err := registrations.GetActive(txCtx, signal.GameID, signal.PlayerID)
		if errors.Is(err, errs.ErrRegistrationNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if !reg.IsLiveHold(now) || (signal.ReservationID != "" && signal.ReservationID != reg.ID) {
			return nil
		}

		reg.MarkPaymentFailed(now)
		if err := registrations.Update(txCtx, reg); err != nil {
			return err
		}
		updated = reg
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"gameId":   signal.GameID,
		"playerId": signal.PlayerID,
		"reason":   signal.Reason,
	}
	if updated == nil {
		s.logger.Info("Payment failure for a missing or settled hold ignored", fields)
		return &usecase.PaymentSignalResult{Kind: signal.Kind, Ignored: true}, nil
	}

	fields["reservationId"] = updated.ID
	s.logger.Warn("Payment failed for reservation", fields)
	return &usecase.PaymentSignalResult{Kind: signal.Kind, Registration: updated}, nil
}

// HandlePaymentComplete releases the hold when the gateway ends without a successful charge
func (s *Service) HandlePaymentComplete(ctx context.Context, signal entity.PaymentSignal) (*usecase.PaymentSignalResult, error) {
	if signal.Success {
		return &usecase.PaymentSignalResult{Kind: signal.Kind, Ignored: true}, nil
	}

	released, err := s.reservations.ReleaseReservation(ctx, signal.GameID, signal.PlayerID, signal.ReservationID)
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentSignalResult{
		Kind:     signal.Kind,
		Released: released.Released,
		Ignored:  !released.Released,
	}, nil
}
