package reservation

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

// DefaultHoldTTL is how long a pending hold reserves its seat
const DefaultHoldTTL = 5 * time.Minute

// Service creates, renews and releases seat holds
type Service struct {
	runner       *unitofwork.Runner
	uow          persistence.UnitOfWork
	capacity     *capacity.Ledger
	notifier     *lifecycle.Notifier
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	holdTTL      time.Duration
}

var _ usecase.ReservationUseCase = (*Service)(nil)

// NewService creates a new reservation service
func NewService(
	runner *unitofwork.Runner,
	uow persistence.UnitOfWork,
	capacityLedger *capacity.Ledger,
	notifier *lifecycle.Notifier,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	holdTTL time.Duration,
) *Service {
	if holdTTL <= 0 {
		holdTTL = DefaultHoldTTL
	}
	return &Service{
		runner:       runner,
		uow:          uow,
		capacity:     capacityLedger,
		notifier:     notifier,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		holdTTL:      holdTTL,
	}
}

// ReserveSeat holds a seat for the player. Calling it again while the hold is
// live returns the same hold. A lapsed hold is reissued on the same row after
// headroom has been checked again. Free games skip the hold and confirm directly.
func (s *Service) ReserveSeat(ctx context.Context, gameID, playerID uint64) (*usecase.ReservationResult, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if playerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	var (
		result    *usecase.ReservationResult
		eventType entity.RegistrationEventType
	)

	err := s.runner.Do(ctx, "reserve_seat", func(txCtx context.Context) error {
		result, eventType = nil, ""
		now := s.timeProvider.Now()

		// Every decision below is made while holding the game row lock
		game, err := s.uow.GetGameRepository(txCtx).GetForUpdate(txCtx, gameID)
		if err != nil {
			return err
		}

		registrations := s.uow.GetRegistrationRepository(txCtx)
		existing, err := registrations.GetActive(txCtx, gameID, playerID)
		if err != nil && !errors.Is(err, errs.ErrRegistrationNotFound) {
			return err
		}

		if existing != nil {
			if existing.IsConfirmed() {
				return errs.NewRegistrationError(existing.ID, gameID, playerID, "player already holds a confirmed seat", errs.ErrAlreadyRegistered)
			}
			if existing.IsLiveHold(now) {
				result = newResult(existing, true)
				return nil
			}
		}

		if game.HasStarted(now) {
			return fmt.Errorf("%w: game %d started at %s", errs.ErrGameStarted, gameID, game.Datetime.Format(time.RFC3339))
		}

		if _, err := s.capacity.EnsureHeadroom(txCtx, game, now); err != nil {
			return err
		}

		if game.IsFree() {
			reg, err := s.confirmFree(txCtx, registrations, existing, game, playerID, now)
			if err != nil {
				return err
			}
			result, eventType = newResult(reg, false), entity.EventRegistrationConfirmed
			return nil
		}

		reg := existing
		if reg != nil {
			if err := reg.RenewHold(now, s.holdTTL); err != nil {
				return err
			}
			if err := registrations.Update(txCtx, reg); err != nil {
				return err
			}
		} else {
			reg = entity.NewPendingRegistration(s.idGenerator.NewID(), gameID, playerID, now, s.holdTTL)
			if err := registrations.Create(txCtx, reg); err != nil {
				return err
			}
		}

		result, eventType = newResult(reg, false), entity.EventRegistrationReserved
		return nil
	})
	if err != nil {
		s.logReject("Seat reservation rejected", gameID, playerID, err)
		return nil, err
	}

	if eventType != "" {
		s.notifier.RegistrationChanged(ctx, eventType, result.Registration)
	}

	s.logger.Info("Seat reserved", map[string]any{
		"gameId":        gameID,
		"playerId":      playerID,
		"reservationId": result.ReservationID,
		"status":        string(result.Registration.Status),
		"reused":        result.Reused,
	})

	return result, nil
}

// confirmFree places a free-game player directly into a confirmed seat,
// reusing a lapsed hold row when there is one
func (s *Service) confirmFree(
	ctx context.Context,
	registrations persistence.RegistrationRepository,
	existing *entity.Registration,
	game *entity.Game,
	playerID uint64,
	now time.Time,
) (*entity.Registration, error) {
	reg := existing
	if reg != nil {
		if err := reg.Confirm(now, false); err != nil {
			return nil, err
		}
		if err := registrations.Update(ctx, reg); err != nil {
			return nil, err
		}
	} else {
		reg = entity.NewConfirmedRegistration(s.idGenerator.NewID(), game.ID, playerID, now)
		if err := registrations.Create(ctx, reg); err != nil {
			return nil, err
		}
	}

	if err := s.capacity.RecordConfirmed(ctx, game.ID); err != nil {
		return nil, err
	}
	return reg, nil
}

// ReleaseReservation deletes the player's pending hold if it still exists.
// Releasing a hold that is already gone is a successful no-op.
func (s *Service) ReleaseReservation(ctx context.Context, gameID, playerID uint64, reservationID string) (*usecase.ReleaseResult, error) {
	if gameID == 0 {
		return nil, errs.ErrInvalidGameID
	}
	if playerID == 0 {
		return nil, errs.ErrInvalidPlayerID
	}

	var releasedID string
	err := s.runner.Do(ctx, "release_reservation", func(txCtx context.Context) error {
		var err error
		releasedID, err = s.uow.GetRegistrationRepository(txCtx).DeletePending(txCtx, gameID, playerID, reservationID)
		return err
	})
	if err != nil {
		s.logReject("Reservation release failed", gameID, playerID, err)
		return nil, err
	}

	if releasedID == "" {
		s.logger.Debug("No pending hold to release", map[string]any{
			"gameId":        gameID,
			"playerId":      playerID,
			"reservationId": reservationID,
		})
		return &usecase.ReleaseResult{Released: false}, nil
	}

	s.notifier.RegistrationChanged(ctx, entity.EventRegistrationReleased, &entity.Registration{
		ID:            releasedID,
		GameID:        gameID,
		PlayerID:      playerID,
		Status:        entity.RegistrationPending,
		PaymentStatus: entity.PaymentPending,
	})

	s.logger.Info("Reservation released", map[string]any{
		"gameId":        gameID,
		"playerId":      playerID,
		"reservationId": releasedID,
	})

	return &usecase.ReleaseResult{Released: true}, nil
}

func (s *Service) logReject(message string, gameID, playerID uint64, err error) {
	fields := map[string]any{
		"gameId":    gameID,
		"playerId":  playerID,
		"errorCode": string(errs.CodeOf(err)),
		"error":     err.Error(),
	}
	if errs.IsDomainError(err) {
		s.logger.Info(message, fields)
		return
	}
	s.logger.Error(message, fields)
}

func newResult(reg *entity.Registration, reused bool) *usecase.ReservationResult {
	return &usecase.ReservationResult{
		ReservationID: reg.ID,
		ExpiresAt:     reg.ExpiresAt,
		Registration:  reg,
		Reused:        reused,
	}
}
