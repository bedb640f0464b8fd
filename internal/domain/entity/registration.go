package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
)

// RegistrationStatus is the lifecycle state of a registration
type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
)

// PaymentStatus tracks the money side of a registration
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Registration is one player's relationship to one game. Its ID doubles as the
// reservation id handed to clients while the registration is pending.
type Registration struct {
	ID            string
	GameID        uint64
	PlayerID      uint64
	Status        RegistrationStatus
	PaymentStatus PaymentStatus
	ExpiresAt     *time.Time // set only while pending
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPendingRegistration creates a time-boxed hold that lapses at now+ttl
func NewPendingRegistration(id string, gameID, playerID uint64, now time.Time, ttl time.Duration) *Registration {
	expiresAt := now.Add(ttl)
	return &Registration{
		ID:            id,
		GameID:        gameID,
		PlayerID:      playerID,
		Status:        RegistrationPending,
		PaymentStatus: PaymentPending,
		ExpiresAt:     &expiresAt,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// NewConfirmedRegistration creates a registration that skips the hold (free games)
func NewConfirmedRegistration(id string, gameID, playerID uint64, now time.Time) *Registration {
	return &Registration{
		ID:            id,
		GameID:        gameID,
		PlayerID:      playerID,
		Status:        RegistrationConfirmed,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *Registration) IsPending() bool   { return r.Status == RegistrationPending }
func (r *Registration) IsConfirmed() bool { return r.Status == RegistrationConfirmed }
func (r *Registration) IsCancelled() bool { return r.Status == RegistrationCancelled }

// IsExpired reports whether a pending hold has lapsed at now. A pending row
// without an expiry is treated as lapsed.
func (r *Registration) IsExpired(now time.Time) bool {
	if !r.IsPending() {
		return false
	}
	return r.ExpiresAt == nil || !r.ExpiresAt.After(now)
}

// IsLiveHold reports whether the registration is pending and still reserving a seat
func (r *Registration) IsLiveHold(now time.Time) bool {
	return r.IsPending() && !r.IsExpired(now)
}

// IsActive reports whether the registration occupies a seat at now
func (r *Registration) IsActive(now time.Time) bool {
	return r.IsConfirmed() || r.IsLiveHold(now)
}

// RenewHold reissues a lapsed hold on the same row
func (r *Registration) RenewHold(now time.Time, ttl time.Duration) error {
	if !r.IsPending() {
		return errs.NewRegistrationError(r.ID, r.GameID, r.PlayerID, "only pending holds can be renewed", errs.ErrInvalidRequest)
	}
	expiresAt := now.Add(ttl)
	r.ExpiresAt = &expiresAt
	r.PaymentStatus = PaymentPending
	r.UpdatedAt = now
	return nil
}

// Confirm promotes the registration to confirmed. paid marks the payment as
// settled; free games keep their payment status untouched.
func (r *Registration) Confirm(now time.Time, paid bool) error {
	switch r.Status {
	case RegistrationConfirmed:
		return errs.NewRegistrationError(r.ID, r.GameID, r.PlayerID, "already confirmed", errs.ErrAlreadyRegistered)
	case RegistrationCancelled:
		return errs.NewRegistrationError(r.ID, r.GameID, r.PlayerID, "registration is cancelled", errs.ErrNotRegistered)
	}

	r.Status = RegistrationConfirmed
	if paid {
		r.PaymentStatus = PaymentPaid
	}
	r.ExpiresAt = nil
	r.UpdatedAt = now
	return nil
}

// Cancel moves a confirmed registration to its terminal cancelled state
func (r *Registration) Cancel(now time.Time, refunded bool) error {
	if !r.IsConfirmed() {
		return errs.NewRegistrationError(r.ID, r.GameID, r.PlayerID, "only confirmed registrations can be cancelled", errs.ErrNotRegistered)
	}

	r.Status = RegistrationCancelled
	r.CancelledAt = &now
	if refunded {
		r.PaymentStatus = PaymentRefunded
	}
	r.UpdatedAt = now
	return nil
}

// MarkPaymentFailed records a failed charge on a pending hold. The hold itself
// stays in place until it is released or lapses.
func (r *Registration) MarkPaymentFailed(now time.Time) bool {
	if !r.IsPending() {
		return false
	}
	r.PaymentStatus = PaymentFailed
	r.UpdatedAt = now
	return true
}

// RequiresRefund reports whether cancelling this registration must credit money back
func (r *Registration) RequiresRefund(game *Game) bool {
	return !game.IsFree() && r.PaymentStatus == PaymentPaid
}
