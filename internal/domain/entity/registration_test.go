package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRegistrationHold(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 5 * time.Minute
	reg := NewPendingRegistration("reg-1", 7, 42, now, ttl)

	assert.Equal(t, RegistrationPending, reg.Status)
	assert.Equal(t, PaymentPending, reg.PaymentStatus)
	require.NotNil(t, reg.ExpiresAt)
	assert.Equal(t, now.Add(ttl), *reg.ExpiresAt)

	t.Run("Live before expiry", func(t *testing.T) {
		assert.True(t, reg.IsLiveHold(now.Add(4*time.Minute)))
		assert.True(t, reg.IsActive(now.Add(4*time.Minute)))
		assert.False(t, reg.IsExpired(now.Add(4*time.Minute)))
	})

	t.Run("Expired at the boundary", func(t *testing.T) {
		assert.True(t, reg.IsExpired(now.Add(ttl)))
		assert.False(t, reg.IsLiveHold(now.Add(ttl)))
		assert.False(t, reg.IsActive(now.Add(6*time.Minute)))
	})

	t.Run("Missing expiry counts as lapsed", func(t *testing.T) {
		broken := &Registration{Status: RegistrationPending}
		assert.True(t, broken.IsExpired(now))
	})

	t.Run("Renew restores the hold", func(t *testing.T) {
		later := now.Add(10 * time.Minute)
		reg.PaymentStatus = PaymentFailed

		require.NoError(t, reg.RenewHold(later, ttl))
		assert.True(t, reg.IsLiveHold(later.Add(time.Minute)))
		assert.Equal(t, PaymentPending, reg.PaymentStatus)
		assert.Equal(t, later, reg.UpdatedAt)
	})
}

func TestRegistrationConfirm(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Paid confirmation", func(t *testing.T) {
		reg := NewPendingRegistration("reg-1", 7, 42, now, 5*time.Minute)

		require.NoError(t, reg.Confirm(now.Add(time.Minute), true))
		assert.Equal(t, RegistrationConfirmed, reg.Status)
		assert.Equal(t, PaymentPaid, reg.PaymentStatus)
		assert.Nil(t, reg.ExpiresAt)
		assert.False(t, reg.IsExpired(now.Add(time.Hour)))
		assert.True(t, reg.IsActive(now.Add(time.Hour)))
	})

	t.Run("Free confirmation keeps payment pending", func(t *testing.T) {
		reg := NewConfirmedRegistration("reg-2", 7, 43, now)

		assert.Equal(t, RegistrationConfirmed, reg.Status)
		assert.Equal(t, PaymentPending, reg.PaymentStatus)
	})

	t.Run("Double confirm is rejected", func(t *testing.T) {
		reg := NewConfirmedRegistration("reg-3", 7, 44, now)

		err := reg.Confirm(now, true)
		assert.ErrorIs(t, err, errs.ErrAlreadyRegistered)
	})

	t.Run("Cancelled cannot be confirmed", func(t *testing.T) {
		reg := NewConfirmedRegistration("reg-4", 7, 45, now)
		require.NoError(t, reg.Cancel(now, false))

		assert.ErrorIs(t, reg.Confirm(now, false), errs.ErrNotRegistered)
	})
}

func TestRegistrationCancel(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	paidGame := &Game{Price: 100000}
	freeGame := &Game{}

	t.Run("Paid registration is refunded", func(t *testing.T) {
		reg := NewPendingRegistration("reg-1", 7, 42, now, 5*time.Minute)
		require.NoError(t, reg.Confirm(now, true))
		assert.True(t, reg.RequiresRefund(paidGame))

		require.NoError(t, reg.Cancel(now.Add(time.Hour), true))
		assert.Equal(t, RegistrationCancelled, reg.Status)
		assert.Equal(t, PaymentRefunded, reg.PaymentStatus)
		require.NotNil(t, reg.CancelledAt)
		assert.Equal(t, now.Add(time.Hour), *reg.CancelledAt)
	})

	t.Run("Free registration needs no refund", func(t *testing.T) {
		reg := NewConfirmedRegistration("reg-2", 7, 43, now)
		assert.False(t, reg.RequiresRefund(freeGame))
	})

	t.Run("Pending cannot be cancelled", func(t *testing.T) {
		reg := NewPendingRegistration("reg-3", 7, 44, now, 5*time.Minute)

		assert.ErrorIs(t, reg.Cancel(now, false), errs.ErrNotRegistered)
		assert.Equal(t, RegistrationPending, reg.Status)
	})
}

func TestMarkPaymentFailed(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	pending := NewPendingRegistration("reg-1", 7, 42, now, 5*time.Minute)
	assert.True(t, pending.MarkPaymentFailed(now))
	assert.Equal(t, PaymentFailed, pending.PaymentStatus)
	assert.True(t, pending.IsLiveHold(now), "a failed charge does not drop the hold")

	confirmed := NewConfirmedRegistration("reg-2", 7, 43, now)
	assert.False(t, confirmed.MarkPaymentFailed(now))
	assert.Equal(t, PaymentPending, confirmed.PaymentStatus)
}
