package entity

import "time"

// RegistrationEventType names a lifecycle transition
type RegistrationEventType string

const (
	EventRegistrationReserved  RegistrationEventType = "registration.reserved"
	EventRegistrationReleased  RegistrationEventType = "registration.released"
	EventRegistrationConfirmed RegistrationEventType = "registration.confirmed"
	EventRegistrationCancelled RegistrationEventType = "registration.cancelled"
)

// RegistrationEvent is published after a registration transition has committed
type RegistrationEvent struct {
	Type           RegistrationEventType `json:"type"`
	RegistrationID string                `json:"registrationId"`
	GameID         uint64                `json:"gameId"`
	PlayerID       uint64                `json:"playerId"`
	Status         RegistrationStatus    `json:"status"`
	PaymentStatus  PaymentStatus         `json:"paymentStatus"`
	OccurredAt     time.Time             `json:"occurredAt"`
}

// NewRegistrationEvent snapshots reg into an event of the given type
func NewRegistrationEvent(eventType RegistrationEventType, reg *Registration, now time.Time) RegistrationEvent {
	return RegistrationEvent{
		Type:           eventType,
		RegistrationID: reg.ID,
		GameID:         reg.GameID,
		PlayerID:       reg.PlayerID,
		Status:         reg.Status,
		PaymentStatus:  reg.PaymentStatus,
		OccurredAt:     now,
	}
}

// PaymentSignalKind is the kind of asynchronous gateway signal
type PaymentSignalKind string

const (
	PaymentSignalSuccess  PaymentSignalKind = "success"
	PaymentSignalFailure  PaymentSignalKind = "failure"
	PaymentSignalComplete PaymentSignalKind = "complete"
)

// PaymentSignal is a gateway callback delivered over the webhook or the queue
type PaymentSignal struct {
	Kind          PaymentSignalKind `json:"kind"`
	GameID        uint64            `json:"gameId"`
	PlayerID      uint64            `json:"playerId"`
	ReservationID string            `json:"reservationId,omitempty"`
	TransactionID string            `json:"transactionId,omitempty"`
	Provider      string            `json:"provider,omitempty"`
	Success       bool              `json:"success,omitempty"`
	Reason        string            `json:"reason,omitempty"`
}
