package core

// IDGenerator issues opaque unique identifiers for registrations,
// payment transactions and ledger entries.
type IDGenerator interface {
	NewID() string
}
