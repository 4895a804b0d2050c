package saldo

import (
	"fmt"

	"github.com/google/uuid"
)

// Snapshot is a frozen copy of a session state.
type Snapshot struct {
	Balance Amount
	Buys    int
	Sells   int
}

// Session holds the running balance and operation counters of one run.
//
// A Session is not safe for concurrent use.
type Session struct {
	id      uuid.UUID
	balance Amount
	buys    int
	sells   int
}

// NewSession returns an empty session: zero balance, no operations.
func NewSession() *Session {
	return &Session{id: uuid.New()}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Buy debits amount from the balance.
func (s *Session) Buy(amount Amount) {
	s.balance = s.balance.Sub(amount)
	s.buys++
}

// Sell credits amount to the balance.
func (s *Session) Sell(amount Amount) {
	s.balance = s.balance.Add(amount)
	s.sells++
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Balance: s.balance, Buys: s.buys, Sells: s.sells}
}

// Reset zeroes the session and returns the state it had before.
func (s *Session) Reset() Snapshot {
	prev := s.Snapshot()
	s.balance, s.buys, s.sells = Amount{}, 0, 0
	return prev
}

// Messages printed by the interpreter.
const (
	MessageInvalidInput = "*ERROR* Entrada inválida"
	messageCurrent      = "Saldo actual = %s (%d compras y %d ventas)"
	messagePrevious     = "Saldo anterior = %s (%d compras y %d ventas)"
)

// Current formats the snapshot as the current state.
func (s Snapshot) Current() string {
	return fmt.Sprintf(messageCurrent, s.Balance, s.Buys, s.Sells)
}

// Previous formats the snapshot as the state before a reset.
func (s Snapshot) Previous() string {
	return fmt.Sprintf(messagePrevious, s.Balance, s.Buys, s.Sells)
}
