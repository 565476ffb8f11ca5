// Package atm adapts a presentation layer's free-text input to the ledger
// core. Amount parsing happens at this boundary: input that does not parse
// as a number is rejected as an invalid amount before it ever reaches the
// ledger.
package atm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/teller/atmsim/ledger"
)

// ErrNoSession is returned when an account operation is attempted without
// a signed-in customer.
var ErrNoSession = errors.New("no customer signed in")

// Session is one customer's interaction with the ATM. It holds the
// authenticated account reference between calls; the account itself is
// owned by the ledger.
type Session struct {
	ledger  *ledger.Ledger
	account *ledger.Account
}

func NewSession(l *ledger.Ledger) *Session {
	return &Session{ledger: l}
}

// Register creates a new account. It does not sign the customer in; the
// flow returns to the login screen after registration.
func (s *Session) Register(name, pin string) error {
	return s.ledger.Register(name, pin)
}

// Login authenticates and binds the account to the session. A failed
// login reveals nothing about whether the name or the PIN was wrong.
func (s *Session) Login(name, pin string) bool {
	a := s.ledger.Authenticate(name, pin)
	if a == nil {
		return false
	}
	s.account = a
	return true
}

// Logout detaches the account; the session can be reused for another
// customer.
func (s *Session) Logout() {
	s.account = nil
}

// Active reports whether a customer is signed in.
func (s *Session) Active() bool {
	return s.account != nil
}

// Name returns the signed-in customer's name, or "" if nobody is.
func (s *Session) Name() string {
	if s.account == nil {
		return ""
	}
	return s.account.Name
}

// Balance returns the signed-in customer's balance.
func (s *Session) Balance() (float64, error) {
	if s.account == nil {
		return 0, ErrNoSession
	}
	return s.account.Balance, nil
}

// Deposit credits the parsed amount to the signed-in account.
func (s *Session) Deposit(amountText string) (ledger.Receipt, error) {
	if s.account == nil {
		return ledger.Receipt{}, ErrNoSession
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return ledger.Receipt{}, err
	}
	return s.ledger.Deposit(s.account, amount)
}

// Withdraw debits the parsed amount from the signed-in account.
func (s *Session) Withdraw(amountText string) (ledger.Receipt, error) {
	if s.account == nil {
		return ledger.Receipt{}, ErrNoSession
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return ledger.Receipt{}, err
	}
	return s.ledger.Withdraw(s.account, amount)
}

// Transfer moves the parsed amount from the signed-in account to the
// named recipient.
func (s *Session) Transfer(recipientName, amountText string) (ledger.Receipt, error) {
	if s.account == nil {
		return ledger.Receipt{}, ErrNoSession
	}
	amount, err := parseAmount(amountText)
	if err != nil {
		return ledger.Receipt{}, err
	}
	return s.ledger.Transfer(s.account, recipientName, amount)
}

// History returns the signed-in account's records, most recent first.
func (s *Session) History() ([]string, error) {
	if s.account == nil {
		return nil, ErrNoSession
	}
	return s.ledger.History(s.account), nil
}

func parseAmount(text string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ledger.ErrInvalidAmount
	}
	return amount, nil
}
