// Package ledger implements the account registry of the ATM simulator:
// registration, authentication, balance mutation and bounded transaction
// history. All operations are synchronous and run to completion on the
// caller's goroutine; the ledger persists a full snapshot of its accounts
// after every successful mutation.
package ledger

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/teller/atmsim/pkg/id"
	"github.com/teller/atmsim/store"
)

// MaxAccounts caps how many accounts a single ledger holds.
const MaxAccounts = 10

// Ledger owns the account collection and is the sole writer of the
// durable store.
type Ledger struct {
	accounts map[string]*Account
	store    store.Store
}

// New hydrates a ledger from st. A store that was never written hydrates
// as an empty ledger. History is not persisted, so every hydrated account
// starts over with a single "account opened" record.
func New(st store.Store) (*Ledger, error) {
	recs, err := st.Load()
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		accounts: make(map[string]*Account, len(recs)),
		store:    st,
	}
	for _, r := range recs {
		// Duplicate names in a hand-edited store: last one wins.
		l.accounts[r.Name] = newAccount(r.Name, r.PIN, r.Balance)
	}
	return l, nil
}

// Len returns the number of registered accounts.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// Register creates an account with a zero balance. Checks run in a fixed
// order so the caller always sees the same message for the same input:
// capacity, then name collision, then name format, then PIN format.
func (l *Ledger) Register(name, pin string) error {
	if len(l.accounts) >= MaxAccounts {
		return ErrCapacityExceeded
	}
	if _, ok := l.accounts[name]; ok {
		return ErrNameTaken
	}
	if name == "" || strings.ContainsRune(name, ';') {
		return ErrInvalidName
	}
	if !validPin(pin) {
		return ErrInvalidPin
	}

	l.accounts[name] = newAccount(name, pin, 0)
	l.persist()
	slog.Info("account registered", "name", name)
	return nil
}

// Authenticate resolves name and checks the PIN with exact string
// equality. Unknown names and wrong PINs are deliberately
// indistinguishable: both return nil.
func (l *Ledger) Authenticate(name, pin string) *Account {
	a, ok := l.accounts[name]
	if !ok || a.PIN != pin {
		return nil
	}
	return a
}

// Find resolves an account by name without authentication. Transfer
// recipients are looked up this way.
func (l *Ledger) Find(name string) *Account {
	return l.accounts[name]
}

// Deposit credits amount to a and records it.
func (l *Ledger) Deposit(a *Account, amount float64) (Receipt, error) {
	if !validAmount(amount) {
		return Receipt{}, ErrInvalidAmount
	}

	a.Balance += amount
	a.addRecord("deposit: +$" + store.FormatBalance(amount))
	l.persist()
	slog.Debug("deposit", "name", a.Name, "amount", amount, "balance", a.Balance)
	return newReceipt(OpDeposit, amount, a.Balance), nil
}

// Withdraw debits amount from a. The balance never goes negative: a
// withdrawal larger than the balance fails and changes nothing.
func (l *Ledger) Withdraw(a *Account, amount float64) (Receipt, error) {
	if !validAmount(amount) {
		return Receipt{}, ErrInvalidAmount
	}
	if amount > a.Balance {
		return Receipt{}, ErrInsufficientFunds
	}

	a.Balance -= amount
	a.addRecord("withdrawal: -$" + store.FormatBalance(amount))
	l.persist()
	slog.Debug("withdrawal", "name", a.Name, "amount", amount, "balance", a.Balance)
	return newReceipt(OpWithdrawal, amount, a.Balance), nil
}

// Transfer moves amount from sender to the named recipient. Both sides
// record the counterparty, and the snapshot is written once after both
// mutations. Checks run in a fixed order: recipient existence,
// self-transfer, amount validity, funds sufficiency. Money is conserved:
// the sender's debit equals the recipient's credit.
func (l *Ledger) Transfer(sender *Account, recipientName string, amount float64) (Receipt, error) {
	recipient := l.Find(recipientName)
	if recipient == nil {
		return Receipt{}, ErrUnknownRecipient
	}
	if recipient == sender {
		return Receipt{}, ErrSelfTransfer
	}
	if !validAmount(amount) {
		return Receipt{}, ErrInvalidAmount
	}
	if amount > sender.Balance {
		return Receipt{}, ErrInsufficientFunds
	}

	sender.Balance -= amount
	recipient.Balance += amount
	sender.addRecord("transfer to " + recipient.Name + ": -$" + store.FormatBalance(amount))
	recipient.addRecord("transfer from " + sender.Name + ": +$" + store.FormatBalance(amount))
	l.persist()
	slog.Debug("transfer", "from", sender.Name, "to", recipient.Name, "amount", amount)
	return newReceipt(OpTransfer, amount, sender.Balance), nil
}

// History returns a's records, most recent first.
func (l *Ledger) History(a *Account) []string {
	return a.History()
}

// persist writes the full snapshot. A write failure is reported but does
// not roll back the in-memory mutation, so memory and disk can diverge
// until the next successful write.
func (l *Ledger) persist() {
	recs := make([]store.Record, 0, len(l.accounts))
	for _, a := range l.accounts {
		recs = append(recs, store.Record{Name: a.Name, PIN: a.PIN, Balance: a.Balance})
	}
	if err := l.store.Save(recs); err != nil {
		slog.Error("persist accounts", "error", err)
	}
}

func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validAmount accepts strictly positive finite numbers. NaN fails the
// comparison, infinity is rejected explicitly.
func validAmount(a float64) bool {
	return a > 0 && !math.IsInf(a, 1)
}

func newReceipt(op Op, amount, balance float64) Receipt {
	return Receipt{
		Ref:     id.New(),
		Op:      op,
		Amount:  amount,
		Balance: balance,
		Time:    time.Now(),
	}
}
