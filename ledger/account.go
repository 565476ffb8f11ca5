package ledger

// historyDepth is how many records an account retains.
const historyDepth = 10

// Account is a single customer's identity, balance and bounded history.
// Accounts are created by Register, never deleted, and live for the
// Ledger's lifetime; the Ledger and any active session share the same
// *Account, so a balance change is visible to both immediately.
type Account struct {
	Name    string
	PIN     string
	Balance float64

	history *ring
}

func newAccount(name, pin string, balance float64) *Account {
	a := &Account{
		Name:    name,
		PIN:     pin,
		Balance: balance,
		history: newRing(historyDepth),
	}
	a.addRecord("account opened")
	return a
}

// addRecord prepends rec to the account's history, evicting the oldest
// record once the buffer is full.
func (a *Account) addRecord(rec string) {
	a.history.push(rec)
}

// History returns the account's records, most recent first. The slice is
// a copy; callers cannot mutate the underlying buffer.
func (a *Account) History() []string {
	return a.history.records()
}
