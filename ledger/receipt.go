package ledger

import "time"

// Op labels the kind of mutating operation a receipt documents.
type Op string

const (
	OpDeposit    Op = "deposit"
	OpWithdrawal Op = "withdrawal"
	OpTransfer   Op = "transfer"
)

// Receipt documents one successful mutating operation. Ref is a ULID, so
// a customer's receipts sort by issue time. Balance is the account
// balance after the operation (the sender's balance for a transfer).
type Receipt struct {
	Ref     string
	Op      Op
	Amount  float64
	Balance float64
	Time    time.Time
}
