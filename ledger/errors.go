package ledger

import "errors"

// Domain errors returned by Ledger operations. All are recoverable: the
// ledger never aborts the process, it reports the failure as a value and
// leaves state untouched.
var (
	ErrCapacityExceeded  = errors.New("ledger is full")
	ErrNameTaken         = errors.New("name already taken")
	ErrInvalidName       = errors.New("name must be non-empty and must not contain ';'")
	ErrInvalidPin        = errors.New("pin must be exactly 4 digits")
	ErrInvalidAmount     = errors.New("amount must be a positive number")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownRecipient  = errors.New("recipient not found")
	ErrSelfTransfer      = errors.New("cannot transfer to your own account")
)
