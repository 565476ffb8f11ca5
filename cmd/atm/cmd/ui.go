package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/teller/atmsim/atm"
	"github.com/teller/atmsim/ledger"
)

// ui is the terminal rendition of the ATM screens: a login screen, a
// registration screen and a main menu. It talks to the ledger only
// through the session boundary.
type ui struct {
	sess *atm.Session
	in   *bufio.Scanner
	out  io.Writer
}

func newUI(sess *atm.Session, in io.Reader, out io.Writer) *ui {
	return &ui{sess: sess, in: bufio.NewScanner(in), out: out}
}

// loop runs until the customer quits or input is exhausted.
func (u *ui) loop() error {
	fmt.Fprintln(u.out, "=== ATM Simulator ===")
	for {
		if !u.sess.Active() {
			if done := u.loginScreen(); done {
				return nil
			}
			continue
		}
		if done := u.mainMenu(); done {
			return nil
		}
	}
}

// loginScreen returns true when the customer chooses to quit.
func (u *ui) loginScreen() bool {
	fmt.Fprintln(u.out, "\n1) Sign in")
	fmt.Fprintln(u.out, "2) Create account")
	fmt.Fprintln(u.out, "3) Quit")

	choice, ok := u.prompt("> ")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		name, ok := u.prompt("Name: ")
		if !ok {
			return true
		}
		pin, ok := u.prompt("PIN: ")
		if !ok {
			return true
		}
		if !u.sess.Login(name, pin) {
			fmt.Fprintln(u.out, "Login failed: wrong name or PIN.")
		}
	case "2":
		u.registerScreen()
	case "3":
		return true
	default:
		fmt.Fprintln(u.out, "Unknown choice.")
	}
	return false
}

func (u *ui) registerScreen() {
	name, ok := u.prompt("Choose a name: ")
	if !ok {
		return
	}
	pin, ok := u.prompt("Choose a PIN (4 digits): ")
	if !ok {
		return
	}
	if err := u.sess.Register(name, pin); err != nil {
		fmt.Fprintf(u.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintln(u.out, "Account created. Please sign in.")
}

// mainMenu returns true when the customer chooses to quit.
func (u *ui) mainMenu() bool {
	balance, _ := u.sess.Balance()
	fmt.Fprintf(u.out, "\nCustomer: %s  Balance: $%.2f\n", u.sess.Name(), balance)
	fmt.Fprintln(u.out, "1) Deposit")
	fmt.Fprintln(u.out, "2) Withdraw")
	fmt.Fprintln(u.out, "3) Transfer")
	fmt.Fprintln(u.out, "4) History")
	fmt.Fprintln(u.out, "5) Sign out")
	fmt.Fprintln(u.out, "6) Quit")

	choice, ok := u.prompt("> ")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		amount, ok := u.prompt("Amount: ")
		if !ok {
			return true
		}
		u.report(u.sess.Deposit(amount))
	case "2":
		amount, ok := u.prompt("Amount: ")
		if !ok {
			return true
		}
		u.report(u.sess.Withdraw(amount))
	case "3":
		recipient, ok := u.prompt("Recipient name: ")
		if !ok {
			return true
		}
		amount, ok := u.prompt("Amount: ")
		if !ok {
			return true
		}
		u.report(u.sess.Transfer(recipient, amount))
	case "4":
		records, err := u.sess.History()
		if err != nil {
			fmt.Fprintf(u.out, "Error: %v\n", err)
			break
		}
		for _, rec := range records {
			fmt.Fprintf(u.out, "  %s\n", rec)
		}
	case "5":
		u.sess.Logout()
	case "6":
		return true
	default:
		fmt.Fprintln(u.out, "Unknown choice.")
	}
	return false
}

func (u *ui) report(r ledger.Receipt, err error) {
	if err != nil {
		fmt.Fprintf(u.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(u.out, "OK. %s $%v, balance $%v (ref %s)\n", r.Op, r.Amount, r.Balance, r.Ref)
}

// prompt reads one line; ok is false once input is exhausted.
func (u *ui) prompt(label string) (line string, ok bool) {
	fmt.Fprint(u.out, label)
	if !u.in.Scan() {
		return "", false
	}
	return u.in.Text(), true
}
