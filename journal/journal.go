// Package journal records trades and deposit/withdrawal entries, keeps them
// mirrored in durable storage, and derives the account statistics shown on
// the dashboard.
package journal

import (
	"fmt"
	"strings"
)

// Storage keys for the two collections.
const (
	TradesKey    = "forex_trades"
	CashFlowsKey = "forex_dw"
)

// DateLayout is the calendar date format used by every record.
const DateLayout = "2006-01-02"

type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

type Outcome string

const (
	Profit Outcome = "Profit"
	Loss   Outcome = "Loss"
)

type FlowType string

const (
	Deposit    FlowType = "Deposit"
	Withdrawal FlowType = "Withdrawal"
)

// Trade is one completed position. PnL already carries its sign.
// Symbol is stored as entered; display upper-cases it.
type Trade struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	Symbol        string  `json:"symbol"`
	Type          Side    `json:"type"`
	Lot           float64 `json:"lot"`
	PnL           float64 `json:"pnl"`
	NotesEntry    string  `json:"notes_entry"`
	NotesMistakes string  `json:"notes_mistakes"`
}

// CashFlow is a deposit or withdrawal.
type CashFlow struct {
	ID     int64    `json:"id"`
	Date   string   `json:"date"`
	Type   FlowType `json:"type"`
	Amount float64  `json:"amount"`
}

// Signed returns the amount's effect on the balance.
func (c CashFlow) Signed() float64 {
	if c.Type == Deposit {
		return c.Amount
	}
	return -c.Amount
}

// ParseSide accepts Buy or Sell in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	}
	return "", fmt.Errorf("%w: trade type must be Buy or Sell, got %q", ErrValidation, s)
}

// ParseOutcome accepts Profit or Loss in any case.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "profit":
		return Profit, nil
	case "loss":
		return Loss, nil
	}
	return "", fmt.Errorf("%w: outcome must be Profit or Loss, got %q", ErrValidation, s)
}

// ParseFlowType accepts Deposit or Withdrawal in any case.
func ParseFlowType(s string) (FlowType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	}
	return "", fmt.Errorf("%w: cash flow type must be Deposit or Withdrawal, got %q", ErrValidation, s)
}
