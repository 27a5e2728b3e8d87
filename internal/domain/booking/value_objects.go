package booking

import (
	"errors"
	"strings"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in minor currency units.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Sub(other Money) Money {
	remaining := m.amount - other.amount
	if remaining < 0 {
		remaining = 0
	}
	return Money{amount: remaining}
}

type Amounts struct {
	Seat     Money
	Food     Money
	Discount Money
}

// Final is seat + food - discount, floored at zero.
func (a Amounts) Final() Money {
	return a.Seat.Add(a.Food).Sub(a.Discount)
}

type Code string

func NewCode(s string) (Code, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return "", ErrInvalidCode
	}
	return Code(s), nil
}

func (c Code) String() string {
	return string(c)
}
