package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// ZeroMoney is the total of an empty cart. currency.XXX marks "no currency".
func ZeroMoney() Money {
	return Money{Amount: decimal.Zero, Currency: currency.XXX}
}

func (m Money) Mul(quantity int32) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt32(quantity)),
		Currency: m.Currency,
	}
}
