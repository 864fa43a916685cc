package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPaymentToken is returned when the card number, expiry or CVV
// does not have the expected shape.
var ErrInvalidPaymentToken = errors.New("invalid payment token")

// PaymentToken carries the card fields collected by a payment form.  Only
// the shape is checked; no charge is ever attempted.
type PaymentToken struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// normalizedCard strips the spaces people type between digit groups.
func (p PaymentToken) normalizedCard() string {
	return strings.ReplaceAll(p.CardNumber, " ", "")
}

// Validate checks that the card number has 16 digits, the expiry reads
// MM/YY and the CVV has 3 digits.
func (p PaymentToken) Validate() error {
	if card := p.normalizedCard(); len(card) != 16 || !allDigits(card) {
		return fmt.Errorf("%w: card number must be 16 digits", ErrInvalidPaymentToken)
	}
	e := p.Expiry
	if len(e) != 5 || e[2] != '/' || !allDigits(e[:2]) || !allDigits(e[3:]) {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidPaymentToken)
	}
	if len(p.CVV) != 3 || !allDigits(p.CVV) {
		return fmt.Errorf("%w: cvv must be 3 digits", ErrInvalidPaymentToken)
	}
	return nil
}

// Last4 returns the final four digits of the card number.  It assumes
// Validate has succeeded.
func (p PaymentToken) Last4() string {
	card := p.normalizedCard()
	if len(card) < 4 {
		return card
	}
	return card[len(card)-4:]
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
