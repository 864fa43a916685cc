package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentToken_Validate(t *testing.T) {
	valid := []PaymentToken{
		{CardNumber: "4444444444444444", Expiry: "12/30", CVV: "123"},
		{CardNumber: "4444 4444 4444 1234", Expiry: "01/27", CVV: "000"},
	}
	for _, p := range valid {
		assert.NoError(t, p.Validate(), "%+v", p)
	}

	invalid := []PaymentToken{
		{CardNumber: "123", Expiry: "13/30", CVV: "12"},
		{CardNumber: "444444444444444a", Expiry: "12/30", CVV: "123"},
		{CardNumber: "44444444444444444", Expiry: "12/30", CVV: "123"},
		{CardNumber: "4444444444444444", Expiry: "1230", CVV: "123"},
		{CardNumber: "4444444444444444", Expiry: "12-30", CVV: "123"},
		{CardNumber: "4444444444444444", Expiry: "1a/30", CVV: "123"},
		{CardNumber: "4444444444444444", Expiry: "12/30", CVV: "1234"},
		{CardNumber: "4444444444444444", Expiry: "12/30", CVV: "12a"},
		{},
	}
	for _, p := range invalid {
		assert.ErrorIs(t, p.Validate(), ErrInvalidPaymentToken, "%+v", p)
	}
}

func TestPaymentToken_Last4(t *testing.T) {
	assert.Equal(t, "4444", PaymentToken{CardNumber: "4444444444444444"}.Last4())
	assert.Equal(t, "1234", PaymentToken{CardNumber: "4444 4444 4444 1234"}.Last4())
}
