package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, s := range []string{"BOGUS", "pending", "", "DELETED"} {
		_, err := ParseStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, "value %q", s)
	}
}

func TestCreateOrderInputValidate(t *testing.T) {
	valid := CreateOrderInput{ProductID: 1, ProductName: "Widget", Quantity: 2, TotalPrice: 19.98}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		mut   func(*CreateOrderInput)
		field string
	}{
		{"zero product id", func(in *CreateOrderInput) { in.ProductID = 0 }, "productId"},
		{"negative product id", func(in *CreateOrderInput) { in.ProductID = -3 }, "productId"},
		{"empty name", func(in *CreateOrderInput) { in.ProductName = "" }, "productName"},
		{"zero quantity", func(in *CreateOrderInput) { in.Quantity = 0 }, "quantity"},
		{"negative price", func(in *CreateOrderInput) { in.TotalPrice = -0.01 }, "totalPrice"},
		{"bad email", func(in *CreateOrderInput) { in.CustomerEmail = "not-an-email" }, "customerEmail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mut(&in)
			err := in.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	withEmail := valid
	withEmail.CustomerEmail = "buyer@example.com"
	assert.NoError(t, withEmail.Validate())
}
