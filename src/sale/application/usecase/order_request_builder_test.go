package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

func builderCart(t *testing.T) *entity.Cart {
	t.Helper()
	cart := entity.NewCart(decimal.NewFromFloat(0.18))
	cart.AddItem(entity.Product{ID: "p1", SKU: "SKU-1", UnitPrice: decimal.NewFromInt(1000), AvailableQuantity: 50}, 2)
	cart.AddItem(entity.Product{ID: "p2", SKU: "SKU-2", UnitPrice: decimal.NewFromInt(500), AvailableQuantity: 50}, 1)
	cart.SetLineDiscount("p1", decimal.NewFromInt(10))
	cart.SetGlobalDiscount(decimal.NewFromInt(300))
	return cart
}

func TestBuildMapsCartStateToWireRequest(t *testing.T) {
	builder := NewOrderRequestBuilder()
	cart := builderCart(t)
	cart.SetCustomer(&entity.Customer{ID: "c1", FirstName: "Awa", LastName: "Diop"})
	cart.SetNotes("wrap as gift")

	ledger := entity.NewPaymentLedger()
	entry, err := entity.NewPaymentEntry(entity.PaymentCash, decimal.NewFromInt(2360), "", "")
	require.NoError(t, err)
	ledger.AddPayment(*entry)

	method := entity.PaymentCash
	amount := ledger.TotalPaid()
	req := builder.Build(cart, ledger, "store-1", entity.OrderTypeDirectSale, &method, &amount)

	assert.Equal(t, "store-1", req.StoreID)
	assert.Equal(t, "DIRECT_SALE", req.OrderType)
	require.NotNil(t, req.CustomerID)
	assert.Equal(t, "c1", *req.CustomerID)
	require.NotNil(t, req.Notes)
	assert.Equal(t, "wrap as gift", *req.Notes)

	require.Len(t, req.Items, 2)
	assert.Equal(t, "p1", req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
	assert.True(t, req.Items[0].DiscountPercentage.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "p2", req.Items[1].ProductID)

	assert.True(t, req.DiscountAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, req.TaxRate.Equal(decimal.NewFromFloat(0.18)))

	require.NotNil(t, req.PaymentMethod)
	assert.Equal(t, "CASH", *req.PaymentMethod)
	require.NotNil(t, req.AmountPaid)
	assert.True(t, req.AmountPaid.Equal(decimal.NewFromInt(2360)))

	require.Len(t, req.Payments, 1)
	assert.Equal(t, "CASH", req.Payments[0].Method)
}

func TestBuildOmitsOptionalFieldsWhenAbsent(t *testing.T) {
	builder := NewOrderRequestBuilder()
	cart := builderCart(t)
	ledger := entity.NewPaymentLedger()

	req := builder.Build(cart, ledger, "store-1", entity.OrderTypeProforma, nil, nil)

	assert.Nil(t, req.CustomerID)
	assert.Nil(t, req.Notes)
	assert.Nil(t, req.PaymentMethod)
	assert.Nil(t, req.AmountPaid)
	assert.Empty(t, req.Payments)
}

func TestBuildReproducesCartTotal(t *testing.T) {
	// El backend recalcula el total desde items + descuentos + tasa: los
	// datos del request deben reproducir exactamente el total del carrito
	builder := NewOrderRequestBuilder()
	cart := builderCart(t)

	req := builder.Build(cart, entity.NewPaymentLedger(), "store-1", entity.OrderTypeDirectSale, nil, nil)

	oneHundred := decimal.NewFromInt(100)
	subtotal := decimal.Zero
	for i, item := range req.Items {
		unitPrice := cart.Lines()[i].Product.UnitPrice
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).
			Mul(oneHundred.Sub(item.DiscountPercentage).Div(oneHundred))
		subtotal = subtotal.Add(lineTotal)
	}
	base := subtotal.Sub(req.DiscountAmount)
	total := base.Add(base.Mul(req.TaxRate))

	assert.True(t, total.Equal(cart.Total()), "expected %s, got %s", cart.Total(), total)
}

func TestPrimaryMethodDerivation(t *testing.T) {
	builder := NewOrderRequestBuilder()

	t.Run("empty ledger has no primary method", func(t *testing.T) {
		assert.Nil(t, builder.PrimaryMethod(entity.NewPaymentLedger()))
	})

	t.Run("homogeneous payments keep their method", func(t *testing.T) {
		ledger := entity.NewPaymentLedger()
		for _, amount := range []int64{100, 200} {
			entry, err := entity.NewPaymentEntry(entity.PaymentMobileMoney, decimal.NewFromInt(amount), "", "")
			require.NoError(t, err)
			ledger.AddPayment(*entry)
		}

		method := builder.PrimaryMethod(ledger)
		require.NotNil(t, method)
		assert.Equal(t, entity.PaymentMobileMoney, *method)
	})

	t.Run("heterogeneous payments collapse to MIXED", func(t *testing.T) {
		ledger := entity.NewPaymentLedger()
		cash, err := entity.NewPaymentEntry(entity.PaymentCash, decimal.NewFromInt(100), "", "")
		require.NoError(t, err)
		card, err := entity.NewPaymentEntry(entity.PaymentCreditCard, decimal.NewFromInt(200), "", "")
		require.NoError(t, err)
		ledger.AddPayment(*cash)
		ledger.AddPayment(*card)

		method := builder.PrimaryMethod(ledger)
		require.NotNil(t, method)
		assert.Equal(t, entity.PaymentMixed, *method)
	})
}
