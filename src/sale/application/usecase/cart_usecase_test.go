package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// fakeProductProvider catálogo en memoria para tests
type fakeProductProvider struct {
	products map[string]entity.Product
}

func (p *fakeProductProvider) GetProduct(_ context.Context, _, _, productID string) (*entity.Product, error) {
	product, ok := p.products[productID]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	return &product, nil
}

// fakeCustomerProvider directorio de clientes en memoria para tests
type fakeCustomerProvider struct {
	customers map[string]entity.Customer
}

func (p *fakeCustomerProvider) GetCustomer(_ context.Context, _, _, customerID string) (*entity.Customer, error) {
	customer, ok := p.customers[customerID]
	if !ok {
		return nil, entity.ErrCustomerNotFound
	}
	return &customer, nil
}

func newCartFixture() (*CartUseCase, *fakeSessionRepo, *fakeProductProvider, *fakeCustomerProvider) {
	repo := newFakeSessionRepo()
	products := &fakeProductProvider{products: map[string]entity.Product{
		"p1": {ID: "p1", SKU: "SKU-1", Name: "Savon", UnitPrice: decimal.NewFromInt(500), AvailableQuantity: 10},
		"p2": {ID: "p2", SKU: "SKU-2", Name: "Riz 5kg", UnitPrice: decimal.NewFromInt(3500), AvailableQuantity: 2},
	}}
	customers := &fakeCustomerProvider{customers: map[string]entity.Customer{
		"c1": {ID: "c1", FirstName: "Awa", LastName: "Diop", Phone: "+221770000000"},
	}}
	return NewCartUseCase(repo, products, customers), repo, products, customers
}

func TestCartUseCaseAddItemFetchesSnapshot(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	resp, err := uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "p1",
		Quantity:  3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Cart.Lines, 1)
	assert.Equal(t, "Savon", resp.Cart.Lines[0].Name)
	assert.Equal(t, 3, resp.Cart.ItemCount)
	assert.True(t, resp.Cart.Subtotal.Equal(decimal.NewFromInt(1500)))
}

func TestCartUseCaseAddItemUnknownProduct(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	_, err := uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "ghost",
	})

	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	assert.Equal(t, 0, session.Cart.ItemCount())
}

func TestCartUseCaseStockPreconditionCountsCart(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	// p2 tiene stock 2: la primera unidad entra, la tercera no
	_, err := uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "p2", Quantity: 1,
	})
	require.NoError(t, err)

	_, err = uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "p2", Quantity: 2,
	})

	assert.ErrorIs(t, err, entity.ErrInsufficientStock)
	assert.Equal(t, 1, session.Cart.ItemCount(), "rejected add leaves cart untouched")
}

func TestCartUseCaseUpdateLineAndRemove(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	_, err := uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "p1", Quantity: 2,
	})
	require.NoError(t, err)

	delta := 3
	disc := decimal.NewFromInt(20)
	resp, err := uc.UpdateLine(session.ID, "p1", &request.UpdateLineRequest{
		QuantityDelta:      &delta,
		DiscountPercentage: &disc,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Cart.ItemCount)
	assert.True(t, resp.Cart.Lines[0].DiscountPercentage.Equal(disc))

	resp, err = uc.RemoveLine(session.ID, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cart.ItemCount)
}

func TestCartUseCaseSetCustomer(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeCreditSale)

	customerID := "c1"
	resp, err := uc.SetCustomer(context.Background(), session.ID, "store-1", "", &request.SetCustomerRequest{
		CustomerID: &customerID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Cart.Customer)
	assert.Equal(t, "Awa Diop", resp.Cart.Customer.FullName)

	// customer_id null desasocia (consumidor final)
	resp, err = uc.SetCustomer(context.Background(), session.ID, "store-1", "", &request.SetCustomerRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.Cart.Customer)
}

func TestCartUseCaseSetCustomerUnknown(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeCreditSale)

	customerID := "ghost"
	_, err := uc.SetCustomer(context.Background(), session.ID, "store-1", "", &request.SetCustomerRequest{
		CustomerID: &customerID,
	})

	assert.ErrorIs(t, err, entity.ErrCustomerNotFound)
	assert.Nil(t, session.Cart.Customer())
}

func TestCartUseCaseDiscountAndNotes(t *testing.T) {
	uc, repo, _, _ := newCartFixture()
	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	_, err := uc.AddItem(context.Background(), session.ID, "store-1", "", &request.AddItemRequest{
		ProductID: "p1", Quantity: 2,
	})
	require.NoError(t, err)

	resp, err := uc.SetDiscount(session.ID, &request.SetDiscountRequest{Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)
	assert.True(t, resp.Cart.GlobalDiscount.Equal(decimal.NewFromInt(200)))

	resp, err = uc.SetNotes(session.ID, &request.SetNotesRequest{Notes: "client régulier"})
	require.NoError(t, err)
	assert.Equal(t, "client régulier", resp.Cart.Notes)
}
