package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/service"
	"github.com/mirlondev/magasin-sub000/src/shared/domain/criteria"
)

// fakeSubmitter backend de órdenes para tests: acepta o rechaza según failWith
type fakeSubmitter struct {
	failWith error
	lastReq  *request.CreateOrderRequest
	calls    int
}

func (s *fakeSubmitter) Submit(_ context.Context, storeID, _ string, req *request.CreateOrderRequest) (*entity.Order, error) {
	s.calls++
	s.lastReq = req
	if s.failWith != nil {
		return nil, s.failWith
	}

	return &entity.Order{
		ID:          "order-1",
		OrderNumber: "ORD-0001",
		StoreID:     storeID,
		CustomerID:  req.CustomerID,
		OrderType:   entity.OrderType(req.OrderType),
		Status:      "CONFIRMED",
		TotalAmount: decimal.NewFromInt(2360),
		Currency:    req.Currency,
		CreatedAt:   time.Now(),
	}, nil
}

// fakeJournal journal de ventas para tests
type fakeJournal struct {
	records   []*entity.SaleRecord
	recordErr error
}

func (j *fakeJournal) Record(_ context.Context, record *entity.SaleRecord) error {
	if j.recordErr != nil {
		return j.recordErr
	}
	j.records = append(j.records, record)
	return nil
}

func (j *fakeJournal) List(context.Context, string, criteria.Criteria) ([]*entity.SaleRecord, int, error) {
	return nil, 0, nil
}

func newSubmitFixture(repo *fakeSessionRepo, submitter *fakeSubmitter, journal *fakeJournal) *SubmitOrderUseCase {
	var j port.SaleJournal
	if journal != nil {
		j = journal
	}
	return NewSubmitOrderUseCase(repo, submitter, j, service.NewOrderValidator(), NewOrderRequestBuilder())
}

func TestSubmitDirectSaleHappyPath(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	journal := &fakeJournal{}
	uc := newSubmitFixture(repo, submitter, journal)

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 2000, 1) // total 2360 con 18% de impuesto
	entry, err := entity.NewPaymentEntry(entity.PaymentCash, decimal.NewFromInt(2360), "", "")
	require.NoError(t, err)
	session.Ledger.AddPayment(*entry)
	sessionID := session.ID

	resp, validation, err := uc.Execute(context.Background(), sessionID, "Bearer tok", &request.SubmitOrderRequest{})
	require.NoError(t, err)
	require.Nil(t, validation)
	require.NotNil(t, resp)

	assert.Equal(t, "ORD-0001", resp.OrderNumber)
	assert.Equal(t, "CONFIRMED", resp.Status)

	// El request wire refleja el estado de la sesión
	req := submitter.lastReq
	require.NotNil(t, req)
	assert.Equal(t, "store-1", req.StoreID)
	assert.Equal(t, "DIRECT_SALE", req.OrderType)
	assert.Equal(t, "XOF", req.Currency)
	require.NotNil(t, req.PaymentMethod)
	assert.Equal(t, "CASH", *req.PaymentMethod)
	require.NotNil(t, req.AmountPaid)
	assert.True(t, req.AmountPaid.Equal(decimal.NewFromInt(2360)))

	// La sesión se limpia y elimina recién después de la confirmación
	_, err = repo.Get(sessionID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	// Journal best-effort registrado
	require.Len(t, journal.records, 1)
	assert.Equal(t, "order-1", journal.records[0].OrderID)
	assert.Equal(t, entity.PaymentCash, journal.records[0].PaymentMethod)
}

func TestSubmitValidationFailureReturnsResultNotError(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	uc := newSubmitFixture(repo, submitter, nil)

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)

	resp, validation, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})
	require.NoError(t, err)
	require.Nil(t, resp)
	require.NotNil(t, validation)

	assert.False(t, validation.Valid)
	assert.Contains(t, validation.Errors, service.MsgCartEmpty)
	assert.Equal(t, 0, submitter.calls, "no submission on validation failure")

	// La sesión sigue activa para corregir
	_, err = repo.Get(session.ID)
	assert.NoError(t, err)
}

func TestSubmitDirectSaleWithoutPaymentsCannotFinalize(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	uc := newSubmitFixture(repo, submitter, nil)

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)

	_, _, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})

	assert.ErrorIs(t, err, entity.ErrCannotFinalize)
	assert.Equal(t, 0, submitter.calls)
}

func TestSubmitBackendRejectionLeavesStateIntactForRetry(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{failWith: errors.New("order rejected by backend: out of stock")}
	uc := newSubmitFixture(repo, submitter, nil)

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)
	entry, err := entity.NewPaymentEntry(entity.PaymentCash, decimal.NewFromInt(1000), "", "")
	require.NoError(t, err)
	session.Ledger.AddPayment(*entry)

	_, _, err = uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})
	require.Error(t, err)

	// Estado intacto: carrito y pagos siguen ahí
	got, err := repo.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Cart.ItemCount())
	assert.Equal(t, 1, got.Ledger.Len())

	// Retry por re-submit: el backend ahora acepta
	submitter.failWith = nil
	resp, validation, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})
	require.NoError(t, err)
	require.Nil(t, validation)
	require.NotNil(t, resp)
	assert.Equal(t, 2, submitter.calls)

	_, err = repo.Get(session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestSubmitCreditSaleWithPendingCredit(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	uc := newSubmitFixture(repo, submitter, nil)

	session := openTestSession(t, repo, entity.OrderTypeCreditSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetCustomer(&entity.Customer{ID: "c1", FirstName: "Awa", LastName: "Diop"})

	// Sin pagos registrados: el método CREDIT pendiente habilita el cierre
	// y viaja como método principal con monto pagado cero
	resp, validation, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{
		PendingMethod: "CREDIT",
	})
	require.NoError(t, err)
	require.Nil(t, validation)
	require.NotNil(t, resp)

	req := submitter.lastReq
	require.NotNil(t, req.PaymentMethod)
	assert.Equal(t, "CREDIT", *req.PaymentMethod)
	require.NotNil(t, req.AmountPaid)
	assert.True(t, req.AmountPaid.IsZero())
	require.NotNil(t, req.CustomerID)
	assert.Equal(t, "c1", *req.CustomerID)
}

func TestSubmitProformaSkipsPaymentCheck(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	uc := newSubmitFixture(repo, submitter, nil)

	session := openTestSession(t, repo, entity.OrderTypeProforma)
	addCartItem(session, "p1", 1000, 1)

	resp, validation, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})
	require.NoError(t, err)
	require.Nil(t, validation)
	require.NotNil(t, resp)

	// Sin pagos: el método principal simplemente no viaja
	assert.Nil(t, submitter.lastReq.PaymentMethod)
	assert.Nil(t, submitter.lastReq.AmountPaid)
}

func TestSubmitJournalFailureDoesNotFailSale(t *testing.T) {
	repo := newFakeSessionRepo()
	submitter := &fakeSubmitter{}
	journal := &fakeJournal{recordErr: errors.New("db down")}
	uc := newSubmitFixture(repo, submitter, journal)

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)
	entry, err := entity.NewPaymentEntry(entity.PaymentCash, decimal.NewFromInt(1000), "", "")
	require.NoError(t, err)
	session.Ledger.AddPayment(*entry)

	resp, validation, err := uc.Execute(context.Background(), session.ID, "", &request.SubmitOrderRequest{})

	// La venta se confirma igual: el journal es best-effort
	require.NoError(t, err)
	require.Nil(t, validation)
	require.NotNil(t, resp)
	assert.Empty(t, journal.records)
}
