package usecase

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/service"
	"github.com/mirlondev/magasin-sub000/src/sale/infrastructure/persistence"
)

// fakeSessionRepo repositorio de sesiones en memoria para tests
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.SaleSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.SaleSession)}
}

func (r *fakeSessionRepo) Save(session *entity.SaleSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

func (r *fakeSessionRepo) Update(id uuid.UUID, fn func(*entity.SaleSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return entity.ErrSessionNotFound
	}
	return fn(session)
}

func (r *fakeSessionRepo) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get acceso directo para los asserts de los tests
func (r *fakeSessionRepo) Get(id uuid.UUID) (*entity.SaleSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func openTestSession(t *testing.T, repo *fakeSessionRepo, orderType entity.OrderType) *entity.SaleSession {
	t.Helper()
	session, err := entity.NewSaleSession("store-1", orderType, decimal.NewFromFloat(0.18), "XOF")
	require.NoError(t, err)
	repo.Save(session)
	return session
}

func addCartItem(session *entity.SaleSession, id string, price int64, qty int) {
	session.Cart.AddItem(entity.Product{
		ID:                id,
		UnitPrice:         decimal.NewFromInt(price),
		AvailableQuantity: 100,
	}, qty)
}

func TestAddPaymentCashOverpaymentYieldsChange(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 2000, 1)
	session.Cart.SetTaxRate(decimal.NewFromFloat(0.18)) // total 2360

	resp, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "CASH",
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)

	// El vuelto es transitorio: el pago registrado queda topeado al restante
	assert.True(t, resp.Change.Equal(decimal.NewFromInt(2640)))
	require.Equal(t, 1, session.Ledger.Len())
	assert.True(t, session.Ledger.Entries()[0].Amount.Equal(decimal.NewFromInt(2360)))
	assert.Equal(t, entity.PaymentStatusPaid, session.Ledger.Status(session.Cart.Total()))
	assert.Equal(t, "PAID", resp.Session.Payment.Status)
}

func TestAddPaymentExactCashNoChange(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)

	resp, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "CASH",
		Amount: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	assert.True(t, resp.Change.IsZero())
	assert.True(t, session.Ledger.TotalPaid().Equal(decimal.NewFromInt(1000)))
}

func TestAddPaymentSplitAcrossMethods(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)

	_, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "MOBILE_MONEY",
		Amount: decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	resp, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "CASH",
		Amount: decimal.NewFromInt(400),
	})
	require.NoError(t, err)

	assert.True(t, resp.Change.IsZero())
	assert.Equal(t, "PAID", resp.Session.Payment.Status)
	assert.Equal(t, 2, session.Ledger.Len())
}

func TestAddPaymentNonCashCannotExceedRemaining(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)

	_, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "CREDIT_CARD",
		Amount: decimal.NewFromInt(1500),
	})

	assert.ErrorIs(t, err, entity.ErrPaymentNotAllowed)
	assert.Equal(t, 0, session.Ledger.Len())
}

func TestAddPaymentRejectsInvalidInput(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)

	_, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "BARTER",
		Amount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidPaymentMethod)

	_, err = uc.AddPayment(session.ID, &request.AddPaymentRequest{
		Method: "CASH",
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, entity.ErrInvalidAmount)
}

func TestAddPaymentSessionNotFound(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	_, err := uc.AddPayment(uuid.New(), &request.AddPaymentRequest{
		Method: "CASH",
		Amount: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestAddPaymentConcurrentRequestsNeverOverpay(t *testing.T) {
	repo := persistence.NewSessionMemoryRepository()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session, err := entity.NewSaleSession("store-1", entity.OrderTypeDirectSale, decimal.Zero, "XOF")
	require.NoError(t, err)
	session.Cart.AddItem(entity.Product{
		ID:                "p1",
		UnitPrice:         decimal.NewFromInt(1000),
		AvailableQuantity: 100,
	}, 1)
	repo.Save(session)

	// Dos cajas pagan 600 en efectivo a la vez contra un total de 1000:
	// el segundo pago queda topeado al restante, nunca se registra de más
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{
				Method: "CASH",
				Amount: decimal.NewFromInt(600),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	err = repo.Update(session.ID, func(s *entity.SaleSession) error {
		assert.True(t, s.Ledger.TotalPaid().Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, 2, s.Ledger.Len())
		assert.Equal(t, entity.PaymentStatusPaid, s.Ledger.Status(s.Cart.Total()))
		return nil
	})
	require.NoError(t, err)
}

func TestRemovePaymentByIndex(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewPaymentUseCase(repo, service.NewOrderValidator())

	session := openTestSession(t, repo, entity.OrderTypeDirectSale)
	addCartItem(session, "p1", 1000, 1)
	session.Cart.SetTaxRate(decimal.Zero)

	_, err := uc.AddPayment(session.ID, &request.AddPaymentRequest{Method: "CASH", Amount: decimal.NewFromInt(300)})
	require.NoError(t, err)
	_, err = uc.AddPayment(session.ID, &request.AddPaymentRequest{Method: "CREDIT_CARD", Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)

	resp, err := uc.RemovePayment(session.ID, 0)
	require.NoError(t, err)

	require.Equal(t, 1, session.Ledger.Len())
	assert.Equal(t, "CREDIT_CARD", resp.Payment.Entries[0].Method)

	// Índice fuera de rango: no-op, no error
	_, err = uc.RemovePayment(session.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Ledger.Len())
}
