package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/service"
)

// PaymentUseCase registro y remoción de pagos contra una sesión de venta
// HITO CAJA-02 - Multi-pago
type PaymentUseCase struct {
	sessions  port.SaleSessionRepository
	validator *service.OrderValidator
}

// NewPaymentUseCase crea una nueva instancia del caso de uso
func NewPaymentUseCase(sessions port.SaleSessionRepository, validator *service.OrderValidator) *PaymentUseCase {
	return &PaymentUseCase{
		sessions:  sessions,
		validator: validator,
	}
}

// AddPayment registra un pago contra la sesión, aplicando la política de
// métodos: efectivo admite sobrepago (el excedente es vuelto, no se
// almacena como pago), el resto queda limitado al saldo restante.
// El chequeo y el registro corren bajo el lock de la sesión: dos pagos
// concurrentes nunca superan el total entre los dos.
func (uc *PaymentUseCase) AddPayment(sessionID uuid.UUID, req *request.AddPaymentRequest) (*response.AddPaymentResponse, error) {
	entry, err := entity.NewPaymentEntry(entity.PaymentMethod(req.Method), req.Amount, req.Notes, req.Reference)
	if err != nil {
		return nil, err
	}

	var resp *response.AddPaymentResponse
	err = uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		target := session.Cart.Total()
		if !uc.validator.CanAddPayment(session.Ledger, target, entry.Amount, entry.Method) {
			if !entry.Amount.GreaterThan(decimal.Zero) {
				return entity.ErrInvalidAmount
			}
			return entity.ErrPaymentNotAllowed
		}

		change := decimal.Zero
		if entry.Method == entity.PaymentCash {
			// Vuelto transitorio calculado ANTES de registrar: el pago que
			// se registra queda topeado al restante
			change = session.Ledger.ChangeDue(target, entry.Amount)
			entry.Amount = entry.Amount.Sub(change)
		}

		if entry.Amount.GreaterThan(decimal.Zero) {
			session.Ledger.AddPayment(*entry)
		}

		resp = &response.AddPaymentResponse{
			Session: response.NewSessionResponse(session),
			Change:  change,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RemovePayment elimina un pago por índice (no-op si está fuera de rango).
// Solo posible mientras la venta no fue confirmada: después del submit el
// historial de pagos es parte de la Order persistida.
func (uc *PaymentUseCase) RemovePayment(sessionID uuid.UUID, index int) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Ledger.RemovePayment(index)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
