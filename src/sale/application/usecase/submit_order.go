package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/service"
)

// OrderSubmitter única vía de escritura hacia el backend de órdenes
type OrderSubmitter interface {
	Submit(ctx context.Context, storeID, authToken string, req *request.CreateOrderRequest) (*entity.Order, error)
}

// SubmitOrderUseCase confirmación de una venta.
//
// Política at-most-one-commit con retry por re-submit: si el backend
// rechaza, el carrito y el ledger quedan intactos para corregir y
// reintentar; recién con la Order confirmada se limpia la sesión.
type SubmitOrderUseCase struct {
	sessions  port.SaleSessionRepository
	submitter OrderSubmitter
	journal   port.SaleJournal // opcional: nil = sin journal local
	validator *service.OrderValidator
	builder   *OrderRequestBuilder
}

// NewSubmitOrderUseCase crea una nueva instancia del caso de uso
func NewSubmitOrderUseCase(
	sessions port.SaleSessionRepository,
	submitter OrderSubmitter,
	journal port.SaleJournal,
	validator *service.OrderValidator,
	builder *OrderRequestBuilder,
) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		sessions:  sessions,
		submitter: submitter,
		journal:   journal,
		validator: validator,
		builder:   builder,
	}
}

// Execute valida, construye el request y lo envía al backend.
// Una validación fallida se devuelve como resultado (no como error) y no
// muta nada; un rechazo del backend tampoco muta nada.
// Todo el pipeline corre bajo el lock de la sesión: una edición
// concurrente no puede colarse entre la validación y el submit.
func (uc *SubmitOrderUseCase) Execute(
	ctx context.Context,
	sessionID uuid.UUID,
	authToken string,
	req *request.SubmitOrderRequest,
) (*response.SubmitOrderResponse, *service.ValidationResult, error) {
	var resp *response.SubmitOrderResponse
	var failedValidation *service.ValidationResult

	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		// ====================================================================
		// PASO 1: VALIDAR POLÍTICA DEL TIPO DE VENTA
		// ====================================================================
		validation := uc.validator.ValidateForOrderType(session.Cart, session.OrderType)
		if !validation.Valid {
			failedValidation = &validation
			return nil
		}

		// ====================================================================
		// PASO 2: VERIFICAR ESTADO DE PAGOS (las proformas no exigen pago)
		// ====================================================================
		pendingMethod := entity.PaymentMethod(req.PendingMethod)
		target := session.Cart.Total()
		if session.OrderType != entity.OrderTypeProforma {
			if !uc.validator.CanFinalize(session.Ledger, target, session.OrderType, pendingMethod) {
				return entity.ErrCannotFinalize
			}
		}

		// ====================================================================
		// PASO 3: CONSTRUIR EL REQUEST WIRE-LEVEL (transformación pura)
		// ====================================================================
		primaryMethod := uc.builder.PrimaryMethod(session.Ledger)
		var primaryAmount *decimal.Decimal
		if primaryMethod != nil {
			paid := session.Ledger.TotalPaid()
			primaryAmount = &paid
		} else if session.OrderType.IsCredit() && pendingMethod == entity.PaymentCredit {
			// Venta a crédito confirmada sin pagos registrados: el backend
			// registra la deuda completa contra el cliente
			credit := entity.PaymentCredit
			primaryMethod = &credit
			zero := decimal.Zero
			primaryAmount = &zero
		}

		orderReq := uc.builder.Build(session.Cart, session.Ledger, session.StoreID, session.OrderType, primaryMethod, primaryAmount)
		orderReq.Currency = session.Currency

		// ====================================================================
		// PASO 4: SUBMIT AL BACKEND (única vía de escritura)
		// ====================================================================
		order, err := uc.submitter.Submit(ctx, session.StoreID, authToken, orderReq)
		if err != nil {
			// Estado intacto: la caja puede corregir y reintentar
			log.Printf("❌ Order submission rejected for session %s: %v", sessionID, err)
			return fmt.Errorf("error submitting order: %w", err)
		}

		log.Printf("✅ Order confirmed: Number=%s, Type=%s, Total=%s", order.OrderNumber, order.OrderType, order.TotalAmount)

		// ====================================================================
		// PASO 5: JOURNAL LOCAL (best effort, nunca falla la venta)
		// ====================================================================
		if uc.journal != nil {
			uc.recordSale(ctx, session, order, primaryMethod)
		}

		// ====================================================================
		// PASO 6: LIMPIAR SESIÓN Y RESPONDER
		// ====================================================================
		resp = response.NewSubmitOrderResponse(order, order.Change)
		session.Clear()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if failedValidation != nil {
		return nil, failedValidation, nil
	}

	uc.sessions.Delete(sessionID)
	return resp, nil, nil
}

// recordSale registra la venta confirmada en el journal local.
// Un fallo acá solo se loguea: la Order ya existe en el backend.
func (uc *SubmitOrderUseCase) recordSale(ctx context.Context, session *entity.SaleSession, order *entity.Order, primaryMethod *entity.PaymentMethod) {
	method := entity.PaymentMixed
	if primaryMethod != nil {
		method = *primaryMethod
	}

	record, err := entity.NewSaleRecord(order, session.Ledger, method, order.Change)
	if err != nil {
		log.Printf("⚠️  Warning: could not build sale record for order %s: %v", order.ID, err)
		return
	}

	if err := uc.journal.Record(ctx, record); err != nil {
		log.Printf("⚠️  Warning: could not record sale %s in journal: %v", order.ID, err)
	}
}
