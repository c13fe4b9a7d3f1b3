package usecase

import (
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
)

// SessionUseCase ciclo de vida de las sesiones de venta (abrir, consultar, cancelar)
type SessionUseCase struct {
	sessions       port.SaleSessionRepository
	defaultTaxRate decimal.Decimal
}

// NewSessionUseCase crea una nueva instancia del caso de uso
func NewSessionUseCase(sessions port.SaleSessionRepository, defaultTaxRate decimal.Decimal) *SessionUseCase {
	return &SessionUseCase{
		sessions:       sessions,
		defaultTaxRate: defaultTaxRate,
	}
}

// Open abre una sesión vacía para un tipo de venta
func (uc *SessionUseCase) Open(storeID string, req *request.OpenSessionRequest) (*response.SessionResponse, error) {
	taxRate := uc.defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	session, err := entity.NewSaleSession(storeID, entity.OrderType(req.OrderType), taxRate, req.Currency)
	if err != nil {
		return nil, err
	}

	uc.sessions.Save(session)
	log.Printf("🧾 Sale session opened: ID=%s, Type=%s, Store=%s", session.ID, session.OrderType, storeID)

	resp := response.NewSessionResponse(session)
	return &resp, nil
}

// Get retorna el estado completo de una sesión. La respuesta se arma
// bajo el lock de la sesión: nunca refleja una mutación a medio aplicar.
func (uc *SessionUseCase) Get(sessionID uuid.UUID) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Cancel descarta todo el estado no confirmado y elimina la sesión.
// La cancelación es simplemente clear(): nada fue persistido todavía,
// así que no hay commit parcial que revertir.
func (uc *SessionUseCase) Cancel(sessionID uuid.UUID) error {
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Clear()
		return nil
	})
	if err != nil {
		return err
	}
	uc.sessions.Delete(sessionID)
	log.Printf("🗑️ Sale session canceled: ID=%s", sessionID)
	return nil
}
