package port

import (
	"github.com/google/uuid"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// SaleSessionRepository acceso a las sesiones de venta activas.
// Las sesiones viven solo en memoria. Cart y Ledger no son seguros para
// acceso concurrente: toda lectura o mutación de una sesión pasa por
// Update, que serializa los requests sobre una misma sesión.
type SaleSessionRepository interface {
	Save(session *entity.SaleSession)
	// Update ejecuta fn con acceso exclusivo a la sesión. El error de fn
	// se propaga tal cual; una sesión inexistente retorna ErrSessionNotFound.
	Update(id uuid.UUID, fn func(*entity.SaleSession) error) error
	Delete(id uuid.UUID)
}
