package port

import (
	"context"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/shared/domain/criteria"
)

// SaleJournal journal local de ventas confirmadas (solo lectura y append)
type SaleJournal interface {
	Record(ctx context.Context, record *entity.SaleRecord) error
	List(ctx context.Context, storeID string, crit criteria.Criteria) ([]*entity.SaleRecord, int, error)
}
