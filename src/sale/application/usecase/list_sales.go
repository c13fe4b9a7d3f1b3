package usecase

import (
	"context"

	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	"github.com/mirlondev/magasin-sub000/src/shared/domain/criteria"
)

// ListSalesUseCase listado filtrable del journal de ventas
type ListSalesUseCase struct {
	journal port.SaleJournal
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(journal port.SaleJournal) *ListSalesUseCase {
	return &ListSalesUseCase{
		journal: journal,
	}
}

// Execute lista las ventas del journal según los criterios de búsqueda
func (uc *ListSalesUseCase) Execute(ctx context.Context, storeID string, crit criteria.Criteria) (*response.ListSalesResponse, error) {
	records, totalCount, err := uc.journal.List(ctx, storeID, crit)
	if err != nil {
		return nil, err
	}

	items := make([]response.SaleRecordItem, 0, len(records))
	for _, r := range records {
		items = append(items, response.SaleRecordItem{
			ID:            r.ID.String(),
			OrderID:       r.OrderID,
			OrderNumber:   r.OrderNumber,
			OrderType:     string(r.OrderType),
			CustomerID:    r.CustomerID,
			ItemCount:     r.ItemCount,
			TotalAmount:   r.TotalAmount,
			AmountPaid:    r.AmountPaid,
			CreditAmount:  r.CreditAmount,
			PaymentStatus: string(r.PaymentStatus),
			PaymentMethod: string(r.PaymentMethod),
			Currency:      r.Currency,
			CreatedAt:     r.CreatedAt,
		})
	}

	return &response.ListSalesResponse{
		Items:      items,
		TotalCount: totalCount,
	}, nil
}
