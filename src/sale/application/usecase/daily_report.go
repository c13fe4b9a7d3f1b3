package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// DailyReportUseCase reporte diario agregado del journal de ventas
// HITO CAJA-03 - Journal de ventas para reportes diarios
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha (YYYY-MM-DD).
// Rango [from, to) sobre created_at para aprovechar el índice; nunca
// DATE(created_at).
func (uc *DailyReportUseCase) Execute(ctx context.Context, storeID, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidDateFormat, date)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(subtotal), 0) as gross_total,
			COALESCE(SUM(discount_amount), 0) as total_discounts,
			COALESCE(SUM(tax_amount), 0) as total_tax,
			COALESCE(SUM(total_amount), 0) as net_total,
			COALESCE(SUM(amount_paid), 0) as cash_collected,
			COALESCE(SUM(credit_amount), 0) as credit_outstanding,
			MIN(created_at) as first_sale,
			MAX(created_at) as last_sale
		FROM sale_records
		WHERE store_id = $1
			AND created_at >= $2
			AND created_at < $3
	`

	var salesCount int
	var grossTotal, totalDiscounts, totalTax, netTotal, cashCollected, creditOutstanding decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, query, storeID, from, to).Scan(
		&salesCount,
		&grossTotal,
		&totalDiscounts,
		&totalTax,
		&netTotal,
		&cashCollected,
		&creditOutstanding,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sale_records: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:              date,
		SalesCount:        salesCount,
		GrossTotal:        grossTotal,
		TotalDiscounts:    totalDiscounts,
		TotalTax:          totalTax,
		NetTotal:          netTotal,
		CashCollected:     cashCollected,
		CreditOutstanding: creditOutstanding,
	}

	if firstSale.Valid {
		resp.FirstTransactionAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastTransactionAt = &lastSale.Time
	}

	return resp, nil
}
