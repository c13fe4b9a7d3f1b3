package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	domainCriteria "github.com/mirlondev/magasin-sub000/src/shared/domain/criteria"
	sqlCriteria "github.com/mirlondev/magasin-sub000/src/shared/infrastructure/criteria"
)

// SaleJournalPostgresRepository implementa SaleJournal usando PostgreSQL.
// Solo insert y select: el journal es append-only.
// HITO CAJA-03 - Journal de ventas para reportes diarios
type SaleJournalPostgresRepository struct {
	db        *sql.DB
	converter *sqlCriteria.SQLCriteriaConverter
}

// NewSaleJournalPostgresRepository crea una nueva instancia del repositorio
func NewSaleJournalPostgresRepository(db *sql.DB) port.SaleJournal {
	return &SaleJournalPostgresRepository{
		db:        db,
		converter: sqlCriteria.NewSQLCriteriaConverter(),
	}
}

// Record inserta una fila del journal
func (r *SaleJournalPostgresRepository) Record(ctx context.Context, record *entity.SaleRecord) error {
	query := `
		INSERT INTO sale_records (
			id, store_id, order_id, order_number, order_type, customer_id,
			item_count, subtotal, discount_amount, tax_amount, total_amount,
			amount_paid, credit_amount, change_given,
			payment_status, payment_method, currency, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.StoreID,
		record.OrderID,
		record.OrderNumber,
		record.OrderType,
		record.CustomerID, // NULL permitido
		record.ItemCount,
		record.Subtotal,
		record.DiscountAmount,
		record.TaxAmount,
		record.TotalAmount,
		record.AmountPaid,
		record.CreditAmount,
		record.ChangeGiven,
		record.PaymentStatus,
		record.PaymentMethod,
		record.Currency,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error recording sale %s: %w", record.OrderID, err)
	}

	return nil
}

// List retorna filas del journal de un store según criterios de búsqueda.
// El filtro por store_id se antepone siempre; los criterios del caller se
// agregan detrás.
func (r *SaleJournalPostgresRepository) List(ctx context.Context, storeID string, crit domainCriteria.Criteria) ([]*entity.SaleRecord, int, error) {
	// Anteponer el filtro obligatorio de store
	filters := domainCriteria.NewFilters()
	filters.Add(domainCriteria.Filter{Field: "store_id", Operator: domainCriteria.OpEqual, Value: storeID})
	for _, f := range crit.Filters.Items {
		filters.Add(f)
	}

	order := crit.Order
	if order.IsEmpty() {
		order = domainCriteria.NewOrder("created_at", domainCriteria.DESC)
	}
	scoped := domainCriteria.NewCriteria(filters, order, crit.Limit, crit.Offset)

	// 1. Contar total para paginación
	countQuery, countParams := r.converter.ToCountSQL("SELECT COUNT(*) FROM sale_records", scoped)
	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting sale_records: %w", err)
	}

	// 2. Obtener filas
	baseQuery := `
		SELECT
			id, store_id, order_id, order_number, order_type, customer_id,
			item_count, subtotal, discount_amount, tax_amount, total_amount,
			amount_paid, credit_amount, change_given,
			payment_status, payment_method, currency, created_at
		FROM sale_records
	`

	query, params := r.converter.ToSelectSQL(baseQuery, scoped)
	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying sale_records: %w", err)
	}
	defer rows.Close()

	var records []*entity.SaleRecord
	for rows.Next() {
		record := &entity.SaleRecord{}
		err := rows.Scan(
			&record.ID,
			&record.StoreID,
			&record.OrderID,
			&record.OrderNumber,
			&record.OrderType,
			&record.CustomerID,
			&record.ItemCount,
			&record.Subtotal,
			&record.DiscountAmount,
			&record.TaxAmount,
			&record.TotalAmount,
			&record.AmountPaid,
			&record.CreditAmount,
			&record.ChangeGiven,
			&record.PaymentStatus,
			&record.PaymentMethod,
			&record.Currency,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning sale_record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating sale_records: %w", err)
	}

	return records, totalCount, nil
}
