package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterOperator operadores soportados para filtrado
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpIsNull             FilterOperator = "NULL"
	OpIsNotNull          FilterOperator = "NOT NULL"
)

// Filter un filtro individual campo/operador/valor
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// Filters colección ordenada de filtros
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección vacía de filtros
func NewFilters() Filters {
	return Filters{}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// OrderType dirección de ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Order ordenamiento por un campo
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{Field: field, OrderType: orderType}
}

// IsEmpty indica si no hay ordenamiento definido
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria criterios de búsqueda: filtros + orden + paginación
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{Filters: filters, Order: order, Limit: limit, Offset: offset}
}

// CriteriaBuilder construye criterios incrementalmente (desde código o query params)
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{filters: NewFilters()}
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(Filter{Field: field, Operator: operator, Value: value})
	return b
}

// WithOrder fija el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination fija límite y offset a partir de página y tamaño de página
func (b *CriteriaBuilder) WithPagination(page, pageSize int) *CriteriaBuilder {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	limit := pageSize
	offset := (page - 1) * pageSize
	b.limit = &limit
	b.offset = &offset
	return b
}

// Sufijos de query param reconocidos por FromURLValues
// (campo__gte=valor, campo__like=valor, etc.)
var operatorSuffixes = []struct {
	suffix   string
	operator FilterOperator
}{
	{"__gte", OpGreaterThanOrEqual},
	{"__lte", OpLessThanOrEqual},
	{"__gt", OpGreaterThan},
	{"__lt", OpLessThan},
	{"__ne", OpNotEqual},
	{"__like", OpLike},
}

// Params reservados para orden y paginación (no se interpretan como filtros)
const (
	paramOrderBy  = "order_by"
	paramOrderDir = "order_dir"
	paramPage     = "page"
	paramPageSize = "page_size"
)

// FromURLValues interpreta query params como criterios: los params reservados
// controlan orden y paginación, el resto se convierte en filtros de igualdad
// o, con sufijo (__gte, __lte, __gt, __lt, __ne, __like), en el operador pedido.
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	page := 1
	pageSize := 10

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		value := vals[0]

		switch key {
		case paramOrderBy:
			dir := DESC
			if strings.EqualFold(values.Get(paramOrderDir), string(ASC)) {
				dir = ASC
			}
			b.order = NewOrder(value, dir)
			continue
		case paramOrderDir:
			continue
		case paramPage:
			if n, err := strconv.Atoi(value); err == nil {
				page = n
			}
			continue
		case paramPageSize:
			if n, err := strconv.Atoi(value); err == nil {
				pageSize = n
			}
			continue
		}

		field, operator := key, OpEqual
		for _, s := range operatorSuffixes {
			if strings.HasSuffix(key, s.suffix) {
				field = strings.TrimSuffix(key, s.suffix)
				operator = s.operator
				break
			}
		}
		b.filters.Add(Filter{Field: field, Operator: operator, Value: value})
	}

	b.WithPagination(page, pageSize)
	return b
}

// Build construye los criterios finales
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
