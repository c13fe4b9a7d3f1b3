package criteria

import (
	"github.com/gin-gonic/gin"

	domainCriteria "github.com/mirlondev/magasin-sub000/src/shared/domain/criteria"
)

// ControllerHelper funciones base para construir criterios desde controllers
type ControllerHelper struct{}

// NewControllerHelper crea una nueva instancia del helper
func NewControllerHelper() *ControllerHelper {
	return &ControllerHelper{}
}

// BuildCriteriaFromQuery construye criterios desde los query params de Gin
func (h *ControllerHelper) BuildCriteriaFromQuery(c *gin.Context) *domainCriteria.CriteriaBuilder {
	return domainCriteria.NewCriteriaBuilder().FromURLValues(c.Request.URL.Query())
}

// ValidateAndSanitizeCriteria deja pasar solo filtros sobre campos
// permitidos; un ordenamiento sobre un campo no permitido cae al default
// created_at DESC.
func (h *ControllerHelper) ValidateAndSanitizeCriteria(criteria domainCriteria.Criteria, allowedFields []string) domainCriteria.Criteria {
	if len(allowedFields) == 0 {
		return criteria
	}

	allowedMap := make(map[string]bool, len(allowedFields))
	for _, field := range allowedFields {
		allowedMap[field] = true
	}

	validFilters := domainCriteria.NewFilters()
	for _, filter := range criteria.Filters.Items {
		if allowedMap[filter.Field] {
			validFilters.Add(filter)
		}
	}

	validOrder := criteria.Order
	if validOrder.Field != "" && !allowedMap[validOrder.Field] {
		validOrder = domainCriteria.NewOrder("created_at", domainCriteria.DESC)
	}

	return domainCriteria.NewCriteria(validFilters, validOrder, criteria.Limit, criteria.Offset)
}
