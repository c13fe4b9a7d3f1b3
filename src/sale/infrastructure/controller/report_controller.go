package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mirlondev/magasin-sub000/src/sale/application/usecase"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	infraCriteria "github.com/mirlondev/magasin-sub000/src/shared/infrastructure/criteria"
)

// listSalesAllowedFields campos filtrables/ordenables del journal
var listSalesAllowedFields = []string{
	"order_type", "payment_status", "payment_method",
	"customer_id", "total_amount", "created_at",
}

// ReportController maneja las peticiones HTTP para reportes de ventas
// HITO CAJA-03 - Journal de ventas para reportes diarios
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
	listSalesUC   *usecase.ListSalesUseCase
	helper        *infraCriteria.ControllerHelper
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase, listSalesUC *usecase.ListSalesUseCase) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
		listSalesUC:   listSalesUC,
		helper:        infraCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}

	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/sales")
}

// DailyReport maneja el reporte diario de ventas
func (c *ReportController) DailyReport(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.dailyReportUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Daily report not available (database not configured)",
		})
		return
	}

	// 1. Validar header X-Store-ID (OBLIGATORIO)
	storeID := ctx.GetHeader("X-Store-ID")
	if storeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Store-ID header is required",
		})
		return
	}

	// 2. Leer query parameter 'date' (OBLIGATORIO)
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "date query parameter is required (format: YYYY-MM-DD)",
		})
		return
	}

	// 3. Ejecutar use case
	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), storeID, date)
	if err != nil {
		log.Printf("Error generating daily report: %v", err)

		// Si es error de formato de fecha → 400
		if errors.Is(err, entity.ErrInvalidDateFormat) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid date format",
				"details": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error generating daily report",
			"details": err.Error(),
		})
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}

// ListSales lista las ventas del journal con filtros, orden y paginación
func (c *ReportController) ListSales(ctx *gin.Context) {
	// Verificar que el use case esté disponible
	if c.listSalesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sales listing not available (database not configured)",
		})
		return
	}

	// 1. Validar header X-Store-ID (OBLIGATORIO)
	storeID := ctx.GetHeader("X-Store-ID")
	if storeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Store-ID header is required",
		})
		return
	}

	// 2. Construir criterios desde los query params y sanitizar campos
	crit := c.helper.BuildCriteriaFromQuery(ctx).Build()
	crit = c.helper.ValidateAndSanitizeCriteria(crit, listSalesAllowedFields)

	// 3. Ejecutar use case
	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), storeID, crit)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error listing sales",
			"details": err.Error(),
		})
		return
	}

	// 4. Responder exitosamente
	ctx.JSON(http.StatusOK, resp)
}
