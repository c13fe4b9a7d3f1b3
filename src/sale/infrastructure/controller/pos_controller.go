package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/application/usecase"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/infrastructure/metrics"
)

// POSController maneja las peticiones HTTP de la caja
type POSController struct {
	sessionUC *usecase.SessionUseCase
	cartUC    *usecase.CartUseCase
	paymentUC *usecase.PaymentUseCase
	submitUC  *usecase.SubmitOrderUseCase
	metrics   *metrics.SaleMetrics // opcional
}

// NewPOSController crea una nueva instancia del controlador
func NewPOSController(
	sessionUC *usecase.SessionUseCase,
	cartUC *usecase.CartUseCase,
	paymentUC *usecase.PaymentUseCase,
	submitUC *usecase.SubmitOrderUseCase,
	saleMetrics *metrics.SaleMetrics,
) *POSController {
	return &POSController{
		sessionUC: sessionUC,
		cartUC:    cartUC,
		paymentUC: paymentUC,
		submitUC:  submitUC,
		metrics:   saleMetrics,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *POSController) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/pos/sessions")
	{
		sessions.POST("", c.OpenSession)
		sessions.GET("/:session_id", c.GetSession)
		sessions.DELETE("/:session_id", c.CancelSession)
		sessions.POST("/:session_id/items", c.AddItem)
		sessions.PATCH("/:session_id/items/:product_id", c.UpdateLine)
		sessions.DELETE("/:session_id/items/:product_id", c.RemoveLine)
		sessions.PUT("/:session_id/customer", c.SetCustomer)
		sessions.PUT("/:session_id/discount", c.SetDiscount)
		sessions.PUT("/:session_id/notes", c.SetNotes)
		sessions.POST("/:session_id/payments", c.AddPayment)
		sessions.DELETE("/:session_id/payments/:index", c.RemovePayment)
		sessions.POST("/:session_id/submit", c.SubmitOrder)
	}

	log.Println("Rutas POS disponibles:")
	log.Println("  POST   /api/v1/pos/sessions")
	log.Println("  GET    /api/v1/pos/sessions/:session_id")
	log.Println("  DELETE /api/v1/pos/sessions/:session_id")
	log.Println("  POST   /api/v1/pos/sessions/:session_id/items")
	log.Println("  PATCH  /api/v1/pos/sessions/:session_id/items/:product_id")
	log.Println("  DELETE /api/v1/pos/sessions/:session_id/items/:product_id")
	log.Println("  PUT    /api/v1/pos/sessions/:session_id/customer")
	log.Println("  PUT    /api/v1/pos/sessions/:session_id/discount")
	log.Println("  PUT    /api/v1/pos/sessions/:session_id/notes")
	log.Println("  POST   /api/v1/pos/sessions/:session_id/payments")
	log.Println("  DELETE /api/v1/pos/sessions/:session_id/payments/:index")
	log.Println("  POST   /api/v1/pos/sessions/:session_id/submit  ⭐ (Confirm Sale)")
}

// OpenSession abre una sesión de venta para una caja
func (c *POSController) OpenSession(ctx *gin.Context) {
	// 1. Validar header X-Store-ID (OBLIGATORIO)
	storeID := ctx.GetHeader("X-Store-ID")
	if storeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Store-ID header is required",
		})
		return
	}

	// 2. Validar body
	var req request.OpenSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	// 3. Ejecutar use case
	resp, err := c.sessionUC.Open(storeID, &req)
	if err != nil {
		log.Printf("Error opening session: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Error opening session",
			"details": err.Error(),
		})
		return
	}

	if c.metrics != nil {
		c.metrics.SessionOpened(req.OrderType)
	}

	// 4. Responder exitosamente con 201 Created
	ctx.JSON(http.StatusCreated, resp)
}

// GetSession retorna el estado completo de una sesión
func (c *POSController) GetSession(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.sessionUC.Get(sessionID)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CancelSession descarta la sesión y todo su estado no confirmado
func (c *POSController) CancelSession(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	if err := c.sessionUC.Cancel(sessionID); err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"session_id": sessionID.String(),
		"status":     "CANCELED",
	})
}

// AddItem agrega un producto al carrito de la sesión
func (c *POSController) AddItem(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	storeID := ctx.GetHeader("X-Store-ID")
	if storeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Store-ID header is required",
		})
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cartUC.AddItem(ctx.Request.Context(), sessionID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error adding item: %v", err)

		if errors.Is(err, entity.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if errors.Is(err, entity.ErrInsufficientStock) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":   "Insufficient stock",
				"details": err.Error(),
			})
			return
		}
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":   "Product not found",
				"details": err.Error(),
			})
			return
		}

		// Otros errores → 502 (fallo hablando con el catálogo)
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error adding item",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateLine aplica delta de cantidad y/o descuento a una línea
func (c *POSController) UpdateLine(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	productID := ctx.Param("product_id")

	var req request.UpdateLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cartUC.UpdateLine(sessionID, productID, &req)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RemoveLine elimina la línea de un producto del carrito
func (c *POSController) RemoveLine(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	resp, err := c.cartUC.RemoveLine(sessionID, ctx.Param("product_id"))
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SetCustomer asocia o desasocia el cliente de la venta
func (c *POSController) SetCustomer(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	storeID := ctx.GetHeader("X-Store-ID")
	if storeID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "X-Store-ID header is required",
		})
		return
	}
	authToken := ctx.GetHeader("Authorization")

	var req request.SetCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cartUC.SetCustomer(ctx.Request.Context(), sessionID, storeID, authToken, &req)
	if err != nil {
		log.Printf("Error setting customer: %v", err)

		if errors.Is(err, entity.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error":   "Customer not found",
				"details": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error setting customer",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SetDiscount fija el descuento global de la venta
func (c *POSController) SetDiscount(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.SetDiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cartUC.SetDiscount(sessionID, &req)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SetNotes fija las notas libres de la venta
func (c *POSController) SetNotes(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.SetNotesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.cartUC.SetNotes(sessionID, &req)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddPayment registra un pago contra la sesión
func (c *POSController) AddPayment(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	var req request.AddPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.paymentUC.AddPayment(sessionID, &req)
	if err != nil {
		log.Printf("Error adding payment: %v", err)

		if errors.Is(err, entity.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidPaymentMethod) || errors.Is(err, entity.ErrInvalidAmount) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid payment",
				"details": err.Error(),
			})
			return
		}
		if errors.Is(err, entity.ErrPaymentNotAllowed) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error": "Payment exceeds remaining balance",
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error adding payment",
			"details": err.Error(),
		})
		return
	}

	if c.metrics != nil {
		c.metrics.PaymentAdded(req.Method)
	}

	ctx.JSON(http.StatusOK, resp)
}

// RemovePayment elimina un pago registrado por índice
func (c *POSController) RemovePayment(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment index",
		})
		return
	}

	resp, err := c.paymentUC.RemovePayment(sessionID, index)
	if err != nil {
		c.respondSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SubmitOrder confirma la venta contra el backend
func (c *POSController) SubmitOrder(ctx *gin.Context) {
	sessionID, ok := c.parseSessionID(ctx)
	if !ok {
		return
	}

	authToken := ctx.GetHeader("Authorization")

	// El body es opcional: sin pending_method el submit usa solo los pagos
	// ya registrados
	var req request.SubmitOrderRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"details": err.Error(),
			})
			return
		}
	}

	resp, validation, err := c.submitUC.Execute(ctx.Request.Context(), sessionID, authToken, &req)
	if err != nil {
		log.Printf("Error submitting order: %v", err)

		if errors.Is(err, entity.ErrSessionNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		if errors.Is(err, entity.ErrCannotFinalize) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error": "Sale cannot be finalized with current payments",
			})
			return
		}

		if c.metrics != nil {
			c.metrics.OrderSubmitted("unknown", "rejected")
		}

		// Rechazo o caída del backend → 502, estado de la sesión intacto
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "Error submitting order",
			"details": err.Error(),
		})
		return
	}

	// Validación de política fallida: se devuelve como entidad procesable
	if validation != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Order validation failed",
			"errors": validation.Errors,
		})
		return
	}

	if c.metrics != nil {
		c.metrics.OrderSubmitted(resp.OrderType, "confirmed")
		c.metrics.SaleConfirmed(resp.Currency, resp.TotalAmount)
	}

	// Venta confirmada → 201 Created
	ctx.JSON(http.StatusCreated, resp)
}

// parseSessionID valida el path param session_id
func (c *POSController) parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session_id format",
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

// respondSessionError mapeo estándar de errores de sesión
func (c *POSController) respondSessionError(ctx *gin.Context, err error) {
	log.Printf("Session operation error: %v", err)

	if errors.Is(err, entity.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Session operation failed",
		"details": err.Error(),
	})
}
