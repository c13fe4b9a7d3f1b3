package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mirlondev/magasin-sub000/src/sale/application/request"
	"github.com/mirlondev/magasin-sub000/src/sale/application/response"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
)

// ProductProvider resuelve snapshots de producto del catálogo
type ProductProvider interface {
	GetProduct(ctx context.Context, storeID, authToken, productID string) (*entity.Product, error)
}

// CustomerProvider resuelve clientes del directorio
type CustomerProvider interface {
	GetCustomer(ctx context.Context, storeID, authToken, customerID string) (*entity.Customer, error)
}

// CartUseCase edición del carrito de una sesión de venta.
//
// La validación de stock al agregar usa el snapshot del catálogo como fuente
// de verdad: lecturas stale son posibles y aceptadas, el enforcement
// autoritativo lo hace el backend al confirmar la venta.
// Las llamadas de red salen fuera del lock de la sesión; la mutación del
// carrito corre adentro.
type CartUseCase struct {
	sessions  port.SaleSessionRepository
	products  ProductProvider
	customers CustomerProvider
}

// NewCartUseCase crea una nueva instancia del caso de uso
func NewCartUseCase(sessions port.SaleSessionRepository, products ProductProvider, customers CustomerProvider) *CartUseCase {
	return &CartUseCase{
		sessions:  sessions,
		products:  products,
		customers: customers,
	}
}

// AddItem agrega un producto al carrito, validando cantidad contra el
// snapshot de stock del catálogo
func (uc *CartUseCase) AddItem(ctx context.Context, sessionID uuid.UUID, storeID, authToken string, req *request.AddItemRequest) (*response.SessionResponse, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := uc.products.GetProduct(ctx, storeID, authToken, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("error fetching product %s: %w", req.ProductID, err)
	}

	var resp response.SessionResponse
	err = uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		// Precondición de stock contra el snapshot: cuenta también lo que ya
		// está en el carrito para este producto
		inCart := 0
		for _, l := range session.Cart.Lines() {
			if l.Product.ID == product.ID {
				inCart = l.Quantity
				break
			}
		}
		if !product.HasStock(inCart + quantity) {
			return fmt.Errorf("%w: product %s has %d available", entity.ErrInsufficientStock, product.ID, product.AvailableQuantity)
		}

		session.Cart.AddItem(*product, quantity)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateLine aplica un delta de cantidad y/o fija el descuento de una línea.
// Operaciones totales: una línea inexistente se ignora en silencio.
func (uc *CartUseCase) UpdateLine(sessionID uuid.UUID, productID string, req *request.UpdateLineRequest) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		if req.QuantityDelta != nil {
			session.Cart.UpdateQuantity(productID, *req.QuantityDelta)
		}
		if req.DiscountPercentage != nil {
			session.Cart.SetLineDiscount(productID, *req.DiscountPercentage)
		}
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveLine elimina la línea de un producto
func (uc *CartUseCase) RemoveLine(sessionID uuid.UUID, productID string) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Cart.RemoveItem(productID)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetCustomer asocia un cliente a la venta (customer_id null = consumidor final)
func (uc *CartUseCase) SetCustomer(ctx context.Context, sessionID uuid.UUID, storeID, authToken string, req *request.SetCustomerRequest) (*response.SessionResponse, error) {
	var customer *entity.Customer
	if req.CustomerID != nil {
		var err error
		customer, err = uc.customers.GetCustomer(ctx, storeID, authToken, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("error fetching customer %s: %w", *req.CustomerID, err)
		}
	}

	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Cart.SetCustomer(customer)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetDiscount fija el descuento global de la venta
func (uc *CartUseCase) SetDiscount(sessionID uuid.UUID, req *request.SetDiscountRequest) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Cart.SetGlobalDiscount(req.Amount)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetNotes fija las notas libres de la venta
func (uc *CartUseCase) SetNotes(sessionID uuid.UUID, req *request.SetNotesRequest) (*response.SessionResponse, error) {
	var resp response.SessionResponse
	err := uc.sessions.Update(sessionID, func(session *entity.SaleSession) error {
		session.Cart.SetNotes(req.Notes)
		resp = response.NewSessionResponse(session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
