package cache

import (
	"log"
	"sync"
	"time"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
)

// cachedProduct snapshot de producto con su momento de captura
type cachedProduct struct {
	product   entity.Product
	fetchedAt time.Time
}

// ProductCache cache en memoria de snapshots de producto.
// Un snapshot puede quedar desactualizado respecto al catálogo; la caja lo
// acepta porque el backend revalida stock y precio al confirmar la venta.
type ProductCache struct {
	products map[string]cachedProduct
	ttl      time.Duration
	mu       sync.RWMutex
}

// NewProductCache crea un nuevo cache de productos con el TTL indicado
func NewProductCache(ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{
		products: make(map[string]cachedProduct),
		ttl:      ttl,
	}
}

// Put guarda el snapshot de un producto
func (c *ProductCache) Put(product *entity.Product) {
	if product == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[product.ID] = cachedProduct{
		product:   *product,
		fetchedAt: time.Now(),
	}
}

// Get obtiene el snapshot de un producto si sigue vigente
func (c *ProductCache) Get(productID string) (*entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.products[productID]
	if !ok {
		return nil, false
	}
	if time.Since(cached.fetchedAt) > c.ttl {
		return nil, false
	}

	product := cached.product
	return &product, true
}

// Invalidate descarta el snapshot de un producto
func (c *ProductCache) Invalidate(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.products, productID)
}

// Clear vacía el cache completo
func (c *ProductCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := len(c.products)
	c.products = make(map[string]cachedProduct)
	if count > 0 {
		log.Printf("🗑️  Product cache cleared (%d entries)", count)
	}
}

// Len cantidad de snapshots almacenados (vigentes o no)
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
