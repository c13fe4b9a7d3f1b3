package client

import (
	"context"

	"github.com/mirlondev/magasin-sub000/src/sale/domain/entity"
	"github.com/mirlondev/magasin-sub000/src/sale/infrastructure/cache"
)

// CachedCatalogClient decora el CatalogClient con un cache de snapshots para
// no golpear el catálogo en cada tecleo de la caja
type CachedCatalogClient struct {
	inner *CatalogClient
	cache *cache.ProductCache
}

// NewCachedCatalogClient crea el cliente decorado
func NewCachedCatalogClient(inner *CatalogClient, productCache *cache.ProductCache) *CachedCatalogClient {
	return &CachedCatalogClient{
		inner: inner,
		cache: productCache,
	}
}

// GetProduct sirve desde cache si el snapshot sigue vigente
func (c *CachedCatalogClient) GetProduct(ctx context.Context, storeID, authToken, productID string) (*entity.Product, error) {
	if product, ok := c.cache.Get(productID); ok {
		return product, nil
	}

	product, err := c.inner.GetProduct(ctx, storeID, authToken, productID)
	if err != nil {
		return nil, err
	}

	c.cache.Put(product)
	return product, nil
}

// SearchProducts pasa directo al catálogo y aprovecha para refrescar snapshots
func (c *CachedCatalogClient) SearchProducts(ctx context.Context, storeID, authToken, query string) ([]entity.Product, error) {
	products, err := c.inner.SearchProducts(ctx, storeID, authToken, query)
	if err != nil {
		return nil, err
	}

	for i := range products {
		c.cache.Put(&products[i])
	}
	return products, nil
}
