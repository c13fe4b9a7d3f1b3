package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSOptions opciones del middleware CORS
type CORSOptions struct {
	AllowedOrigins []string
}

// CORSMiddleware habilita CORS para las cajas que corren en navegador
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	allowAll := len(opts.AllowedOrigins) == 0

	allowed := make(map[string]bool, len(opts.AllowedOrigins))
	for _, origin := range opts.AllowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			if allowAll {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Store-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
