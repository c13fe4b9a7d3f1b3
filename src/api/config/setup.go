package config

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health y metadata del servicio)
type APIConfig struct {
	DB          *sql.DB // opcional: nil = health sin chequeo de DB
	ServiceName string
	Version     string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "pos-sale-service",
		Version:     "dev",
	}
}

// SetupAPIModule registra health check y metadata en raíz y en /api/v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	healthHandler := func(c *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
			"version": cfg.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		}

		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}

		c.JSON(http.StatusOK, status)
	}

	router.GET("/health", healthHandler)
	v1.GET("/health", healthHandler)

	v1.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"version": cfg.Version,
		})
	})

	log.Println("Módulo API configurado (health y version)")
}
