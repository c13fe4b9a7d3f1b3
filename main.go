package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	apiConfig "github.com/mirlondev/magasin-sub000/src/api/config"
	saleUseCase "github.com/mirlondev/magasin-sub000/src/sale/application/usecase"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/port"
	"github.com/mirlondev/magasin-sub000/src/sale/domain/service"
	saleCache "github.com/mirlondev/magasin-sub000/src/sale/infrastructure/cache"
	saleClient "github.com/mirlondev/magasin-sub000/src/sale/infrastructure/client"
	saleController "github.com/mirlondev/magasin-sub000/src/sale/infrastructure/controller"
	saleMetrics "github.com/mirlondev/magasin-sub000/src/sale/infrastructure/metrics"
	salePersistence "github.com/mirlondev/magasin-sub000/src/sale/infrastructure/persistence"
	sharedConfig "github.com/mirlondev/magasin-sub000/src/shared/infrastructure/config"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 POS Sale Service - HITO CAJA Bootstrap - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	log.Printf("PROMETHEUS_ENABLED value: '%s'", prometheusEnabled)

	var posMetrics *saleMetrics.SaleMetrics
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for POS Sale service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		posMetrics = saleMetrics.NewSaleMetrics()
		log.Println("/metrics endpoint registered successfully for POS Sale service")
	} else {
		log.Println("Prometheus metrics disabled for POS Sale service")
	}

	// Configurar GZIP y otros middlewares compartidos
	gzipSharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, gzipSharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "pos_sale_db")

	// Crear string de conexión para pos_sale_db (journal local de ventas)
	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a pos_sale_db: %s", connStr)

	// Conectar a la base de datos (opcional: la caja opera sin journal)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (sin journal local ni reportes)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (sin journal local ni reportes)")
			db = nil
		} else {
			log.Println("✅ Conexión a pos_sale_db establecida con éxito")
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check y metadata)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("SERVICE_VERSION", "1.0.0-bootstrap")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulo Sale
	setupSaleModule(v1, db, posMetrics)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor POS Sale Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/api/v1/health", port)
	router.Run(":" + port)
}

// setupSaleModule configura el módulo Sale
func setupSaleModule(router *gin.RouterGroup, db *sql.DB, posMetrics *saleMetrics.SaleMetrics) {
	log.Println("Configurando módulo Sale...")

	// Tasa de impuesto por defecto del servicio
	defaultTaxRate, err := decimal.NewFromString(getEnv("DEFAULT_TAX_RATE", "0.18"))
	if err != nil {
		log.Printf("⚠️  Advertencia: DEFAULT_TAX_RATE inválido, usando 0.18: %v", err)
		defaultTaxRate = decimal.NewFromFloat(0.18)
	}

	// Crear clientes hacia el backend
	orderClient := saleClient.NewOrderClient()
	customerClient := saleClient.NewCustomerClient()

	// Cliente de catálogo con cache de snapshots de producto
	cacheTTL, err := time.ParseDuration(getEnv("PRODUCT_CACHE_TTL", "5m"))
	if err != nil {
		cacheTTL = 5 * time.Minute
	}
	productCache := saleCache.NewProductCache(cacheTTL)
	catalogClient := saleClient.NewCachedCatalogClient(saleClient.NewCatalogClient(), productCache)

	// Repositorio de sesiones (en memoria: una sesión vive lo que dura la venta)
	sessionRepo := salePersistence.NewSessionMemoryRepository()

	// Journal local de ventas (best effort, requiere DB)
	var journal port.SaleJournal
	if db != nil {
		journal = salePersistence.NewSaleJournalPostgresRepository(db)
	} else {
		log.Println("⚠️  Sale journal disabled (no DB connection)")
	}

	// Servicios de dominio
	validator := service.NewOrderValidator()
	builder := saleUseCase.NewOrderRequestBuilder()

	// Crear casos de uso
	sessionUC := saleUseCase.NewSessionUseCase(sessionRepo, defaultTaxRate)
	cartUC := saleUseCase.NewCartUseCase(sessionRepo, catalogClient, customerClient)
	paymentUC := saleUseCase.NewPaymentUseCase(sessionRepo, validator)
	submitUC := saleUseCase.NewSubmitOrderUseCase(sessionRepo, orderClient, journal, validator, builder)

	var dailyReportUC *saleUseCase.DailyReportUseCase
	var listSalesUC *saleUseCase.ListSalesUseCase
	if db != nil {
		dailyReportUC = saleUseCase.NewDailyReportUseCase(db)
		listSalesUC = saleUseCase.NewListSalesUseCase(journal)
	}

	// Crear controladores
	posCtrl := saleController.NewPOSController(sessionUC, cartUC, paymentUC, submitUC, posMetrics)
	reportCtrl := saleController.NewReportController(dailyReportUC, listSalesUC)

	// Registrar rutas
	posCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Sale configurado exitosamente")
}
