package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"

	_ "meditrack_pro/docs"
	"meditrack_pro/internal/adapter/http/handlers"
	"meditrack_pro/internal/adapter/persistence/repository"
	"meditrack_pro/internal/config"
	"meditrack_pro/internal/infrastructure/ai"
	"meditrack_pro/internal/infrastructure/cache"
	"meditrack_pro/internal/infrastructure/certificate"
	"meditrack_pro/internal/infrastructure/database"
	"meditrack_pro/internal/infrastructure/export"
	"meditrack_pro/internal/infrastructure/metrics"
	"meditrack_pro/internal/infrastructure/payments"
	"meditrack_pro/internal/usecase"
	"meditrack_pro/internal/usecase/interfaces"
	"meditrack_pro/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const serviceName = "meditrack-pro"

// Run will start the server
func Run() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	router, err := NewRouter(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("failed to wire the application", zap.Error(err))
	}

	zl.Info("server starting", zap.Int("port", cfg.Server.Port), zap.String("data_source", cfg.DataSource))
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		zl.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires repositories, collaborators and handlers from cfg.
func NewRouter(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*gin.Engine, error) {
	if zl == nil {
		zl = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	h, err := getHandlers(ctx, cfg, zl)
	if err != nil {
		return nil, err
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClinicRoutes(v1, h)

	return router, nil
}

type repositories struct {
	patients   interfaces.IPatientRepository
	contracts  interfaces.IContractRepository
	records    interfaces.IBillingRecordRepository
	charges    interfaces.IChargeRepository
	attendance interfaces.IAttendanceRepository
	captures   interfaces.ICaptureRepository
}

func getRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	repos := repositories{
		attendance: repository.NewAttendanceMemoryRepository(repository.SeedAttendanceTrend()),
		captures:   repository.NewCaptureMemoryRepository(),
	}

	switch cfg.DataSource {
	case config.DataSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		repos.patients = repository.NewPatientDynamoRepository(ddb, cfg.DynamoDB.PatientsTable)
		repos.contracts = repository.NewContractDynamoRepository(ddb, cfg.DynamoDB.ContractsTable)
		repos.records = repository.NewBillingRecordDynamoRepository(ddb, cfg.DynamoDB.RecordsTable)
		repos.charges = repository.NewChargeDynamoRepository(ddb, cfg.DynamoDB.ChargesTable)
	case config.DataSourceMemory:
		repos.patients = repository.NewPatientMemoryRepository(repository.SeedPatients())
		repos.contracts = repository.NewContractMemoryRepository(repository.SeedContracts())
		repos.records = repository.NewBillingRecordMemoryRepository(repository.SeedBillingRecords())
		repos.charges = repository.NewChargeMemoryRepository()
	default:
		return repositories{}, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
	return repos, nil
}

func getSummaryCache(ctx context.Context, cfg *config.Config, zl *zap.Logger) (interfaces.ISummaryCache, error) {
	if !cfg.Redis.Enabled() {
		return cache.NewMemorySummaryCache(), nil
	}
	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	zl.Info("summary cache backed by redis", zap.String("addr", cfg.Redis.Addr))
	return cache.NewRedisSummaryCache(client), nil
}

func getHandlers(ctx context.Context, cfg *config.Config, zl *zap.Logger) (clinicHandlers, error) {
	repos, err := getRepositories(ctx, cfg)
	if err != nil {
		return clinicHandlers{}, err
	}

	summaryCache, err := getSummaryCache(ctx, cfg, zl)
	if err != nil {
		return clinicHandlers{}, err
	}

	var generator interfaces.ITextGenerator
	if cfg.Gemini.APIKey != "" {
		generator = metrics.InstrumentGenerator(ai.NewGeminiClient(cfg.Gemini, zl))
	} else {
		zl.Warn("GEMINI_API_KEY not set; AI features answer with fallback text")
	}

	var gateway interfaces.IPaymentGateway
	if !cfg.MercadoPago.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, zl)
		if err != nil {
			zl.Warn("mercado pago gateway not configured", zap.Error(err))
		} else {
			gateway = mpGateway
		}
	}

	exporters := []interfaces.IRecordExporter{
		metrics.InstrumentExporter(export.NewCSVExporter()),
		metrics.InstrumentExporter(export.NewXLSXExporter()),
	}

	patientExporters := []interfaces.IPatientExporter{
		metrics.InstrumentPatientExporter(export.NewPatientCSVExporter()),
		metrics.InstrumentPatientExporter(export.NewPatientXLSXExporter()),
	}

	settings := usecase.ClinicSettings{
		SelfPayContractID:     cfg.Clinic.SelfPayContractID,
		OverdueThresholdDays:  cfg.Clinic.OverdueThresholdDays,
		CriticalThresholdDays: cfg.Clinic.CriticalThresholdDays,
		SummaryTTL:            cfg.Cache.SummaryTTL,
	}
	paymentSettings := usecase.PaymentSettings{
		Mock:            cfg.MercadoPago.Mock,
		AccessToken:     cfg.MercadoPago.AccessToken,
		TestPayerEmail:  cfg.MercadoPago.TestPayerEmail,
		TestPayerUserID: cfg.MercadoPago.TestPayerUserID,
	}

	dashboardUseCase := usecase.NewDashboardUseCase(repos.patients, repos.contracts, repos.attendance, generator, settings, zl)
	patientUseCase := usecase.NewPatientUseCase(repos.patients, repos.contracts, generator, summaryCache, patientExporters, settings, zl)
	recordUseCase := usecase.NewBillingRecordUseCase(repos.records, repos.captures, exporters, certificate.NewPDFRenderer(certificate.DefaultSignatory), settings, zl)
	chargeUseCase := usecase.NewChargeUseCase(repos.charges, repos.records, gateway, paymentSettings, zl)
	calendarUseCase := usecase.NewCalendarUseCase(repos.records, zl)
	assistantUseCase := usecase.NewAssistantUseCase(repos.patients, generator, zl)
	captureUseCase := usecase.NewCaptureUseCase(repos.captures, zl)

	return clinicHandlers{
		dashboard: handlers.NewDashboardHandler(dashboardUseCase),
		patients:  handlers.NewPatientHandler(patientUseCase),
		records:   handlers.NewBillingRecordHandler(recordUseCase),
		charges:   handlers.NewChargeHandler(chargeUseCase, cfg.MercadoPago.Mock, zl),
		calendar:  handlers.NewCalendarHandler(calendarUseCase),
		assistant: handlers.NewAssistantHandler(assistantUseCase),
		captures:  handlers.NewCaptureHandler(captureUseCase),
	}, nil
}

func setMiddlewares(router *gin.Engine, zl *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zl.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
