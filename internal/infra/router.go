package infra

import (
	"fmt"
	"net/http"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/fleetcases/docs" // registers swagger document
	"github.com/umalmyha/fleetcases/internal/cache"
	"github.com/umalmyha/fleetcases/internal/config"
	"github.com/umalmyha/fleetcases/internal/events"
	"github.com/umalmyha/fleetcases/internal/handlers"
	"github.com/umalmyha/fleetcases/internal/middleware"
	"github.com/umalmyha/fleetcases/internal/push"
	"github.com/umalmyha/fleetcases/internal/repository"
	"github.com/umalmyha/fleetcases/internal/service"
	"github.com/umalmyha/fleetcases/internal/validation"
	"github.com/umalmyha/fleetcases/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps are connections and shared components router is built on, Redis and Hub are optional
type Deps struct {
	Mongo     *mongo.Client
	Redis     *redis.Client
	Publisher events.Publisher
	Hub       *push.Hub
}

func Router(cfg *config.Config, deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler

	v, err := validation.NewEchoValidator()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	policy, err := service.ParseTransitionPolicy(cfg.CaseCfg.Transitions)
	if err != nil {
		return nil, fmt.Errorf("failed to build transition policy - %w", err)
	}

	// Middleware
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.HTTPCfg.CorsOrigins,
		AllowCredentials: true,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
	}))
	e.Use(middleware.RequestLogger())

	// Transactors
	var trx transactor.Transactor = transactor.NewSequentialTransactor()
	if cfg.MongoCfg.Transactions {
		trx = transactor.NewMongoTransactor(deps.Mongo)
	}

	// Caches
	lookupCache := cache.NewNoopLookupCache()
	if deps.Redis != nil {
		lookupCache = cache.NewRedisLookupCache(deps.Redis, cfg.RedisCfg.LookupTTL)
	}

	// Repositories
	db := deps.Mongo.Database(cfg.MongoCfg.Database)
	customerRps := repository.NewMongoCustomerRepository(db)
	caseRps := repository.NewMongoCaseRepository(db)
	surveyRps := repository.NewMongoSurveyRepository(db)
	notificationRps := repository.NewMongoNotificationRepository(db)

	// Services
	lookupSvc := service.NewLookupService(repository.NewMongoLookupRepository(db), lookupCache)
	caseSvc := service.NewCaseService(service.CaseRepositories{
		Customers:     customerRps,
		Suppliers:     repository.NewMongoSupplierRepository(db),
		Cases:         caseRps,
		Events:        repository.NewMongoCaseEventRepository(db),
		Surveys:       surveyRps,
		Notifications: notificationRps,
	}, lookupSvc, trx, policy, events.Fanout(deps.Publisher))
	surveySvc := service.NewSurveyService(customerRps, caseRps, surveyRps)
	notificationSvc := service.NewNotificationService(customerRps, notificationRps)

	// Handlers
	healthHandler := handlers.NewHealthHTTPHandler(deps.Mongo)
	caseHandler := handlers.NewCaseHTTPHandler(caseSvc, surveySvc)
	lookupHandler := handlers.NewLookupHTTPHandler(lookupSvc)
	notificationHandler := handlers.NewNotificationHTTPHandler(notificationSvc)
	surveyHandler := handlers.NewSurveyHTTPHandler(surveySvc)

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	// cases
	casesAPI := api.Group("/cases")
	casesAPI.GET("", caseHandler.GetAll)
	casesAPI.POST("", caseHandler.Post)
	casesAPI.GET("/:id", caseHandler.Get)
	casesAPI.DELETE("/:id", caseHandler.DeleteByID)
	casesAPI.PUT("/:id/status", caseHandler.PutStatus)
	casesAPI.PUT("/:id/supplier", caseHandler.PutSupplier)
	casesAPI.POST("/:id/survey", caseHandler.PostSurvey)

	// lookups
	lookupsAPI := api.Group("/lookups")
	lookupsAPI.GET("/case-types", lookupHandler.CaseTypes)
	lookupsAPI.GET("/status-codes", lookupHandler.StatusCodes)
	lookupsAPI.POST("/seed", lookupHandler.Seed)

	// notifications
	notificationsAPI := api.Group("/notifications")
	notificationsAPI.GET("", notificationHandler.GetAll)
	notificationsAPI.PUT("/mark-all-read", notificationHandler.PutMarkAllRead)
	notificationsAPI.PUT("/:id/read", notificationHandler.PutRead)

	// surveys
	surveysAPI := api.Group("/surveys")
	surveysAPI.GET("", surveyHandler.GetAll)
	surveysAPI.GET("/stats", surveyHandler.Stats)

	// push channel
	if cfg.PushCfg.Enabled && deps.Hub != nil {
		e.Any(cfg.PushCfg.Prefix+"/*", echo.WrapHandler(push.Handler(cfg.PushCfg.Prefix, deps.Hub)))
	}

	return e, nil
}
