package api

import (
	"context"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/revman/internal/api/controller"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/logger"
	"github.com/ougirez/revman/internal/pkg/notify"
	"github.com/ougirez/revman/internal/pkg/store"
	engine "github.com/ougirez/revman/internal/revenue"
	"github.com/ougirez/revman/internal/service/holidays"
	revenueService "github.com/ougirez/revman/internal/service/revenue"
	"net/http"
	"strings"
)

type Options struct {
	AllowOrigins     []string
	Defaults         engine.Config
	HolidaySourceURL string
	HTTPClient       *http.Client
	LogLevel         string
}

type APIService struct {
	router          *echo.Echo
	revenueService  *revenueService.Service
	holidaysService *holidays.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store, publisher notify.Publisher, opts Options) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(echoLogLevel(opts.LogLevel))
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = NewSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: constants.HeaderRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithFields(req.Context(), "request_id", id)))
		},
	}))
	svc.router.Use(middleware.Logger())

	allowOrigins := opts.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.revenueService = revenueService.NewRevenueService(store, publisher, opts.Defaults)
	svc.holidaysService = holidays.NewHolidaysService(store, opts.HTTPClient)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.revenueService, svc.holidaysService, opts.HolidaySourceURL)

	api.GET("/health", cntrl.Health)
	api.POST("/quote", cntrl.Quote)

	properties := api.Group("/properties")
	properties.GET("/list", cntrl.ListProperties)
	properties.GET("/:id/report", cntrl.GetReport)
	properties.GET("/:id/pricing", cntrl.GetPricing)
	properties.GET("/:id/performance", cntrl.GetPerformance)
	properties.GET("/:id/recommendations", cntrl.GetRecommendations)
	properties.GET("/:id/advice-facts", cntrl.GetAdviceFacts)

	properties.POST("/:id/occupancy", cntrl.UpsertOccupancy, svc.AdminMiddleware)
	properties.POST("/:id/holidays/backfill", cntrl.BackfillHolidays, svc.AdminMiddleware)
	properties.POST("/:id/report/publish", cntrl.PublishCard, svc.AdminMiddleware)

	return svc, nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
