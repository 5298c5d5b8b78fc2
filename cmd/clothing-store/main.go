package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/clothing-store/docs"
	"github.com/aaravmahajanofficial/clothing-store/internal/api/handlers"
	"github.com/aaravmahajanofficial/clothing-store/internal/api/middleware"
	"github.com/aaravmahajanofficial/clothing-store/internal/cache"
	"github.com/aaravmahajanofficial/clothing-store/internal/config"
	"github.com/aaravmahajanofficial/clothing-store/internal/events"
	"github.com/aaravmahajanofficial/clothing-store/internal/health"
	"github.com/aaravmahajanofficial/clothing-store/internal/images"
	"github.com/aaravmahajanofficial/clothing-store/internal/metrics"
	repository "github.com/aaravmahajanofficial/clothing-store/internal/repositories"
	service "github.com/aaravmahajanofficial/clothing-store/internal/services"
	"github.com/aaravmahajanofficial/clothing-store/internal/telemetry"
	"github.com/aaravmahajanofficial/clothing-store/pkg/sendGrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

//	@title						Clothing Store API
//	@version					1.0
//	@description				Storefront, cart, checkout and catalog administration for an online clothing store.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.SetupTracing(context.Background(), &cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	defer func() {
		if err := catalogCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	imageStore := images.NewFileStore(&cfg.Images)

	publisher := events.NewPublisher(&cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("⚠️ Error closing event publisher", slog.String("error", err.Error()))
		}
	}()

	emailService := sendGrid.NewBreakerEmailService(
		sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName),
		sendGrid.BreakerSettings{
			ConsecutiveFailures: cfg.SendGrid.BreakerFailures,
			Timeout:             cfg.SendGrid.BreakerTimeout,
		},
	)

	jwtKey := []byte(cfg.Security.JWTKey)

	identityService := service.NewIdentityService(repos.Client, repos.Cart)
	cartService := service.NewCartService(repos.Cart, repos.Catalog)
	catalogService := service.NewCatalogService(repos.Catalog, catalogCache, imageStore, cfg.Cache.NavTTL)
	notificationService := service.NewNotificationService(repos.Notification, emailService)
	orderService := service.NewOrderService(repos.Order, repos.Cart, repos.Client, notificationService, publisher)
	userService := service.NewUserService(repos.User, rateLimitRepo, identityService, orderService, jwtKey, cfg.Security.JWTExpiry())

	storefrontHandler := handlers.NewStorefrontHandler(catalogService, identityService)
	cartHandler := handlers.NewCartHandler(identityService, cartService)
	orderHandler := handlers.NewOrderHandler(identityService, cartService, orderService)
	userHandler := handlers.NewUserHandler(userService, cfg.Security.SecureCookies)
	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg.Images.MaxUploadBytes)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	cartSession := middleware.NewCartSession(&cfg.Security)

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// visitors: the principal is optional and every request carries a cart session
	visitor := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Identify(cartSession.Handle(h))
	}

	admin := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(middleware.RequireAdmin(h))
	}

	docs.SwaggerInfo.Version = version

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.Handle("GET /{$}", visitor(storefrontHandler.Home()))
	routerMux.Handle("GET /category/{slug}/", visitor(storefrontHandler.Category()))
	routerMux.Handle("GET /clothes/{variant}/{slug}/", visitor(storefrontHandler.Product()))

	routerMux.Handle("GET /cart/", visitor(cartHandler.GetCart()))
	routerMux.Handle("GET /add-to-cart/{variant}/{slug}/", visitor(cartHandler.AddToCart()))
	routerMux.Handle("GET /remove-from-cart/{variant}/{slug}/", visitor(cartHandler.RemoveFromCart()))
	routerMux.Handle("POST /change-qty/{variant}/{slug}/", visitor(cartHandler.ChangeQty()))

	routerMux.Handle("GET /checkout/", visitor(orderHandler.CheckoutPage()))
	routerMux.Handle("POST /make-order/", visitor(orderHandler.MakeOrder()))

	routerMux.HandleFunc("POST /registration/", userHandler.Register())
	routerMux.HandleFunc("POST /login/", userHandler.Login())
	routerMux.HandleFunc("GET /logout/", userHandler.Logout())
	routerMux.HandleFunc("POST /logout/", userHandler.Logout())
	routerMux.HandleFunc("GET /profile/", authMiddleware.Authenticate(userHandler.Profile()))

	routerMux.Handle("POST /api/v1/admin/products/{variant}", admin(catalogHandler.CreateProduct()))
	routerMux.Handle("PUT /api/v1/admin/products/{variant}/{slug}", admin(catalogHandler.UpdateProduct()))
	routerMux.Handle("DELETE /api/v1/admin/products/{variant}/{slug}", admin(catalogHandler.DeleteProduct()))
	routerMux.Handle("POST /api/v1/admin/products/{variant}/{slug}/image", admin(catalogHandler.UploadProductImage()))
	routerMux.Handle("POST /api/v1/admin/brands", admin(catalogHandler.CreateBrand()))
	routerMux.Handle("GET /api/v1/admin/brands", admin(catalogHandler.ListBrands()))
	routerMux.Handle("PATCH /api/v1/admin/orders/{id}/status", admin(orderHandler.UpdateOrderStatus()))
	routerMux.Handle("GET /api/v1/admin/orders/{id}/notifications", admin(notificationHandler.ListOrderNotifications()))

	routerMux.Handle("GET "+cfg.Images.URLPrefix, http.StripPrefix(cfg.Images.URLPrefix, http.FileServer(http.Dir(cfg.Images.Dir))))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining. metrics wraps the mux directly so it sees the matched pattern.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
