package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/gas-delivery/internal/api/http"
	"github.com/spec-kit/gas-delivery/internal/api/http/handlers"
	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/config"
	"github.com/spec-kit/gas-delivery/internal/events"
	"github.com/spec-kit/gas-delivery/internal/observability"
	"github.com/spec-kit/gas-delivery/internal/repository"
	"github.com/spec-kit/gas-delivery/internal/service"
	"github.com/spec-kit/gas-delivery/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	userRepo := repository.NewUserRepository()
	orderRepo := repository.NewOrderRepository()
	ticketRepo := repository.NewTicketRepository()

	verifier := buildVerifier(cfg.Auth)
	tokens, resolver := buildResolver(cfg.Auth)

	dispatcher := events.NewInMemoryDispatcher()
	notifier := worker.NewNotificationWorker(dispatcher, logger)
	notifier.RegisterHandlers()

	accountService := service.NewAccountService(service.AccountDependencies{
		UserRepo: userRepo,
		Verifier: verifier,
		Tokens:   tokens,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:  orderRepo,
		Dispatcher: dispatcher,
	})
	supportService := service.NewSupportService(service.SupportDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
	})
	adminService := service.NewAdminService(service.AdminDependencies{
		UserRepo:  userRepo,
		OrderRepo: orderRepo,
	})

	if err := seedAdmin(context.Background(), cfg.Seed, accountService, userRepo); err != nil {
		logger.Fatal("failed to seed admin account", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(cfg.Auth.IdentityHeader, resolver, userRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, userRepo, orderRepo),
		Users:          handlers.NewUsersHandler(accountService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Admin:          handlers.NewAdminHandler(adminService),
		Support:        handlers.NewSupportHandler(supportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func buildVerifier(cfg config.AuthConfig) auth.Verifier {
	if cfg.PasswordScheme == "bcrypt" {
		return auth.NewBcryptVerifier(cfg.BcryptCost)
	}
	return auth.NewPlaintextVerifier()
}

// buildResolver returns the token manager (nil for the header scheme) and the
// identity resolver matching the configured scheme.
func buildResolver(cfg config.AuthConfig) (*auth.TokenManager, auth.Resolver) {
	if cfg.Scheme == "token" {
		tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes)
		return tokens, auth.NewTokenResolver(tokens)
	}
	return nil, auth.NewHeaderResolver()
}

// seedAdmin provisions the initial administrator when configured. The store
// is volatile, so this runs on every start; an already-taken contact means a
// previous seed within this process and is not an error.
func seedAdmin(ctx context.Context, cfg config.SeedConfig, accounts *service.AccountService, users repository.UserRepository) error {
	if cfg.AdminContact == "" || cfg.AdminPassword == "" {
		return nil
	}
	user, _, err := accounts.Register(ctx, cfg.AdminName, cfg.AdminContact, cfg.AdminPassword)
	if err != nil {
		return err
	}
	user.IsAdmin = true
	return users.Update(ctx, user)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
