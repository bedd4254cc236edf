package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coursereg-backend/internal/adapter/mailer"
	"github.com/heartmarshall/coursereg-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/audit"
	courserepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/course"
	draftrepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/draft"
	employeerepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/employee"
	otprepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/otp"
	regrepo "github.com/heartmarshall/coursereg-backend/internal/adapter/postgres/registration"
	"github.com/heartmarshall/coursereg-backend/internal/auth"
	"github.com/heartmarshall/coursereg-backend/internal/config"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
	authsvc "github.com/heartmarshall/coursereg-backend/internal/service/auth"
	"github.com/heartmarshall/coursereg-backend/internal/service/catalog"
	"github.com/heartmarshall/coursereg-backend/internal/service/draft"
	"github.com/heartmarshall/coursereg-backend/internal/service/registration"
	"github.com/heartmarshall/coursereg-backend/internal/service/user"
	"github.com/heartmarshall/coursereg-backend/internal/transport/middleware"
	"github.com/heartmarshall/coursereg-backend/internal/transport/rest"
	"github.com/heartmarshall/coursereg-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	srv := NewServer(cfg, pool, NewSender(cfg.Mail, logger), logger)
	defer srv.Close()

	sweeper, err := NewOTPSweeper(srv.Auth, cfg.OTP.CleanupSchedule, logger)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	return serve(ctx, cfg.Server, srv.Handler, logger)
}

// CodeSender delivers login codes.
type CodeSender interface {
	SendCode(ctx context.Context, m domain.OTPMessage) error
}

// NewSender returns the SMTP sender when mail is enabled and a sender that
// only logs codes otherwise.
func NewSender(cfg config.MailConfig, logger *slog.Logger) CodeSender {
	if cfg.Enabled {
		return mailer.NewSMTPSender(cfg, logger)
	}
	logger.Warn("mail delivery disabled, OTP codes are written to the log")
	return mailer.NewLogSender(logger)
}

// Server is the wired HTTP surface over one database pool.
type Server struct {
	Handler http.Handler
	Auth    *authsvc.Service
	limiter *middleware.RateLimiter
}

// NewServer builds repositories, services and the router.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, sender CodeSender, logger *slog.Logger) *Server {
	if !cfg.Auth.AdminEnabled() {
		logger.Warn("admin credentials not configured, admin login is disabled")
	}

	authService := authsvc.NewService(
		logger,
		employeerepo.New(pool),
		otprepo.New(pool),
		sender,
		auth.NewCodeHasher(cfg.OTP.BcryptCost),
		auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionIssuer, cfg.Auth.SessionTTL),
		auth.NewAdminTokens(cfg.Auth.AdminSecret, cfg.Auth.AdminTTL),
		auth.AdminCredentials{Username: cfg.Auth.AdminUsername, Password: cfg.Auth.AdminPassword},
		cfg.OTP.TTL(),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(
		newHandlers(cfg, pool, authService, logger),
		rest.Guards{
			Employee:   middleware.EmployeeAuth(authService),
			Admin:      middleware.AdminAuth(authService),
			OTPLimit:   limiter.Limit("otp", cfg.RateLimit.OTPPerMinute),
			LoginLimit: limiter.Limit("login", cfg.RateLimit.LoginPerMinute),
		},
		middleware.Chain(
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		),
	)

	return &Server{Handler: handler, Auth: authService, limiter: limiter}
}

// Close stops background work owned by the server.
func (s *Server) Close() {
	s.limiter.Stop()
}

func newHandlers(cfg *config.Config, pool *pgxpool.Pool, authService *authsvc.Service, logger *slog.Logger) rest.Handlers {
	txm := postgres.NewTxManager(pool)
	auditRepo := auditrepo.New(pool)
	drafts := draftrepo.New(pool)
	employees := employeerepo.New(pool)
	registrations := regrepo.New(pool, regrepo.TableRegistrations)
	userDrafts := regrepo.New(pool, regrepo.TableUserDrafts)

	registrationService := registration.NewService(logger, "registration", registrations, drafts, employees, auditRepo, txm)
	userDraftService := registration.NewService(logger, "user_draft", userDrafts, drafts, employees, auditRepo, txm)

	return rest.Handlers{
		Health:             rest.NewHealthHandler(BuildVersion(),
			rest.HealthCheck{Name: "database", Check: pool},
			rest.HealthCheck{Name: "schema", Check: postgres.NewSchemaCheck(pool, migrations.FS)},
		),
		Auth:               rest.NewAuthHandler(authService, cfg.Auth.CookieSecure, logger),
		Drafts:             rest.NewDraftHandler(draft.NewService(logger, drafts, auditRepo, txm), logger),
		Courses:            rest.NewCourseHandler(catalog.NewService(logger, courserepo.New(pool), drafts, auditRepo, txm), cfg.Server.MaxUploadBytes, logger),
		Registrations:      rest.NewRegistrationHandler(registrationService, "registration", logger),
		UserDrafts:         rest.NewRegistrationHandler(userDraftService, "draft", logger),
		AdminRegistrations: rest.NewRegistrationAdminHandler(registrationService, logger),
		Users:              rest.NewUserHandler(user.NewService(logger, employees, auditRepo, txm, registrations, userDrafts), logger),
		Audit:              rest.NewAuditHandler(auditRepo, logger),
	}
}

func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}
