package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/autoops/taskboard/internal/config"
	"github.com/autoops/taskboard/internal/database"
	"github.com/autoops/taskboard/internal/email"
	"github.com/autoops/taskboard/internal/handlers"
	"github.com/autoops/taskboard/internal/jwt"
	"github.com/autoops/taskboard/internal/logger"
	"github.com/autoops/taskboard/internal/middlewares"
	"github.com/autoops/taskboard/internal/repositories"
	"github.com/autoops/taskboard/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AutoOps Task Board API
// @version 1.0.0
// @description Multi-tenant task board backend with JWT authentication
// @host localhost:3001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, email service, and HTTP server.
// It runs the schema migration, sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL. The pool is lazy: a database that is down at
	// boot surfaces per-request as 503 instead of preventing startup.
	dsn := database.DSN(cfg.DatabaseURL, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBUser, cfg.DBPassword)
	db, err := database.Open(dsn, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		log.Errorw("failed to open database pool", "error", err)
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, log); err != nil {
		log.Warnw("schema migration failed, continuing degraded", "error", err)
	}

	// Auth and email services
	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTExp)
	mailer := email.New(email.Config{
		Method:            cfg.EmailMethod,
		BrevoAPIKey:       cfg.BrevoAPIKey,
		BrevoAPIURL:       cfg.BrevoAPIURL,
		BrevoSenderEmail:  cfg.BrevoSenderEmail,
		BrevoSenderName:   cfg.BrevoSenderName,
		BrevoSMTPServer:   cfg.BrevoSMTPServer,
		BrevoSMTPPort:     cfg.BrevoSMTPPort,
		BrevoSMTPLogin:    cfg.BrevoSMTPLogin,
		BrevoSMTPPassword: cfg.BrevoSMTPPassword,
		GmailSMTPServer:   cfg.GmailSMTPServer,
		GmailSMTPPort:     cfg.GmailSMTPPort,
		GmailSMTPUsername: cfg.GmailSMTPUsername,
		GmailSMTPPassword: cfg.GmailSMTPPassword,
		GmailSenderEmail:  cfg.GmailSenderEmail,
		GmailSenderName:   cfg.GmailSenderName,
	}, log)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, log)
	userWriteRepo := repositories.NewUserWriteRepository(db, log)
	taskReadRepo := repositories.NewTaskReadRepository(db, log)
	taskWriteRepo := repositories.NewTaskWriteRepository(db, log)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService, mailer, log)
	taskService := services.NewTaskService(taskReadRepo, taskWriteRepo, log)
	userService := services.NewUserService(userReadRepo, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService, log)
	loginHandler := handlers.NewLoginHandler(authService, log)
	meHandler := handlers.NewMeHandler(authService, log)
	usersHandler := handlers.NewUsersHandler(userService, log)
	tasksListHandler := handlers.NewTasksListHandler(taskService, log)
	tasksCreateHandler := handlers.NewTasksCreateHandler(taskService, log)
	tasksUpdateHandler := handlers.NewTasksUpdateHandler(taskService, log)
	tasksDeleteHandler := handlers.NewTasksDeleteHandler(taskService, log)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	// Public routes
	r.Get("/api/health", healthHandler)
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtService, log))
		r.Get("/api/auth/me", meHandler)
		r.Get("/api/users", usersHandler)
		r.Get("/api/tasks", tasksListHandler)
		r.Post("/api/tasks", tasksCreateHandler)
		r.Put("/api/tasks/{id}", tasksUpdateHandler)
		r.Delete("/api/tasks/{id}", tasksDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/swagger/doc.json", cfg.Port)),
	))

	// Static front-end. The login page doubles as the root page; the
	// board is only reachable once the browser holds a token.
	serveFile := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(cfg.StaticDir, name))
		}
	}
	r.Get("/", serveFile("login.html"))
	r.Get("/login.html", serveFile("login.html"))
	r.Get("/index.html", serveFile("index.html"))
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
