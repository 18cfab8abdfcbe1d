package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/formcraft/session/internal/api/http/handler"
	"github.com/formcraft/session/internal/api/http/middleware"
	"github.com/formcraft/session/internal/config"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/service"
	"github.com/formcraft/session/internal/session"
)

// Router wires HTTP routes and middleware for the session service.
type Router struct {
	authService *service.Auth
	userService *service.User
	sessions    *session.Manager
	cfg         *config.Config
	logger      *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService *service.Auth,
	userService *service.User,
	sessions *session.Manager,
	cfg *config.Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService: authService,
		userService: userService,
		sessions:    sessions,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register builds the Fiber app with request logging, panic recovery and
// all routes. Session verification guards only the routes that need it;
// login, signup and the verification probe stay public.
func (r *Router) Register() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "formcraft-session",
		ReadTimeout:  r.cfg.HTTP.ReadTimeout,
		WriteTimeout: r.cfg.HTTP.WriteTimeout,
	})

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.authService, r.logger)

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logging.Handle)

	api := app.Group("/api")
	api.Get("/health", handler.Health)

	authHandler := handler.NewAuth(r.authService, r.sessions, r.logger)
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/session", authHandler.Session)

	authProtected := api.Group("/auth", authenticate.RequireAuth)
	authProtected.Post("/refresh", authHandler.Refresh)

	userHandler := handler.NewUser(r.userService, r.logger)
	users := api.Group("/users", authenticate.RequireAuth)
	users.Get("/me", userHandler.Me)

	return app
}
