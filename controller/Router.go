package controller

import (
	"errors"
	"strings"

	"skilltracker/config"
	"skilltracker/middleware"
	"skilltracker/repository"
	"skilltracker/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swag "github.com/gofiber/swagger"
)

// Services bundles everything the HTTP layer calls into.
type Services struct {
	Auth         *service.AuthService
	Certificates *service.CertificateService
	Skills       *service.SkillService
	Projects     *service.ProjectService
	Portfolio    *service.PortfolioService
	Dashboard    *service.DashboardService
	Health       repository.HealthRepository
	Tokens       middleware.TokenVerifier
}

// NewApp builds the Fiber app with the global middleware stack.
func NewApp(cfg config.HTTP) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-auth-token",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(middleware.TimerMetrics)
	return app
}

// SetupRoutes mounts every endpoint. authLimiter guards login and register.
func SetupRoutes(app *fiber.App, s Services, authLimiter fiber.Handler) {
	health := NewHealthController(s.Health)
	app.Get("/health", health.Health)
	app.Get("/swagger/*", swag.HandlerDefault)

	authCtrl := NewAuthController(s.Auth)
	certCtrl := NewCertificateController(s.Certificates)
	skillCtrl := NewSkillController(s.Skills)
	projectCtrl := NewProjectController(s.Projects)
	portfolioCtrl := NewPortfolioController(s.Portfolio)
	dashboardCtrl := NewDashboardController(s.Dashboard)

	requireAuth := middleware.RequireAuth(s.Tokens)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authLimiter, authCtrl.Register)
	auth.Post("/login", authLimiter, authCtrl.Login)
	auth.Get("/me", requireAuth, authCtrl.Me)
	auth.Put("/profile", requireAuth, authCtrl.UpdateProfile)
	auth.Put("/password", requireAuth, authCtrl.ChangePassword)
	auth.Put("/avatar", requireAuth, authCtrl.UploadAvatar)
	auth.Delete("/avatar", requireAuth, authCtrl.DeleteAvatar)

	certs := api.Group("/certificates", requireAuth)
	certs.Post("/", certCtrl.Create)
	certs.Get("/", certCtrl.List)
	certs.Get("/:id", certCtrl.Get)
	certs.Put("/:id", certCtrl.Update)
	certs.Delete("/:id", certCtrl.Delete)

	skills := api.Group("/skills", requireAuth)
	skills.Post("/", skillCtrl.Create)
	skills.Get("/", skillCtrl.List)
	skills.Get("/:id", skillCtrl.Get)
	skills.Put("/:id", skillCtrl.Update)
	skills.Delete("/:id", skillCtrl.Delete)

	projects := api.Group("/projects", requireAuth)
	projects.Post("/", projectCtrl.Create)
	projects.Get("/", projectCtrl.List)
	projects.Get("/:id", projectCtrl.Get)
	projects.Put("/:id", projectCtrl.Update)
	projects.Delete("/:id", projectCtrl.Delete)

	portfolio := api.Group("/public-portfolio")
	portfolio.Get("/settings", requireAuth, portfolioCtrl.GetSettings)
	portfolio.Put("/settings", requireAuth, portfolioCtrl.UpdateSettings)
	portfolio.Get("/:publicId", portfolioCtrl.GetPublic)

	api.Get("/dashboard/stats", requireAuth, dashboardCtrl.Stats)
}

// errorHandler renders errors that escaped a handler (unknown routes,
// body too large, recovered panics) in the same {"error": ...} shape.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
