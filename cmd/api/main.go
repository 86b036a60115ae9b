package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-lottery-admin/internal/authz"
	"go-lottery-admin/internal/config"
	"go-lottery-admin/internal/handler"
	"go-lottery-admin/internal/middleware"
	"go-lottery-admin/internal/model"
	"go-lottery-admin/internal/repository"
	"go-lottery-admin/internal/service"
	"go-lottery-admin/internal/ws"
	"go-lottery-admin/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	if err := db.AutoMigrate(
		&model.Role{}, &model.Page{}, &model.Permission{},
		&model.User{}, &model.Category{}, &model.Product{},
		&model.TimeSlot{}, &model.Sale{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	// 3. Seed default roles, pages, permissions and the admin account
	seedRolesPagesAndAdmin(db, cfg)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	roleRepo := repository.NewRoleRepo(db)
	pageRepo := repository.NewPageRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	timeSlotRepo := repository.NewTimeSlotRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	evaluator := authz.NewEvaluator(pageRepo, permissionRepo)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	permissionService := service.NewPermissionService(permissionRepo, roleRepo, pageRepo)
	saleService := service.NewSaleService(saleRepo, categoryRepo, wsHub)
	dashboardService := service.NewDashboardService(saleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo)
	pageHandler := handler.NewPageHandler(pageRepo)
	permissionHandler := handler.NewPermissionHandler(permissionService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo, cfg.UploadDir, wsHub)
	productHandler := handler.NewProductHandler(productRepo, categoryRepo, wsHub)
	timeSlotHandler := handler.NewTimeSlotHandler(timeSlotRepo, categoryRepo)
	saleHandler := handler.NewSaleHandler(saleService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Lottery Admin API v1.0",
		BodyLimit: 10 * 1024 * 1024,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Uploaded category images
	app.Static("/uploads", cfg.UploadDir)

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/profile", authHandler.Profile)

	// Dashboard Routes
	protected.Get("/dashboard/stats",
		middleware.RequirePermission(evaluator, model.PageDashboard, authz.ActionView),
		dashboardHandler.GetStats)

	// User Management Routes (admin only)
	users := protected.Group("/users", middleware.RequireAdmin())
	users.Get("/", userHandler.GetUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	// Role Routes
	protected.Get("/roles", roleHandler.GetRoles)
	protected.Get("/roles/:id", roleHandler.GetRole)

	// Page Routes (admin only)
	pages := protected.Group("/pages", middleware.RequireAdmin())
	pages.Get("/", pageHandler.GetPages)
	pages.Get("/:id", pageHandler.GetPage)
	pages.Post("/", pageHandler.CreatePage)
	pages.Put("/:id", pageHandler.UpdatePage)
	pages.Delete("/:id", pageHandler.DeletePage)

	// Permission Routes
	protected.Get("/permissions/my", permissionHandler.GetMyPermissions)
	permissions := protected.Group("/permissions", middleware.RequireAdmin())
	permissions.Get("/", permissionHandler.GetPermissions)
	permissions.Get("/role/:roleId", permissionHandler.GetPermissionsByRole)
	permissions.Post("/", permissionHandler.UpsertPermission)
	permissions.Post("/bulk", permissionHandler.BulkUpsertPermissions)
	permissions.Delete("/role/:roleId", permissionHandler.DeletePermissionsByRole)
	permissions.Delete("/:id", permissionHandler.DeletePermission)

	// Category Routes (with permission checks)
	categories := protected.Group("/categories")
	categories.Get("/", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionView), categoryHandler.GetCategories)
	categories.Get("/active", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionView), categoryHandler.GetActiveCategories)
	categories.Get("/:id", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionView), categoryHandler.GetCategory)
	categories.Post("/", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionAdd), categoryHandler.CreateCategory)
	categories.Put("/:id", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionEdit), categoryHandler.UpdateCategory)
	categories.Delete("/:id", middleware.RequirePermission(evaluator, model.PageCategories, authz.ActionDelete), categoryHandler.DeleteCategory)

	// Product Routes (with permission checks)
	products := protected.Group("/products")
	products.Get("/", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionView), productHandler.GetProducts)
	products.Get("/active", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionView), productHandler.GetActiveProducts)
	products.Get("/category/:categoryId", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionView), productHandler.GetProductsByCategory)
	products.Get("/:id", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionView), productHandler.GetProduct)
	products.Post("/", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionAdd), productHandler.CreateProduct)
	products.Put("/:id", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionEdit), productHandler.UpdateProduct)
	products.Delete("/:id", middleware.RequirePermission(evaluator, model.PageProducts, authz.ActionDelete), productHandler.DeleteProduct)

	// Time Slot Routes (admin only)
	timeslots := protected.Group("/timeslots", middleware.RequireAdmin())
	timeslots.Get("/", timeSlotHandler.GetTimeSlots)
	timeslots.Get("/:id", timeSlotHandler.GetTimeSlot)
	timeslots.Post("/", timeSlotHandler.CreateTimeSlot)
	timeslots.Put("/:id", timeSlotHandler.UpdateTimeSlot)
	timeslots.Delete("/:id", timeSlotHandler.DeleteTimeSlot)

	// Sale Routes (permission checks plus row ownership inside the service)
	sales := protected.Group("/sales")
	sales.Get("/my-sales", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionView), saleHandler.GetMySales)
	sales.Get("/report", middleware.RequirePermission(evaluator, model.PageReports, authz.ActionView), saleHandler.GetSalesReport)
	sales.Get("/", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionView), saleHandler.GetSales)
	sales.Get("/:id", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionView), saleHandler.GetSale)
	sales.Post("/", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionAdd), saleHandler.CreateSale)
	sales.Put("/:id", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionEdit), saleHandler.UpdateSale)
	sales.Delete("/:id", middleware.RequirePermission(evaluator, model.PageSales, authz.ActionDelete), saleHandler.DeleteSale)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register(c)
		defer wsHub.Unregister(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}
	logrus.Info("server exited")
}

// seedRolesPagesAndAdmin creates the default roles and pages, grants the
// admin role every action on every page, and creates the admin account if
// it does not exist.
func seedRolesPagesAndAdmin(db *gorm.DB, cfg *config.Config) {
	roleRepo := repository.NewRoleRepo(db)
	pageRepo := repository.NewPageRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		logrus.WithError(err).Warn("failed to seed roles")
	}
	if err := pageRepo.SeedDefaults(); err != nil {
		logrus.WithError(err).Warn("failed to seed pages")
	}

	// Admin bypasses permission checks, but explicit rows keep the
	// permissions matrix UI complete.
	pages, err := pageRepo.FindAll()
	if err != nil {
		logrus.WithError(err).Warn("failed to list pages for permission seeding")
	}
	for _, page := range pages {
		if existing, _ := permissionRepo.FindByRoleAndPage(model.RoleAdminID, page.ID); existing != nil {
			continue
		}
		permission := &model.Permission{
			RoleID: model.RoleAdminID,
			PageID: page.ID,
			View:   true,
			Add:    true,
			Edit:   true,
			Del:    true,
		}
		if err := permissionRepo.Create(permission); err != nil {
			logrus.WithError(err).WithField("page", page.Name).Warn("failed to seed admin permission")
		}
	}

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	admin := &model.User{
		Name:   "Administrator",
		Email:  cfg.AdminEmail,
		RoleID: model.RoleAdminID,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		logrus.WithError(err).Warn("failed to hash admin password")
		return
	}
	if err := userRepo.Create(admin); err != nil {
		logrus.WithError(err).Warn("failed to create admin user")
		return
	}
	logrus.WithField("email", cfg.AdminEmail).Info("admin account created")
}
