package main

import (
	"courtside/app/blob"
	"courtside/app/config"
	"courtside/app/database"
	"courtside/app/routes/attendance"
	"courtside/app/routes/auth"
	"courtside/app/routes/branches"
	"courtside/app/routes/club"
	"courtside/app/routes/dashboard"
	"courtside/app/routes/finance"
	"courtside/app/routes/groups"
	"courtside/app/routes/matches"
	"courtside/app/routes/payments"
	"courtside/app/routes/progress"
	"courtside/app/routes/realtime"
	"courtside/app/routes/students"
	"courtside/app/routes/trainers"
	"courtside/app/services"
	"courtside/app/store"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// apiErrorHandler renders every unhandled error as a JSON body.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize the record store
	records := store.New(config.GetDB())
	if err := records.Init(); err != nil {
		log.Fatal("Failed to initialize record store:", err)
	}

	// Open the blob store for club logos
	blobs, err := blob.Open(config.AppConfig.BlobPath)
	if err != nil {
		log.Fatal("Failed to open blob store:", err)
	}
	defer blobs.Close()

	// Start background scheduler
	services.StartScheduler(config.GetDB(), records)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup club routes
	club.SetupClubRoutes(app, blobs)

	// Setup branch routes
	branches.SetupBranchRoutes(app, records)

	// Setup group routes
	groups.SetupGroupRoutes(app, records)

	// Setup student routes
	students.SetupStudentRoutes(app, records)

	// Setup trainer routes
	trainers.SetupTrainerRoutes(app, records)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app, records)

	// Setup progress routes
	progress.SetupProgressRoutes(app, records)

	// Setup match routes
	matches.SetupMatchRoutes(app, records)

	// Setup payment routes
	payments.SetupPaymentRoutes(app, records)

	// Setup finance routes
	finance.SetupFinanceRoutes(app, records)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, records)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start the realtime WebSocket server on its own port
	wsPort := os.Getenv("WS_PORT")
	if wsPort == "" {
		wsPort = "8081"
	}
	ws := realtime.NewServer(records, wsPort)
	go func() {
		if err := ws.Start(); err != nil {
			log.Fatal("Realtime server failed:", err)
		}
	}()

	// Start server
	port := config.AppConfig.Port
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
