package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/achalbajpai/proactively-backend/calendar"
	"github.com/achalbajpai/proactively-backend/config"
	"github.com/achalbajpai/proactively-backend/controllers"
	"github.com/achalbajpai/proactively-backend/cron"
	"github.com/achalbajpai/proactively-backend/db"
	"github.com/achalbajpai/proactively-backend/middleware"
	rediscache "github.com/achalbajpai/proactively-backend/redis"
	"github.com/achalbajpai/proactively-backend/repository"
	"github.com/achalbajpai/proactively-backend/routes"
	"github.com/achalbajpai/proactively-backend/services"
	"github.com/achalbajpai/proactively-backend/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.Environment)
	defer utils.Sync()

	db.Init(cfg.DatabaseURL)
	db.Migrate()

	userRepo := repository.NewUserRepository(db.DB)
	speakerRepo := repository.NewSpeakerRepository(db.DB)
	bookingRepo := repository.NewBookingRepository(db.DB)

	mailer := utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	var calendarService services.CalendarService
	gcal := calendar.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken)
	if gcal.Enabled() {
		calendarService = gcal
	} else {
		utils.Warn("Google Calendar credentials not configured, calendar events disabled")
	}

	slotCache, err := rediscache.NewSlotCache(cfg.RedisAddr)
	if err != nil {
		log.Fatal(err)
	}
	var cache services.SlotCache
	if slotCache != nil {
		cache = slotCache
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	otpManager := services.NewOTPManager(userRepo, mailer, cfg.OTPExpiry)
	authService := services.NewAuthService(userRepo, otpManager, jwtService)
	speakerService := services.NewSpeakerService(speakerRepo)
	bookingService := services.NewBookingService(bookingRepo, speakerRepo, userRepo, mailer, calendarService, cache)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Speaker session booking API")
	})

	protect := middleware.Protected(cfg.JWTSecret, userRepo)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(authService))
	routes.SetupSpeakerRoutes(app, controllers.NewSpeakerController(speakerService), protect)
	routes.SetupBookingRoutes(app, controllers.NewBookingController(bookingService), protect)

	cron.NewReminders(bookingRepo, mailer).Start()

	utils.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
