package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/sefazor/coworkly-backend/internal/config"
	"github.com/sefazor/coworkly-backend/internal/handler"
	"github.com/sefazor/coworkly-backend/internal/middleware"
	"github.com/sefazor/coworkly-backend/internal/repository"
	"github.com/sefazor/coworkly-backend/internal/service"
	"github.com/sefazor/coworkly-backend/pkg/database"
	"github.com/sefazor/coworkly-backend/pkg/email"
	applogger "github.com/sefazor/coworkly-backend/pkg/logger"
	"github.com/sefazor/coworkly-backend/pkg/payment"
	"github.com/sefazor/coworkly-backend/pkg/qrcode"
	"github.com/sefazor/coworkly-backend/pkg/utils"
)

func main() {
	// .env is optional in production, required locally
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger := applogger.New()
	defer logger.Sync()

	db := database.NewDatabase()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	usageRepo := repository.NewPerkUsageRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Infrastructure services
	emailService := email.NewEmailService(logger)
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)
	qrService := qrcode.NewQRService(cfg.FrontendURL + "/checkin/")

	// Services
	activityService := service.NewActivityService(activityRepo, logger)
	authService := service.NewAuthService(userRepo, emailService, logger)
	userService := service.NewUserService(userRepo)
	planService := service.NewPlanService(planRepo)
	membershipService := service.NewMembershipService(membershipRepo, planRepo, activityService)
	perkService := service.NewPerkService(
		membershipRepo,
		usageRepo,
		roomRepo,
		bookingRepo,
		userRepo,
		activityService,
		emailService,
		logger,
	)
	roomService := service.NewRoomService(roomRepo)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, userRepo, activityService, emailService, logger)
	paymentService := service.NewPaymentService(
		stripeService,
		userRepo,
		planRepo,
		membershipRepo,
		paymentRepo,
		registrationRepo,
		activityService,
		logger,
	)
	eventService := service.NewEventService(eventRepo, registrationRepo, paymentService, qrService, activityService)
	customerService := service.NewCustomerService(customerRepo, activityService)
	inquiryService := service.NewInquiryService(inquiryRepo, emailService, logger)
	dashboardService := service.NewDashboardService(membershipRepo, bookingRepo, eventRepo, inquiryRepo, paymentRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	perkHandler := handler.NewPerkHandler(perkService, validator)
	planHandler := handler.NewPlanHandler(planService, validator)
	membershipHandler := handler.NewMembershipHandler(membershipService, validator)
	roomHandler := handler.NewRoomHandler(roomService, bookingService, validator)
	bookingHandler := handler.NewBookingHandler(bookingService, userService, validator)
	eventHandler := handler.NewEventHandler(eventService, validator)
	paymentHandler := handler.NewPaymentHandler(paymentService, logger)
	customerHandler := handler.NewCustomerHandler(customerService, validator)
	inquiryHandler := handler.NewInquiryHandler(inquiryService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, activityService)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	api.Get("/plans", planHandler.GetPlans)
	api.Get("/plans/:id", planHandler.GetPlan)
	api.Get("/rooms", roomHandler.GetRooms)
	api.Get("/rooms/:id", roomHandler.GetRoom)
	api.Get("/rooms/:id/calendar", roomHandler.GetRoomCalendar)
	api.Get("/events", eventHandler.GetUpcomingEvents)
	api.Get("/events/:url", eventHandler.GetEvent)
	api.Post("/inquiries", inquiryHandler.SubmitInquiry)

	// Stripe webhook (public, verified by signature)
	api.Post("/payments/webhook", paymentHandler.HandleStripeWebhook)

	// Protected routes
	user := api.Group("/user", middleware.AuthMiddleware())
	user.Get("/profile", userHandler.GetMyProfile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Put("/password", userHandler.ChangePassword)
	user.Get("/membership", membershipHandler.GetCurrentMembership)
	user.Get("/memberships", membershipHandler.GetMyMemberships)
	user.Get("/perks", perkHandler.GetMyPerks)
	user.Post("/perks/:perkId/redeem", perkHandler.RedeemPerk)
	user.Get("/bookings", bookingHandler.GetMyBookings)
	user.Post("/bookings", bookingHandler.CreateBooking)
	user.Delete("/bookings/:id", bookingHandler.CancelBooking)
	user.Get("/registrations", eventHandler.GetMyRegistrations)
	user.Delete("/registrations/:id", eventHandler.CancelRegistration)
	user.Get("/registrations/:id/qr", eventHandler.GetTicketQR)
	user.Get("/payments", paymentHandler.GetMyPayments)
	user.Post("/payments/checkout/:planId", paymentHandler.CreatePlanCheckout)

	protected := api.Group("", middleware.AuthMiddleware())
	protected.Post("/events/:url/register", eventHandler.RegisterForEvent)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnly(userRepo))
	admin.Get("/dashboard", dashboardHandler.GetStats)
	admin.Get("/activity", dashboardHandler.GetRecentActivity)
	admin.Post("/plans", planHandler.CreatePlan)
	admin.Put("/plans/:id", planHandler.UpdatePlan)
	admin.Post("/plans/:id/perks", planHandler.AddPerk)
	admin.Delete("/plans/:id/perks/:perkId", planHandler.RemovePerk)
	admin.Get("/memberships", membershipHandler.GetAllMemberships)
	admin.Post("/memberships", membershipHandler.AssignMembership)
	admin.Delete("/memberships/:id", membershipHandler.CancelMembership)
	admin.Post("/rooms", roomHandler.CreateRoom)
	admin.Put("/rooms/:id", roomHandler.UpdateRoom)
	admin.Get("/events", eventHandler.GetAllEvents)
	admin.Post("/events", eventHandler.CreateEvent)
	admin.Put("/events/:id", eventHandler.UpdateEvent)
	admin.Delete("/events/:id", eventHandler.DeleteEvent)
	admin.Get("/customers", customerHandler.GetCustomers)
	admin.Post("/customers", customerHandler.CreateCustomer)
	admin.Get("/customers/:id", customerHandler.GetCustomer)
	admin.Put("/customers/:id", customerHandler.UpdateCustomer)
	admin.Delete("/customers/:id", customerHandler.DeleteCustomer)
	admin.Post("/customers/:id/checkin", customerHandler.CheckIn)
	admin.Get("/customers/:id/visits", customerHandler.GetVisits)
	admin.Get("/inquiries", inquiryHandler.GetInquiries)
	admin.Put("/inquiries/:id", inquiryHandler.UpdateInquiry)
	admin.Get("/payments", paymentHandler.GetAllPayments)

	logger.Info("Starting server", zap.String("port", cfg.Port))
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
