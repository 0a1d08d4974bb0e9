package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"urbanauto/config"
	"urbanauto/cron"
	"urbanauto/database"
	bookingRepoPkg "urbanauto/database/repository/booking"
	credentialRepoPkg "urbanauto/database/repository/credential"
	devicetokenRepoPkg "urbanauto/database/repository/devicetoken"
	profileRepoPkg "urbanauto/database/repository/profile"
	"urbanauto/handlers"
	"urbanauto/routes"
	"urbanauto/services/booking"
	"urbanauto/services/identity"
	"urbanauto/services/location"
	"urbanauto/services/notification"
	"urbanauto/services/session"
	"urbanauto/services/tasks"
	"urbanauto/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	credentialRepo := credentialRepoPkg.NewMongoCredentialRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	deviceTokenRepo := devicetokenRepoPkg.NewMongoDeviceTokenRepo()

	// services.
	provider := identity.NewDefaultProvider(credentialRepo, utils.GetAuthCacheClient())

	sessionStore := session.NewStore(provider, profileRepo,
		time.Duration(config.AppConfig.SessionBootstrapTimeout)*time.Second)
	sessionStore.Start(context.Background())
	defer sessionStore.Stop()

	bookingService := booking.NewDefaultBookingService(bookingRepo, sessionStore)
	sessionStore.OnLogout(bookingService.Clear)
	bookingController := &booking.FormController{Bookings: bookingService}

	geocoder := location.NewFallbackGeocoder(
		location.NewNominatimGeocoder(config.AppConfig.NominatimBaseURL),
		location.NewMapplsGeocoder(config.AppConfig.MapplsAccessToken),
	)

	notificationService, err := notification.NewDefaultNotificationService(deviceTokenRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	queueClient := tasks.NewQueueClient()
	defer queueClient.Close()
	cron.InitBroadcastWorker(notificationService)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo: profileRepo,

		SignupHandler:  handlers.SignupHandler(sessionStore),
		LoginHandler:   handlers.LoginHandler(sessionStore, provider),
		LogoutHandler:  handlers.LogoutHandler(sessionStore),
		SessionHandler: handlers.SessionHandler(sessionStore),

		GetProfileHandler:    handlers.GetProfileHandler(),
		UpdateProfileHandler: handlers.UpdateProfileHandler(sessionStore),

		ListBookingsHandler:      handlers.ListBookingsHandler(bookingService),
		CreateBookingHandler:     handlers.CreateBookingHandler(bookingController),
		CancelBookingHandler:     handlers.CancelBookingHandler(bookingService),
		RescheduleBookingHandler: handlers.RescheduleBookingHandler(bookingService),

		ListServicesHandler:   handlers.ListServicesHandler(),
		GetServiceByIDHandler: handlers.GetServiceByIDHandler(),

		ReverseGeocodeHandler:  handlers.ReverseGeocodeHandler(geocoder),
		ResolveLocationHandler: handlers.ResolveLocationHandler(geocoder),

		RegisterDeviceHandler: handlers.RegisterDeviceHandler(notificationService),
		BroadcastHandler:      handlers.BroadcastHandler(notificationService),
		BroadcastAsyncHandler: handlers.BroadcastAsyncHandler(queueClient),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
