package handlers

import (
	"github.com/gin-gonic/gin"

	profileRepoPkg "urbanauto/database/repository/profile"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	// Auth endpoints
	SignupHandler  gin.HandlerFunc
	LoginHandler   gin.HandlerFunc
	LogoutHandler  gin.HandlerFunc
	SessionHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler      gin.HandlerFunc
	CreateBookingHandler     gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc

	// Service catalog endpoints
	ListServicesHandler   gin.HandlerFunc
	GetServiceByIDHandler gin.HandlerFunc

	// Location endpoints
	ReverseGeocodeHandler  gin.HandlerFunc
	ResolveLocationHandler gin.HandlerFunc

	// Notification endpoints
	RegisterDeviceHandler gin.HandlerFunc
	BroadcastHandler      gin.HandlerFunc
	BroadcastAsyncHandler gin.HandlerFunc
}
