package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"eventstay/internal/config"
	"eventstay/internal/database"
	"eventstay/internal/middleware"
	"eventstay/internal/modules/auth"
	"eventstay/internal/modules/booking"
	"eventstay/internal/modules/hotel"
	jwtsvc "eventstay/internal/pkg/jwt"
	"eventstay/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	hotelService := hotel.NewService(hotelRepo, enrollmentRepo)
	hotelHandler := hotel.NewHandler(hotelService)

	bookingService := booking.NewService(bookingRepo, roomRepo, enrollmentRepo)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			hotelHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
