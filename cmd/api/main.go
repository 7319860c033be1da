package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"estateportal/internal/config"
	"estateportal/internal/database"
	"estateportal/internal/mailer"
	"estateportal/internal/middleware"
	"estateportal/internal/modules/admin"
	"estateportal/internal/modules/auth"
	"estateportal/internal/modules/listing"
	jwtsvc "estateportal/internal/pkg/jwt"
	"estateportal/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	var m mailer.Mailer
	if cfg.SMTPHost != "" {
		m = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		m = mailer.NewDevConsole(true)
	}

	authService := auth.NewService(userRepo, partnerRepo, j, m, cfg.OTPTTL)
	authHandler := auth.NewHandler(authService)

	adminService := admin.NewService(partnerRepo, userRepo, propertyRepo)
	adminHandler := admin.NewHandler(adminService)

	listingService := listing.NewService(propertyRepo)
	listingHandler := listing.NewHandler(listingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		listingHandler.RegisterPublicRoutes(v1)

		// admin back-office
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
			listingHandler.RegisterAdminRoutes(adminGroup)
		}
	}

	addr := ":" + getEnv("PORT", "8080")
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
