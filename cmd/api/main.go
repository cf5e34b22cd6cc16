package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/MedCareServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/MedCareServices01/clinic-scheduler/internal/db"
	"github.com/MedCareServices01/clinic-scheduler/internal/lock"
	"github.com/MedCareServices01/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	loc, err := time.LoadLocation(cfg.ClinicTimezone)
	if err != nil {
		log.Printf("invalid CLINIC_TIMEZONE %q, falling back to UTC", cfg.ClinicTimezone)
		loc = time.UTC
	}

	var locks lock.Locker = lock.NopLocker{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		locks = lock.NewRedisLocker(client)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locks, loc)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
