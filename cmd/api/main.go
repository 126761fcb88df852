package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/goodgifts/goodgifts-backend/internal/config"
	"github.com/goodgifts/goodgifts-backend/internal/handler"
	"github.com/goodgifts/goodgifts-backend/internal/middleware"
	"github.com/goodgifts/goodgifts-backend/internal/migration"
	"github.com/goodgifts/goodgifts-backend/internal/repository"
	"github.com/goodgifts/goodgifts-backend/internal/routes"
	"github.com/goodgifts/goodgifts-backend/internal/service"
	"github.com/goodgifts/goodgifts-backend/pkg/authclient"
	"github.com/goodgifts/goodgifts-backend/pkg/logger"
	pkgredis "github.com/goodgifts/goodgifts-backend/pkg/redis"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("local")
		logger.Get().Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.Env)
	log := logger.Get()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// Redis only backs the rate limiter; the API stays up without it.
	redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port,
		cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		redisClient = nil
	}

	authClient := authclient.New(cfg.Auth.ServiceHost, cfg.Auth.Timeout)

	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	itemRepo := repository.NewItemRepository(db)
	giftRepo := repository.NewGiftRepository(db)

	authService := service.NewAuthService(authClient, userRepo, wishlistRepo)
	userService := service.NewUserService(userRepo)
	friendService := service.NewFriendService(friendRepo, userRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, userRepo)
	itemService := service.NewItemService(itemRepo, wishlistRepo, userRepo)
	giftService := service.NewGiftService(giftRepo, userRepo, itemRepo)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg)))
	if redisClient != nil {
		r.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig(cfg.RateLimitPerMinute)))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Register(r, routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		User:     handler.NewUserHandler(userService, authService),
		Friend:   handler.NewFriendHandler(friendService),
		Wishlist: handler.NewWishlistHandler(wishlistService),
		Item:     handler.NewItemHandler(itemService),
		Gift:     handler.NewGiftHandler(giftService),
	}, middleware.AuthRequired(authClient))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("goodgifts backend listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
	if cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	return db, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	c.MaxAge = 12 * time.Hour

	origins := strings.Split(cfg.CORS.AllowOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
