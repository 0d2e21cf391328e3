package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jjp1114/studio-store-backend/internal/cart"
	"github.com/jjp1114/studio-store-backend/internal/config"
	"github.com/jjp1114/studio-store-backend/internal/events"
	"github.com/jjp1114/studio-store-backend/internal/kv"
	"github.com/jjp1114/studio-store-backend/internal/license"
	"github.com/jjp1114/studio-store-backend/internal/order"
	"github.com/jjp1114/studio-store-backend/internal/product"
	"github.com/jjp1114/studio-store-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestLogger(log))

	// repositories: Postgres when configured, in-memory otherwise
	var (
		productRepo product.Repository
		orderRepo   order.Repository
		licenseRepo license.Repository
		userRepo    user.Repository
	)
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL, log)
		defer db.Close()
		ensureSchema(db, log)

		productRepo = product.NewPostgresRepository(db)
		orderRepo = order.NewPostgresRepository(db)
		licenseRepo = license.NewPostgresRepository(db)
		userRepo = user.NewPostgresRepository(db)
	} else {
		log.Info().Msg("DATABASE_URL not set, using in-memory repositories")
		productRepo = product.NewInMemoryRepository(product.SampleCatalog())
		orderRepo = order.NewInMemoryRepository()
		licenseRepo = license.NewInMemoryRepository()
		userRepo = user.NewInMemoryRepository(nil)
	}

	// cart snapshots: Redis when configured, in-memory otherwise
	var snapshots kv.Store
	if cfg.RedisURL != "" {
		redisStore, err := kv.NewRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer redisStore.Close()
		snapshots = redisStore
	} else {
		log.Info().Msg("REDIS_URL not set, cart snapshots held in memory")
		snapshots = kv.NewMemory()
	}

	// order events are optional; a nil publisher drops them
	var publisher *events.Publisher
	if cfg.AmqpURL != "" {
		p, err := events.Dial(cfg.AmqpURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connection failed")
		}
		defer p.Close()
		publisher = p
	}

	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService)

	cartStore := cart.NewStore(snapshots, log)
	cartHandler := cart.NewHandler(cartStore, productService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	licenseService := license.NewService(licenseRepo)
	licenseHandler := license.NewHandler(licenseService)

	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderService, cartStore, licenseService, publisher, log)

	// anonymous surface: catalog, cart, sign-in/up
	productHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	userHandler.RegisterPublicRoutes(app)

	// everything below requires a signed-in user
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	userHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	licenseHandler.RegisterProtectedRoutes(app)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

func mustOpenDB(url string, log zerolog.Logger) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("database ping failed")
	}
	return db
}

func ensureSchema(db *sql.DB, log zerolog.Logger) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			price NUMERIC NOT NULL,
			old_price NUMERIC,
			rating NUMERIC NOT NULL DEFAULT 0,
			reviews INT NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			image TEXT,
			license_terms TEXT,
			activations TEXT,
			support TEXT,
			version TEXT,
			popular BOOLEAN NOT NULL DEFAULT FALSE,
			featured BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			items JSONB NOT NULL DEFAULT '[]',
			promo_code TEXT NOT NULL DEFAULT '',
			subtotal NUMERIC NOT NULL DEFAULT 0,
			discount NUMERIC NOT NULL DEFAULT 0,
			tax NUMERIC NOT NULL DEFAULT 0,
			total NUMERIC NOT NULL DEFAULT 0,
			currency TEXT NOT NULL DEFAULT 'EUR',
			status TEXT,
			payment_status TEXT,
			billing JSONB NOT NULL DEFAULT '{}',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS licenses (
			license_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			license_key TEXT NOT NULL,
			status TEXT NOT NULL,
			activations TEXT NOT NULL DEFAULT '',
			version TEXT NOT NULL DEFAULT '',
			expires_at TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatal().Err(err).Msg("schema setup failed")
		}
	}
}
