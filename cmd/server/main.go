package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"trip-planner-service/internal/adapters/analysis"
	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, TomTom, Watsonx, the cache
// backends) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	nominatimURL := config.Get("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	querySuffix := config.Get("NOMINATIM_QUERY_SUFFIX", ", India")
	routingURL := config.Get("ROUTING_BASE_URL", "https://api.tomtom.com")
	fallbackDelay := config.GetMillis("FALLBACK_DELAY_MS", handlers.DefaultFallbackDelay)

	routingKey := os.Getenv("ROUTING_API_KEY")
	if strings.TrimSpace(routingKey) == "" {
		log.Fatal("ROUTING_API_KEY is required")
	}

	geocodeCache, closeCache, err := openGeocodeCache(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	geocoder, err := geocode.NewNominatimGeocoder(nominatimURL,
		geocode.WithCache(geocodeCache),
		geocode.WithQuerySuffix(querySuffix),
	)
	if err != nil {
		log.Fatal(err)
	}

	provider, err := routing.NewTomTomRouteProvider(routingKey, routingURL)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	planner := services.NewPlanner(geocoder, provider, rng)

	if token := os.Getenv("WATSONX_ACCESS_TOKEN"); strings.TrimSpace(token) != "" {
		analyzer, err := analysis.NewWatsonxAnalyzer(token,
			config.Get("WATSONX_BASE_URL", ""),
			config.Get("WATSONX_PROJECT_ID", ""))
		if err != nil {
			log.Fatal(err)
		}
		planner.AI = analyzer
		log.Println("Using watsonx analyzer")
	} else {
		log.Println("WATSONX_ACCESS_TOKEN not set; analysis will be simulated")
	}

	router := api.NewRouter(planner, geocoder, fallbackDelay, rng)

	// Timeouts are tuned for cold-cache planning (two external API calls).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache picks the cache backend from the environment: Redis
// when REDIS_ADDR is set, shared Postgres when DATABASE_URL is set, and
// the local SQLite file otherwise.
func openGeocodeCache(dbPath string) (ports.GeocodeCache, func(), error) {
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := config.GetMillis("REDIS_TTL_MS", 24*time.Hour)

		log.Printf("Using redis geocode cache addr=%s ttl=%s", addr, ttl)
		return cache.NewRedisGeocodeCache(client, ttl), func() { client.Close() }, nil
	}

	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init geocode cache schema: %w", err)
		}

		log.Println("Using postgres geocode cache")
		return cache.NewSQLGeocodeCache(conn), func() { conn.Close() }, nil
	}

	sqliteDB, err := openDB(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := cache.InitSchema(sqliteDB); err != nil {
		sqliteDB.Close()
		return nil, nil, fmt.Errorf("init geocode cache schema: %w", err)
	}

	log.Printf("Using sqlite geocode cache path=%s", dbPath)
	return cache.NewSqliteGeocodeCache(sqliteDB), func() { sqliteDB.Close() }, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
