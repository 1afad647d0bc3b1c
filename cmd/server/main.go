package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	cfgpkg "idolapi/config"
	"idolapi/internal/handlers"
	"idolapi/internal/middleware"
	"idolapi/internal/store"
)

func main() {
	// Load config from .env, env vars and optional config.yml
	appConfig, err := cfgpkg.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	dsn, err := appConfig.DSN()
	if err != nil {
		log.Fatalf("missing database configuration: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	idolStore := store.NewIdolStore(db)

	r := chi.NewRouter()
	// /search/ and /filter/ are also reachable with the trailing slash
	r.Use(chimw.RedirectSlashes)

	r.Get("/", handlers.HandleAllIdols(idolStore))
	r.Get("/idol/{stage_name}", handlers.HandleIdolByStageName(idolStore))
	r.Get("/group/{group_name}", handlers.HandleIdolsByGroup(idolStore))
	r.Get("/search", handlers.HandleSearch(idolStore))
	r.Get("/filter", handlers.HandleFilter(idolStore))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db not ok"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger (served via CDN with embedded spec)
	r.Get("/swagger", handlers.SwaggerUI)
	r.Get("/swagger.json", handlers.SwaggerSpec)

	// Compose middlewares: CORS -> Logging -> router
	handler := middleware.CORS(middleware.Logging(r))

	addr := ":" + appConfig.App.Port
	log.Printf("server listening on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
