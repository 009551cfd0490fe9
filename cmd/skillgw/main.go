package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/vocamind/vocamind-skill/internal/api/http"
	auth "github.com/vocamind/vocamind-skill/internal/auth/middleware"
	"github.com/vocamind/vocamind-skill/internal/config"
	"github.com/vocamind/vocamind-skill/internal/db"
	"github.com/vocamind/vocamind-skill/internal/lexicon"
	"github.com/vocamind/vocamind-skill/internal/quiz"
	"github.com/vocamind/vocamind-skill/internal/speech"
	"github.com/vocamind/vocamind-skill/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := lexicon.NewSQLStore(dbh, cfg.DBDriver)

	// --- Audio cache ---
	bs, err := storage.NewFSStore(cfg.BlobBasePath, cfg.AudioPublicBase())
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}
	synth := speech.NewDeepgramSynthesizer(cfg.DeepgramAPIKey, cfg.DeepgramVoice)
	cache := speech.NewAudioCache(bs, synth)

	engine := quiz.NewEngine(store, cache)

	// --- Auth (admin surface only; the skill webhook stays open) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Conversation webhook
	r.Post("/skill/invoke", api.SkillInvokeHandler(engine))

	// Cached definition audio
	r.Route("/audio", func(ar chi.Router) {
		api.MountAudio(ar, bs)
	})

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))

	// Admin surface (JWT)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Route("/admin", func(ar chi.Router) {
			ar.Post("/words", api.PutWordHandler(store))
			ar.Get("/words", api.ListWordsHandler(store))
			ar.Post("/users", api.UpsertUserHandler(store))
			ar.Post("/users/{userID}/learn", api.LearnWordHandler(store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
