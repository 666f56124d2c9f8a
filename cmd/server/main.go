package main

import (
	"fmt"
	"html/template"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"podcastwerkstatt/internal/audio"
	"podcastwerkstatt/internal/config"
	"podcastwerkstatt/internal/database"
	"podcastwerkstatt/internal/handlers"
	"podcastwerkstatt/internal/repository"
	"podcastwerkstatt/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed team name filter
	if err := db.SeedBlockedWords(); err != nil {
		log.Printf("Warning: Failed to seed blocked words filter: %v", err)
	}

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories and services
	projectRepo := repository.NewProjectRepository(db)
	projectService := service.NewProjectService(projectRepo, db)
	ttsService := audio.NewTTSService(cfg.AudioCachePath)

	// Initialize handlers
	middleware := handlers.NewMiddleware(projectService)
	projectHandler := handlers.NewProjectHandler(projectService, templates)
	lessonHandler := handlers.NewLessonHandler(projectService, templates)
	workshopHandler := handlers.NewWorkshopHandler(projectService, templates, rand.New(rand.NewSource(time.Now().UnixNano())))
	printHandler := handlers.NewPrintHandler(projectService, templates)
	audioHandler := handlers.NewAudioHandler(ttsService, cfg.AudioCachePath)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Team setup
	mux.HandleFunc("GET /{$}", middleware.WithSession(projectHandler.ShowHome))
	mux.HandleFunc("POST /project", middleware.WithSession(projectHandler.CreateProject))
	mux.HandleFunc("POST /project/reset", middleware.RequireProject(projectHandler.ResetProject))
	mux.HandleFunc("GET /dashboard", middleware.RequireProject(projectHandler.ShowDashboard))

	// Lesson missions
	mux.HandleFunc("GET /lesson/{kind}/start", middleware.RequireProject(lessonHandler.StartLesson))
	mux.HandleFunc("GET /lesson/{kind}", middleware.RequireProject(lessonHandler.ShowLesson))
	mux.HandleFunc("POST /lesson/{kind}/select", middleware.RequireProject(lessonHandler.SelectOption))
	mux.HandleFunc("POST /lesson/{kind}/check", middleware.RequireProject(lessonHandler.AnswerCheck))
	mux.HandleFunc("POST /lesson/{kind}/advance", middleware.RequireProject(lessonHandler.Advance))
	mux.HandleFunc("POST /lesson/{kind}/confirm", middleware.RequireProject(lessonHandler.Confirm))

	// Script workshop
	mux.HandleFunc("GET /workshop", middleware.RequireProject(workshopHandler.ShowWorkshop))
	mux.HandleFunc("POST /workshop/card/{index}", middleware.RequireProject(workshopHandler.SetActiveCard))
	mux.HandleFunc("POST /workshop/text", middleware.RequireProject(workshopHandler.UpdateText))
	mux.HandleFunc("POST /workshop/insert", middleware.RequireProject(workshopHandler.InsertStarter))
	mux.HandleFunc("POST /workshop/extend", middleware.RequireProject(workshopHandler.MagicExtend))

	// Print view
	mux.HandleFunc("GET /print", middleware.RequireProject(printHandler.ShowPrint))

	// Narration audio
	mux.HandleFunc("POST /audio/narrate", middleware.WithSession(audioHandler.Narrate))
	mux.HandleFunc("GET /audio/files/{filename}", audioHandler.ServeFile)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	pattern := filepath.Join(templatesPath, "*.tmpl")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", templatesPath)
	}

	// Define template functions
	funcMap := template.FuncMap{
		"mult": func(a float64, b float64) float64 {
			return a * b
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"div": func(a, b int) int {
			if b == 0 {
				return 0
			}
			return a / b
		},
		"mod": func(a, b int) int {
			if b == 0 {
				return 0
			}
			return a % b
		},
		"list": func(items ...string) []string {
			return items
		},
		"deref": func(p *int) int {
			if p == nil {
				return -1
			}
			return *p
		},
	}

	return template.New("").Funcs(funcMap).ParseFiles(files...)
}
