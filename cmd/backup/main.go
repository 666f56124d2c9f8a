package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"podcastwerkstatt/internal/config"
	"podcastwerkstatt/internal/database"
	"podcastwerkstatt/internal/models"
	"podcastwerkstatt/internal/repository"
)

// backupFile is the on-disk export format: all team projects keyed by
// session ID, plus enough metadata to sanity-check an import.
type backupFile struct {
	ExportedAt time.Time                 `json:"exportedAt"`
	Projects   map[string]models.Project `json:"projects"`
}

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations to ensure schema is up to date
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewProjectRepository(db)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(repo, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(repo, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(repo *repository.ProjectRepository, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	projects, err := repo.All()
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	data, err := json.MarshalIndent(backupFile{
		ExportedAt: time.Now().UTC(),
		Projects:   projects,
	}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode backup: %v", err)
	}

	log.Printf("Exporting %d projects to: %s", len(projects), outputPath)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		log.Fatalf("Failed to write backup file: %v", err)
	}

	log.Println("Export complete!")
}

func handleImport(repo *repository.ProjectRepository, inputPath string) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	var backup backupFile
	if err := json.Unmarshal(data, &backup); err != nil {
		log.Fatalf("Failed to decode backup file: %v", err)
	}

	log.Printf("Importing %d projects from: %s (exported %s)",
		len(backup.Projects), inputPath, backup.ExportedAt.Format("2006-01-02 15:04"))

	imported := 0
	for sessionID, project := range backup.Projects {
		if err := project.Validate(); err != nil {
			log.Printf("Skipping invalid project for session %s: %v", sessionID, err)
			continue
		}
		if err := repo.Save(sessionID, project); err != nil {
			log.Fatalf("Failed to save project for session %s: %v", sessionID, err)
		}
		imported++
	}

	log.Printf("Import complete! %d projects imported", imported)
}

func printUsage() {
	fmt.Println("Podcast-Werkstatt Database Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export team projects to JSON file")
	fmt.Println("  backup import [options]    Import team projects from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./podcastwerkstatt.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
