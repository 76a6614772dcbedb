package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/RS-Priyanshu/RSIH/internal/config"
	"github.com/RS-Priyanshu/RSIH/internal/database"
	"github.com/RS-Priyanshu/RSIH/internal/database/models"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type AdminData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Phone    string `yaml:"phone,omitempty"`
}

type ProblemStatementData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Category    string `yaml:"category"`
}

type SeedFile struct {
	Admins            []AdminData            `yaml:"admins"`
	ProblemStatements []ProblemStatementData `yaml:"problem_statements"`
}

func main() {
	log.Println("Loading seed data from YAML fixture...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedFile := cfg.SeedFile
	if seedFile == "" {
		seedFile = "config/seed.yaml"
	}

	if err := loadSeedFile(db, seedFile); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Seed data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM query logging while seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", path, err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse seed file %s: %w", path, err)
	}

	adminCreated := 0
	for _, adminData := range file.Admins {
		created, err := createAdmin(db, adminData)
		if err != nil {
			return fmt.Errorf("failed to create admin %s: %w", adminData.Email, err)
		}
		if created {
			adminCreated++
		}
	}
	log.Printf("Admins: %d created, %d total", adminCreated, len(file.Admins))

	psCreated := 0
	for _, psData := range file.ProblemStatements {
		created, err := createProblemStatement(db, psData)
		if err != nil {
			return fmt.Errorf("failed to create problem statement %q: %w", psData.Title, err)
		}
		if created {
			psCreated++
		}
	}
	log.Printf("Problem statements: %d created, %d total", psCreated, len(file.ProblemStatements))

	return nil
}

func createAdmin(db *gorm.DB, adminData AdminData) (bool, error) {
	var user models.User
	err := db.Where("email = ?", adminData.Email).First(&user).Error
	if err == nil {
		return false, nil // existing
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminData.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user = models.User{
		Name:         adminData.Name,
		Email:        adminData.Email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Verified:     true,
		Phone:        adminData.Phone,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("failed to create admin: %w", err)
	}
	return true, nil
}

func createProblemStatement(db *gorm.DB, psData ProblemStatementData) (bool, error) {
	psSlug := slug.Make(psData.Title)

	var ps models.ProblemStatement
	err := db.Where("slug = ?", psSlug).First(&ps).Error
	if err == nil {
		return false, nil // existing
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query problem statement: %w", err)
	}

	ps = models.ProblemStatement{
		Title:       psData.Title,
		Description: psData.Description,
		Type:        psData.Type,
		Category:    psData.Category,
		Slug:        psSlug,
	}
	if err := db.Create(&ps).Error; err != nil {
		return false, fmt.Errorf("failed to create problem statement: %w", err)
	}
	return true, nil
}
