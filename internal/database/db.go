package database

import (
	"log"
	"time"

	"rentdesk/internal/config"
	"rentdesk/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init connects to Postgres with a retry loop, runs migrations and seeds the
// bootstrap accounts. The handle is returned and passed down explicitly;
// nothing reads it from package state.
func Init(cfg *config.Config) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(db, cfg)
	seedStaffUser(db, cfg)

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Order{},
		&models.AssetLog{},
	)
}

// Accounts exist only through bootstrap seeding; there is no register path.
func createDefaultAdmin(db *gorm.DB, cfg *config.Config) {
	username := cfg.AdminUsername
	if username == "" {
		username = "admin"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}

// Optional demo staff account, only when both env values are present.
func seedStaffUser(db *gorm.DB, cfg *config.Config) {
	if cfg.StaffUsername == "" || cfg.StaffPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.StaffUsername).
		Count(&count).Error; err != nil {
		log.Printf("failed to check seed user %s: %v", cfg.StaffUsername, err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password for %s: %v", cfg.StaffUsername, err)
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     cfg.StaffUsername,
		PasswordHash: string(hash),
		Role:         models.RoleStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("failed to create seed user %s: %v", cfg.StaffUsername, err)
		return
	}

	log.Printf("created seed user: %s (role=%s)", user.Username, user.Role)
}
