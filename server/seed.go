package server

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAdminName     = "Administrateur"
	defaultAdminEmail    = "admin@forum.local"
	defaultAdminPassword = "admin_dev_password"
)

// SeedAdmin guarantees the moderation account exists. Credentials come
// from ADMIN_NAME / ADMIN_EMAIL / ADMIN_PASSWORD, with development
// defaults. Existing accounts are left untouched, so a changed env
// password does not rotate the stored hash.
func SeedAdmin(db *gorm.DB) error {
	name := envOr("ADMIN_NAME", defaultAdminName)
	email := envOr("ADMIN_EMAIL", defaultAdminEmail)
	password := envOr("ADMIN_PASSWORD", defaultAdminPassword)

	var existing model.Account
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "fail to hash admin password")
	}

	account := model.Account{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      model.AdminYes,
	}
	if err := db.Create(&account).Error; err != nil {
		return errors.Wrap(err, "fail to seed admin account")
	}
	Log.Info("seeded admin account ", email)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
