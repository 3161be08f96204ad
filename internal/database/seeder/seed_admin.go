package seeder

import (
	"context"
	"strings"

	"talentgate/internal/config"
	"talentgate/internal/database"
	"talentgate/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Idempotent: an existing user with that email is left
// untouched.
type AdminSeeder struct {
	Admin config.AdminConfig
}

func (s AdminSeeder) Name() string { return "admin_user" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(s.Admin.Email))
	if email == "" || s.Admin.Password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT ON CONSTRAINT users_email_key DO NOTHING`,
		uuid.New(), email, string(hash), user.RoleAdmin,
	)
	return err
}
