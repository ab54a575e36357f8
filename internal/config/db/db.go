package db

import (
	"fmt"
	"log"

	"github.com/crypticbroker/platform-api/internal/config"
	"github.com/crypticbroker/platform-api/internal/domain/application"
	"github.com/crypticbroker/platform-api/internal/domain/audit"
	"github.com/crypticbroker/platform-api/internal/domain/form"
	"github.com/crypticbroker/platform-api/internal/domain/organization"
	"github.com/crypticbroker/platform-api/internal/domain/project"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// CreateEnums installs the Postgres enum types the models depend on. Safe to
// run repeatedly.
func CreateEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('ADMIN', 'PROJECT_OWNER', 'INVESTOR', 'ACCELERATOR'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE project_status AS ENUM ('DRAFT', 'SUBMITTED', 'UNDER_REVIEW', 'APPROVED', 'REJECTED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE application_status AS ENUM ('DRAFT', 'SUBMITTED', 'REVIEWING', 'INTERVIEWING', 'ACCEPTED', 'REJECTED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	CreateEnums(DB)

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate applies the schema for every model. Split out so the test harness
// can run it against a throwaway database.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&organization.Organization{},
		&organization.Member{},
		&project.Project{},
		&form.Form{},
		&form.Section{},
		&form.Question{},
		&form.Submission{},
		&application.Application{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
