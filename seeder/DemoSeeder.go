package seeder

import (
	"context"
	"log/slog"
	"time"

	"skilltracker/model"
	"skilltracker/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DemoEmail    = "demo@skilltracker.dev"
	DemoPassword = "demo1234"
)

// SeedDemo creates a demo account with a published portfolio. It does
// nothing if the account already exists.
func SeedDemo(ctx context.Context, db *gorm.DB, avatarURL string) {
	slog.Info("seeding demo account...")

	if err := seed(ctx, db, avatarURL); err != nil {
		slog.Error("error seeding demo account", "error", err)
		return
	}
	slog.Info("demo seeding completed")
}

func seed(ctx context.Context, db *gorm.DB, avatarURL string) error {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", DemoEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		slog.Info("demo account already present, skipping")
		return nil
	}

	hashed, err := util.HashPassword(DemoPassword)
	if err != nil {
		return err
	}

	publicID := util.NewPublicID()
	portfolio := model.DefaultPortfolioConfig()
	portfolio.Enabled = true
	portfolio.PublicID = &publicID
	portfolio.Theme = model.ThemeModern
	portfolio.Settings.AboutMe = "Backend developer who enjoys **Go**, databases and tidy APIs."

	user := &model.User{
		Name:         "Demo User",
		Email:        DemoEmail,
		PasswordHash: hashed,
		AvatarURL:    avatarURL,
		Portfolio:    portfolio,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		skills := []model.Skill{
			{UserID: user.ID, Name: "go", Category: model.SkillCategoryBackend, Level: model.SkillLevelAdvanced, IsPublic: true},
			{UserID: user.ID, Name: "postgresql", Category: model.SkillCategoryDatabase, Level: model.SkillLevelIntermediate, IsPublic: true},
			{UserID: user.ID, Name: "react", Category: model.SkillCategoryFrontend, Level: model.SkillLevelBeginner},
		}
		if err := tx.Create(&skills).Error; err != nil {
			return err
		}

		issued := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		cert := &model.Certificate{
			UserID:      user.ID,
			Title:       "Cloud Fundamentals",
			Issuer:      "Example Academy",
			IssueDate:   &issued,
			FileURL:     avatarURL,
			Category:    model.CertCategoryProgramming,
			IsPublic:    true,
			Description: "Seeded example certificate.",
		}
		if err := tx.Create(cert).Error; err != nil {
			return err
		}

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		project := &model.Project{
			UserID:           user.ID,
			Title:            "SkillTracker",
			Description:      "Portfolio backend with a public page.",
			Technologies:     datatypes.JSONSlice[string]{"Go", "Fiber", "PostgreSQL"},
			StartDate:        &start,
			IsPublic:         true,
			AssociatedSkills: skills[:2],
		}
		return tx.Omit("AssociatedSkills.*").Create(project).Error
	})
}
