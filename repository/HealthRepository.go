package repository

import (
	"context"

	"gorm.io/gorm"
)

type HealthRepository interface {
	Ping(ctx context.Context) error
}

type pgHealthRepo struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &pgHealthRepo{db: db}
}

func (r *pgHealthRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
