package repository

import (
	"context"

	"skilltracker/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(ctx context.Context, cert *model.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	// ListByUser returns the owner's certificates, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Certificate, error)
	// ListPublic returns the owner's public certificates, most recently updated first.
	ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Certificate, error)
	Update(ctx context.Context, cert *model.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pgCertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &pgCertificateRepo{db: db}
}

func (r *pgCertificateRepo) Create(ctx context.Context, cert *model.Certificate) error {
	return translate(r.db.WithContext(ctx).Create(cert).Error)
}

func (r *pgCertificateRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	var c model.Certificate
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *pgCertificateRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]model.Certificate, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.IsPublic != nil {
		q = q.Where("is_public = ?", *filter.IsPublic)
	}

	certs := []model.Certificate{}
	if err := q.Order("created_at DESC").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *pgCertificateRepo) ListPublic(ctx context.Context, userID uuid.UUID) ([]model.Certificate, error) {
	certs := []model.Certificate{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_public = ?", userID, true).
		Order("updated_at DESC").
		Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *pgCertificateRepo) Update(ctx context.Context, cert *model.Certificate) error {
	return translate(r.db.WithContext(ctx).Save(cert).Error)
}

func (r *pgCertificateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Certificate{}, "id = ?", id).Error
}
