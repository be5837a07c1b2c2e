package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
	"skilltracker/storage"
	"skilltracker/util"

	"github.com/google/uuid"
)

type CertificateService struct {
	repo  repository.CertificateRepository
	media storage.MediaStore
}

func NewCertificateService(repo repository.CertificateRepository, media storage.MediaStore) *CertificateService {
	return &CertificateService{repo: repo, media: media}
}

// Create hosts the certificate document and stores the record. The upload
// is removed again if the record cannot be written.
func (s *CertificateService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCertificateRequest, file storage.File) (*model.Certificate, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	issueDate, err := util.ParseDate(req.IssueDate)
	if err != nil {
		return nil, invalid("issueDate: %v", err)
	}

	category := req.Category
	if category == "" {
		category = model.CertCategoryOther
	}

	stored, err := s.media.Upload(ctx, storage.FolderCertificates, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload certificate file: %w", err)
	}

	cert := &model.Certificate{
		UserID:        userID,
		Title:         title,
		Issuer:        strings.TrimSpace(req.Issuer),
		IssueDate:     issueDate,
		CredentialID:  strings.TrimSpace(req.CredentialID),
		CredentialURL: strings.TrimSpace(req.CredentialURL),
		Description:   req.Description,
		FileURL:       stored.URL,
		FileMediaID:   stored.MediaID,
		Category:      category,
		IsPublic:      req.IsPublic,
	}
	if err := s.repo.Create(ctx, cert); err != nil {
		deleteMedia(ctx, s.media, stored.MediaID)
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return cert, nil
}

func (s *CertificateService) List(ctx context.Context, userID uuid.UUID, filter repository.ListFilter) ([]model.Certificate, error) {
	certs, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certs, nil
}

func (s *CertificateService) Get(ctx context.Context, userID uuid.UUID, id string) (*model.Certificate, error) {
	certID, err := parseID(id)
	if err != nil {
		return nil, lookupErr("certificate", err)
	}
	cert, err := s.repo.GetByID(ctx, certID)
	if err != nil {
		return nil, lookupErr("certificate", err)
	}
	if cert.UserID != userID {
		return nil, ErrNotAuthorized
	}
	return cert, nil
}

func (s *CertificateService) Update(ctx context.Context, userID uuid.UUID, id string, req *dto.UpdateCertificateRequest) (*model.Certificate, error) {
	cert, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		cert.Title = title
	}
	if req.Issuer != nil {
		cert.Issuer = strings.TrimSpace(*req.Issuer)
	}
	if req.IssueDate != nil {
		d, err := util.ParseDate(*req.IssueDate)
		if err != nil {
			return nil, invalid("issueDate: %v", err)
		}
		cert.IssueDate = d
	}
	if req.CredentialID != nil {
		cert.CredentialID = strings.TrimSpace(*req.CredentialID)
	}
	if req.CredentialURL != nil {
		cert.CredentialURL = strings.TrimSpace(*req.CredentialURL)
	}
	if req.Description != nil {
		cert.Description = *req.Description
	}
	if req.Category != nil {
		cert.Category = *req.Category
	}
	if req.IsPublic != nil {
		cert.IsPublic = *req.IsPublic
	}

	if err := s.repo.Update(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}
	return cert, nil
}

// Delete removes the record, then the hosted document on a best-effort basis.
func (s *CertificateService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	cert, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, cert.ID); err != nil {
		return fmt.Errorf("failed to delete certificate: %w", err)
	}
	deleteMedia(ctx, s.media, cert.FileMediaID)
	return nil
}

// parseID treats a malformed id like an unknown one.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrNotFound
	}
	return parsed, nil
}

// lookupErr names the missing kind, e.g. "skill not found".
func lookupErr(kind string, err error) error {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s %w", kind, ErrNotFound)
	}
	return fmt.Errorf("failed to load %s: %w", kind, err)
}
