package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"skilltracker/dto"
	"skilltracker/model"
	"skilltracker/repository"
	"skilltracker/storage"
	"skilltracker/util"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo      repository.UserRepository
	media         storage.MediaStore
	tokens        *util.TokenIssuer
	defaultAvatar string
}

func NewAuthService(
	u repository.UserRepository,
	media storage.MediaStore,
	tokens *util.TokenIssuer,
	defaultAvatar string,
) *AuthService {
	return &AuthService{
		userRepo:      u,
		media:         media,
		tokens:        tokens,
		defaultAvatar: defaultAvatar,
	}
}

// Register creates an account with the default portfolio configuration and
// returns a token for it.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, invalid("user already exists")
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		AvatarURL:    s.defaultAvatar,
		Portfolio:    model.DefaultPortfolioConfig(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil, invalid("user already exists")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID)
	return s.issue(user.ID)
}

// Login checks the password and returns a fresh token. Unknown email and
// wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := util.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user.ID)
}

// Authenticate resolves a bearer token to the user id it was issued for.
func (s *AuthService) Authenticate(token string) (uuid.UUID, error) {
	return s.tokens.Verify(token)
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.getUser(ctx, userID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*model.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, invalid("name cannot be empty")
		}
		user.Name = name
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			other, err := s.userRepo.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != user.ID:
				return nil, invalid("email is already in use")
			case err != nil && !errors.Is(err, model.ErrNotFound):
				return nil, fmt.Errorf("failed to look up email: %w", err)
			}
			user.Email = email
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil, invalid("email is already in use")
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := util.ComparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
		return invalid("current password is incorrect")
	}
	if req.CurrentPassword == req.NewPassword {
		return invalid("new password must be different from current password")
	}

	hashed, err := util.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateAvatar hosts the new image, stores its URL and then drops the old
// hosted image. A failed upload leaves the current avatar untouched.
func (s *AuthService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file storage.File) (*model.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stored, err := s.media.Upload(ctx, storage.FolderAvatars, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	previous := user.AvatarMediaID
	user.AvatarURL = stored.URL
	user.AvatarMediaID = stored.MediaID

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.dropMedia(ctx, stored.MediaID)
		return nil, fmt.Errorf("failed to save avatar: %w", err)
	}

	s.dropMedia(ctx, previous)
	return user, nil
}

// DeleteAvatar reverts to the default avatar.
func (s *AuthService) DeleteAvatar(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.AvatarMediaID
	user.AvatarURL = s.defaultAvatar
	user.AvatarMediaID = ""

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to reset avatar: %w", err)
	}

	s.dropMedia(ctx, previous)
	return user, nil
}

func (s *AuthService) getUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issue(userID uuid.UUID) (*dto.TokenResponse, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, ExpiresIn: int(s.tokens.TTL().Seconds())}, nil
}

// dropMedia deletes a hosted file, logging instead of failing.
func (s *AuthService) dropMedia(ctx context.Context, mediaID string) {
	deleteMedia(ctx, s.media, mediaID)
}

func deleteMedia(ctx context.Context, media storage.MediaStore, mediaID string) {
	if mediaID == "" {
		return
	}
	if err := media.Delete(ctx, mediaID); err != nil {
		slog.Warn("failed to delete hosted file", "media_id", mediaID, "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
