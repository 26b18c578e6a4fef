// File: services/doctor/doctor.go
package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	doctorRepo "clinicore/database/repository/doctor"
	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued auth token stays valid.
const tokenTTL = 72 * time.Hour

// Service manages doctor accounts and authentication.
type Service interface {
	Register(ctx context.Context, req models.DoctorRegistration) (*models.DoctorAuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*models.DoctorAuthResponse, error)
	Get(ctx context.Context, id string) (*models.Doctor, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Register(ctx context.Context, req models.DoctorRegistration) (*models.DoctorAuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doc := &models.Doctor{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Specialty:    req.Specialty,
		ClinicID:     req.ClinicID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return s.authResponse(doc)
}

func (s *DefaultDoctorService) SignIn(ctx context.Context, email, password string) (*models.DoctorAuthResponse, error) {
	doc, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.authResponse(doc)
}

func (s *DefaultDoctorService) authResponse(doc *models.Doctor) (*models.DoctorAuthResponse, error) {
	token, err := utils.GenerateToken(doc.ID, doc.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.DoctorAuthResponse{Doctor: *doc, Token: token}, nil
}

func (s *DefaultDoctorService) Get(ctx context.Context, id string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultDoctorService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFields(ctx, id, map[string]interface{}{"fcmToken": token})
}
