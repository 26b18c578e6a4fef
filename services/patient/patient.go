// File: services/patient/patient.go
package patient

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"clinicore/models"

	"github.com/google/uuid"
)

func (s *DefaultPatientService) Create(ctx context.Context, clinicID string, req CreateRequest) (*models.Patient, error) {
	status := req.Status
	if status == "" {
		status = models.PatientPending
	}
	switch status {
	case models.PatientActive, models.PatientPending, models.PatientInactive:
	default:
		return nil, fmt.Errorf("unknown patient status %q", status)
	}

	p := &models.Patient{
		ID:       uuid.NewString(),
		ClinicID: clinicID,
		Name:     strings.TrimSpace(req.Name),
		Initials: initialsOf(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Status:   status,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// initialsOf derives the avatar initials from the first two name parts.
func initialsOf(name string) string {
	parts := strings.Fields(name)
	var sb strings.Builder
	for i, p := range parts {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(p)
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}

func (s *DefaultPatientService) Get(ctx context.Context, id string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultPatientService) List(ctx context.Context, clinicID string, q models.RosterQuery) ([]models.Patient, error) {
	patients, err := s.Repo.GetAll(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]models.Patient, 0, len(patients))
	for _, p := range patients {
		if q.Status != "" && q.Status != "all" && p.Status != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Email), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.SortBy {
	case "", "nameAsc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case "nameDesc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) > strings.ToLower(filtered[j].Name)
		})
	case "lastVisit":
		// Most recent visits first, never-visited patients last.
		sort.SliceStable(filtered, func(i, j int) bool {
			a, b := filtered[i].LastVisit, filtered[j].LastVisit
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.After(*b)
		})
	case "documentsCount":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DocumentsCount > filtered[j].DocumentsCount
		})
	default:
		return nil, fmt.Errorf("unknown sort order %q", q.SortBy)
	}
	return filtered, nil
}

func (s *DefaultPatientService) Update(ctx context.Context, patient *models.Patient) error {
	if patient.ID == "" {
		return fmt.Errorf("patient id is required")
	}
	if patient.Name != "" {
		patient.Initials = initialsOf(patient.Name)
	}
	return s.Repo.Update(ctx, patient)
}

func (s *DefaultPatientService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultPatientService) UpdateFCMToken(ctx context.Context, id, token string) error {
	return s.Repo.UpdateFields(ctx, id, map[string]interface{}{"fcmToken": token})
}
