// File: services/patient/patient_test.go
package patient

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func newFakeRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]*models.Patient)}
}

func (r *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error {
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("patient with id %s not found", id)
}

func (r *fakePatientRepo) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		if p.ClinicID == clinicID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, p *models.Patient) error {
	if _, ok := r.patients[p.ID]; !ok {
		return fmt.Errorf("patient with id %s not found", p.ID)
	}
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	p, ok := r.patients[id]
	if !ok {
		return fmt.Errorf("patient with id %s not found", id)
	}
	if v, ok := fields["fcmToken"]; ok {
		p.FCMToken = v.(string)
	}
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) CountAll(ctx context.Context, clinicID string) (int64, error) {
	return int64(len(r.patients)), nil
}

func TestCreateDerivesInitials(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultPatientService{Repo: repo}

	p, err := svc.Create(context.Background(), "C1", CreateRequest{
		Name:  "ada lovelace osei",
		Email: "Ada@Example.com",
		Phone: "0700000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "AL", p.Initials)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.Equal(t, models.PatientPending, p.Status)
	assert.Equal(t, "C1", p.ClinicID)
}

func TestCreateInitialsKeepAccentedLetters(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultPatientService{Repo: repo}

	p, err := svc.Create(context.Background(), "C1", CreateRequest{
		Name:  "åsa öberg",
		Email: "asa@example.com",
		Phone: "0700000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "ÅÖ", p.Initials)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultPatientService{Repo: newFakeRepo()}
	_, err := svc.Create(context.Background(), "C1", CreateRequest{
		Name: "Ada", Email: "a@b.c", Phone: "1", Status: "vip",
	})
	require.Error(t, err)
}

func seedRoster(repo *fakePatientRepo) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.patients["p1"] = &models.Patient{ID: "p1", ClinicID: "C1", Name: "Ben Carter", Email: "ben@x.com", Status: models.PatientActive, LastVisit: &jan, DocumentsCount: 2}
	repo.patients["p2"] = &models.Patient{ID: "p2", ClinicID: "C1", Name: "Ada Osei", Email: "ada@x.com", Status: models.PatientActive, LastVisit: &mar, DocumentsCount: 5}
	repo.patients["p3"] = &models.Patient{ID: "p3", ClinicID: "C1", Name: "Cara Mensah", Email: "cara@x.com", Status: models.PatientInactive, DocumentsCount: 0}
}

func TestListFiltersAndSorts(t *testing.T) {
	repo := newFakeRepo()
	seedRoster(repo)
	svc := &DefaultPatientService{Repo: repo}
	ctx := context.Background()

	byName, err := svc.List(ctx, "C1", models.RosterQuery{SortBy: "nameAsc"})
	require.NoError(t, err)
	require.Len(t, byName, 3)
	assert.Equal(t, "Ada Osei", byName[0].Name)
	assert.Equal(t, "Cara Mensah", byName[2].Name)

	active, err := svc.List(ctx, "C1", models.RosterQuery{Status: models.PatientActive})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	searched, err := svc.List(ctx, "C1", models.RosterQuery{Search: "ben@"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Ben Carter", searched[0].Name)

	byVisit, err := svc.List(ctx, "C1", models.RosterQuery{SortBy: "lastVisit"})
	require.NoError(t, err)
	require.Len(t, byVisit, 3)
	assert.Equal(t, "Ada Osei", byVisit[0].Name)
	assert.Equal(t, "Cara Mensah", byVisit[2].Name) // never visited sorts last

	byDocs, err := svc.List(ctx, "C1", models.RosterQuery{SortBy: "documentsCount"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Osei", byDocs[0].Name)

	_, err = svc.List(ctx, "C1", models.RosterQuery{SortBy: "height"})
	require.Error(t, err)
}

func TestUpdateFCMToken(t *testing.T) {
	repo := newFakeRepo()
	seedRoster(repo)
	svc := &DefaultPatientService{Repo: repo}

	require.NoError(t, svc.UpdateFCMToken(context.Background(), "p1", "tok-1"))
	assert.Equal(t, "tok-1", repo.patients["p1"].FCMToken)

	require.Error(t, svc.UpdateFCMToken(context.Background(), "missing", "tok-1"))
}
