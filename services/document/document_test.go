// File: services/document/document_test.go
package document

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	docs map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*models.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *models.Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	if d, ok := r.docs[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, fmt.Errorf("document with id %s not found", id)
}

func (r *fakeDocumentRepo) GetAll(ctx context.Context, clinicID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.ClinicID == clinicID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetByPatient(ctx context.Context, clinicID, patientID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.ClinicID == clinicID && d.PatientID == patientID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return fmt.Errorf("document with id %s not found", id)
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) CountByPatient(ctx context.Context, clinicID, patientID string) (int64, error) {
	docs, _ := r.GetByPatient(ctx, clinicID, patientID)
	return int64(len(docs)), nil
}

type fakePatientRepo struct {
	patients map[string]*models.Patient
	fields   map[string]map[string]interface{}
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{
		patients: make(map[string]*models.Patient),
		fields:   make(map[string]map[string]interface{}),
	}
}

func (r *fakePatientRepo) Create(ctx context.Context, p *models.Patient) error { return nil }

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	if p, ok := r.patients[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, fmt.Errorf("patient with id %s not found", id)
}

func (r *fakePatientRepo) GetAll(ctx context.Context, clinicID string) ([]models.Patient, error) {
	return nil, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, p *models.Patient) error { return nil }

func (r *fakePatientRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.fields[id] = fields
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *fakePatientRepo) CountAll(ctx context.Context, clinicID string) (int64, error) {
	return 0, nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	f.uploaded = append(f.uploaded, localFilePath)
	return "file-" + localFilePath, nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://files.example/" + publicID, nil
}

func (f *fakeStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://files.example/signed/" + publicID, nil
}

func (f *fakeStorage) UploadEncryptedFile(ctx context.Context, localFilePath, destFolder, encryptionKey string) (string, error) {
	f.uploaded = append(f.uploaded, localFilePath)
	return "enc-" + localFilePath, nil
}

func newTestService() (*DefaultDocumentService, *fakeDocumentRepo, *fakePatientRepo, *fakeStorage) {
	docs := newFakeDocumentRepo()
	patients := newFakePatientRepo()
	store := &fakeStorage{}
	svc := &DefaultDocumentService{Repo: docs, Patients: patients, Storage: store}
	return svc, docs, patients, store
}

func day(dd int) time.Time {
	return time.Date(2025, 2, dd, 0, 0, 0, 0, time.UTC)
}

func seedDocuments(repo *fakeDocumentRepo, n int) {
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("doc%02d", i)
		repo.docs[id] = &models.Document{
			ID:          id,
			ClinicID:    "C1",
			PatientID:   "P1",
			PatientName: fmt.Sprintf("Patient %02d", i),
			Title:       fmt.Sprintf("Report %02d", i),
			Category:    models.CategoryReports,
			Date:        day(1 + i%27),
		}
	}
}

func TestBrowsePagesBySix(t *testing.T) {
	svc, docs, _, _ := newTestService()
	seedDocuments(docs, 14)
	ctx := context.Background()

	page1, err := svc.Browse(ctx, "C1", models.BrowseQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Documents, 6)
	assert.Equal(t, 14, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)

	page3, err := svc.Browse(ctx, "C1", models.BrowseQuery{Page: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Documents, 2)

	// Out-of-range pages clamp instead of erroring.
	clamped, err := svc.Browse(ctx, "C1", models.BrowseQuery{Page: 99})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
}

func TestBrowseFiltersByCategory(t *testing.T) {
	svc, docs, _, _ := newTestService()
	docs.docs["d1"] = &models.Document{ID: "d1", ClinicID: "C1", PatientName: "Ada", Title: "X-Ray", Category: models.CategoryImaging, Date: day(3)}
	docs.docs["d2"] = &models.Document{ID: "d2", ClinicID: "C1", PatientName: "Ada", Title: "Blood Panel", Category: models.CategoryResults, Date: day(4)}

	page, err := svc.Browse(context.Background(), "C1", models.BrowseQuery{Category: models.CategoryImaging})
	require.NoError(t, err)
	require.Len(t, page.Documents, 1)
	assert.Equal(t, "d1", page.Documents[0].ID)
}

func TestBrowseSearchByField(t *testing.T) {
	svc, docs, _, _ := newTestService()
	docs.docs["d1"] = &models.Document{ID: "d1", ClinicID: "C1", PatientName: "Ada Osei", Title: "MRI Scan", Category: models.CategoryImaging, Date: day(3)}
	docs.docs["d2"] = &models.Document{ID: "d2", ClinicID: "C1", PatientName: "Ben Carter", Title: "Ada Protocol", Category: models.CategoryReports, Date: day(9)}
	ctx := context.Background()

	byPatient, err := svc.Browse(ctx, "C1", models.BrowseQuery{Search: "ada", SearchBy: "patient"})
	require.NoError(t, err)
	require.Len(t, byPatient.Documents, 1)
	assert.Equal(t, "d1", byPatient.Documents[0].ID)

	byTitle, err := svc.Browse(ctx, "C1", models.BrowseQuery{Search: "ada", SearchBy: "title"})
	require.NoError(t, err)
	require.Len(t, byTitle.Documents, 1)
	assert.Equal(t, "d2", byTitle.Documents[0].ID)

	anyField, err := svc.Browse(ctx, "C1", models.BrowseQuery{Search: "ada"})
	require.NoError(t, err)
	assert.Len(t, anyField.Documents, 2)
}

func TestBrowseSearchByDate(t *testing.T) {
	svc, docs, _, _ := newTestService()
	docs.docs["d1"] = &models.Document{ID: "d1", ClinicID: "C1", PatientName: "Ada", Title: "MRI", Category: models.CategoryImaging, Date: day(3)}
	docs.docs["d2"] = &models.Document{ID: "d2", ClinicID: "C1", PatientName: "Ben", Title: "CT", Category: models.CategoryImaging, Date: day(9)}
	ctx := context.Background()

	page, err := svc.Browse(ctx, "C1", models.BrowseQuery{Search: "03-02-2025", SearchBy: "date"})
	require.NoError(t, err)
	require.Len(t, page.Documents, 1)
	assert.Equal(t, "d1", page.Documents[0].ID)

	_, err = svc.Browse(ctx, "C1", models.BrowseQuery{Search: "2025/02/03", SearchBy: "date"})
	require.Error(t, err)
}

func TestBrowseSortOrders(t *testing.T) {
	svc, docs, _, _ := newTestService()
	docs.docs["d1"] = &models.Document{ID: "d1", ClinicID: "C1", PatientName: "Ben", Title: "B", Category: models.CategoryReports, Date: day(1)}
	docs.docs["d2"] = &models.Document{ID: "d2", ClinicID: "C1", PatientName: "Ada", Title: "A", Category: models.CategoryReports, Date: day(20)}
	ctx := context.Background()

	newest, err := svc.Browse(ctx, "C1", models.BrowseQuery{})
	require.NoError(t, err)
	assert.Equal(t, "d2", newest.Documents[0].ID)

	oldest, err := svc.Browse(ctx, "C1", models.BrowseQuery{SortBy: "dateAsc"})
	require.NoError(t, err)
	assert.Equal(t, "d1", oldest.Documents[0].ID)

	byName, err := svc.Browse(ctx, "C1", models.BrowseQuery{SortBy: "nameAsc"})
	require.NoError(t, err)
	assert.Equal(t, "d2", byName.Documents[0].ID)

	_, err = svc.Browse(ctx, "C1", models.BrowseQuery{SortBy: "size"})
	require.Error(t, err)
}

func TestUploadCreatesMetadataAndBumpsCount(t *testing.T) {
	svc, docs, patients, store := newTestService()
	patients.patients["P1"] = &models.Patient{ID: "P1", ClinicID: "C1", Name: "Ada Osei", DocumentsCount: 2}

	doc, err := svc.Upload(context.Background(), "C1", UploadRequest{
		PatientID:     "P1",
		Title:         "Blood Panel",
		Category:      models.CategoryResults,
		LocalFilePath: "/tmp/panel.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Osei", doc.PatientName)
	assert.Equal(t, "enc-/tmp/panel.pdf", doc.FileID)
	assert.Contains(t, docs.docs, doc.ID)
	require.Len(t, store.uploaded, 1)
	assert.Equal(t, 3, patients.fields["P1"]["documentsCount"])
}

func TestUploadRejectsUnknownCategory(t *testing.T) {
	svc, _, _, _ := newTestService()
	_, err := svc.Upload(context.Background(), "C1", UploadRequest{
		PatientID: "P1", Title: "X", Category: "misc",
	})
	require.Error(t, err)
}

func TestDeleteRemovesFileAndDecrementsCount(t *testing.T) {
	svc, docs, patients, store := newTestService()
	patients.patients["P1"] = &models.Patient{ID: "P1", ClinicID: "C1", Name: "Ada", DocumentsCount: 1}
	docs.docs["d1"] = &models.Document{ID: "d1", ClinicID: "C1", PatientID: "P1", FileID: "file-1"}

	require.NoError(t, svc.Delete(context.Background(), "d1"))
	assert.NotContains(t, docs.docs, "d1")
	assert.Equal(t, []string{"file-1"}, store.deleted)
	assert.Equal(t, 0, patients.fields["P1"]["documentsCount"])
}
