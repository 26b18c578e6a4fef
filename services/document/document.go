// File: services/document/document.go
package document

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pageSize is the number of documents shown per browse page.
const pageSize = 6

// documentsFolder is the storage folder prefix for record files.
const documentsFolder = "documents"

func (s *DefaultDocumentService) Upload(ctx context.Context, clinicID string, req UploadRequest) (*models.Document, error) {
	switch req.Category {
	case models.CategoryReports, models.CategoryImaging, models.CategoryResults:
	default:
		return nil, fmt.Errorf("unknown document category %q", req.Category)
	}

	patient, err := s.Patients.GetByID(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	var fileID string
	if req.LocalFilePath != "" {
		folder := documentsFolder + "/" + clinicID
		fileID, err = s.Storage.UploadEncryptedFile(ctx, req.LocalFilePath, folder, clinicID)
		if err != nil {
			return nil, err
		}
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	doc := &models.Document{
		ID:          uuid.NewString(),
		ClinicID:    clinicID,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Title:       strings.TrimSpace(req.Title),
		Category:    req.Category,
		Date:        date,
		FileID:      fileID,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.Patients.UpdateFields(ctx, patient.ID, map[string]interface{}{
		"documentsCount": patient.DocumentsCount + 1,
	}); err != nil {
		utils.GetLogger().Warn("failed to bump patient document count",
			zap.String("patientId", patient.ID), zap.Error(err))
	}
	return doc, nil
}

func (s *DefaultDocumentService) Browse(ctx context.Context, clinicID string, q models.BrowseQuery) (*models.BrowsePage, error) {
	docs, err := s.Repo.GetAll(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	filtered, err := filterDocuments(docs, q)
	if err != nil {
		return nil, err
	}
	if err := sortDocuments(filtered, q.SortBy); err != nil {
		return nil, err
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	items := filtered[start:end]
	if items == nil {
		items = []models.Document{}
	}

	return &models.BrowsePage{
		Documents:  items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

func filterDocuments(docs []models.Document, q models.BrowseQuery) ([]models.Document, error) {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	// A date search matches documents on the searched day. The UI sends
	// dates as dd-mm-yyyy.
	var searchDate time.Time
	if search != "" && (q.SearchBy == "date" || q.SearchBy == "" || q.SearchBy == "all") {
		if d, err := time.Parse("02-01-2006", search); err == nil {
			searchDate = d
		} else if q.SearchBy == "date" {
			return nil, fmt.Errorf("invalid search date %q, expected dd-mm-yyyy", q.Search)
		}
	}

	filtered := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if q.Category != "" && q.Category != "all" && d.Category != q.Category {
			continue
		}
		if search != "" && !matchesSearch(d, q.SearchBy, search, searchDate) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered, nil
}

func matchesSearch(d models.Document, searchBy, search string, searchDate time.Time) bool {
	matchPatient := strings.Contains(strings.ToLower(d.PatientName), search)
	matchTitle := strings.Contains(strings.ToLower(d.Title), search)
	matchDate := !searchDate.IsZero() &&
		d.Date.Year() == searchDate.Year() && d.Date.YearDay() == searchDate.YearDay()

	switch searchBy {
	case "patient":
		return matchPatient
	case "title":
		return matchTitle
	case "date":
		return matchDate
	default:
		return matchPatient || matchTitle || matchDate
	}
}

func sortDocuments(docs []models.Document, sortBy string) error {
	switch sortBy {
	case "", "dateDesc":
		sort.SliceStable(docs, func(i, j int) bool { return docs[i].Date.After(docs[j].Date) })
	case "dateAsc":
		sort.SliceStable(docs, func(i, j int) bool { return docs[i].Date.Before(docs[j].Date) })
	case "nameAsc":
		sort.SliceStable(docs, func(i, j int) bool {
			return strings.ToLower(docs[i].PatientName) < strings.ToLower(docs[j].PatientName)
		})
	case "nameDesc":
		sort.SliceStable(docs, func(i, j int) bool {
			return strings.ToLower(docs[i].PatientName) > strings.ToLower(docs[j].PatientName)
		})
	default:
		return fmt.Errorf("unknown sort order %q", sortBy)
	}
	return nil
}

func (s *DefaultDocumentService) ForPatient(ctx context.Context, clinicID, patientID string) ([]models.Document, error) {
	return s.Repo.GetByPatient(ctx, clinicID, patientID)
}

func (s *DefaultDocumentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.FileID != "" {
		if err := s.Storage.DeleteFile(ctx, doc.FileID); err != nil {
			utils.GetLogger().Warn("failed to delete stored file",
				zap.String("fileId", doc.FileID), zap.Error(err))
		}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	if patient, err := s.Patients.GetByID(ctx, doc.PatientID); err == nil && patient.DocumentsCount > 0 {
		if err := s.Patients.UpdateFields(ctx, patient.ID, map[string]interface{}{
			"documentsCount": patient.DocumentsCount - 1,
		}); err != nil {
			utils.GetLogger().Warn("failed to decrement patient document count",
				zap.String("patientId", patient.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultDocumentService) DownloadURL(ctx context.Context, id string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc.FileID == "" {
		return "", fmt.Errorf("document %s has no stored file", id)
	}
	return s.Storage.GetSecureDownloadURL(ctx, "raw", doc.FileID, 15*time.Minute)
}
