// File: models/document.go
package models

import "time"

// Document categories.
const (
	CategoryReports = "reports"
	CategoryImaging = "imaging"
	CategoryResults = "results"
)

// Document is the stored metadata for one patient record file. The file
// body itself lives in external storage under FileID.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	ClinicID    string    `bson:"clinicId" json:"clinicId"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	PatientName string    `bson:"patientName" json:"patientName"`
	Title       string    `bson:"title" json:"title"`
	Category    string    `bson:"category" json:"category"`
	Date        time.Time `bson:"date" json:"date"`
	FileID      string    `bson:"fileId,omitempty" json:"fileId,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BrowseQuery shapes a document listing: search scoped by field, a
// category tab, a sort order, and a 1-based page number.
type BrowseQuery struct {
	Search   string `form:"search"`
	SearchBy string `form:"searchBy"` // all | patient | title | date
	Category string `form:"category"` // all | reports | imaging | results
	SortBy   string `form:"sortBy"`   // nameAsc | nameDesc | dateAsc | dateDesc
	Page     int    `form:"page"`
}

// BrowsePage is one page of a document listing.
type BrowsePage struct {
	Documents  []Document `json:"documents"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	Total      int        `json:"total"`
}
