// File: handlers/document.go
package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"clinicore/models"
	"clinicore/services/document"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler exposes patient record document endpoints.
type DocumentHandler struct {
	Svc document.Service
}

// NewDocumentHandler constructs a new DocumentHandler.
func NewDocumentHandler(svc document.Service) *DocumentHandler {
	return &DocumentHandler{Svc: svc}
}

// UploadHandler accepts a multipart upload with metadata fields and an
// optional "file" part.
func (h *DocumentHandler) UploadHandler(c *gin.Context) {
	req := document.UploadRequest{
		PatientID: c.PostForm("patientId"),
		Title:     c.PostForm("title"),
		Category:  c.PostForm("category"),
	}
	if req.PatientID == "" || req.Title == "" || req.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientId, title and category are required"})
		return
	}
	if d := c.PostForm("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected yyyy-MM-dd"})
			return
		}
		req.Date = parsed
	}

	if file, err := c.FormFile("file"); err == nil {
		// The client controls the multipart filename; keep only its base
		// so it cannot point outside the temp directory.
		tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
			return
		}
		defer os.Remove(tmpPath)
		req.LocalFilePath = tmpPath
	}

	doc, err := h.Svc.Upload(c.Request.Context(), c.GetString("clinicID"), req)
	if err != nil {
		utils.GetLogger().Error("failed to upload document", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) BrowseHandler(c *gin.Context) {
	var q models.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Svc.Browse(c.Request.Context(), c.GetString("clinicID"), q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *DocumentHandler) ForPatientHandler(c *gin.Context) {
	docs, err := h.Svc.ForPatient(c.Request.Context(), c.GetString("clinicID"), c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

func (h *DocumentHandler) DownloadURLHandler(c *gin.Context) {
	url, err := h.Svc.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
