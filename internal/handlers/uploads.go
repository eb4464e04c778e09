package handlers

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"playtube/internal/blobstore"
	"playtube/pkg/apperror"
)

// uploadFormFile сохраняет multipart-файл во временный файл, отдаёт его
// в blob store и удаляет временный файл независимо от исхода загрузки.
func uploadFormFile(c *gin.Context, store blobstore.Store, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", apperror.Validation(field + " is required")
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(header.Filename))
	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		return "", apperror.Upstream("failed to save uploaded file", err)
	}

	url, uploadErr := store.Upload(c.Request.Context(), tmpPath)
	if err := os.Remove(tmpPath); err != nil {
		// Удаление temp-файла best-effort.
		logrus.WithError(err).WithField("path", tmpPath).Warn("failed to remove temp file")
	}
	if uploadErr != nil {
		return "", apperror.Upstream("failed to upload "+field, uploadErr)
	}
	return url, nil
}
