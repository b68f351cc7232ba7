package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/skillcredit/backend/internal/pkg/logger"
)

// LocalStorage handles saving uploaded images to the local filesystem.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory on the server; baseURL is prepended to returned paths so callers
// get a public URL.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveUserFile stores an uploaded file under the owning user's directory.
// Files are keyed {userID}/{timestamp}-{filename} so repeated uploads of the
// same filename never collide.
func (ls *LocalStorage) SaveUserFile(fileHeader *multipart.FileHeader, userID string) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	userDir := filepath.Join(ls.basePath, userID)
	if err := os.MkdirAll(userDir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", userDir).Msg("Failed to create user storage directory")
		return "", fmt.Errorf("failed to create user storage directory: %w", err)
	}

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fileHeader.Filename))
	dstPath := filepath.Join(userDir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	relativePath := userID + "/" + storedName
	if ls.baseURL != "" {
		return strings.TrimSuffix(ls.baseURL, "/") + "/" + relativePath, nil
	}
	return relativePath, nil
}

// DeleteFile removes a stored file given the URL or relative path returned
// by SaveUserFile. A file that is already gone is not an error.
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	relativePath := fileURL
	if ls.baseURL != "" {
		relativePath = strings.TrimPrefix(relativePath, strings.TrimSuffix(ls.baseURL, "/")+"/")
	}

	fullPath := filepath.Join(ls.basePath, filepath.Clean(relativePath))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// sanitizeFilename keeps stored names path-safe.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
