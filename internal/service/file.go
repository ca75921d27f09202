package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// UploadInput describes one uploaded part of a multipart request
type UploadInput struct {
	TenantID    string
	UploaderID  string
	BookingID   string
	FileName    string
	ContentType string
	Category    string
	Size        int64
	Body        io.Reader
}

type FileService struct {
	repo       repository.Repository
	storage    ObjectStorage
	presignTTL time.Duration
	logger     *logger.Logger
}

func NewFileService(repo repository.Repository, storage ObjectStorage, presignTTL time.Duration, logger *logger.Logger) *FileService {
	return &FileService{
		repo:       repo,
		storage:    storage,
		presignTTL: presignTTL,
		logger:     logger,
	}
}

// StorageKey is the object key for a stored file
func StorageKey(tenantID, fileID, fileName string) string {
	return fmt.Sprintf("tenants/%s/files/%s/%s", tenantID, fileID, path.Base(fileName))
}

func (s *FileService) Upload(ctx context.Context, in UploadInput) (*domain.File, error) {
	fileID := uuid.NewString()
	key := StorageKey(in.TenantID, fileID, in.FileName)

	if err := s.storage.Put(ctx, key, in.ContentType, in.Body, in.Size); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = string(domain.FileCategoryOther)
	}

	file := &domain.File{
		ID:          fileID,
		TenantID:    in.TenantID,
		UploaderID:  in.UploaderID,
		StorageKey:  key,
		FileName:    path.Base(in.FileName),
		ContentType: in.ContentType,
		Size:        in.Size,
		Category:    category,
	}
	if in.BookingID != "" {
		bookingID := in.BookingID
		file.BookingID = &bookingID
	}

	if err := s.repo.File().Create(ctx, file); err != nil {
		// the object is orphaned without its record
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Failed to remove orphaned object", delErr, zap.String("key", key))
		}
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return file, nil
}

// Get returns the file when it belongs to tenantID
func (s *FileService) Get(ctx context.Context, tenantID, fileID string) (*domain.File, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		return nil, ErrFileNotFound
	}

	file, err := s.repo.File().GetByID(ctx, fileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	if file.TenantID != tenantID {
		return nil, ErrCrossTenantAccess
	}
	return file, nil
}

// GetURL presigns a download URL. An id that is not a UUID is logged and
// yields a nil URL without an error.
func (s *FileService) GetURL(ctx context.Context, tenantID, fileID string) (*string, error) {
	if _, err := uuid.Parse(fileID); err != nil {
		s.logger.Warn("Unparsable storage id", zap.String("file_id", fileID))
		return nil, nil
	}

	file, err := s.Get(ctx, tenantID, fileID)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.PresignGet(ctx, file.StorageKey, s.presignTTL)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

func (s *FileService) List(ctx context.Context, filter domain.FileFilter) ([]domain.File, error) {
	return s.repo.File().List(ctx, filter)
}

func (s *FileService) Delete(ctx context.Context, tenantID, fileID string) error {
	file, err := s.Get(ctx, tenantID, fileID)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
		return err
	}
	return s.repo.File().Delete(ctx, file.ID)
}

// PresignURLs returns download URLs for the tenant's files, skipping ids
// that cannot be resolved.
func (s *FileService) PresignURLs(ctx context.Context, tenantID string, fileIDs []string) []string {
	urls := make([]string, 0, len(fileIDs))
	for _, id := range fileIDs {
		url, err := s.GetURL(ctx, tenantID, id)
		if err != nil {
			s.logger.Warn("Skipping file", zap.String("file_id", id), zap.Error(err))
			continue
		}
		if url != nil {
			urls = append(urls, *url)
		}
	}
	return urls
}
