package application

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/crypticbroker/platform-api/internal/config"
	"github.com/crypticbroker/platform-api/internal/domain/user"
	"github.com/crypticbroker/platform-api/internal/storage"
	"github.com/crypticbroker/platform-api/pkg/apperrors"
)

// UploadedFile is what the API returns for each stored file.
type UploadedFile struct {
	ObjectName   string `json:"object_name"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

type UploadService struct {
	Store *storage.Store
	Audit Auditor
}

func NewUploadService(store *storage.Store, audit Auditor) *UploadService {
	return &UploadService{Store: store, Audit: audit}
}

// UploadFiles stores each file and returns presigned links. Files already
// stored are kept if a later file in the batch fails.
func (s *UploadService) UploadFiles(ctx context.Context, actor *user.Actor, files []*multipart.FileHeader) ([]UploadedFile, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("")
	}
	if len(files) == 0 {
		return nil, apperrors.BadRequest("no files provided")
	}
	if len(files) > config.MaxUploadFiles {
		return nil, apperrors.BadRequest("too many files")
	}

	out := make([]UploadedFile, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, apperrors.BadRequest("could not read uploaded file")
		}
		objectName, err := s.Store.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), src, fh.Size)
		src.Close()
		if err != nil {
			return nil, err
		}

		link, err := s.Store.URL(ctx, objectName, 24*time.Hour)
		if err != nil {
			return nil, err
		}
		out = append(out, UploadedFile{
			ObjectName:   objectName,
			OriginalName: fh.Filename,
			Size:         fh.Size,
			URL:          link,
		})
		s.Audit.Record(actor, "create", "upload", objectName, nil, nil, fh.Filename)
	}
	return out, nil
}

// DeleteFile removes a stored object.
func (s *UploadService) DeleteFile(ctx context.Context, actor *user.Actor, objectName string) error {
	if actor == nil {
		return apperrors.Unauthenticated("")
	}
	if objectName == "" {
		return apperrors.BadRequest("object name is required")
	}
	if err := s.Store.Remove(ctx, objectName); err != nil {
		return err
	}
	s.Audit.Record(actor, "delete", "upload", objectName, nil, nil, "")
	return nil
}
