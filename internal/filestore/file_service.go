package filestore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/DevHanzala/TMS-PORTAL/internal/events"
	filestoreerrors "github.com/DevHanzala/TMS-PORTAL/internal/filestore/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/messaging/kafka"
	"github.com/DevHanzala/TMS-PORTAL/internal/report"
	"github.com/DevHanzala/TMS-PORTAL/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=file_service.go -destination=mock/file_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, uploadedBy, fileName string, data []byte) (FileResponse, error)
	GetAll(ctx context.Context) ([]FileResponse, error)
	GetByID(ctx context.Context, id string) (FileResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

func (s *service) Upload(ctx context.Context, uploadedBy, fileName string, data []byte) (FileResponse, error) {
	if len(data) == 0 {
		return FileResponse{}, filestoreerrors.ErrEmptyFile
	}

	var text string
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".txt":
		text = string(data)
	case ".xlsx":
		converted, err := report.FromWorkbook(bytes.NewReader(data))
		if err != nil {
			return FileResponse{}, filestoreerrors.ErrUnsupportedFormat
		}
		text = converted
	default:
		return FileResponse{}, filestoreerrors.ErrUnsupportedFormat
	}

	if strings.TrimSpace(text) == "" {
		return FileResponse{}, filestoreerrors.ErrEmptyFile
	}

	file := &StoredFile{
		ID:         uuid.New(),
		FileName:   fileName,
		FileData:   text,
		UploadedBy: uploadedBy,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, file); err != nil {
		return FileResponse{}, err
	}

	payload, err := json.Marshal(events.AttendanceFileUploadedEvent{
		EventType:  "attendance.file.uploaded",
		FileID:     file.ID.String(),
		FileName:   file.FileName,
		UploadedBy: uploadedBy,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return FileResponse{}, err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance_file",
		AggregateID:   file.ID.String(),
		EventType:     "attendance.file.uploaded",
		Topic:         events.AttendanceFileUploadedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return FileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return FileResponse{}, err
	}

	return mapToResponse(*file, false), nil
}

func (s *service) GetAll(ctx context.Context) ([]FileResponse, error) {
	files, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]FileResponse, len(files))
	for i, file := range files {
		resp[i] = mapToResponse(file, false)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (FileResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FileResponse{}, filestoreerrors.ErrInvalidFileID
	}

	file, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FileResponse{}, filestoreerrors.ErrFileNotFound
		}
		return FileResponse{}, err
	}

	return mapToResponse(*file, true), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return filestoreerrors.ErrInvalidFileID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(file StoredFile, includeData bool) FileResponse {
	resp := FileResponse{
		ID:         file.ID.String(),
		FileName:   file.FileName,
		UploadedBy: file.UploadedBy,
		UploadedAt: file.CreatedAt.UTC().Format(time.RFC3339),
	}
	if includeData {
		resp.FileData = file.FileData
	}
	return resp
}
