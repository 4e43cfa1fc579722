package filestore_test

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/DevHanzala/TMS-PORTAL/internal/filestore"
	filestoreerrors "github.com/DevHanzala/TMS-PORTAL/internal/filestore/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn   func(tx *sql.Tx) filestore.Repository
	createFn   func(ctx context.Context, file *filestore.StoredFile) error
	findAllFn  func(ctx context.Context) ([]filestore.StoredFile, error)
	findByIDFn func(ctx context.Context, id string) (*filestore.StoredFile, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) filestore.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, file *filestore.StoredFile) error {
	return f.createFn(ctx, file)
}

func (f *fakeRepo) FindAll(ctx context.Context) ([]filestore.StoredFile, error) {
	return f.findAllFn(ctx)
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*filestore.StoredFile, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeOutbox struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutbox) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutbox) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestFileServiceUpload_CSV(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	var stored *filestore.StoredFile
	repo := &fakeRepo{
		createFn: func(ctx context.Context, file *filestore.StoredFile) error {
			stored = file
			return nil
		},
	}
	outbox := &fakeOutbox{}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	svc := filestore.NewService(db, repo, outbox)

	raw := "header\nUser ID,1001"
	resp, err := svc.Upload(context.Background(), "hr-1", "feb.csv", []byte(raw))

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, raw, stored.FileData)
	assert.Equal(t, "feb.csv", resp.FileName)
	assert.Equal(t, "hr-1", resp.UploadedBy)
	assert.Empty(t, resp.FileData)

	assert.Len(t, outbox.created, 1)
	assert.Equal(t, "attendance.file.uploaded", outbox.created[0].EventType)
	assert.Equal(t, stored.ID.String(), outbox.created[0].AggregateID)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestFileServiceUpload_XLSXIsConverted(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	row := []interface{}{"User ID", "1001", "Name", "Some Employee"}
	assert.NoError(t, f.SetSheetRow(sheet, "A1", &row))
	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	assert.NoError(t, err)

	var stored *filestore.StoredFile
	repo := &fakeRepo{
		createFn: func(ctx context.Context, file *filestore.StoredFile) error {
			stored = file
			return nil
		},
	}

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	svc := filestore.NewService(db, repo, &fakeOutbox{})

	_, err = svc.Upload(context.Background(), "hr-1", "feb.xlsx", buf.Bytes())

	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Contains(t, stored.FileData, "User ID,1001")
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestFileServiceUpload_Rejections(t *testing.T) {
	svc := filestore.NewService(nil, &fakeRepo{}, &fakeOutbox{})

	_, err := svc.Upload(context.Background(), "hr-1", "feb.csv", nil)
	assert.ErrorIs(t, err, filestoreerrors.ErrEmptyFile)

	_, err = svc.Upload(context.Background(), "hr-1", "feb.csv", []byte("   \n\t"))
	assert.ErrorIs(t, err, filestoreerrors.ErrEmptyFile)

	_, err = svc.Upload(context.Background(), "hr-1", "feb.pdf", []byte("data"))
	assert.ErrorIs(t, err, filestoreerrors.ErrUnsupportedFormat)

	// A .xlsx that is not a real workbook.
	_, err = svc.Upload(context.Background(), "hr-1", "feb.xlsx", []byte("not a zip"))
	assert.ErrorIs(t, err, filestoreerrors.ErrUnsupportedFormat)
}

func TestFileServiceGetByID(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, got string) (*filestore.StoredFile, error) {
			assert.Equal(t, id.String(), got)
			return &filestore.StoredFile{
				ID:       id,
				FileName: "feb.csv",
				FileData: "header\nUser ID,1001",
			}, nil
		},
	}

	svc := filestore.NewService(nil, repo, &fakeOutbox{})

	resp, err := svc.GetByID(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, "feb.csv", resp.FileName)
	assert.Equal(t, "header\nUser ID,1001", resp.FileData)
}

func TestFileServiceGetByID_Errors(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, id string) (*filestore.StoredFile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := filestore.NewService(nil, repo, &fakeOutbox{})

	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, filestoreerrors.ErrFileNotFound)

	_, err = svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, filestoreerrors.ErrInvalidFileID)
}

func TestFileServiceGetAll_OmitsData(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context) ([]filestore.StoredFile, error) {
			return []filestore.StoredFile{
				{ID: uuid.New(), FileName: "feb.csv", FileData: "should not leak"},
			}, nil
		},
	}

	svc := filestore.NewService(nil, repo, &fakeOutbox{})

	resp, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "feb.csv", resp[0].FileName)
	assert.Empty(t, resp[0].FileData)
}
