package filestore

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=file_repo.go -destination=mock/file_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, file *StoredFile) error
	FindAll(ctx context.Context) ([]StoredFile, error)
	FindByID(ctx context.Context, id string) (*StoredFile, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, file *StoredFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *repository) FindAll(ctx context.Context) ([]StoredFile, error) {
	var files []StoredFile
	// File contents are heavy; listing only needs metadata.
	err := r.db.WithContext(ctx).
		Select("id", "file_name", "uploaded_by", "created_at").
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*StoredFile, error) {
	var file StoredFile
	err := r.db.WithContext(ctx).
		First(&file, "id = ?", id).Error
	return &file, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&StoredFile{}, "id = ?", id).Error
}
