package book

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles book persistence.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id string) (*Book, error)
	GetByIDs(ctx context.Context, ids []string) ([]Book, error)
	Create(ctx context.Context, b *Book) error
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]Book, error) {
	var books []Book
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Book, error) {
	var b Book
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Book, error) {
	if len(ids) == 0 {
		return []Book{}, nil
	}
	var books []Book
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&books).Error
	return books, err
}

func (r *repository) Create(ctx context.Context, b *Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Book{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
