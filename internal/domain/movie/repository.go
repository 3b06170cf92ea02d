package movie

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles movie persistence.
type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id string) (*Movie, error)
	GetByIDs(ctx context.Context, ids []string) ([]Movie, error)
	Create(ctx context.Context, m *Movie) error
	Update(ctx context.Context, m *Movie) error
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

func (r *repository) List(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&movies).Error
	return movies, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Movie, error) {
	var m Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Movie, error) {
	if len(ids) == 0 {
		return []Movie{}, nil
	}
	var movies []Movie
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

func (r *repository) Create(ctx context.Context, m *Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) Update(ctx context.Context, m *Movie) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Movie{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
