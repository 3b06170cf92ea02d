package connection

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles connection persistence. Every read preloads the
// referenced movie and book for response projection.
type Repository interface {
	List(ctx context.Context) ([]Connection, error)
	GetByID(ctx context.Context, id string) (*Connection, error)
	GetByIDs(ctx context.Context, ids []string) ([]Connection, error)
	ListByMovieID(ctx context.Context, movieID string) ([]Connection, error)
	ListByBookID(ctx context.Context, bookID string) ([]Connection, error)
	Create(ctx context.Context, conn *Connection) error
	Update(ctx context.Context, conn *Connection) error
	Delete(ctx context.Context, id string) error
	DeleteByMovieID(ctx context.Context, movieID string) error
	DeleteByBookID(ctx context.Context, bookID string) error
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

func (r *repository) populated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Movie").Preload("Book")
}

func (r *repository) List(ctx context.Context) ([]Connection, error) {
	var conns []Connection
	err := r.populated(ctx).Order("created_at DESC").Find(&conns).Error
	return conns, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Connection, error) {
	var conn Connection
	err := r.populated(ctx).Where("id = ?", id).First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Connection, error) {
	if len(ids) == 0 {
		return []Connection{}, nil
	}
	var conns []Connection
	err := r.populated(ctx).Where("id IN ?", ids).Find(&conns).Error
	return conns, err
}

func (r *repository) ListByMovieID(ctx context.Context, movieID string) ([]Connection, error) {
	var conns []Connection
	err := r.populated(ctx).Where("movie_id = ?", movieID).Order("created_at DESC").Find(&conns).Error
	return conns, err
}

func (r *repository) ListByBookID(ctx context.Context, bookID string) ([]Connection, error) {
	var conns []Connection
	err := r.populated(ctx).Where("book_id = ?", bookID).Order("created_at DESC").Find(&conns).Error
	return conns, err
}

func (r *repository) Create(ctx context.Context, conn *Connection) error {
	return r.db.WithContext(ctx).Create(conn).Error
}

func (r *repository) Update(ctx context.Context, conn *Connection) error {
	// Omit associations so a stale preload never writes back
	return r.db.WithContext(ctx).Omit("Movie", "Book").Save(conn).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Connection{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DeleteByMovieID(ctx context.Context, movieID string) error {
	return r.db.WithContext(ctx).Where("movie_id = ?", movieID).Delete(&Connection{}).Error
}

func (r *repository) DeleteByBookID(ctx context.Context, bookID string) error {
	return r.db.WithContext(ctx).Where("book_id = ?", bookID).Delete(&Connection{}).Error
}
