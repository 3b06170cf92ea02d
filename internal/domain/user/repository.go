package user

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository handles user and favorites persistence.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error

	AddFavorite(ctx context.Context, f *Favorite) error
	RemoveFavorite(ctx context.Context, userID, itemID string, itemType ItemType) error
	ListFavorites(ctx context.Context, userID string) ([]Favorite, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// AddFavorite inserts the triple if it is not already present; re-adding
// an existing favorite is a no-op.
func (r *repository) AddFavorite(ctx context.Context, f *Favorite) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&Favorite{}).
		Where("user_id = ? AND item_id = ? AND item_type = ?", f.UserID, f.ItemID, f.ItemType).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		// Lost the race against a concurrent identical add; the unique
		// index makes the outcome the same either way.
		if isUniqueViolation(err) {
			return nil
		}
		return err
	}
	return nil
}

// RemoveFavorite deletes the triple; removing an absent favorite is a
// no-op, not an error.
func (r *repository) RemoveFavorite(ctx context.Context, userID, itemID string, itemType ItemType) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ? AND item_type = ?", userID, itemID, itemType).
		Delete(&Favorite{}).Error
}

func (r *repository) ListFavorites(ctx context.Context, userID string) ([]Favorite, error) {
	var favorites []Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&favorites).Error
	return favorites, err
}

// isUniqueViolation detects duplicate-key failures on both backends:
// SQLSTATE 23505 from Postgres, the constraint message from SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
