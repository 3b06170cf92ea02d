package user

import "time"

// DefaultAvatar is the placeholder served for users without an upload.
const DefaultAvatar = "/images/avatars/default-avatar.jpg"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Username  string    `json:"username" gorm:"not null;uniqueIndex" validate:"required"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex" validate:"required,email"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// ItemType selects which favorites list an item belongs to. It is a
// closed set; anything else is rejected as a validation error.
type ItemType string

const (
	ItemTypeBook       ItemType = "book"
	ItemTypeMovie      ItemType = "movie"
	ItemTypeConnection ItemType = "connection"
)

func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case ItemTypeBook, ItemTypeMovie, ItemTypeConnection:
		return ItemType(s), nil
	}
	return "", ErrInvalidItemType
}

// Favorite is one entry in a user's favorites. The unique triple makes
// adds naturally idempotent: each id appears at most once per list.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index;size:36;uniqueIndex:idx_user_item"`
	ItemID    string    `json:"item_id" gorm:"not null;size:36;uniqueIndex:idx_user_item"`
	ItemType  ItemType  `json:"item_type" gorm:"not null;size:16;uniqueIndex:idx_user_item"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string { return "favorites" }
