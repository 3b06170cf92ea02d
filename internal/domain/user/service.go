package user

import (
	"context"

	"github.com/google/uuid"

	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/connection"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/pkg/validator"
)

// Sources resolve favorite ids into full records for the populated
// favorites response. Implemented by the entity repositories.
type BookSource interface {
	GetByIDs(ctx context.Context, ids []string) ([]book.Book, error)
}

type MovieSource interface {
	GetByIDs(ctx context.Context, ids []string) ([]movie.Movie, error)
}

type ConnectionSource interface {
	GetByIDs(ctx context.Context, ids []string) ([]connection.Connection, error)
}

type Service struct {
	repo   Repository
	books  BookSource
	movies MovieSource
	conns  ConnectionSource
}

func NewService(repo Repository, books BookSource, movies MovieSource, conns ConnectionSource) *Service {
	return &Service{repo: repo, books: books, movies: movies, conns: conns}
}

// Create registers a new user. Duplicate username or email fails with
// ErrAlreadyExists. avatarPath is empty unless a file was uploaded.
func (s *Service) Create(ctx context.Context, req *CreateRequest, avatarPath string) (*User, error) {
	if avatarPath == "" {
		avatarPath = DefaultAvatar
	}

	u := &User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Bio:      req.Bio,
		Avatar:   avatarPath,
	}

	if fields := validator.Validate(u); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update patches the profile. The avatar is replaced only when a new
// file was uploaded (avatarPath != "").
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest, avatarPath string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if avatarPath != "" {
		u.Avatar = avatarPath
	}

	if fields := validator.Validate(u); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// AddFavorite is idempotent: adding the same (itemId, itemType) twice
// leaves the id in the list exactly once.
func (s *Service) AddFavorite(ctx context.Context, userID, itemID, itemType string) error {
	t, err := ParseItemType(itemType)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.AddFavorite(ctx, &Favorite{UserID: userID, ItemID: itemID, ItemType: t})
}

// RemoveFavorite is idempotent: removing an absent id succeeds.
func (s *Service) RemoveFavorite(ctx context.Context, userID, itemID, itemType string) error {
	t, err := ParseItemType(itemType)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.repo.RemoveFavorite(ctx, userID, itemID, t)
}

// GetFavorites returns the user's three lists with every id resolved to
// its full record. Ids whose records were deleted since are dropped.
func (s *Service) GetFavorites(ctx context.Context, userID string) (*FavoritesResponse, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	favorites, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	var bookIDs, movieIDs, connIDs []string
	for _, f := range favorites {
		switch f.ItemType {
		case ItemTypeBook:
			bookIDs = append(bookIDs, f.ItemID)
		case ItemTypeMovie:
			movieIDs = append(movieIDs, f.ItemID)
		case ItemTypeConnection:
			connIDs = append(connIDs, f.ItemID)
		}
	}

	books, err := s.books.GetByIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}
	movies, err := s.movies.GetByIDs(ctx, movieIDs)
	if err != nil {
		return nil, err
	}
	conns, err := s.conns.GetByIDs(ctx, connIDs)
	if err != nil {
		return nil, err
	}

	return &FavoritesResponse{
		Books:       books,
		Movies:      movies,
		Connections: connection.ToResponses(conns),
	}, nil
}
