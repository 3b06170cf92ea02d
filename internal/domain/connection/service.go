package connection

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moviebooks/internal/domain/book"
	"moviebooks/internal/domain/movie"
	"moviebooks/internal/pkg/utils"
	"moviebooks/internal/pkg/validator"
)

const (
	defaultRating    = 3
	defaultTimestamp = "0:00:00"
	defaultContext   = "No additional context provided"
)

// Service handles connection business logic. It holds the gorm handle so
// the unified workflow can run its three writes in one transaction.
type Service struct {
	db     *gorm.DB
	repo   Repository
	books  book.Repository
	movies movie.Repository
}

func NewService(db *gorm.DB, repo Repository, books book.Repository, movies movie.Repository) *Service {
	return &Service{db: db, repo: repo, books: books, movies: movies}
}

func (s *Service) List(ctx context.Context) ([]Connection, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Connection, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByMovie(ctx context.Context, movieID string) ([]Connection, error) {
	return s.repo.ListByMovieID(ctx, movieID)
}

func (s *Service) ListByBook(ctx context.Context, bookID string) ([]Connection, error) {
	return s.repo.ListByBookID(ctx, bookID)
}

// Create persists a connection between an existing movie and book. Both
// references must resolve; dangling ids are rejected up front.
func (s *Service) Create(ctx context.Context, req *CreateRequest, screenshotPath string) (*Connection, error) {
	if screenshotPath == "" {
		screenshotPath = req.Screenshot
	}

	conn := &Connection{
		ID:          uuid.New().String(),
		MovieID:     req.MovieID,
		BookID:      req.BookID,
		Description: req.Description,
		Timestamp:   req.Timestamp,
		Screenshot:  screenshotPath,
		Context:     req.Context,
	}

	if fields := validator.Validate(conn); fields != nil {
		return nil, ErrValidation
	}
	if err := s.checkReferences(ctx, conn.MovieID, conn.BookID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, conn); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, conn.ID)
}

// Update applies a patch. Changed references are re-checked.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest, screenshotPath string) (*Connection, error) {
	conn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MovieID != nil {
		conn.MovieID = *req.MovieID
	}
	if req.BookID != nil {
		conn.BookID = *req.BookID
	}
	if req.Description != nil {
		conn.Description = *req.Description
	}
	if req.Timestamp != nil {
		conn.Timestamp = *req.Timestamp
	}
	if req.Screenshot != nil {
		conn.Screenshot = *req.Screenshot
	}
	if req.Context != nil {
		conn.Context = *req.Context
	}
	if screenshotPath != "" {
		conn.Screenshot = screenshotPath
	}

	if fields := validator.Validate(conn); fields != nil {
		return nil, ErrValidation
	}
	if req.MovieID != nil || req.BookID != nil {
		if err := s.checkReferences(ctx, conn.MovieID, conn.BookID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, conn); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// CreateUnified materializes a book, a movie, and the connection between
// them from one submission. The three writes run inside a single
// transaction: a failure anywhere rolls everything back, so no orphaned
// sibling records can result.
func (s *Service) CreateUnified(ctx context.Context, req *UnifiedRequest, coverPath, posterPath, screenshotPath string) (*Connection, *book.Book, *movie.Movie, error) {
	currentYear := time.Now().Year()

	bk := &book.Book{
		ID:     uuid.New().String(),
		Title:  req.BookTitle,
		Author: req.BookAuthor,
		Year:   parseIntOr(req.BookYear, currentYear),
		Genres: utils.SplitList(req.BookGenre),
		Cover:  coverPath,
	}

	mv := &movie.Movie{
		ID:       uuid.New().String(),
		Title:    req.MovieTitle,
		Year:     parseIntOr(req.MovieYear, currentYear),
		Director: req.MovieDirector,
		Genres:   utils.SplitList(req.MovieGenre),
		Poster:   posterPath,
		Rating:   parseIntOr(req.MovieRating, defaultRating),
	}

	conn := &Connection{
		ID:          uuid.New().String(),
		MovieID:     mv.ID,
		BookID:      bk.ID,
		Description: req.Description,
		Timestamp:   req.Timestamp,
		Screenshot:  screenshotPath,
		Context:     req.Context,
	}
	if conn.Timestamp == "" {
		conn.Timestamp = defaultTimestamp
	}
	if conn.Context == "" {
		conn.Context = defaultContext
	}

	// Validate everything before any write
	if validator.Validate(bk) != nil || validator.Validate(mv) != nil || validator.Validate(conn) != nil {
		return nil, nil, nil, ErrValidation
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.books.WithTx(tx).Create(ctx, bk); err != nil {
			return err
		}
		if err := s.movies.WithTx(tx).Create(ctx, mv); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Create(ctx, conn)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	populated, err := s.repo.GetByID(ctx, conn.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	return populated, bk, mv, nil
}

func (s *Service) checkReferences(ctx context.Context, movieID, bookID string) error {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, movie.ErrNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

func parseIntOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
