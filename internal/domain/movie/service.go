package movie

import (
	"context"
	"log"

	"github.com/google/uuid"

	"moviebooks/internal/pkg/utils"
	"moviebooks/internal/pkg/validator"
)

// ConnectionPruner removes connections citing a deleted movie.
// Implemented by the connection repository.
type ConnectionPruner interface {
	DeleteByMovieID(ctx context.Context, movieID string) error
}

type Service struct {
	repo   Repository
	pruner ConnectionPruner
}

func NewService(repo Repository, pruner ConnectionPruner) *Service {
	return &Service{repo: repo, pruner: pruner}
}

func (s *Service) List(ctx context.Context) ([]Movie, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *CreateRequest, posterPath string) (*Movie, error) {
	m := &Movie{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Year:        req.Year,
		Director:    req.Director,
		Genres:      utils.SplitList(req.Genre),
		Poster:      posterPath,
		Rating:      req.Rating,
		Description: req.Description,
	}

	// Genre is required; a submission that splits to no tags is invalid.
	if len(m.Genres) == 0 {
		return nil, ErrValidation
	}
	if fields := validator.Validate(m); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update applies a patch: nil request fields keep the stored value,
// present fields are applied even when zero-valued. A fresh upload
// (posterPath != "") always replaces the stored poster.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest, posterPath string) (*Movie, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Year != nil {
		m.Year = *req.Year
	}
	if req.Director != nil {
		m.Director = *req.Director
	}
	if req.Genre != nil {
		m.Genres = utils.SplitList(*req.Genre)
	}
	if req.Poster != nil {
		m.Poster = *req.Poster
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if posterPath != "" {
		m.Poster = posterPath
	}

	if fields := validator.Validate(m); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes the movie, then prunes connections that referenced it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.pruner != nil {
		if err := s.pruner.DeleteByMovieID(ctx, id); err != nil {
			log.Printf("failed to prune connections for movie %s: %v", id, err)
		}
	}
	return nil
}
