package book

import (
	"context"
	"log"

	"github.com/google/uuid"

	"moviebooks/internal/pkg/utils"
	"moviebooks/internal/pkg/validator"
)

// ConnectionPruner removes connections citing a deleted book, so no
// dangling references survive a delete. Implemented by the connection
// repository.
type ConnectionPruner interface {
	DeleteByBookID(ctx context.Context, bookID string) error
}

type Service struct {
	repo   Repository
	pruner ConnectionPruner
}

func NewService(repo Repository, pruner ConnectionPruner) *Service {
	return &Service{repo: repo, pruner: pruner}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Create persists a new book. coverPath is the stored upload path when a
// file was attached; otherwise the path supplied in the request body.
func (s *Service) Create(ctx context.Context, req *CreateRequest, coverPath string) (*Book, error) {
	b := &Book{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Author:      req.Author,
		Year:        req.Year,
		Genres:      utils.SplitList(req.Genre),
		Cover:       coverPath,
		Description: req.Description,
	}

	// Genre is required; a submission that splits to no tags is invalid.
	if len(b.Genres) == 0 {
		return nil, ErrValidation
	}
	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update applies a patch: nil request fields keep the stored value,
// present fields are applied even when zero-valued. A fresh upload
// (coverPath != "") always replaces the stored cover.
func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest, coverPath string) (*Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Year != nil {
		b.Year = *req.Year
	}
	if req.Genre != nil {
		b.Genres = utils.SplitList(*req.Genre)
	}
	if req.Cover != nil {
		b.Cover = *req.Cover
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if coverPath != "" {
		b.Cover = coverPath
	}

	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete removes the book, then prunes connections that referenced it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.pruner != nil {
		if err := s.pruner.DeleteByBookID(ctx, id); err != nil {
			log.Printf("failed to prune connections for book %s: %v", id, err)
		}
	}
	return nil
}
