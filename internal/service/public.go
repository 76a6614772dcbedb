package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RS-Priyanshu/RSIH/internal/cache"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"
	"github.com/RS-Priyanshu/RSIH/internal/logger"
	"github.com/RS-Priyanshu/RSIH/internal/repository"

	"gorm.io/gorm"
)

// publicListingKey is the cache key for the public problem-statement listing
const publicListingKey = "ps:list"

// PublicService serves the unauthenticated problem-statement surface. The
// same listing backs the authenticated team-leader variant.
type PublicService struct {
	psRepo       repository.ProblemStatementRepositoryInterface
	listingCache *cache.Cache
}

// NewPublicService creates a new public service
func NewPublicService(psRepo repository.ProblemStatementRepositoryInterface, listingCache *cache.Cache) *PublicService {
	return &PublicService{
		psRepo:       psRepo,
		listingCache: listingCache,
	}
}

// ListProblemStatements returns all problem statements, newest first, served
// from cache when possible. Cache failures fall back to the database.
func (s *PublicService) ListProblemStatements(ctx context.Context) ([]ProblemStatementResponse, error) {
	if s.listingCache != nil {
		var cached []ProblemStatementResponse
		err := s.listingCache.Get(ctx, publicListingKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) && !errors.Is(err, cache.ErrCacheUnavailable) {
			logger.WithContext(ctx).Warnf("listing cache read failed: %v", err)
		}
	}

	statements, err := s.psRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list problem statements: %w", err)
	}

	responses := make([]ProblemStatementResponse, 0, len(statements))
	for i := range statements {
		responses = append(responses, *toProblemStatementResponse(&statements[i]))
	}

	if s.listingCache != nil {
		if err := s.listingCache.Set(ctx, publicListingKey, responses, cache.ListingTTL); err != nil {
			logger.WithContext(ctx).Warnf("listing cache write failed: %v", err)
		}
	}

	return responses, nil
}

// GetProblemStatementBySlug returns a single problem statement by its public slug
func (s *PublicService) GetProblemStatementBySlug(ctx context.Context, slug string) (*ProblemStatementResponse, error) {
	ps, err := s.psRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemStatementNotFound
		}
		return nil, fmt.Errorf("failed to get problem statement: %w", err)
	}

	return toProblemStatementResponse(ps), nil
}
