package services

import (
	"context"

	"pikirBack/internal/models"
	"pikirBack/internal/repositories"
)

type ReviewService struct {
	ReviewsRepo *repositories.ReviewRepository
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]models.Review, error) {
	return s.ReviewsRepo.FetchReviews(ctx)
}
