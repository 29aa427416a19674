package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Chispasgg/sakila-api/internal/models"
)

type FeedbackService struct {
	feedback  FeedbackStore
	customers CustomerStore
}

func NewFeedbackService(fb FeedbackStore, c CustomerStore) *FeedbackService {
	return &FeedbackService{feedback: fb, customers: c}
}

type FeedbackInput struct {
	CustomerID int    `json:"customer_id"`
	Strategy   string `json:"strategy"`
	Comment    string `json:"comment"`
	Liked      bool   `json:"liked"`
}

// Create registra el feedback de un cliente sobre una estrategia. Inmutable
// una vez insertado.
func (s *FeedbackService) Create(ctx context.Context, in FeedbackInput) (*models.FeedbackDoc, error) {
	if in.Strategy == "" {
		return nil, fmt.Errorf("strategy is required")
	}
	if err := checkCustomer(ctx, s.customers, in.CustomerID); err != nil {
		return nil, err
	}

	nextID, err := s.feedback.NextFeedbackID(ctx)
	if err != nil {
		return nil, err
	}

	fb := &models.FeedbackDoc{
		FeedbackID: nextID,
		CustomerID: in.CustomerID,
		Strategy:   in.Strategy,
		Comment:    in.Comment,
		Liked:      in.Liked,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.feedback.Insert(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *FeedbackService) ListByCustomer(ctx context.Context, customerID int) ([]models.FeedbackDoc, error) {
	if err := checkCustomer(ctx, s.customers, customerID); err != nil {
		return nil, err
	}
	return s.feedback.FindByCustomer(ctx, customerID)
}
