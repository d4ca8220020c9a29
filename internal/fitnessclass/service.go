package fitnessclass

import (
	"context"
	"fmt"
	"time"

	"fitbook/internal/metrics"
)

type Service interface {
	Create(ctx context.Context, req CreateClassRequest) (*FitnessClass, error)
	List(ctx context.Context) ([]FitnessClass, error)
}

type service struct {
	repo Repository
	loc  *time.Location
}

// NewService renders and interprets class times in loc.
func NewService(repo Repository, loc *time.Location) Service {
	return &service{
		repo: repo,
		loc:  loc,
	}
}

func (s *service) Create(ctx context.Context, req CreateClassRequest) (*FitnessClass, error) {
	dateTime, err := ParseDateTime(req.DateTime, s.loc)
	if err != nil {
		return nil, err
	}

	class, err := s.repo.Create(ctx, req.Name, dateTime, req.Instructor, *req.AvailableSlots)
	if err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	metrics.RecordClassCreated()
	class.DateTime = class.DateTime.In(s.loc)
	return class, nil
}

func (s *service) List(ctx context.Context) ([]FitnessClass, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	toDisplay(classes, s.loc)
	return classes, nil
}
