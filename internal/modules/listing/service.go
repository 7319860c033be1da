package listing

import (
	"context"

	"estateportal/internal/domain"
	"estateportal/internal/repository"
)

type Service struct {
	propertyRepo *repository.PropertyRepository
}

func NewService(propertyRepo *repository.PropertyRepository) *Service {
	return &Service{propertyRepo: propertyRepo}
}

func (s *Service) CreateProperty(ctx context.Context, userID int64, req CreatePropertyRequest) (*domain.Property, error) {
	property := &domain.Property{
		Title:       req.Title,
		Description: req.Description,
		BuilderName: req.BuilderName,
		Category:    req.Category,
		City:        req.City,
		State:       req.State,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		AreaSqft:    req.AreaSqft,
		Published:   req.Published,
		CreatedBy:   userID,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *Service) UpdateProperty(ctx context.Context, propertyID int64, req UpdatePropertyRequest) (*domain.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.BuilderName != nil {
		property.BuilderName = *req.BuilderName
	}
	if req.Category != nil {
		property.Category = *req.Category
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.Price != nil && *req.Price > 0 {
		property.Price = *req.Price
	}
	if req.Bedrooms != nil && *req.Bedrooms >= 0 {
		property.Bedrooms = *req.Bedrooms
	}
	if req.AreaSqft != nil && *req.AreaSqft > 0 {
		property.AreaSqft = *req.AreaSqft
	}
	if req.Published != nil {
		property.Published = *req.Published
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *Service) DeleteProperty(ctx context.Context, propertyID int64) error {
	return s.propertyRepo.Delete(ctx, propertyID)
}

func (s *Service) GetProperty(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, propertyID)
}

func (s *Service) Browse(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.propertyRepo.GetAll(ctx, f)
}
