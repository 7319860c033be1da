package repository

import (
	"context"
	"time"

	"estateportal/internal/domain"

	"gorm.io/gorm"
)

type PropertyFilters struct {
	City     string
	Category string
	MinPrice float64
	MaxPrice float64
	Bedrooms int
	Limit    int
	Offset   int
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) DB() *gorm.DB {
	return r.db
}

type propertyModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	BuilderName string    `gorm:"column:builder_name"`
	Category    string    `gorm:"column:category"`
	City        string    `gorm:"column:city"`
	State       string    `gorm:"column:state"`
	Price       float64   `gorm:"column:price"`
	Bedrooms    int       `gorm:"column:bedrooms"`
	AreaSqft    float64   `gorm:"column:area_sqft"`
	Published   bool      `gorm:"column:published"`
	CreatedBy   int64     `gorm:"column:created_by"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (propertyModel) TableName() string { return "properties" }

func toDomainProperty(m propertyModel) *domain.Property {
	return &domain.Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		BuilderName: m.BuilderName,
		Category:    m.Category,
		City:        m.City,
		State:       m.State,
		Price:       m.Price,
		Bedrooms:    m.Bedrooms,
		AreaSqft:    m.AreaSqft,
		Published:   m.Published,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toPropertyModel(p *domain.Property) propertyModel {
	return propertyModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		BuilderName: p.BuilderName,
		Category:    p.Category,
		City:        p.City,
		State:       p.State,
		Price:       p.Price,
		Bedrooms:    p.Bedrooms,
		AreaSqft:    p.AreaSqft,
		Published:   p.Published,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProperty(m)
	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var m propertyModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainProperty(m), nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	m := toPropertyModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&propertyModel{}, id).Error
}

// GetAll returns published listings with optional filters.
func (r *PropertyRepository) GetAll(ctx context.Context, f PropertyFilters) ([]domain.Property, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&propertyModel{}).
		Where("published = ?", true)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if f.Bedrooms > 0 {
		q = q.Where("bedrooms = ?", f.Bedrooms)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []propertyModel
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	properties := make([]domain.Property, 0, len(models))
	for _, m := range models {
		properties = append(properties, *toDomainProperty(m))
	}
	return properties, total, nil
}
