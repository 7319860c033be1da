package listing

type CreatePropertyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	BuilderName string  `json:"builder_name"`
	Category    string  `json:"category"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Bedrooms    int     `json:"bedrooms"`
	AreaSqft    float64 `json:"area_sqft"`
	Published   bool    `json:"published"`
}

type UpdatePropertyRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	BuilderName *string  `json:"builder_name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	AreaSqft    *float64 `json:"area_sqft,omitempty"`
	Published   *bool    `json:"published,omitempty"`
}
