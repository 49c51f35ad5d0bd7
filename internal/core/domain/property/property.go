package property

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a rental property listing.
type Property struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Price         string     `json:"price" db:"price"` // display string, e.g. "₹15,000/month"
	Location      string     `json:"location" db:"location"`
	Area          *string    `json:"area,omitempty" db:"area"`
	City          string     `json:"city" db:"city"`
	PropertyType  Type       `json:"property_type" db:"property_type"`
	Bedrooms      *int       `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms     *int       `json:"bathrooms,omitempty" db:"bathrooms"`
	AreaSqft      *int       `json:"area_sqft,omitempty" db:"area_sqft"`
	Furnishing    Furnishing `json:"furnishing" db:"furnishing"`
	ImageURL      *string    `json:"image_url,omitempty" db:"image_url"`
	Images        *string    `json:"images,omitempty" db:"images"` // JSON array of additional image URLs
	Amenities     string     `json:"amenities" db:"amenities"`
	Highlights    *string    `json:"highlights,omitempty" db:"highlights"`
	Description   *string    `json:"description,omitempty" db:"description"`
	IsAvailable   bool       `json:"is_available" db:"is_available"`
	AvailableFrom *time.Time `json:"available_from,omitempty" db:"available_from"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

type Type string

const (
	TypeApartment        Type = "apartment"
	TypeVilla            Type = "villa"
	TypeStudio           Type = "studio"
	TypePenthouse        Type = "penthouse"
	TypePG               Type = "pg"
	TypeIndependentHouse Type = "independent_house"
	TypeFarmhouse        Type = "farmhouse"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeVilla, TypeStudio, TypePenthouse, TypePG, TypeIndependentHouse, TypeFarmhouse:
		return true
	default:
		return false
	}
}

type Furnishing string

const (
	Furnished     Furnishing = "furnished"
	SemiFurnished Furnishing = "semi-furnished"
	Unfurnished   Furnishing = "unfurnished"
)

// CreatePropertyRequest represents the request to create a new listing
type CreatePropertyRequest struct {
	Title         string     `json:"title"`
	Price         string     `json:"price"`
	Location      string     `json:"location"`
	Area          *string    `json:"area,omitempty"`
	City          string     `json:"city"`
	PropertyType  Type       `json:"property_type"`
	Bedrooms      *int       `json:"bedrooms,omitempty"`
	Bathrooms     *int       `json:"bathrooms,omitempty"`
	AreaSqft      *int       `json:"area_sqft,omitempty"`
	Furnishing    Furnishing `json:"furnishing"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Images        *string    `json:"images,omitempty"`
	Amenities     string     `json:"amenities"`
	Highlights    *string    `json:"highlights,omitempty"`
	Description   *string    `json:"description,omitempty"`
	IsAvailable   *bool      `json:"is_available,omitempty"`
	AvailableFrom *time.Time `json:"available_from,omitempty"`
}

// UpdatePropertyRequest represents a partial update; nil fields are untouched
type UpdatePropertyRequest struct {
	Title         *string     `json:"title,omitempty"`
	Price         *string     `json:"price,omitempty"`
	Location      *string     `json:"location,omitempty"`
	Area          *string     `json:"area,omitempty"`
	City          *string     `json:"city,omitempty"`
	PropertyType  *Type       `json:"property_type,omitempty"`
	Bedrooms      *int        `json:"bedrooms,omitempty"`
	Bathrooms     *int        `json:"bathrooms,omitempty"`
	AreaSqft      *int        `json:"area_sqft,omitempty"`
	Furnishing    *Furnishing `json:"furnishing,omitempty"`
	ImageURL      *string     `json:"image_url,omitempty"`
	Images        *string     `json:"images,omitempty"`
	Amenities     *string     `json:"amenities,omitempty"`
	Highlights    *string     `json:"highlights,omitempty"`
	Description   *string     `json:"description,omitempty"`
	IsAvailable   *bool       `json:"is_available,omitempty"`
	AvailableFrom *time.Time  `json:"available_from,omitempty"`
}

// Filter narrows listing queries; zero values mean "no constraint".
type Filter struct {
	IsAvailable  *bool
	City         string
	Location     string
	PropertyType Type
	MinBedrooms  *int
	Query        string // free-text search across title/location/area/amenities/description
	Limit        int
	Offset       int
}

// TypeCount is one bucket of the property-type distribution.
type TypeCount struct {
	PropertyType string `json:"type" db:"property_type"`
	Count        int    `json:"count" db:"count"`
}

// CityCount is one bucket of the per-city distribution.
type CityCount struct {
	City  string `json:"city" db:"city"`
	Count int    `json:"count" db:"count"`
}

// Stats aggregates listing counts for the dashboard.
type Stats struct {
	TotalProperties     int         `json:"total_properties"`
	AvailableProperties int         `json:"available_properties"`
	RentedProperties    int         `json:"rented_properties"`
	PropertyTypes       []TypeCount `json:"property_types"`
	TopLocations        []CityCount `json:"top_locations"`
}

// PriceBucket is one range of the price distribution.
type PriceBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}
