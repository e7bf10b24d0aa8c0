package models

import (
	"net/url"
	"strconv"
	"time"
)

type Property struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	Country     string    `json:"country,omitempty"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Area        float64   `json:"area"`
	Amenities   []string  `json:"amenities,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Status      string    `json:"status,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Reviews     int       `json:"reviews,omitempty"`
	IsFeatured  bool      `json:"isFeatured,omitempty"`
	Furnished   bool      `json:"furnished,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PropertyData is the body of POST /properties and PUT /properties/{id}.
type PropertyData struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	Address     string   `json:"address"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images"`
}

// Validate checks a listing before it is created. maxImages <= 0 disables
// the upper bound on images.
func (d PropertyData) Validate(maxImages int) error {
	switch {
	case !Required(d.Title):
		return validationError("title is required")
	case !Required(d.Description):
		return validationError("description is required")
	case d.Price <= 0:
		return validationError("price must be positive")
	case !Required(d.Location):
		return validationError("location is required")
	case !Required(d.Address):
		return validationError("address is required")
	case d.Bedrooms <= 0:
		return validationError("bedrooms is required")
	case d.Bathrooms <= 0:
		return validationError("bathrooms is required")
	case d.Area <= 0:
		return validationError("area must be positive")
	case len(d.Images) == 0:
		return validationError("at least one image is required")
	case maxImages > 0 && len(d.Images) > maxImages:
		return validationError("at most %d images are allowed", maxImages)
	}
	return nil
}

type SortOrder string

const (
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortNewest    SortOrder = "newest"
	SortRating    SortOrder = "rating"
)

func (s SortOrder) Valid() bool {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return true
	}
	return false
}

// PropertyFilter narrows GET /properties. Nil and empty fields are omitted
// from the query string.
type PropertyFilter struct {
	Page           int
	Limit          int
	City           string
	State          string
	Country        string
	MinPrice       *float64
	MaxPrice       *float64
	Bedrooms       *int
	Bathrooms      *int
	PropertyTypeID string
	Furnished      *bool
	Search         string
	SortBy         SortOrder
	Latitude       *float64
	Longitude      *float64
	Radius         *float64
}

func (f PropertyFilter) Validate() error {
	if f.Page < 0 || f.Limit < 0 {
		return validationError("page and limit must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return validationError("minPrice is greater than maxPrice")
	}
	if f.SortBy != "" && !f.SortBy.Valid() {
		return validationError("unknown sort order %q", f.SortBy)
	}
	if (f.Latitude == nil) != (f.Longitude == nil) {
		return validationError("latitude and longitude must be given together")
	}
	if f.Radius != nil && f.Latitude == nil {
		return validationError("radius requires latitude and longitude")
	}
	return nil
}

// Query encodes f; a zero Limit is replaced with defaultLimit.
func (f PropertyFilter) Query(defaultLimit int) url.Values {
	q := url.Values{}

	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	limit := f.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	setString(q, "city", f.City)
	setString(q, "state", f.State)
	setString(q, "country", f.Country)
	setFloat(q, "minPrice", f.MinPrice)
	setFloat(q, "maxPrice", f.MaxPrice)
	setInt(q, "bedrooms", f.Bedrooms)
	setInt(q, "bathrooms", f.Bathrooms)
	setString(q, "propertyTypeId", f.PropertyTypeID)
	if f.Furnished != nil {
		q.Set("furnished", strconv.FormatBool(*f.Furnished))
	}
	setString(q, "search", f.Search)
	setString(q, "sortBy", string(f.SortBy))
	setFloat(q, "latitude", f.Latitude)
	setFloat(q, "longitude", f.Longitude)
	setFloat(q, "radius", f.Radius)

	return q
}

func setString(q url.Values, k, v string) {
	if v != "" {
		q.Set(k, v)
	}
}

func setFloat(q url.Values, k string, v *float64) {
	if v != nil {
		q.Set(k, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}

func setInt(q url.Values, k string, v *int) {
	if v != nil {
		q.Set(k, strconv.Itoa(*v))
	}
}
