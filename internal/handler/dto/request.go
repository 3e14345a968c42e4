package dto

import "github.com/django-nerd/ulin/internal/domain"

// Required scalars are pointers so that an explicit zero is told apart from
// an absent field.

type CreateHomestayRequest struct {
	Name          *string  `json:"name"            binding:"required"`
	Location      *string  `json:"location"        binding:"required"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"price_per_night" binding:"required,gte=0"`
	MaxGuests     *int     `json:"max_guests"      binding:"required,gte=1"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Rating        *float64 `json:"rating"          binding:"omitempty,gte=0,lte=5"`
}

func (r CreateHomestayRequest) ToDomain() domain.Homestay {
	return domain.Homestay{
		Name:          deref(r.Name),
		Location:      deref(r.Location),
		Description:   r.Description,
		PricePerNight: deref(r.PricePerNight),
		MaxGuests:     deref(r.MaxGuests),
		Amenities:     orEmpty(r.Amenities),
		Images:        orEmpty(r.Images),
		Rating:        orDefault(r.Rating, domain.DefaultRating),
	}
}

type CreatePackageRequest struct {
	Title        *string  `json:"title"         binding:"required"`
	Location     *string  `json:"location"      binding:"required"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"         binding:"required,gte=0"`
	DurationDays *int     `json:"duration_days" binding:"required,gte=1"`
	Highlights   []string `json:"highlights"`
	Images       []string `json:"images"`
	Rating       *float64 `json:"rating"        binding:"omitempty,gte=0,lte=5"`
}

func (r CreatePackageRequest) ToDomain() domain.Package {
	return domain.Package{
		Title:        deref(r.Title),
		Location:     deref(r.Location),
		Description:  r.Description,
		Price:        deref(r.Price),
		DurationDays: deref(r.DurationDays),
		Highlights:   orEmpty(r.Highlights),
		Images:       orEmpty(r.Images),
		Rating:       orDefault(r.Rating, domain.DefaultRating),
	}
}

type CreateBookingRequest struct {
	Type          *string `json:"type"           binding:"required"`
	ItemID        *string `json:"item_id"        binding:"required"`
	CustomerName  *string `json:"customer_name"  binding:"required"`
	CustomerEmail *string `json:"customer_email" binding:"required"`
	CustomerPhone *string `json:"customer_phone"`
	Guests        *int    `json:"guests"         binding:"omitempty,gte=1"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	TravelDate    *string `json:"travel_date"`
	Note          *string `json:"note"`
}

func (r CreateBookingRequest) ToDomain() domain.Booking {
	return domain.Booking{
		Type:          deref(r.Type),
		ItemID:        deref(r.ItemID),
		CustomerName:  deref(r.CustomerName),
		CustomerEmail: deref(r.CustomerEmail),
		CustomerPhone: r.CustomerPhone,
		Guests:        orDefault(r.Guests, domain.DefaultGuests),
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		TravelDate:    r.TravelDate,
		Note:          r.Note,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
