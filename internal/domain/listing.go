package domain

const DefaultRating = 0.0

type Homestay struct {
	Name          string   `json:"name"            bson:"name"`
	Location      string   `json:"location"        bson:"location"`
	Description   *string  `json:"description"     bson:"description"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	MaxGuests     int      `json:"max_guests"      bson:"max_guests"`
	Amenities     []string `json:"amenities"       bson:"amenities"`
	Images        []string `json:"images"          bson:"images"`
	Rating        float64  `json:"rating"          bson:"rating"`
}

// Package is a tour package offer.
type Package struct {
	Title        string   `json:"title"         bson:"title"`
	Location     string   `json:"location"      bson:"location"`
	Description  *string  `json:"description"   bson:"description"`
	Price        float64  `json:"price"         bson:"price"`
	DurationDays int      `json:"duration_days" bson:"duration_days"`
	Highlights   []string `json:"highlights"    bson:"highlights"`
	Images       []string `json:"images"        bson:"images"`
	Rating       float64  `json:"rating"        bson:"rating"`
}
