package domain

type Booking struct {
	Type          string  `json:"type"           bson:"type"`
	ItemID        string  `json:"item_id"        bson:"item_id"`
	CustomerName  string  `json:"customer_name"  bson:"customer_name"`
	CustomerEmail string  `json:"customer_email" bson:"customer_email"`
	CustomerPhone *string `json:"customer_phone" bson:"customer_phone"`
	Guests        int     `json:"guests"         bson:"guests"`
	CheckIn       *string `json:"check_in"       bson:"check_in"`
	CheckOut      *string `json:"check_out"      bson:"check_out"`
	TravelDate    *string `json:"travel_date"    bson:"travel_date"`
	Note          *string `json:"note"           bson:"note"`
}

const DefaultGuests = 1

// Customer returns the contact part of the booking.
func (b Booking) Customer() Customer {
	return Customer{
		Name:  b.CustomerName,
		Email: b.CustomerEmail,
		Phone: b.CustomerPhone,
	}
}
