package domain

// Collection names a group of stored records of one kind.
type Collection string

const (
	CollectionHomestay Collection = "homestay"
	CollectionPackage  Collection = "package"
	CollectionBooking  Collection = "booking"
)

var Collections = []Collection{CollectionHomestay, CollectionPackage, CollectionBooking}

func (c Collection) Valid() bool {
	switch c {
	case CollectionHomestay, CollectionPackage, CollectionBooking:
		return true
	default:
		return false
	}
}

func (c Collection) String() string {
	return string(c)
}
