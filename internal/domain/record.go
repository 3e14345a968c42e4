package domain

import "fmt"

const (
	// InternalIDKey is the key stores use for the record identifier.
	InternalIDKey = "_id"
	// PublicIDKey is the key clients see the identifier under.
	PublicIDKey = "id"
)

// Record is a stored document as returned by a DocumentStore.
type Record map[string]any

// WithPublicID moves the store identifier from InternalIDKey to PublicIDKey
// as a string. The record is modified in place and returned.
func (r Record) WithPublicID() Record {
	raw, ok := r[InternalIDKey]
	if !ok {
		return r
	}
	delete(r, InternalIDKey)
	r[PublicIDKey] = FormatID(raw)
	return r
}

// FormatID renders a store identifier as a string. Hex-capable ids such as
// Mongo ObjectIDs are rendered as their hex form.
func FormatID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
