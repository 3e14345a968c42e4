// Package repository holds the pieces shared by the document store backends.
package repository

import (
	"encoding/json"
	"fmt"

	"github.com/django-nerd/ulin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID mints an identifier in the same format Mongo assigns, so records look
// alike whichever backend stored them.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func EncodeBody(record any) ([]byte, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return body, nil
}

// DecodeRecord rebuilds a stored record and puts id under domain.InternalIDKey.
func DecodeRecord(id string, body []byte) (domain.Record, error) {
	rec := domain.Record{}
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", id, err)
	}
	rec[domain.InternalIDKey] = id
	return rec, nil
}

func CheckCollection(c domain.Collection) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCollection, string(c))
	}
	return nil
}
