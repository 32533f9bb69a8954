package models

import (
	"log/slog"

	"cloud.google.com/go/civil"
)

// ============================================================================
// FARM MANAGEMENT
// ============================================================================

// FarmOwner has no ID; two owners are the same owner only if they are the
// same pointer.
type FarmOwner struct {
	Surname   string `json:"surname"`
	Firstname string `json:"firstname"`
	Title     string `json:"title"`
}

// FarmDetails holds its fields by pointer so a Crop's Field reference stays
// attached to the farm when Fields grows.
type FarmDetails struct {
	AddressName       string           `json:"address_name"`
	AddressStreet     string           `json:"address_street"`
	AddressTown       string           `json:"address_town"`
	AddressCountry    string           `json:"address_country"`
	AddressPostalCode string           `json:"address_postal_code"`
	PhoneNumber       string           `json:"phone_number"`
	Owner             *FarmOwner       `json:"owner,omitempty"`
	Fields            []*FieldLocation `json:"fields"`
	LastInspected     civil.Date       `json:"last_inspected"`
}

// NumFields is the number of fields on the farm.
func (f FarmDetails) NumFields() int {
	return len(f.Fields)
}

func (f FarmDetails) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("name", f.AddressName),
		slog.String("town", f.AddressTown),
		slog.String("country", f.AddressCountry),
		slog.Int("num_fields", f.NumFields()),
		slog.String("last_inspected", f.LastInspected.String()),
	}
	if f.Owner != nil {
		attrs = append(attrs, slog.String("owner", f.Owner.Surname))
	}
	return slog.GroupValue(attrs...)
}
