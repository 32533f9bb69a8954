package models

import (
	"log/slog"

	"cloud.google.com/go/civil"
)

// Crop refers to its product, farm and field without owning them. Field
// should be one of Farm.Fields.
// Harvested is expected not to precede Initiated; nothing checks it.
type Crop struct {
	Product     *ProductType   `json:"product,omitempty"`
	Farm        *FarmDetails   `json:"farm,omitempty"`
	Field       *FieldLocation `json:"field,omitempty"`
	Organic     bool           `json:"organic"`
	Initiated   civil.Date     `json:"initiated"`
	Harvested   civil.Date     `json:"harvested"` // ie "killed"
	ChemicalUse Chemicals      `json:"chemical_use"`
}

func (c Crop) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Bool("organic", c.Organic),
		slog.String("initiated", c.Initiated.String()),
		slog.String("harvested", c.Harvested.String()),
		slog.String("chemical_use", c.ChemicalUse.String()),
	}
	if c.Product != nil {
		attrs = append(attrs, slog.String("product", c.Product.Name))
	}
	if c.Farm != nil {
		attrs = append(attrs, slog.String("farm", c.Farm.AddressName))
	}
	return slog.GroupValue(attrs...)
}
