package models

import (
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type ProductType struct {
	Name      string       `json:"name"`
	GeneticID string       `json:"genetic_id"`
	Type      CropType     `json:"type"`
	Category  CropCategory `json:"category"`
}

// MarketPrice is one dated price point for a product.
type MarketPrice struct {
	Product   ProductType     `json:"product"`
	PriceDate civil.Date      `json:"price_date"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (p MarketPrice) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("product", p.Product.Name),
		slog.String("price_date", p.PriceDate.String()),
		slog.String("unit_price", p.UnitPrice.String()),
	)
}

// AverageLabourCost has the same shape as MarketPrice but is recorded on
// its own cadence.
type AverageLabourCost struct {
	Product  ProductType     `json:"product"`
	CostDate civil.Date      `json:"cost_date"`
	Cost     decimal.Decimal `json:"cost"`
}

func (c AverageLabourCost) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("product", c.Product.Name),
		slog.String("cost_date", c.CostDate.String()),
		slog.String("cost", c.Cost.String()),
	)
}
