package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

// ItemType tags the add-item command so each warehouse gets its own factory
// instead of a stringly-shaped dynamic record.
type ItemType string

const (
	// ItemTypeRaw creates a raw material.
	ItemTypeRaw ItemType = "raw"
	// ItemTypePackaging creates a packaging material.
	ItemTypePackaging ItemType = "packaging"
	// ItemTypeWrapping creates a wrapping material.
	ItemTypeWrapping ItemType = "wrapping"
	// ItemTypeFinished creates a finished product.
	ItemTypeFinished ItemType = "finished"
)

// NewItemInput carries the common add-item fields. Type decides which factory
// applies and which of the optional fields are read.
type NewItemInput struct {
	Type             ItemType
	SKU              string
	Name             string
	Quantity         int
	ReorderLevel     int
	Supplier         string
	Unit             Unit
	Cost             decimal.Decimal
	PublicPrice      decimal.Decimal
	WholesalePrice   decimal.Decimal
	DistributorPrice decimal.Decimal
	AgentPrice       decimal.Decimal
}

// NewRawMaterial builds a raw material record. Unit defaults to kg.
func NewRawMaterial(in NewItemInput, clock shared.Clock) RawMaterial {
	unit := in.Unit
	if unit != UnitCount {
		unit = UnitKilogram
	}
	return RawMaterial{
		ID:           shared.NewCode("RM"),
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         unit,
		ReorderLevel: in.ReorderLevel,
		Cost:         in.Cost,
		Supplier:     in.Supplier,
		LastUpdated:  clock.Today(),
	}
}

// NewPackagingMaterial builds a packaging record; always counted by piece.
func NewPackagingMaterial(in NewItemInput, clock shared.Clock) PackagingMaterial {
	return PackagingMaterial{
		ID:           shared.NewCode("PM"),
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Cost:         in.Cost,
		Supplier:     in.Supplier,
		LastUpdated:  clock.Today(),
	}
}

// NewWrappingMaterial builds a wrapping record; always counted by piece.
func NewWrappingMaterial(in NewItemInput, clock shared.Clock) WrappingMaterial {
	return WrappingMaterial{
		ID:           shared.NewCode("WM"),
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		Cost:         in.Cost,
		Supplier:     in.Supplier,
		LastUpdated:  clock.Today(),
	}
}

// NewFinishedProduct builds a finished product with its four price tiers and
// an empty bill of materials.
func NewFinishedProduct(in NewItemInput, clock shared.Clock) FinishedProduct {
	return FinishedProduct{
		ID:               shared.NewCode("FP"),
		SKU:              in.SKU,
		Name:             in.Name,
		Quantity:         in.Quantity,
		ReorderLevel:     in.ReorderLevel,
		PublicPrice:      in.PublicPrice,
		WholesalePrice:   in.WholesalePrice,
		DistributorPrice: in.DistributorPrice,
		AgentPrice:       in.AgentPrice,
		LastUpdated:      clock.Today(),
	}
}
