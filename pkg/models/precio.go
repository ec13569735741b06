package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrecioNombreMaxLen is the column limit for the price tier name (VARCHAR(250)).
const PrecioNombreMaxLen = 250

// Precio is a price tier that courses can be sold under.
// Prices are stored as NUMERIC(10,2); values always carry exactly two
// fractional digits.
type Precio struct {
	ID              uuid.UUID       `json:"id"`
	Nombre          string          `json:"nombre"`
	PrecioActual    decimal.Decimal `json:"precio_actual"`
	PrecioPromocion decimal.Decimal `json:"precio_promocion"`
}
