package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sexo valores admitidos para Vendedor.Sex.
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "O"
)

// Vendedor representa un vendedor (comercial) de la empresa.
// NIF es único en toda la tabla; BirthDate solo conserva la fecha.
type Vendedor struct {
	ID         int64
	Name       string
	NIF        string
	BirthDate  time.Time
	Sex        string
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
