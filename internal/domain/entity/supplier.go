package entity

import "time"

// Supplier representa un laboratorio o distribuidor proveedor. Name es único.
type Supplier struct {
	ID              string
	Name            string
	Contact         string
	Phone           string
	Address         string
	QualificationNo string // número de habilitación sanitaria
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
