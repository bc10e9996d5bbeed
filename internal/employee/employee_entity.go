package employee

import (
	"github.com/google/uuid"
)

// Employee rows are provisioned by HR out-of-band; this service only reads
// them. Column names follow the existing table, so they are part of the
// wire contract.
type Employee struct {
	ID   uuid.UUID `gorm:"column:AUUID;type:uuid;primaryKey"`
	Name string    `gorm:"column:First_Name;type:text;not null"`
}

func (Employee) TableName() string {
	return "employee_table"
}
