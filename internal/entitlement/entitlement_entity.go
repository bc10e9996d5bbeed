package entitlement

import (
	"github.com/google/uuid"
)

// Entitlement is the per-employee allotment row in leave_entitlements,
// provisioned by HR and read-only here. Unpaid leave carries no allotment.
type Entitlement struct {
	EmployeeID        uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	AnnualDays        int       `gorm:"column:annual_days;not null"`
	SickDays          int       `gorm:"column:sick_days;not null"`
	MaternityDays     int       `gorm:"column:maternity_days;not null"`
	PaternityDays     int       `gorm:"column:paternity_days;not null"`
	StudyDays         int       `gorm:"column:study_days;not null"`
	CompassionateDays int       `gorm:"column:compassionate_days;not null"`
}

func (Entitlement) TableName() string {
	return "leave_entitlements"
}

// DaysFor returns the allotment for a leave type, false for types without
// one (Unpaid, or anything unknown).
func (e Entitlement) DaysFor(leaveType string) (int, bool) {
	switch leaveType {
	case "Annual":
		return e.AnnualDays, true
	case "Sick":
		return e.SickDays, true
	case "Maternity":
		return e.MaternityDays, true
	case "Paternity":
		return e.PaternityDays, true
	case "Study":
		return e.StudyDays, true
	case "Compassionate":
		return e.CompassionateDays, true
	default:
		return 0, false
	}
}
