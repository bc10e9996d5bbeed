package leave

import (
	"time"

	"github.com/georgembugua00/manager-leave/internal/employee"

	"github.com/google/uuid"
)

// LeaveRequest maps the off_roll_leave table. Column names are kept as-is
// for compatibility with the data already in the hosted database.
type LeaveRequest struct {
	ID         uuid.UUID `gorm:"column:AUUID;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_off_roll_leave_employee"`

	LeaveType   string    `gorm:"column:leave_type;type:varchar(30);not null"`
	StartDate   time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time `gorm:"column:end_date;type:date;not null"`
	Description string    `gorm:"column:description;type:text"`
	Attachment  bool      `gorm:"column:attachment;not null"`

	Status        string  `gorm:"column:status;type:varchar(20);not null;index:idx_off_roll_leave_status"`
	DeclineReason *string `gorm:"column:decline_reason;type:text"`
	RecallReason  *string `gorm:"column:recall_reason;type:text"`

	// created_at backs the "latest request" lookup; start_date only orders
	// history views.
	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (LeaveRequest) TableName() string {
	return "off_roll_leave"
}
