package leave

type CreateLeaveRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveType   string `json:"leave_type" binding:"required,oneof=Annual Sick Maternity Paternity Study Compassionate Unpaid"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
	Attachment  bool   `json:"attachment"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Declined Recalled Withdrawn"`
	Reason string `json:"reason"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

// TeamFilter narrows the team dashboard view. Zero-valued fields are
// no-ops; provided fields are combined as a conjunction.
type TeamFilter struct {
	Statuses     []string
	LeaveTypes   []string
	EmployeeName string
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Description   string  `json:"description"`
	Attachment    bool    `json:"attachment"`
	Status        string  `json:"status"`
	DeclineReason *string `json:"decline_reason,omitempty"`
	RecallReason  *string `json:"recall_reason,omitempty"`
}

type UsedDaysResponse struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type,omitempty"`
	UsedDays   int    `json:"used_days"`
}
