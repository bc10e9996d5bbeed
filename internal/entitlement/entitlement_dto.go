package entitlement

type EntitlementResponse struct {
	EmployeeID        string `json:"employee_id"`
	AnnualDays        int    `json:"annual_days"`
	SickDays          int    `json:"sick_days"`
	MaternityDays     int    `json:"maternity_days"`
	PaternityDays     int    `json:"paternity_days"`
	StudyDays         int    `json:"study_days"`
	CompassionateDays int    `json:"compassionate_days"`
}

type TypeBalance struct {
	LeaveType string `json:"leave_type"`
	Entitled  int    `json:"entitled"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
}

type BalanceResponse struct {
	EmployeeID string        `json:"employee_id"`
	Balances   []TypeBalance `json:"balances"`
}
