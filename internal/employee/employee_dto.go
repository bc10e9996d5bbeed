package employee

type EmployeeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
