package employee

type CreateEmployeeRequest struct {
	EmployeeID       string `json:"employee_id" binding:"required"`
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	CNIC             string `json:"cnic" binding:"required"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob"`
	RegistrationDate string `json:"registration_date" binding:"required"`
	JoiningDate      string `json:"joining_date" binding:"required"`
	PostAppliedFor   string `json:"post_applied_for"`
	ContactNumber    string `json:"contact_number"`
	PermanentAddress string `json:"permanent_address"`
	Skills           string `json:"skills"`
	Description      string `json:"description"`
	InTime           string `json:"in_time"`
	OutTime          string `json:"out_time"`
	SalaryCap        string `json:"salary_cap"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	CNIC             string `json:"cnic" binding:"required"`
	Gender           string `json:"gender"`
	DOB              string `json:"dob"`
	JoiningDate      string `json:"joining_date"`
	PostAppliedFor   string `json:"post_applied_for"`
	ContactNumber    string `json:"contact_number"`
	PermanentAddress string `json:"permanent_address"`
	Skills           string `json:"skills"`
	Description      string `json:"description"`
	InTime           string `json:"in_time"`
	OutTime          string `json:"out_time"`
	SalaryCap        string `json:"salary_cap"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	CNIC             string `json:"cnic"`
	Gender           string `json:"gender,omitempty"`
	DOB              string `json:"dob,omitempty"`
	RegistrationDate string `json:"registration_date,omitempty"`
	JoiningDate      string `json:"joining_date,omitempty"`
	PostAppliedFor   string `json:"post_applied_for,omitempty"`
	ContactNumber    string `json:"contact_number,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Description      string `json:"description,omitempty"`
	InTime           string `json:"in_time,omitempty"`
	OutTime          string `json:"out_time,omitempty"`
	SalaryCap        string `json:"salary_cap,omitempty"`
}
