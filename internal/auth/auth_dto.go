package auth

type LoginRequest struct {
	Stakeholder string `json:"stakeholder" binding:"required,oneof=hr employee"`
	Email       string `json:"email"`
	CNIC        string `json:"cnic"`
	Password    string `json:"password"`
}

type AuthResponse struct {
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role"`
}
