package model

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateRecordRequest struct {
	CaseNumber    string   `json:"case_number"`
	DriverName    string   `json:"driver_name"`
	ForemanName   string   `json:"foreman_name,omitempty"`
	CustomerName  string   `json:"customer_name,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	PhotoPaths    []string `json:"photo_paths,omitempty"`
	SignaturePath string   `json:"signature_path,omitempty"`
}

type SendEmailRequest struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}
