package models

// RegisterRequest is the JSON body accepted by POST /register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
	CompanyName string `json:"company_name,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	License     string `json:"license,omitempty"`
}

// LoginRequest is the JSON body accepted by POST /token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ReportCreateRequest is the JSON body accepted by POST /reports.
//
// Status and creation timestamp are intentionally absent: the server forces
// status to "new" and assigns created_at at persistence time, so any value a
// caller might supply would be ignored anyway.
type ReportCreateRequest struct {
	FishType string  `json:"fish_type"`
	Weight   float64 `json:"weight"`
	Location string  `json:"location"`
	Notes    string  `json:"notes,omitempty"`
	RouteID  *int64  `json:"route_id,omitempty"`
}

// MessageResponse is the generic `{"message": "..."}` payload used by
// delete operations and stub endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
