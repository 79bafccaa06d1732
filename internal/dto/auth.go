package dto

// LoginRequest is the staff email + password login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest exchanges a Google ID token for an application JWT.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LabourerLoginRequest is the labourer phone + ID number login payload.
type LabourerLoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	IDNumber    string `json:"idNumber" binding:"required"`
}

// LoginResponse carries the issued JWT and the authenticated identity.
type LoginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
