package user

const TypeCustomer = "customer"

type User struct {
	ID           int64  `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Address      string `json:"address"`
	UserType     string `json:"user_type"`
}

// SignupRequest payload of registration.
// swagger:model SignupRequest
type SignupRequest struct {
	Name     string `json:"name"     example:"Sherlock Holmes"`
	Email    string `json:"email"    example:"sherlock@example.com"`
	Phone    string `json:"phone"    example:"+44 20 7224 3688"`
	Password string `json:"password" example:"elementary"`
	Address  string `json:"address"  example:"221B Baker St"`
	UserType string `json:"userType" example:"customer"`
}

// LoginRequest payload of login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"sherlock@example.com"`
	Password string `json:"password" example:"elementary"`
	UserType string `json:"userType" example:"customer"`
}

// UserResponse wraps a user without credentials.
// swagger:model UserResponse
type UserResponse struct {
	Status string `json:"status" example:"success"`
	User   *User  `json:"user"`
}

// SignupResponse is returned after registration.
// swagger:model SignupResponse
type SignupResponse struct {
	Status  string `json:"status"  example:"success"`
	Message string `json:"message" example:"Registration successful"`
	UserID  int64  `json:"user_id" example:"7"`
}
