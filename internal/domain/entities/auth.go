package entities

// AdminID is the fixed identity embedded in every admin token.
const AdminID = "admin"

type LoginInput struct {
	Username string `json:"username" label:"Username" validate:"required"`
	Password string `json:"password" label:"Password" validate:"required"`
}

// AdminIdentity is the decoded bearer token subject.
type AdminIdentity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expiresAt"`
	User      AdminIdentity `json:"user"`
}
