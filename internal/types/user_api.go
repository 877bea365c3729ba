package types

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Password string `json:"password" binding:"required,min=8,max=20"`
	Name     string `json:"name" binding:"required,min=3,max=50"`
}

type LoginUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=8,max=20"`
}

// UserResponse never carries the password hash. Token is present only in the
// login response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func ToUserResponse(user *User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
