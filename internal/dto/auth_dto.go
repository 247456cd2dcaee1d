package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=32"`
	Password string `json:"password" validate:"required,min=4"`
}

type LoginResponse struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}
