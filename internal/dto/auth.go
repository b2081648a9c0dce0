package dto

type LoginRequestDTO struct {
	Operator string `json:"operator" example:"admin"`
	Password string `json:"password" example:"hunter2"`
}

type LoginResponseDTO struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}
