package dto

type TopupRequestDTO struct {
	UserID string `json:"user_id" example:"319183949206185984"`
	Link   string `json:"link" example:"https://gift.truemoney.com/campaign/?v=abc123"`
}

type TopupResponseDTO struct {
	UserID string `json:"user_id" example:"319183949206185984"`
	Amount int    `json:"amount" example:"100"`
}
