package dto

type AddProductRequestDTO struct {
	Emoji string `json:"emoji" example:"💎"`
	Name  string `json:"name" example:"VIP"`
	Rank  string `json:"rank" example:"VIP-Role"`
	Price int    `json:"price" example:"100"`
}

type ProductResponseDTO struct {
	Emoji string `json:"emoji" example:"💎"`
	Name  string `json:"name" example:"VIP"`
	Rank  string `json:"rank" example:"VIP-Role"`
	Price int    `json:"price" example:"100"`
}
