package dto

type PlaceOrderRequestDTO struct {
	UserID   string `json:"user_id" example:"319183949206185984"`
	RankName string `json:"rank_name" example:"Shadow"`
	Color    string `json:"color" example:"#ff66cc"`
}

type OrderResponseDTO struct {
	OrderID  int    `json:"order_id" example:"1"`
	UserID   string `json:"user_id" example:"319183949206185984"`
	RankName string `json:"rank_name" example:"Shadow"`
	Color    string `json:"color" example:"#ff66cc"`
	Price    int    `json:"price" example:"50"`
	Status   string `json:"status" example:"PENDING"`
}
