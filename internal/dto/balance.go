package dto

type BalanceResponseDTO struct {
	UserID  string `json:"user_id" example:"319183949206185984"`
	Balance int    `json:"balance" example:"150"`
}

type BalanceChangeRequestDTO struct {
	Amount int `json:"amount" example:"50"`
	// Clamped selects the administrative debit policy: the balance is floored
	// at zero instead of rejecting an overdraft.
	Clamped bool `json:"clamped,omitempty" example:"false"`
}
