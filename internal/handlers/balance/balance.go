package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pajorstaer/rankshop/internal/dto"
	balanceservice "github.com/pajorstaer/rankshop/internal/service/balanceservice"
	"github.com/pajorstaer/rankshop/pkg/utils"
)

type Service interface {
	GetBalance(userID string) int
	Credit(ctx context.Context, userID string, amount int) error
	DebitStrict(ctx context.Context, userID string, amount int) error
	DebitClamped(ctx context.Context, userID string, amount int) error
}

type BalanceHandler struct {
	balanceService Service
}

func New(balanceService Service) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
	}
}

// GetBalance godoc
//
//	@Summary		Get a user's balance
//	@Description	Return the current virtual currency balance for the user. Unknown users read as zero.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User id"
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Router			/api/admin/users/{id}/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  userID,
		Balance: h.balanceService.GetBalance(userID),
	})
}

// Credit godoc
//
//	@Summary		Credit a user's balance
//	@Description	Add a positive amount to the user's balance, creating the account if needed.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		dto.BalanceChangeRequestDTO	true	"Credit payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Balance after credit"
//	@Failure		400		{object}	utils.Response				"Non-positive amount"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/users/{id}/balance/credit [post]
func (h *BalanceHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.BalanceChangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.balanceService.Credit(r.Context(), userID, req.Amount); err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  userID,
		Balance: h.balanceService.GetBalance(userID),
	})
}

// Debit godoc
//
//	@Summary		Debit a user's balance
//	@Description	Subtract an amount from the user's balance. With clamped=true the balance is floored at zero; otherwise an overdraft is rejected.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User id"
//	@Param			request	body		dto.BalanceChangeRequestDTO	true	"Debit payload"
//	@Success		200		{object}	dto.BalanceResponseDTO		"Balance after debit"
//	@Failure		400		{object}	utils.Response				"Non-positive amount"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/users/{id}/balance/debit [post]
func (h *BalanceHandler) Debit(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.BalanceChangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var err error
	if req.Clamped {
		err = h.balanceService.DebitClamped(r.Context(), userID, req.Amount)
	} else {
		err = h.balanceService.DebitStrict(r.Context(), userID, req.Amount)
	}
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, balanceservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:  userID,
		Balance: h.balanceService.GetBalance(userID),
	})
}
