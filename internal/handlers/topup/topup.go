package topup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pajorstaer/rankshop/internal/dto"
	topupservice "github.com/pajorstaer/rankshop/internal/service/topupservice"
	"github.com/pajorstaer/rankshop/pkg/utils"
)

type Service interface {
	ProcessTopup(ctx context.Context, userID, slipURL string) (int, error)
}

type TopupHandler struct {
	topupService Service
}

func New(topupService Service) *TopupHandler {
	return &TopupHandler{
		topupService: topupService,
	}
}

// ProcessTopup godoc
//
//	@Summary		Verify a topup slip and credit the user
//	@Description	Send the payment proof link to the payment provider; on success the verified amount is credited and logged.
//	@Tags			Topups
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TopupRequestDTO		true	"Topup payload"
//	@Success		200		{object}	dto.TopupResponseDTO	"Credited amount"
//	@Failure		400		{object}	utils.Response			"Invalid payload"
//	@Failure		401		{object}	utils.Response			"Operator not authorized"
//	@Failure		422		{object}	utils.Response			"Verification rejected"
//	@Failure		503		{object}	utils.Response			"Verification not configured"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/topups [post]
func (h *TopupHandler) ProcessTopup(w http.ResponseWriter, r *http.Request) {
	var req dto.TopupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Link == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id and link are required")
		return
	}

	amount, err := h.topupService.ProcessTopup(r.Context(), req.UserID, req.Link)
	if err != nil {
		switch {
		case errors.Is(err, topupservice.ErrTopupUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, topupservice.ErrTopupRejected):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TopupResponseDTO{
		UserID: req.UserID,
		Amount: amount,
	})
}
