package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/dto"
	orderservice "github.com/pajorstaer/rankshop/internal/service/orderservice"
	"github.com/pajorstaer/rankshop/pkg/utils"
)

type Service interface {
	PlaceOrder(ctx context.Context, userID, rankName, colorHex string) (*domain.Order, error)
	ApproveOrder(ctx context.Context, orderID int) (*domain.Order, error)
	DenyOrder(ctx context.Context, orderID int) (*domain.Order, error)
	GetOrder(orderID int) (*domain.Order, error)
	GetOrders() []domain.Order
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func toDTO(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		OrderID:  o.OrderID,
		UserID:   o.UserID,
		RankName: o.RankName,
		Color:    o.Color,
		Price:    o.Price,
		Status:   o.Status,
	}
}

// PlaceOrder godoc
//
//	@Summary		Place a custom rank order
//	@Description	Charge the flat fee and create a pending order for a custom rank with the given name and hex color.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlaceOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO		"Created order"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		422		{object}	utils.Response				"Invalid hex color"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.RankName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "user_id and rank_name are required")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), req.UserID, req.RankName, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidColor):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, orderservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toDTO(order))
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Return every order in placement order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO	"Orders"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Router			/api/admin/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orderService.GetOrders()

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one order
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO	"Order"
//	@Failure		400	{object}	utils.Response			"Invalid order id"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		404	{object}	utils.Response			"Order not found"
//	@Router			/api/admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}

// ApproveOrder godoc
//
//	@Summary		Approve a pending order
//	@Description	Move the order to APPROVED. Role creation happens in the transport that talks to the chat platform.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO	"Approved order"
//	@Failure		400	{object}	utils.Response			"Invalid order id"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		404	{object}	utils.Response			"Order not found"
//	@Failure		409	{object}	utils.Response			"Order already finalized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/orders/{id}/approve [post]
func (h *OrderHandler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	h.finalize(w, r, h.orderService.ApproveOrder)
}

// DenyOrder godoc
//
//	@Summary		Deny a pending order
//	@Description	Move the order to DENIED and refund the fee to the ordering user.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO	"Denied order"
//	@Failure		400	{object}	utils.Response			"Invalid order id"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Failure		404	{object}	utils.Response			"Order not found"
//	@Failure		409	{object}	utils.Response			"Order already finalized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/orders/{id}/deny [post]
func (h *OrderHandler) DenyOrder(w http.ResponseWriter, r *http.Request) {
	h.finalize(w, r, h.orderService.DenyOrder)
}

func (h *OrderHandler) finalize(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, orderID int) (*domain.Order, error)) {
	orderID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := op(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrOrderAlreadyFinalized):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(order))
}
