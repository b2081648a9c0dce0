package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pajorstaer/rankshop/internal/domain"
	"github.com/pajorstaer/rankshop/internal/dto"
	catalogservice "github.com/pajorstaer/rankshop/internal/service/catalogservice"
	"github.com/pajorstaer/rankshop/pkg/utils"
)

type Service interface {
	AddProduct(ctx context.Context, emoji, name, rank string, price int) (*domain.Product, error)
	RemoveProduct(ctx context.Context, name string) error
	ListProducts() []domain.Product
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListProducts godoc
//
//	@Summary		List catalog products
//	@Description	Return every rank product currently on sale.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ProductResponseDTO	"Catalog products"
//	@Failure		401	{object}	utils.Response			"Operator not authorized"
//	@Router			/api/admin/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalogService.ListProducts()

	response := make([]dto.ProductResponseDTO, len(products))
	for i, p := range products {
		response[i] = dto.ProductResponseDTO{
			Emoji: p.Emoji,
			Name:  p.Name,
			Rank:  p.Rank,
			Price: p.Price,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AddProduct godoc
//
//	@Summary		Add a catalog product
//	@Description	Create a new rank product. Product names are unique.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddProductRequestDTO	true	"Product payload"
//	@Success		201		{object}	dto.ProductResponseDTO		"Created product"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Operator not authorized"
//	@Failure		409		{object}	utils.Response				"Product name already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/products [post]
func (h *CatalogHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.AddProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Rank == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "name and rank are required")
		return
	}

	product, err := h.catalogService.AddProduct(r.Context(), req.Emoji, req.Name, req.Rank, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, catalogservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.ProductResponseDTO{
		Emoji: product.Emoji,
		Name:  product.Name,
		Rank:  product.Rank,
		Price: product.Price,
	})
}

// RemoveProduct godoc
//
//	@Summary		Remove a catalog product
//	@Description	Delete the product with the given name.
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name	path		string			true	"Product name"
//	@Success		200		{object}	utils.Response	"Product removed"
//	@Failure		401		{object}	utils.Response	"Operator not authorized"
//	@Failure		404		{object}	utils.Response	"Product not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/products/{name} [delete]
func (h *CatalogHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.catalogService.RemoveProduct(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, catalogservice.ErrProductNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "product removed"})
}
