package service

import (
	"github.com/pajorstaer/rankshop/internal/service/balanceservice"
	"github.com/pajorstaer/rankshop/internal/service/catalogservice"
	"github.com/pajorstaer/rankshop/internal/service/orderservice"
	"github.com/pajorstaer/rankshop/internal/service/topupservice"
	"github.com/pajorstaer/rankshop/internal/store"
)

type Services struct {
	CatalogService *catalogservice.Service
	BalanceService *balanceservice.Service
	OrderService   *orderservice.Service
	TopupService   *topupservice.Service
}

func New(st *store.Store, flatFee int, verifier topupservice.Verifier) *Services {
	return &Services{
		CatalogService: catalogservice.New(st),
		BalanceService: balanceservice.New(st),
		OrderService:   orderservice.New(st, flatFee),
		TopupService:   topupservice.New(st, verifier),
	}
}
