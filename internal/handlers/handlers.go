package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/pajorstaer/rankshop/docs"
	"github.com/pajorstaer/rankshop/internal/config"
	authhandlers "github.com/pajorstaer/rankshop/internal/handlers/auth"
	balancehandlers "github.com/pajorstaer/rankshop/internal/handlers/balance"
	cataloghandlers "github.com/pajorstaer/rankshop/internal/handlers/catalog"
	ordershandlers "github.com/pajorstaer/rankshop/internal/handlers/orders"
	topuphandlers "github.com/pajorstaer/rankshop/internal/handlers/topup"
	"github.com/pajorstaer/rankshop/internal/service"
	pkgauth "github.com/pajorstaer/rankshop/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	ListProducts(w http.ResponseWriter, r *http.Request)
	AddProduct(w http.ResponseWriter, r *http.Request)
	RemoveProduct(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	PlaceOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ApproveOrder(w http.ResponseWriter, r *http.Request)
	DenyOrder(w http.ResponseWriter, r *http.Request)
}

type TopupHandler interface {
	ProcessTopup(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	BalanceHandler BalanceHandler
	OrderHandler   OrderHandler
	TopupHandler   TopupHandler

	jwtService pkgauth.JWTServiceInterface
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	return &Handlers{
		AuthHandler:    authhandlers.New(cfg.AdminPwdHash, &pkgauth.HashService{}, jwtService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		TopupHandler:   topuphandlers.New(s.TopupService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware(h.jwtService))
			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.CatalogHandler.ListProducts)
				r.Post("/", h.CatalogHandler.AddProduct)
				r.Delete("/{name}", h.CatalogHandler.RemoveProduct)
			})
			r.Route("/users/{id}/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/credit", h.BalanceHandler.Credit)
				r.Post("/debit", h.BalanceHandler.Debit)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.OrderHandler.GetOrders)
				r.Post("/", h.OrderHandler.PlaceOrder)
				r.Get("/{id}", h.OrderHandler.GetOrder)
				r.Post("/{id}/approve", h.OrderHandler.ApproveOrder)
				r.Post("/{id}/deny", h.OrderHandler.DenyOrder)
			})
			r.Post("/topups", h.TopupHandler.ProcessTopup)
		})
	})

	return r
}
