package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pajorstaer/rankshop/internal/bot"
	"github.com/pajorstaer/rankshop/internal/config"
	"github.com/pajorstaer/rankshop/internal/handlers"
	"github.com/pajorstaer/rankshop/internal/payment"
	"github.com/pajorstaer/rankshop/internal/service"
	"github.com/pajorstaer/rankshop/internal/store"
	"github.com/pajorstaer/rankshop/pkg/clients"
	"github.com/pajorstaer/rankshop/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg *config.Config
	api *handlers.Handlers
	srv *service.Services
	st  *store.Store
	bot *bot.Bot
	ext *payment.Client

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		zap.L().Error("opening ledger failed: ", zap.Error(err))
		return fmt.Errorf("can't open ledger: %w", err)
	}

	var verifier *payment.Client
	if cfg.TopupEnabled() {
		verifier = payment.NewClient(cfg.TrueWalletAddress, cfg.TrueWalletAPIKey, cfg.TrueWalletPhone, clients.NewHTTPClient())
	}

	a.cfg = cfg
	a.st = st
	a.ext = verifier
	if verifier != nil {
		a.srv = service.New(st, cfg.FlatFee, verifier)
	} else {
		a.srv = service.New(st, cfg.FlatFee, nil)
	}
	a.api = handlers.New(cfg, a.srv)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if cfg.BotEnabled() {
		if err = a.startBot(ctx); err != nil {
			return fmt.Errorf("can't start bot: %w", err)
		}
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.shutdownExternal()
	}()

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting admin api on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startBot(ctx context.Context) error {
	b, err := bot.New(a.cfg, a.srv)
	if err != nil {
		return fmt.Errorf("can't build bot: %w", err)
	}
	a.bot = b

	if err := b.Start(ctx); err != nil {
		return fmt.Errorf("can't open gateway: %w", err)
	}
	return nil
}

// shutdownExternal closes the gateway connection and the payment client in
// parallel, both are independent and each can block on network teardown.
func (a *Application) shutdownExternal() {
	sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var g errgroup.Group
	if a.bot != nil {
		g.Go(func() error {
			a.bot.Close(sCtx)
			return nil
		})
	}
	if a.ext != nil {
		g.Go(func() error {
			a.ext.Close()
			return nil
		})
	}
	g.Wait()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
