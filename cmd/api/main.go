package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"inkpaper-express/internal/config"
	"inkpaper-express/internal/db"
	"inkpaper-express/internal/httpserver"
	cartrepo "inkpaper-express/internal/repository/cart"
	orderrepo "inkpaper-express/internal/repository/order"
	productrepo "inkpaper-express/internal/repository/product"
	"inkpaper-express/internal/seed"
	cartsvc "inkpaper-express/internal/service/cart"
	catalogsvc "inkpaper-express/internal/service/catalog"
	ordersvc "inkpaper-express/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool        *pgxpool.Pool
		productRepo productrepo.Repository
		orderRepo   orderrepo.Repository
		cartRepo    cartrepo.Repository
	)
	if cfg.DBConnString != "" {
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()

		productRepo = productrepo.NewPostgres(pool, logger)
		orderRepo = orderrepo.NewPostgres(pool, logger)
		cartRepo = cartrepo.NewPostgres(pool)
		logger.Printf("using postgres storage")
	} else {
		productRepo = productrepo.NewMemory()
		orderRepo = orderrepo.NewMemory()
		cartRepo = cartrepo.NewMemory()
		if err := seed.Memory(ctx, productRepo); err != nil {
			logger.Fatalf("seed catalog: %v", err)
		}
		logger.Printf("using in-memory storage (data is lost on restart)")
	}

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, productRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		BaseURL:     cfg.BaseURL,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
