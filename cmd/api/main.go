package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stockmonitor/internal/application/accounts"
	"github.com/jhoicas/stockmonitor/internal/application/auth"
	"github.com/jhoicas/stockmonitor/internal/application/shop"
	appstock "github.com/jhoicas/stockmonitor/internal/application/stock"
	"github.com/jhoicas/stockmonitor/internal/domain/repository"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/export"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stockmonitor/internal/infrastructure/pdf"
	"github.com/jhoicas/stockmonitor/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockmonitor/internal/interfaces/http"
	"github.com/jhoicas/stockmonitor/pkg/config"
	"github.com/jhoicas/stockmonitor/pkg/logger"
)

// repos implementación de persistencia elegida por STORAGE_DRIVER.
type repos struct {
	accounts repository.AccountRepository
	items    repository.StockItemRepository
	products repository.ProductRepository
	cart     repository.CartRepository
	tx       appstock.TxRunner
	close    func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*repos, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		return &repos{
			accounts: memory.NewAccountRepository(store),
			items:    memory.NewStockItemRepository(store),
			products: memory.NewProductRepository(store),
			cart:     memory.NewCartRepository(store),
			tx:       memory.NewTxRunner(store),
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &repos{
		accounts: postgres.NewAccountRepository(pool),
		items:    postgres.NewStockItemRepository(pool),
		products: postgres.NewProductRepository(pool),
		cart:     postgres.NewCartRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	authUC := auth.NewAuthUseCase(store.accounts, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	if err := authUC.EnsureAdmin(ctx, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("sembrar cuenta admin")
	}

	cartUC := shop.NewCartUseCase(store.products, store.cart, log)
	if cfg.Seed.SampleProducts {
		if _, err := cartUC.SeedSampleProducts(ctx); err != nil {
			log.Fatal().Err(err).Msg("sembrar catálogo")
		}
	}

	// El mismo codec CSV lee importaciones y escribe exportaciones.
	csvCodec := export.NewCSVCodec()
	transferUC := appstock.NewTransferUseCase(
		store.items, store.tx,
		csvCodec, csvCodec, export.NewXMLBuilder(),
		infrapdf.NewMarotoStockReport(cfg.App.Name), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Monitor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		AccountUC:   accounts.NewAccountUseCase(store.accounts, log),
		StockUC:     appstock.NewStockUseCase(store.items, log),
		DashboardUC: appstock.NewDashboardUseCase(store.items),
		TransferUC:  transferUC,
		CartUC:      cartUC,
		JWTSecret:   cfg.JWT.Secret,
		LoginMax:    cfg.HTTP.LoginRateLimit,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
