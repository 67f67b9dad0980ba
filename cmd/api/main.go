package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/infra/db"
	"shop/internal/infra/fallback"
	"shop/internal/infra/memstore"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/logger"
	"shop/internal/payment"
	repo "shop/internal/repository"
	"shop/internal/server"
	"shop/internal/usecase"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := logger.Init(cfg.GoEnv != "prod"); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.L()

	// 二次ストア（シード済みインメモリ）。プロセスにつき一つ
	mem := memstore.New()

	// 一次ストア（Postgres）。届かなくても起動は続ける
	var primaryProducts repo.ProductRepository
	var primaryOrders repo.OrderRepository

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Warn("postgres unreachable, serving from in-memory store", zap.Error(err))
	} else {
		if err := gormDB.AutoMigrate(
			&model.Product{},
			&model.Order{},
			&model.OrderItem{},
		); err != nil {
			log.Warn("auto migrate failed", zap.Error(err))
		}
		primaryProducts = infraRepo.NewProductGormRepository(gormDB)
		primaryOrders = infraRepo.NewOrderGormRepository(gormDB)
	}

	products := fallback.NewProductStore(primaryProducts, mem.Products(), log)
	orders := fallback.NewOrderStore(primaryOrders, mem.Orders(), log)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(products)
	orderUC := usecase.NewOrderUsecase(orders, payment.NewSimulatedProvider())
	dashboardUC := usecase.NewDashboardUsecase(products, orders)

	//Handler生成
	hs := server.Handlers{
		Products:      handler.NewProductHandler(catalogUC),
		Orders:        handler.NewOrderHandler(orderUC),
		AdminProducts: handler.NewAdminProductHandler(catalogUC),
		AdminOrders:   handler.NewAdminOrderHandler(orderUC),
		Dashboard:     handler.NewDashboardHandler(dashboardUC),
	}

	e := server.New(hs)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
