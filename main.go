package main

import (
	"log"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	"github.com/campustech/marketplace/server"
	"github.com/campustech/marketplace/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	if conf.SeedDemo {
		if err := db.SeedDemoData(gormDB.DB); err != nil {
			log.Fatalf("error seeding demo data: %v", err)
		}
	}

	authRepo := db.NewAuthRepo(gormDB)
	productRepo := db.NewProductRepo(gormDB)
	messageRepo := db.NewMessageRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf)
	productService := services.NewProductService(productRepo, conf)
	messageService := services.NewMessageService(messageRepo, productRepo, conf)

	s := &server.Server{
		Config:            conf,
		AuthRepository:    authRepo,
		ProductRepository: productRepo,
		MessageRepository: messageRepo,
		AuthService:       authService,
		ProductService:    productService,
		MessageService:    messageService,
	}

	s.Start()
}
