// Package main attire rental API.
//
// @title           Attire Rental Mini API
// @version         1.0
// @description     rental-shop backend (inventory catalog, rental records, billing).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"attirerental/app/echoServer"
	authctrl "attirerental/app/echoServer/controller/auth"
	inventoryctrl "attirerental/app/echoServer/controller/inventory"
	rentalctrl "attirerental/app/echoServer/controller/rental"
	"attirerental/app/echoServer/validation"
	"attirerental/config"
	inventoryrepo "attirerental/repository/inventory"
	receiptrepo "attirerental/repository/receipt"
	rentalrepo "attirerental/repository/rental"
	userrepo "attirerental/repository/user"
	authsvc "attirerental/service/auth"
	"attirerental/service/billing"
	inventorysvc "attirerental/service/inventory"
	rentalsvc "attirerental/service/rental"
	"attirerental/util/database"
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB over pgx
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	ir := inventoryrepo.New(db)
	rr := rentalrepo.New(db)
	var xr receiptrepo.Repo
	if cfg.ReceiptAPIURL != "" {
		xr = receiptrepo.NewHTTP(cfg.ReceiptAPIURL, cfg.ReceiptAPIKey)
	}

	// services
	clock := billing.SystemClock{}
	as := authsvc.New(ur, cfg.JWTSecret)
	is := inventorysvc.New(ir)
	rs := rentalsvc.New(rr, ir, xr, clock, log)

	// daily overdue pass
	sc := rentalsvc.NewScanner(rr, clock, log)
	cr := cron.New()
	if _, err := cr.AddFunc("0 6 * * *", func() {
		if _, err := sc.ScanOverdue(context.Background()); err != nil {
			log.Error("overdue scan failed", "err", err)
		}
	}); err != nil {
		log.Error("cron setup failed", "err", err)
		os.Exit(1)
	}
	cr.Start()
	defer cr.Stop()

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	inventoryC := &inventoryctrl.Controller{Svc: is, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, V: v, Log: log, UploadDir: cfg.UploadDir}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:      authC,
		Inventory: inventoryC,
		Rental:    rentalC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
