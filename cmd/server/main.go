package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cookitsimple/config"
	"cookitsimple/database"
	"cookitsimple/router"

	// Importer
	importCtrlImp "cookitsimple/pkg/importer/controllerImp"
	importRepoImp "cookitsimple/pkg/importer/repositoryImp"
	importSvc "cookitsimple/pkg/importer/service"
	importSvcImp "cookitsimple/pkg/importer/serviceImp"

	// Provider
	"cookitsimple/pkg/provider"

	// Recipes
	recipeCtrlImp "cookitsimple/pkg/recipe/controllerImp"
	recipeRepoImp "cookitsimple/pkg/recipe/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + settings seed
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Provider client
	pixie := provider.New(cfg.ProviderURL, cfg.ProviderAPIKey, cfg.ProviderTimeout)

	// 4) Repos
	recipeRepo := recipeRepoImp.New(db)
	ledgerRepo := importRepoImp.NewLedger(db)
	settingsRepo := importRepoImp.NewSettings(db)

	// 5) Import orchestrator + controllers
	svc := importSvcImp.New(pixie, recipeRepo, ledgerRepo, settingsRepo)
	impCtrl := importCtrlImp.New(svc, ledgerRepo, settingsRepo)
	recCtrl := recipeCtrlImp.New(recipeRepo)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// 7) Router
	r := router.New(e, db, impCtrl, recCtrl)

	// 8) Unattended trigger
	go tick(svc, cfg.ImportTick)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// tick drives unattended imports. The gate inside Run keeps idle ticks
// cheap, so the interval only bounds how late a due import can start.
func tick(svc importSvc.ImportService, every time.Duration) {
	for range time.Tick(every) {
		out := svc.Run(context.Background(), false)
		log.Printf("[tick] import %s reason=%s msg=%s", out.Status, out.Reason, out.Message)
	}
}
