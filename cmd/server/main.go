package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"irriga/config"
	"irriga/database"
	"irriga/router"

	// Auth + Health
	authCtrlImp "irriga/pkg/auth/controllerImp"
	healthCtrlImp "irriga/pkg/health/controllerImp"

	// Field
	fieldCtrlImp "irriga/pkg/field/controllerImp"
	fieldRepoImp "irriga/pkg/field/repositoryImp"
	fieldSvcImp "irriga/pkg/field/serviceImp"

	// Schedule
	schedCtrlImp "irriga/pkg/schedule/controllerImp"
	schedRepoImp "irriga/pkg/schedule/repositoryImp"
	schedSvcImp "irriga/pkg/schedule/serviceImp"

	// Savings
	savCtrlImp "irriga/pkg/savings/controllerImp"
	savRepoImp "irriga/pkg/savings/repositoryImp"
	savSvcImp "irriga/pkg/savings/serviceImp"

	// Notifications
	notifyCtrlImp "irriga/pkg/notify/controllerImp"
	notifyRepoImp "irriga/pkg/notify/repositoryImp"
	notifySvcImp "irriga/pkg/notify/serviceImp"

	// Engine + external sources
	"irriga/pkg/advisory"
	"irriga/pkg/agro"
	irrSvcImp "irriga/pkg/irrigation/serviceImp"
	"irriga/pkg/weather"

	// Article library
	kbCtrlImp "irriga/pkg/kb/controllerImp"
	kbRepoImp "irriga/pkg/kb/repositoryImp"
	kbSvcImp "irriga/pkg/kb/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Optional crop-table overrides
	if cfg.CropTableXLSX != "" {
		if n, err := agro.LoadOverrides(cfg.CropTableXLSX); err != nil {
			log.Printf("[cfg] crop table warn: %v", err)
		} else {
			log.Printf("[cfg] crop table: %d override rows", n)
		}
	}

	// 4) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 5) External sources
	wsrc := weather.NewClient(cfg.WeatherAPIBase, cfg.WeatherAPIKey)
	// No endpoint means no estimate: the engine runs on the static tables.
	var est advisory.Estimator
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		est = advisory.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[cfg] no advisory endpoint configured; schedules use static tables")
	}

	// 6) Repos
	fRepo := fieldRepoImp.New(db)
	sRepo := schedRepoImp.New(db)
	nRepo := notifyRepoImp.New(db)
	savRepo := savRepoImp.New(db)
	kbRepo := kbRepoImp.New(db)

	// 7) Services
	kbSvc := kbSvcImp.New(kbRepo)
	sink := notifySvcImp.New(nRepo)
	engine := irrSvcImp.NewEngine(wsrc, est, sRepo, sink, kbSvc)
	fSvc := fieldSvcImp.New(fRepo, engine)
	savSvc := savSvcImp.New(savRepo)
	schedSvc := schedSvcImp.New(sRepo, fRepo, savSvc)

	// 8) Controllers
	fCtrl := fieldCtrlImp.New(fSvc)
	scCtrl := schedCtrlImp.New(schedSvc)
	savCtrl := savCtrlImp.New(savSvc)
	nCtrl := notifyCtrlImp.New(nRepo)
	kbCtrl := kbCtrlImp.New(kbSvc)
	authCtrl := authCtrlImp.New()
	hCtrl := healthCtrlImp.New(db)

	// 9) Router
	r := router.New(e, fCtrl, scCtrl, savCtrl, nCtrl, kbCtrl, authCtrl, hCtrl)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
