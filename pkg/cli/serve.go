package cli

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"lifedash/config"
	"lifedash/database"
	"lifedash/router"

	"lifedash/pkg/clip"
	"lifedash/pkg/dashboard"
	"lifedash/pkg/events"
	"lifedash/pkg/export"
	"lifedash/pkg/layout"
	"lifedash/pkg/middleware"
	"lifedash/pkg/storage"
	"lifedash/pkg/system"

	goalCtrlImp "lifedash/pkg/goal/controllerImp"
	goalRepoImp "lifedash/pkg/goal/repositoryImp"
	goalSvcImp "lifedash/pkg/goal/serviceImp"

	healthCtrlImp "lifedash/pkg/health/controllerImp"
	healthRepoImp "lifedash/pkg/health/repositoryImp"
	healthSvcImp "lifedash/pkg/health/serviceImp"

	journalCtrlImp "lifedash/pkg/journal/controllerImp"
	journalRepoImp "lifedash/pkg/journal/repositoryImp"
	journalSvcImp "lifedash/pkg/journal/serviceImp"

	mealCtrlImp "lifedash/pkg/meal/controllerImp"
	mealRepoImp "lifedash/pkg/meal/repositoryImp"

	postCtrlImp "lifedash/pkg/social/controllerImp"
	postRepoImp "lifedash/pkg/social/repositoryImp"
	postSvcImp "lifedash/pkg/social/serviceImp"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// 1) Config + logger
	cfg := config.Load()
	if err := config.InitLogger(cfg.LogDir); err != nil {
		return err
	}
	defer config.Logger.Sync()

	// 2) DB (sqlite) + blob store
	db := database.OpenSQLite(cfg.DBPath)
	store := storage.NewSQLite(db)
	bus := events.NewBus()

	// 3) Repos/Services. Goals, health metrics and meals are session-only;
	// journals, posts and the panel layout go through the blob store.
	goalRepo := goalRepoImp.New()
	goalService := goalSvcImp.NewGoalService(goalRepo)

	healthRepo := healthRepoImp.New()
	healthService := healthSvcImp.NewHealthService(healthRepo)

	journalRepo := journalRepoImp.New(store, config.Logger)
	journalService := journalSvcImp.NewJournalService(journalRepo, bus)

	postRepo := postRepoImp.New(store, config.Logger)
	postService := postSvcImp.NewPostService(postRepo)

	mealRepo := mealRepoImp.New()

	// Change notifications carry no payload; listeners re-read the blob.
	journalService.Subscribe(func() { journalRepo.Reload() })

	lm := layout.NewManager(store, config.Logger)
	clipper := clip.New(cfg.ClipAllowedDomains, cfg.ClipMaxBytes)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger(config.Logger))

	// 5) Router
	r := router.New(
		e,
		dashboard.NewCtrl(goalService, healthService, journalService, lm),
		goalCtrlImp.New(goalService),
		healthCtrlImp.New(healthService),
		journalCtrlImp.New(journalService),
		mealCtrlImp.New(mealRepo),
		postCtrlImp.New(postService),
		layout.NewCtrl(lm),
		clip.NewCtrl(clipper),
		export.NewCtrl(goalService, healthService, journalService, postService),
		system.NewHealthzCtrl(db),
	)

	// 6) Start
	config.Logger.Infow("listening", "port", cfg.Port)
	return r.Start(":" + cfg.Port)
}
