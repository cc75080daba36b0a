package router

import (
	"github.com/labstack/echo/v4"

	"irriga/pkg/middleware"
)

func New(
	e *echo.Echo,
	fieldCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Rebuild(echo.Context) error
	},
	schedCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
	},
	savingsCtrl interface{ Summary(echo.Context) error },
	notifyCtrl interface{ List(echo.Context) error },
	kbCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/fields", fieldCtrl.Create)
	api.GET("/fields/:id", fieldCtrl.Get)
	api.PUT("/fields/:id", fieldCtrl.Update)

	g := e.Group("/fields")
	g.POST("/:id/schedule/rebuild", fieldCtrl.Rebuild)
	g.GET("/:id/schedule", schedCtrl.List)
	g.GET("/:id/savings", savingsCtrl.Summary)

	api.PATCH("/schedule/:entry_id", schedCtrl.Patch)
	api.GET("/notifications", notifyCtrl.List)

	api.POST("/kb/ingest", kbCtrl.IngestText)
	api.POST("/kb/ingest/url", kbCtrl.IngestURL)
	api.GET("/kb/search", kbCtrl.Search)

	return e
}
