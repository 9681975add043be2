package server

import (
	"net/http"

	"rentdesk/internal/codes"
	"rentdesk/internal/config"
	"rentdesk/internal/handlers"
	"rentdesk/internal/middleware"
	"rentdesk/internal/models"
	"rentdesk/internal/service"
	"rentdesk/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	sessStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("rentdesk_session", sessStore))

	st := store.New(db)
	r.Use(middleware.InjectUser(st))

	authH := handlers.NewAuthHandler(st)
	assetH := handlers.NewAssetHandler(st, service.NewAssetService(db), cfg.UploadDir)
	orderH := handlers.NewOrderHandler(st, service.NewOrderService(db))
	scanH := handlers.NewScanHandler(service.NewResolver(db))
	exportH := handlers.NewExportHandler(st)
	codeH := handlers.NewCodeHandler(st, codes.NewGenerator(cfg.CodeCacheDir))
	auditH := handlers.NewAuditHandler(st)

	r.GET("/", handlers.IndexPage)

	r.GET("/login", authH.ShowLogin)
	r.POST("/login", authH.Login)
	r.GET("/logout", authH.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	admin := middleware.RequireRole(models.RoleAdmin)

	// Asset listing is the one read that can be opened up to anonymous
	// visitors; everything else requires a session.
	if cfg.PublicAssetList {
		r.GET("/assets", assetH.List)
	} else {
		auth.GET("/assets", assetH.List)
	}
	auth.GET("/assets/view/:id", assetH.View)
	auth.GET("/assets/add", admin, assetH.ShowNew)
	auth.POST("/assets/add", admin, assetH.Create)
	auth.GET("/assets/edit/:id", admin, assetH.ShowEdit)
	auth.POST("/assets/edit/:id", admin, assetH.Update)
	auth.POST("/assets/delete/:id", admin, assetH.Delete)

	auth.GET("/assets/qrcode/:id", codeH.QRCode)
	auth.GET("/assets/barcode/:id", codeH.Barcode)

	auth.GET("/assets/export", admin, exportH.AssetsCSV)
	auth.GET("/assets/export/pdf", admin, exportH.AssetsPDF)

	auth.GET("/orders", orderH.List)
	auth.GET("/orders/view/:id", orderH.View)
	auth.GET("/orders/view/:id/pdf", exportH.OrderPDF)
	auth.GET("/orders/add", admin, orderH.ShowNew)
	auth.POST("/orders/add", admin, orderH.Create)
	auth.POST("/orders/status/:id", admin, orderH.UpdateStatus)
	auth.POST("/orders/delete/:id", admin, orderH.Delete)
	auth.GET("/orders/export", admin, exportH.OrdersCSV)

	auth.GET("/scan", scanH.Scan)

	auth.GET("/audit", admin, auditH.List)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
