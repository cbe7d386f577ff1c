package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/service"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/middleware"
)

const searchCacheTTL = 5 * time.Minute

func SetupRoutes(app *fiber.App, pgDB *gorm.DB, mongoDB *mongo.Database, rdb *redis.Client, hub *helper.Hub) {
	api := app.Group("/api")

	userRepo := repo.NewUserRepo(pgDB)
	assetRepo := repo.NewAssetRepo(pgDB)
	procurementRepo := repo.NewProcurementRepo(pgDB)
	activityRepo := repo.NewActivityRepo(mongoDB)
	tokenStore := repo.NewTokenStore(rdb)
	searchCache := repo.NewSearchCache(rdb, searchCacheTTL)

	authService := service.NewAuthService(userRepo, tokenStore)
	assetService := service.NewAssetService(assetRepo)
	procurementService := service.NewProcurementService(procurementRepo, activityRepo, hub)
	unsplashService := service.NewUnsplashService(searchCache)
	notificationService := service.NewNotificationService(hub)

	api.Post("/login", authService.Login)

	protected := api.Group("", middleware.AuthRequired(tokenStore))

	protected.Post("/logout", authService.Logout)
	protected.Get("/me", authService.Me)

	aset := protected.Group("/aset")
	aset.Get("/", assetService.List)
	aset.Get("/:id", assetService.Get)
	aset.Post("/", assetService.Create)
	aset.Put("/:id", assetService.Update)
	aset.Delete("/:id", assetService.Delete)

	requests := protected.Group("/procurement-requests")
	requests.Get("/", procurementService.List)
	requests.Get("/:id", procurementService.Get)
	requests.Get("/:id/history", procurementService.History)
	requests.Post("/", procurementService.Create)
	requests.Put("/:id", procurementService.Update)
	requests.Patch("/:id", procurementService.UpdateStatus)
	requests.Delete("/:id", procurementService.Delete)

	protected.Get("/unsplash/search", unsplashService.Search)

	protected.Get("/ws/notifications", notificationService.Upgrade, notificationService.Serve())
}
