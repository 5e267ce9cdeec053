package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"canteen/cmd/fx/account_fx"
	"canteen/cmd/fx/db_fx"
	"canteen/cmd/fx/meal_fx"
	"canteen/cmd/fx/menu_fx"
	"canteen/cmd/fx/purchase_fx"
	"canteen/cmd/fx/report_fx"
	"canteen/cmd/fx/review_fx"
	"canteen/internal/api/controllers"
	"canteen/internal/infra"
	"canteen/internal/models/db_models"
	"canteen/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		menu_fx.Module,
		meal_fx.Module,
		purchase_fx.Module,
		report_fx.Module,
		review_fx.Module,

		fx.Provide(
			controllers.NewAccountController,
			controllers.NewMenuController,
			controllers.NewMealController,
			controllers.NewPurchaseController,
			controllers.NewReportController,
			controllers.NewReviewController,
		),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	menuController *controllers.MenuController,
	mealController *controllers.MealController,
	purchaseController *controllers.PurchaseController,
	reportController *controllers.ReportController,
	reviewController *controllers.ReviewController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		menuController,
		mealController,
		purchaseController,
		reportController,
		reviewController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	menuController *controllers.MenuController,
	mealController *controllers.MealController,
	purchaseController *controllers.PurchaseController,
	reportController *controllers.ReportController,
	reviewController *controllers.ReviewController) {

	staff := []string{string(db_models.RoleCook), string(db_models.RoleAdmin)}

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)

	r.GET("/menu/weekly/", menuController.WeeklyMenu)

	user := r.Group("/")
	user.Use(middleware.JWTAuthMiddleware())
	user.GET("/user/me/", accountController.Me)
	user.PUT("/user/me/", accountController.UpdateMe)
	user.POST("/pay-meal/", mealController.PayMeal)
	user.POST("/buy-subscription/", mealController.BuySubscription)
	user.POST("/reviews/", reviewController.Create)
	user.GET("/user/reviews/", reviewController.ListMine)

	cook := r.Group("/cook")
	cook.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(staff...))
	cook.GET("/dashboard/", menuController.CookDashboard)
	cook.POST("/issue-meal/", menuController.DeductPortions)
	cook.POST("/issue-meal-for-user/", mealController.IssueMealForUser)
	cook.POST("/purchase-requests/", purchaseController.Create)

	staffGroup := r.Group("/")
	staffGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(staff...))
	staffGroup.GET("/paid-students/", mealController.PaidStudents)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(string(db_models.RoleAdmin)))
	admin.GET("/stats/", reportController.AdminStats)
	admin.GET("/purchase-requests/", purchaseController.ListAll)
	admin.POST("/approve-request/:id/", purchaseController.Review)
	admin.GET("/reports/daily/", reportController.DailyReport)
	admin.POST("/menu/", menuController.CreateMenuItem)
	admin.PUT("/menu/:id/", menuController.UpdateMenuItem)
	admin.DELETE("/menu/:id/", menuController.DeleteMenuItem)
}
