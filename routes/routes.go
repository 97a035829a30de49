package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beaute-shop/controllers"
	"beaute-shop/middleware"
	"beaute-shop/models"
	"beaute-shop/repositories"
)

// SetupRoutes mounts the full REST surface the storefront consumes, with
// Django-style trailing slashes so the client can be pointed at either this
// server or the production API unchanged.
func SetupRoutes(router *gin.Engine, store *repositories.Store, mailer *models.EmailService) {
	users := repositories.NewUserRepository(store)
	products := repositories.NewProductRepository(store)
	orders := repositories.NewOrderRepository(store)
	coupons := repositories.NewCouponRepository(store)
	wishlists := repositories.NewWishlistRepository(store)

	authCtrl := controllers.NewAuthController(users)
	profileCtrl := controllers.NewProfileController(users)
	productCtrl := controllers.NewProductController(products, orders, users)
	orderCtrl := controllers.NewOrderController(orders, users, mailer)
	couponCtrl := controllers.NewCouponController(coupons)
	wishlistCtrl := controllers.NewWishlistController(wishlists)
	newsletterCtrl := controllers.NewNewsletterController(users, mailer)
	userCtrl := controllers.NewUserController(orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Public surface.
	router.POST("/token/", authCtrl.Token)
	router.POST("/token/refresh/", authCtrl.RefreshToken)
	router.POST("/users/register/", authCtrl.Register)

	router.GET("/products/", productCtrl.ListProducts)
	router.GET("/products/:id/", productCtrl.GetProduct)
	router.GET("/products/by-slug/:slug/", productCtrl.GetProductBySlug)
	router.GET("/products/featured/", productCtrl.FeaturedProducts)
	router.GET("/products/:id/similar/", productCtrl.SimilarProducts)

	router.GET("/categories/", productCtrl.ListCategories)
	router.GET("/categories/:id/", productCtrl.GetCategory)
	router.GET("/categories/by-slug/:slug/", productCtrl.GetCategoryBySlug)

	router.POST("/coupons/verify/", couponCtrl.VerifyCoupon)
	router.POST("/coupons/apply/", couponCtrl.ApplyCoupon)

	router.POST("/newsletter/subscribe/", newsletterCtrl.Subscribe)
	router.POST("/newsletter/unsubscribe/", newsletterCtrl.Unsubscribe)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/users/me/", authCtrl.Me)
		auth.GET("/profiles/me/", profileCtrl.GetMyProfile)
		auth.PUT("/profiles/me/", profileCtrl.UpdateMyProfile)

		auth.POST("/products/:id/review/", productCtrl.SubmitReview)

		auth.GET("/wishlist/", wishlistCtrl.GetWishlist)
		auth.POST("/wishlist/add/:product_id/", wishlistCtrl.AddToWishlist)
		auth.DELETE("/wishlist/remove/:product_id/", wishlistCtrl.RemoveFromWishlist)

		auth.GET("/orders/", orderCtrl.ListOrders)
		auth.POST("/orders/", orderCtrl.CreateOrder)
		auth.GET("/orders/:id/", orderCtrl.GetOrder)
		auth.POST("/orders/:id/cancel/", orderCtrl.CancelOrder)
	}

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/products/low_stock/", productCtrl.LowStockProducts)
		admin.POST("/orders/:id/update_status/", orderCtrl.UpdateOrderStatus)
		admin.GET("/orders/dashboard_stats/", orderCtrl.DashboardStats)
		admin.GET("/orders/recent/", orderCtrl.RecentOrders)
		admin.GET("/users/top-customers/", userCtrl.TopCustomers)
	}
}
