// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nosh/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BootstrapHandler *handler.BootstrapHandler
	SessionHandler   *handler.SessionHandler
	LocationHandler  *handler.LocationHandler
	CartHandler      *handler.CartHandler
	AddressHandler   *handler.AddressHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	WalletHandler    *handler.WalletHandler
	ProfileHandler   *handler.ProfileHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	bootstrap *handler.BootstrapHandler
	session   *handler.SessionHandler
	location  *handler.LocationHandler
	cart      *handler.CartHandler
	address   *handler.AddressHandler
	catalog   *handler.CatalogHandler
	order     *handler.OrderHandler
	wallet    *handler.WalletHandler
	profile   *handler.ProfileHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bootstrap: params.BootstrapHandler,
		session:   params.SessionHandler,
		location:  params.LocationHandler,
		cart:      params.CartHandler,
		address:   params.AddressHandler,
		catalog:   params.CatalogHandler,
		order:     params.OrderHandler,
		wallet:    params.WalletHandler,
		profile:   params.ProfileHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	bootGroup := e.Group("/bootstrap")
	{
		bootGroup.POST("", r.bootstrap.Run)
		bootGroup.GET("/target", r.bootstrap.Target)
		bootGroup.POST("/onboarding/complete", r.bootstrap.CompleteOnboarding)
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.session.Current)
		sessionGroup.POST("/login", r.session.Login)
		sessionGroup.POST("/signup", r.session.SignUp)
		sessionGroup.POST("/guest", r.session.ContinueAsGuest)
		sessionGroup.POST("/logout", r.session.Logout)
		sessionGroup.POST("/password/forgot", r.session.ForgotPassword)
		sessionGroup.POST("/password/verify-token", r.session.VerifyToken)
		sessionGroup.POST("/password/reset", r.session.ResetPassword)
		sessionGroup.POST("/verify/phone", r.session.VerifyPhone)
		sessionGroup.POST("/verify/email", r.session.VerifyEmail)
		sessionGroup.POST("/check-email", r.session.CheckEmail)
	}

	locationGroup := e.Group("/location")
	{
		locationGroup.GET("", r.location.Current)
		locationGroup.PUT("", r.location.Set)
		locationGroup.POST("/device", r.location.UseDevice)
		locationGroup.POST("/address", r.location.SetManual)
		locationGroup.GET("/zones", r.location.Zones)
		locationGroup.GET("/zones/check", r.location.CheckZone)
	}

	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cart.List)
		cartGroup.DELETE("", r.cart.Clear)
		cartGroup.POST("/items", r.cart.Add)
		cartGroup.PUT("/items", r.cart.Update)
		cartGroup.DELETE("/items/:id", r.cart.Remove)
		cartGroup.POST("/items/bulk", r.cart.AddMultiple)
	}

	addressGroup := e.Group("/addresses")
	{
		addressGroup.GET("", r.address.List)
		addressGroup.POST("", r.address.Add)
		addressGroup.PUT("/:id", r.address.Update)
		addressGroup.DELETE("/:id", r.address.Delete)
	}

	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.catalog.Categories)
		catalogGroup.GET("/categories/:id/children", r.catalog.ChildCategories)
		catalogGroup.GET("/categories/:id/products", r.catalog.CategoryProducts)
		catalogGroup.GET("/categories/:id/restaurants", r.catalog.CategoryRestaurants)

		catalogGroup.GET("/products/latest", r.catalog.LatestProducts)
		catalogGroup.GET("/products/popular", r.catalog.PopularProducts)
		catalogGroup.GET("/products/most-reviewed", r.catalog.MostReviewedProducts)
		catalogGroup.GET("/products/set-menu", r.catalog.SetMenuProducts)
		catalogGroup.GET("/products/recommended", r.catalog.RecommendedProducts)
		catalogGroup.GET("/products/:id", r.catalog.ProductDetails)
		catalogGroup.POST("/reviews", r.catalog.SubmitReview)

		catalogGroup.GET("/restaurants", r.catalog.Restaurants)
		catalogGroup.GET("/restaurants/popular", r.catalog.PopularRestaurants)
		catalogGroup.GET("/restaurants/latest", r.catalog.LatestRestaurants)
		catalogGroup.GET("/restaurants/recently-viewed", r.catalog.RecentlyViewedRestaurants)
		catalogGroup.GET("/restaurants/dine-in", r.catalog.DineInRestaurants)
		catalogGroup.GET("/restaurants/:id", r.catalog.RestaurantDetails)
		catalogGroup.GET("/restaurants/:id/reviews", r.catalog.RestaurantReviews)
		catalogGroup.GET("/restaurants/:id/coupons", r.catalog.RestaurantCoupons)

		catalogGroup.GET("/banners", r.catalog.Banners)
		catalogGroup.GET("/coupons", r.catalog.Coupons)
		catalogGroup.GET("/coupons/apply", r.catalog.ApplyCoupon)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.order.Place)
		orderGroup.GET("", r.order.List)
		orderGroup.GET("/running", r.order.Running)
		orderGroup.GET("/cancellation-reasons", r.order.CancellationReasons)
		orderGroup.GET("/refund-reasons", r.order.RefundReasons)
		orderGroup.POST("/refunds", r.order.RequestRefund)
		orderGroup.GET("/payment-methods", r.order.PaymentMethods)
		orderGroup.POST("/offline-payments", r.order.SubmitOfflinePayment)
		orderGroup.PUT("/offline-payments", r.order.UpdateOfflinePayment)
		orderGroup.GET("/restaurants/:id/validate", r.order.ValidateRestaurant)
		orderGroup.GET("/:id", r.order.Details)
		orderGroup.GET("/:id/track", r.order.Track)
		orderGroup.GET("/:id/qr", r.order.TrackingQR)
		orderGroup.POST("/:id/cancel", r.order.Cancel)
		orderGroup.POST("/:id/notify", r.order.SendNotification)
		orderGroup.POST("/:id/again", r.order.OrderAgain)
	}

	walletGroup := e.Group("/wallet")
	{
		walletGroup.GET("/transactions", r.wallet.Transactions)
		walletGroup.POST("/funds", r.wallet.AddFund)
		walletGroup.GET("/bonuses", r.wallet.Bonuses)
		walletGroup.GET("/offline-payment-methods", r.wallet.OfflinePaymentMethods)
	}

	loyaltyGroup := e.Group("/loyalty")
	{
		loyaltyGroup.GET("/transactions", r.wallet.LoyaltyTransactions)
		loyaltyGroup.POST("/transfer", r.wallet.TransferPoints)
	}

	profileGroup := e.Group("/profile")
	{
		profileGroup.GET("", r.profile.Info)
		profileGroup.PUT("", r.profile.Update)
		profileGroup.DELETE("", r.profile.RemoveAccount)
		profileGroup.PUT("/interests", r.profile.UpdateInterest)
		profileGroup.GET("/suggested-foods", r.profile.SuggestedFoods)
		profileGroup.GET("/food-list", r.profile.FoodList)
	}

	e.GET("/notifications", r.profile.Notifications)
}
