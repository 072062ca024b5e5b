// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medisupply/internal/delivery/http/middleware"
	"medisupply/internal/delivery/http/router/handler"
	"medisupply/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	MedicineHandler *handler.MedicineHandler
	CartHandler     *handler.CartHandler
	PaymentHandler  *handler.PaymentHandler
	OrderHandler    *handler.OrderHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	medicineHandler *handler.MedicineHandler
	cartHandler     *handler.CartHandler
	paymentHandler  *handler.PaymentHandler
	orderHandler    *handler.OrderHandler
	activityHandler *handler.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		medicineHandler: params.MedicineHandler,
		cartHandler:     params.CartHandler,
		paymentHandler:  params.PaymentHandler,
		orderHandler:    params.OrderHandler,
		activityHandler: params.ActivityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session guard; always answers 200 with {AUTH: bool}
	e.GET("/validateToken", r.authHandler.ValidateToken)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/user/signup", r.authHandler.SignupUser)
		authGroup.POST("/user/login", r.authHandler.LoginUser)
		authGroup.POST("/company/signup", r.authHandler.SignupCompany)
		authGroup.POST("/company/login", r.authHandler.LoginCompany)
		authGroup.POST("/admin/signup", r.authHandler.SignupAdmin)
		authGroup.POST("/admin/login", r.authHandler.LoginAdmin)

		// Profile updates require a valid token for the matching role
		authGroup.POST("/user/update", r.authHandler.UpdateUserProfile,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleUser.String()))
		authGroup.POST("/company/update", r.authHandler.UpdateCompanyProfile,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleCompany.String()))
	}

	// Catalog routes
	medicineGroup := e.Group("/medicines")
	{
		medicineGroup.POST("/all", r.medicineHandler.ListMedicines)
		medicineGroup.GET("/categories/all", r.medicineHandler.ListCategories)
		medicineGroup.GET("/:id", r.medicineHandler.GetMedicine)

		// Catalog administration
		medicineGroup.POST("/import", r.medicineHandler.ImportMedicines,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
		medicineGroup.PATCH("/:id/stock", r.medicineHandler.UpdateStock,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.POST("/remove", r.cartHandler.RemoveFromCart)
		cartGroup.GET("/:userId", r.cartHandler.GetCart)
	}

	// Activity log routes that require authentication
	activityGroup := e.Group("/user-activity")
	activityGroup.Use(r.authMiddleware.Authenticate)
	{
		activityGroup.POST("/log", r.activityHandler.LogActivity)
		activityGroup.GET("/list/:userId", r.activityHandler.ListActivities)
	}

	// Quote request routes that require authentication
	quoteGroup := e.Group("/quote-request")
	quoteGroup.Use(r.authMiddleware.Authenticate)
	{
		quoteGroup.POST("", r.activityHandler.CreateQuoteRequest)
		quoteGroup.GET("/list/:userId", r.activityHandler.ListQuoteRequests)
	}

	// Payment routes
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.POST("/process", r.paymentHandler.ProcessPayment, r.authMiddleware.Authenticate)
		paymentGroup.GET("/status/:id", r.paymentHandler.GetPaymentStatus, r.authMiddleware.Authenticate)
		paymentGroup.POST("/refund/:id", r.paymentHandler.Refund,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/qr", r.orderHandler.GetOrderQR)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
		orderGroup.PATCH("/:id/payment-status", r.orderHandler.UpdatePaymentStatus,
			r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	}
}
