// Package api assembles the HTTP surface of the admin gateway: routing,
// middleware and the global error policy.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/lanhcare/admin-gateway/docs"
	"github.com/lanhcare/admin-gateway/internal/api/handler"
	"github.com/lanhcare/admin-gateway/internal/api/middleware"
	"github.com/lanhcare/admin-gateway/internal/core/ports"
)

// Handlers bundles every section handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Shell        *handler.ShellHandler
	Dashboard    *handler.DashboardHandler
	Users        *handler.UsersHandler
	Posts        *handler.PostsHandler
	Comments     *handler.CommentsHandler
	Hospitals    *handler.HospitalsHandler
	ServicePlans *handler.ServicePlansHandler
	Revenue      *handler.RevenueHandler
	ICD11        *handler.ICD11Handler
	Nutrition    *handler.NutritionHandler
	Dietary      *handler.DietaryRestrictionsHandler
	Exercise     *handler.ExerciseTypesHandler
	Specialties  *handler.MedicalSpecialtiesHandler
	Health       *handler.HealthHandler
}

// NewRouter builds the echo instance with all middleware and routes mounted.
// The login and health endpoints are public; everything under /admin sits
// behind the session guard.
func NewRouter(h Handlers, store ports.SessionStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("lanhcare_gateway"))

	// Public surface.
	e.GET("/healthz", h.Health.Live)
	e.GET("/readyz", h.Health.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.POST("/login", h.Auth.Login)
	e.POST("/logout", h.Auth.Logout)

	// Admin surface, session-guarded.
	admin := e.Group("/admin", middleware.Guard(store, log))

	admin.GET("/shell", h.Shell.Shell)
	admin.GET("/session", h.Auth.Session)
	admin.GET("/dashboard", h.Dashboard.Stats)

	users := admin.Group("/users")
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.GET("/:id", h.Users.Get)
	users.PUT("/:id", h.Users.Update)
	users.PATCH("/:id/status", h.Users.ChangeStatus)
	users.DELETE("/:id", h.Users.Delete)

	posts := admin.Group("/posts")
	posts.GET("", h.Posts.List)
	posts.GET("/statistics", h.Posts.Stats)
	posts.GET("/:id", h.Posts.Get)
	posts.PATCH("/:id/approve", h.Posts.Approve)
	posts.PATCH("/:id/reject", h.Posts.Reject)
	posts.PATCH("/:id/restore", h.Posts.Restore)
	posts.DELETE("/:id", h.Posts.Delete)

	comments := admin.Group("/comments")
	comments.GET("", h.Comments.List)
	comments.GET("/:id", h.Comments.Get)
	comments.PATCH("/:id/approve", h.Comments.Approve)
	comments.PATCH("/:id/reject", h.Comments.Reject)
	comments.PATCH("/:id/restore", h.Comments.Restore)
	comments.DELETE("/:id", h.Comments.Delete)

	hospitals := admin.Group("/hospitals")
	hospitals.GET("", h.Hospitals.List)
	hospitals.POST("", h.Hospitals.Create)
	hospitals.GET("/:id", h.Hospitals.Get)
	hospitals.PUT("/:id", h.Hospitals.Update)
	hospitals.DELETE("/:id", h.Hospitals.Delete)

	plans := admin.Group("/service-plans")
	plans.GET("", h.ServicePlans.List)
	plans.POST("", h.ServicePlans.Create)
	plans.GET("/:id", h.ServicePlans.Get)
	plans.PUT("/:id", h.ServicePlans.Update)
	plans.PATCH("/:id/status", h.ServicePlans.ChangeStatus)
	plans.DELETE("/:id", h.ServicePlans.Delete)

	revenue := admin.Group("/revenue")
	revenue.GET("/transactions", h.Revenue.Transactions)
	revenue.POST("/transactions", h.Revenue.CreateTransaction)
	revenue.GET("/transactions/:id", h.Revenue.Transaction)
	revenue.PATCH("/transactions/:id/status", h.Revenue.ChangeTransactionStatus)
	revenue.GET("/statistics", h.Revenue.Statistics)
	revenue.GET("/export", h.Revenue.Export)

	// ICD-11 chapters and codes are URI-keyed; the detail and update routes
	// take ?uri= instead of a path parameter because WHO URIs contain
	// slashes.
	icd := admin.Group("/icd11")
	icd.GET("/chapters", h.ICD11.Chapters)
	icd.POST("/chapters", h.ICD11.CreateChapter)
	icd.GET("/chapters/item", h.ICD11.Chapter)
	icd.PUT("/chapters/item", h.ICD11.UpdateChapter)
	icd.GET("/codes", h.ICD11.Codes)
	icd.POST("/codes", h.ICD11.CreateCode)
	icd.GET("/codes/item", h.ICD11.Code)
	icd.PUT("/codes/item", h.ICD11.UpdateCode)
	icd.GET("/translations", h.ICD11.Translations)
	icd.POST("/translations", h.ICD11.CreateTranslation)
	icd.GET("/translations/:id", h.ICD11.Translation)
	icd.PUT("/translations/:id", h.ICD11.UpdateTranslation)

	food := admin.Group("/food-items")
	food.GET("", h.Nutrition.FoodItems)
	food.POST("", h.Nutrition.CreateFoodItem)
	food.GET("/:id", h.Nutrition.FoodItem)
	food.PUT("/:id", h.Nutrition.UpdateFoodItem)
	food.DELETE("/:id", h.Nutrition.DeleteFoodItem)

	foodTypes := admin.Group("/food-types")
	foodTypes.GET("", h.Nutrition.FoodTypes)
	foodTypes.POST("", h.Nutrition.CreateFoodType)
	foodTypes.PUT("/:id", h.Nutrition.UpdateFoodType)
	foodTypes.DELETE("/:id", h.Nutrition.DeleteFoodType)

	nutrients := admin.Group("/nutrients")
	nutrients.GET("", h.Nutrition.Nutrients)
	nutrients.POST("", h.Nutrition.CreateNutrient)
	nutrients.GET("/:id", h.Nutrition.Nutrient)
	nutrients.PUT("/:id", h.Nutrition.UpdateNutrient)
	nutrients.DELETE("/:id", h.Nutrition.DeleteNutrient)

	dietary := admin.Group("/dietary-restrictions")
	dietary.GET("", h.Dietary.List)
	dietary.POST("", h.Dietary.Create)
	dietary.GET("/:id", h.Dietary.Get)
	dietary.PUT("/:id", h.Dietary.Update)
	dietary.PATCH("/:id/status", h.Dietary.ChangeStatus)
	dietary.DELETE("/:id", h.Dietary.Delete)

	exercise := admin.Group("/exercise-types")
	exercise.GET("", h.Exercise.List)
	exercise.POST("", h.Exercise.Create)
	exercise.GET("/:id", h.Exercise.Get)
	exercise.PUT("/:id", h.Exercise.Update)
	exercise.PATCH("/:id/restore", h.Exercise.Restore)
	exercise.DELETE("/:id", h.Exercise.Delete)

	specialties := admin.Group("/medical-specialties")
	specialties.GET("", h.Specialties.List)
	specialties.POST("", h.Specialties.Create)
	specialties.GET("/:id", h.Specialties.Get)
	specialties.PUT("/:id", h.Specialties.Update)
	specialties.PATCH("/:id/status", h.Specialties.ChangeStatus)
	specialties.DELETE("/:id", h.Specialties.Delete)

	return e
}
