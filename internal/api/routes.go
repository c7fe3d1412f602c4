package api

import (
	"net/http"

	"coachdesk/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	clientService service.ClientService,
	exerciseService service.ExerciseService,
	workoutService service.WorkoutService,
	mealService service.MealService,
	pricingService service.PricingService,
	formService service.FormService,
	pageService service.PageService,
	dashboardService service.DashboardService,
	mediaService service.MediaService,
) {

	authHandler := NewAuthHandler(authService)
	clientHandler := NewClientHandler(clientService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	workoutHandler := NewWorkoutHandler(workoutService)
	mealHandler := NewMealHandler(mealService)
	pricingHandler := NewPricingHandler(pricingService)
	formHandler := NewFormHandler(formService)
	pageHandler := NewPageHandler(pageService)
	dashboardHandler := NewDashboardHandler(dashboardService)
	mediaHandler := NewMediaHandler(mediaService)
	publicHandler := NewPublicHandler(pageService, formService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public surface: no auth. Prospects read pages/forms and submit
		// intake forms without an account.
		publicGroup := apiV1.Group("/public")
		{
			publicGroup.GET("/pages/:slug", publicHandler.GetPageBySlug)
			publicGroup.GET("/forms/:formId", publicHandler.GetForm)
			publicGroup.POST("/forms/:formId/submissions", publicHandler.SubmitForm)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			coachID, err := getCoachIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get coach ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"coachId": coachID.Hex()})
		})

		protected.GET("/dashboard", dashboardHandler.GetStats)

		clientGroup := protected.Group("/clients")
		{
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("", clientHandler.GetClients)
			clientGroup.GET("/:clientId", clientHandler.GetClient)
			clientGroup.PATCH("/:clientId", clientHandler.UpdateClient)
			clientGroup.GET("/:clientId/progress", clientHandler.GetClientProgress)
			clientGroup.POST("/:clientId/progress", clientHandler.AddClientProgress)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
		}

		splitGroup := protected.Group("/splits")
		{
			splitGroup.POST("", workoutHandler.CreateSplit)
			splitGroup.GET("", workoutHandler.GetSplits)
		}

		mealGroup := protected.Group("/meals")
		{
			mealGroup.POST("", mealHandler.CreateMeal)
			mealGroup.GET("", mealHandler.GetMeals)
		}

		mealPlanGroup := protected.Group("/meal-plans")
		{
			mealPlanGroup.POST("", mealHandler.CreateMealPlan)
			mealPlanGroup.GET("", mealHandler.GetMealPlans)
		}

		pricingGroup := protected.Group("/pricing-plans")
		{
			pricingGroup.POST("", pricingHandler.CreatePricingPlan)
			pricingGroup.GET("", pricingHandler.GetPricingPlans)
		}

		formGroup := protected.Group("/forms")
		{
			formGroup.POST("", formHandler.CreateForm)
			formGroup.GET("", formHandler.GetForms)
			formGroup.GET("/:formId/submissions", formHandler.GetSubmissions)
		}
		protected.PATCH("/submissions/:submissionId", formHandler.UpdateSubmission)

		pageGroup := protected.Group("/page")
		{
			pageGroup.PUT("", pageHandler.SavePage)
			pageGroup.GET("", pageHandler.GetMyPage)
		}

		mediaGroup := protected.Group("/media")
		{
			mediaGroup.POST("/uploads", mediaHandler.RequestUpload)
			mediaGroup.GET("/download-url", mediaHandler.GetDownloadURL)
			mediaGroup.DELETE("/objects", mediaHandler.DeleteObject)
		}
	}
}
