package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ArthurBosch/online-cinema-backend/internal/handler"
	"github.com/ArthurBosch/online-cinema-backend/internal/middleware"
)

// RegisterRoutes 注册路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	secret := h.Config.AppSecret

	api := r.Group("/api")

	// 电影
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/by-slug/:slug", h.MovieBySlug)
		movies.GET("/by-actor/:actorId", h.MoviesByActor)
		movies.POST("/by-genres", h.MoviesByGenres)
		movies.GET("/most-popular", h.MostPopularMovies)
		movies.PUT("/update-count-opened", h.UpdateCountOpened)

		admin := movies.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		{
			admin.GET("/:id", h.GetMovie)
			admin.POST("", h.CreateMovie)
			admin.PUT("/:id", h.UpdateMovie)
			admin.DELETE("/:id", h.DeleteMovie)
		}
	}

	// 分类
	genres := api.Group("/genres")
	{
		genres.GET("", h.ListGenres)
		genres.GET("/by-slug/:slug", h.GenreBySlug)
		genres.GET("/collections", h.GenreCollections)

		admin := genres.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		{
			admin.GET("/:id", h.GetGenre)
			admin.POST("", h.CreateGenre)
			admin.PUT("/:id", h.UpdateGenre)
			admin.DELETE("/:id", h.DeleteGenre)
		}
	}

	// 演员
	actors := api.Group("/actors")
	{
		actors.GET("", h.ListActors)
		actors.GET("/by-slug/:slug", h.ActorBySlug)

		admin := actors.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		{
			admin.GET("/:id", h.GetActor)
			admin.POST("", h.CreateActor)
			admin.PUT("/:id", h.UpdateActor)
			admin.DELETE("/:id", h.DeleteActor)
		}
	}

	// 用户
	users := api.Group("/users")
	{
		profile := users.Group("/profile", middleware.RequireAuth(secret))
		{
			profile.GET("", h.GetProfile)
			profile.PUT("", h.UpdateProfile)
			profile.GET("/favourites", h.GetFavourites)
			profile.PUT("/favourites", h.ToggleFavourite)
		}

		admin := users.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		{
			admin.GET("/count", h.GetUserCount)
			admin.GET("", h.ListUsers)
			admin.GET("/:id", h.GetUser)
			admin.PUT("/:id", h.UpdateUser)
			admin.DELETE("/:id", h.DeleteUser)
		}
	}
}
