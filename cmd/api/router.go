package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"filmorate-backend/internal/shared/middleware"
	"filmorate-backend/internal/shared/response"
	"filmorate-backend/pkg/container"
)

// SetupRouter wires the middleware chain and the route table.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	router.GET("/health", func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			response.Error(ctx, http.StatusServiceUnavailable, "storage is unavailable")
			return
		}
		response.OK(ctx, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	films := router.Group("/films")
	{
		films.POST("", c.FilmHandler.Create)
		films.PUT("", c.FilmHandler.Update)
		films.GET("", c.FilmHandler.GetAll)
		films.GET("/popular", c.FilmHandler.GetPopular)
		films.GET("/:id", c.FilmHandler.GetByID)
		films.DELETE("/:id", c.FilmHandler.Delete)
		films.PUT("/:id/like/:userId", c.FilmHandler.AddLike)
		films.DELETE("/:id/like/:userId", c.FilmHandler.RemoveLike)
	}

	users := router.Group("/users")
	{
		users.POST("", c.UserHandler.Create)
		users.PUT("", c.UserHandler.Update)
		users.GET("", c.UserHandler.GetAll)
		users.GET("/:id", c.UserHandler.GetByID)
		users.DELETE("/:id", c.UserHandler.Delete)
		users.PUT("/:id/friends/:friendId", c.UserHandler.AddFriend)
		users.DELETE("/:id/friends/:friendId", c.UserHandler.RemoveFriend)
		users.GET("/:id/friends", c.UserHandler.GetFriends)
		users.GET("/:id/friends/common/:otherId", c.UserHandler.GetCommonFriends)
	}

	genres := router.Group("/genres")
	{
		genres.GET("", c.CatalogHandler.GetAllGenres)
		genres.GET("/:id", c.CatalogHandler.GetGenreByID)
	}

	mpa := router.Group("/mpa")
	{
		mpa.GET("", c.CatalogHandler.GetAllRatings)
		mpa.GET("/:id", c.CatalogHandler.GetRatingByID)
	}

	return router
}
