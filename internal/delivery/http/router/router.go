// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zenmap/internal/delivery/http/middleware"
	"zenmap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	LocationHandler  *handler.LocationHandler
	FriendHandler    *handler.FriendHandler
	SettingsHandler  *handler.SettingsHandler
	ProximityHandler *handler.ProximityHandler
	PlaceHandler     *handler.PlaceHandler
	ReactionHandler  *handler.ReactionHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	locationHandler  *handler.LocationHandler
	friendHandler    *handler.FriendHandler
	settingsHandler  *handler.SettingsHandler
	proximityHandler *handler.ProximityHandler
	placeHandler     *handler.PlaceHandler
	reactionHandler  *handler.ReactionHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		locationHandler:  params.LocationHandler,
		friendHandler:    params.FriendHandler,
		settingsHandler:  params.SettingsHandler,
		proximityHandler: params.ProximityHandler,
		placeHandler:     params.PlaceHandler,
		reactionHandler:  params.ReactionHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PATCH("", r.accountHandler.UpdateProfile)
		profileGroup.GET("/search", r.accountHandler.SearchProfiles)
		profileGroup.GET("/:id", r.accountHandler.GetUserProfile)
	}

	// Location routes
	locationGroup := e.Group("/location")
	locationGroup.Use(r.authMiddleware.Authenticate)
	{
		locationGroup.POST("", r.locationHandler.SubmitLocation)
		locationGroup.GET("/friends", r.locationHandler.GetVisibleLocations)
		locationGroup.GET("/history", r.locationHandler.GetHistory)
		locationGroup.GET("/history/:id", r.locationHandler.GetFriendHistory)
	}

	// Friend graph routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(r.authMiddleware.Authenticate)
	{
		friendGroup.GET("", r.friendHandler.ListFriends)
		friendGroup.DELETE("/:id", r.friendHandler.RemoveFriend)
		friendGroup.POST("/requests", r.friendHandler.SendRequest)
		friendGroup.GET("/requests/pending", r.friendHandler.PendingRequests)
		friendGroup.GET("/requests/sent", r.friendHandler.SentRequests)
		friendGroup.POST("/requests/:id/accept", r.friendHandler.AcceptRequest)
		friendGroup.POST("/requests/:id/reject", r.friendHandler.RejectRequest)
		friendGroup.DELETE("/requests/:id", r.friendHandler.CancelRequest)
		friendGroup.PUT("/:id/share", r.friendHandler.AllowShare)
		friendGroup.DELETE("/:id/share", r.friendHandler.RevokeShare)
		friendGroup.GET("/invite/qr", r.friendHandler.InviteQR)
		friendGroup.POST("/invite", r.friendHandler.AcceptInviteQR)
	}

	// Visibility settings routes
	settingsGroup := e.Group("/settings")
	settingsGroup.Use(r.authMiddleware.Authenticate)
	{
		settingsGroup.GET("", r.settingsHandler.GetSettings)
		settingsGroup.PUT("/interval", r.settingsHandler.SetUpdateInterval)
		settingsGroup.POST("/ghost", r.settingsHandler.EnableGhostMode)
		settingsGroup.DELETE("/ghost", r.settingsHandler.DisableGhostMode)
	}

	// Proximity routes
	nearbyGroup := e.Group("/nearby")
	nearbyGroup.Use(r.authMiddleware.Authenticate)
	{
		nearbyGroup.GET("", r.proximityHandler.Nearby)
	}

	bumpGroup := e.Group("/bumps")
	bumpGroup.Use(r.authMiddleware.Authenticate)
	{
		bumpGroup.POST("", r.proximityHandler.RecordBump)
		bumpGroup.GET("", r.proximityHandler.BumpHistory)
	}

	// Favorite place routes
	placeGroup := e.Group("/places")
	placeGroup.Use(r.authMiddleware.Authenticate)
	{
		placeGroup.POST("", r.placeHandler.AddPlace)
		placeGroup.GET("", r.placeHandler.ListPlaces)
		placeGroup.GET("/locate", r.placeHandler.LocatePlace)
		placeGroup.PATCH("/:id", r.placeHandler.UpdatePlace)
		placeGroup.DELETE("/:id", r.placeHandler.DeletePlace)
	}

	// Reaction routes
	reactionGroup := e.Group("/reactions")
	reactionGroup.Use(r.authMiddleware.Authenticate)
	{
		reactionGroup.POST("", r.reactionHandler.SendReaction)
		reactionGroup.GET("/received", r.reactionHandler.ReceivedReactions)
		reactionGroup.GET("/sent", r.reactionHandler.SentReactions)
	}
}
