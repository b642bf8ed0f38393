package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ListEventParticipants(c *ginext.Context)
	AddEventParticipant(c *ginext.Context)
	RemoveEventParticipant(c *ginext.Context)
	RemoveEventParticipantByID(c *ginext.Context)
	CreateRun(c *ginext.Context)
	GetRun(c *ginext.Context)
	ListRuns(c *ginext.Context)
	ListRunParticipants(c *ginext.Context)
	AddRunParticipant(c *ginext.Context)
	RemoveRunParticipant(c *ginext.Context)
	ListCalendar(c *ginext.Context)
	GetContent(c *ginext.Context)
	Notify(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/participants", h.ListEventParticipants)
		api.POST("/events/:id/participants", h.AddEventParticipant)
		api.DELETE("/events/:id/participants", h.RemoveEventParticipant)
		api.DELETE("/events/:id/participants/:userId", h.RemoveEventParticipantByID)

		// Runs
		api.POST("/runs", h.CreateRun)
		api.GET("/runs", h.ListRuns)
		api.GET("/runs/:id", h.GetRun)
		api.GET("/runs/:id/participants", h.ListRunParticipants)
		api.POST("/runs/:id/participants", h.AddRunParticipant)
		api.DELETE("/runs/:id/participants", h.RemoveRunParticipant)

		// External feeds
		api.GET("/calendar", h.ListCalendar)
		api.GET("/cms", h.GetContent)

		// Internal notification relay
		api.POST("/discord-notify", h.Notify)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
