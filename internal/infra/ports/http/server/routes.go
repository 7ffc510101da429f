package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/qrave1/HotSeat/internal/infra/ports/http/handlers"
	"github.com/qrave1/HotSeat/internal/infra/ports/http/middleware"
)

func New(
	iceHandler *handlers.IceHandler,
	meetingHandler *handlers.MeetingHandler,
	roomHandler *handlers.RoomHandler,
	wsHandler *handlers.WebSocketHandler,
) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())

	api := e.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ice", iceHandler.IceServers)

			v1.GET("/ws", wsHandler.Handle)

			v1.GET("/rooms/:roomId/participants", roomHandler.ListParticipantsHandler)

			v1.POST("/meetings", meetingHandler.CreateMeetingHandler)
			v1.GET("/meetings/:id", meetingHandler.GetMeetingHandler)
			v1.GET("/meetings/room/:roomId", meetingHandler.GetMeetingByRoomHandler)
			v1.POST("/meetings/:id/participants", meetingHandler.AddParticipantHandler)
			v1.GET("/meetings/:id/participants", meetingHandler.ListParticipantsHandler)
			v1.GET("/meetings/:id/participants/check/:name", meetingHandler.CheckParticipantHandler)

			v1.DELETE("/participants/:id", meetingHandler.DeleteParticipantHandler)
		}
	}

	return e
}
