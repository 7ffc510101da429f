package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/HotSeat/internal/infra/ports/http/dto"
	"github.com/qrave1/HotSeat/internal/usecase"
)

type RoomHandler struct {
	signalingUsecase usecase.SignalingUsecase
}

func NewRoomHandler(signalingUsecase usecase.SignalingUsecase) *RoomHandler {
	return &RoomHandler{signalingUsecase: signalingUsecase}
}

// ListParticipantsHandler отдает текущих участников комнаты сигналинга
func (h *RoomHandler) ListParticipantsHandler(c echo.Context) error {
	roomID := c.Param("roomId")

	return c.JSON(http.StatusOK, dto.RoomParticipantsResponse{
		RoomID:       roomID,
		Participants: h.signalingUsecase.ListMembers(roomID),
	})
}
