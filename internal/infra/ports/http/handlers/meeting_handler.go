package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/domain/input"
	"github.com/qrave1/HotSeat/internal/infra/adapters/postgres/repository"
	"github.com/qrave1/HotSeat/internal/infra/ports/http/dto"
	"github.com/qrave1/HotSeat/internal/usecase"
)

type MeetingHandler struct {
	meetingUsecase usecase.MeetingUsecase
}

func NewMeetingHandler(meetingUsecase usecase.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{meetingUsecase: meetingUsecase}
}

func (h *MeetingHandler) CreateMeetingHandler(c echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Title == "" || req.RoomID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and roomId are required"})
	}

	meeting, err := h.meetingUsecase.CreateMeeting(
		c.Request().Context(),
		&input.CreateMeetingInput{Title: req.Title, RoomID: req.RoomID},
	)
	if err != nil {
		slog.Error("create meeting", slog.Any(constant.Error, err), slog.String(constant.RoomID, req.RoomID))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to create meeting"})
	}

	return c.JSON(http.StatusCreated, meeting)
}

func (h *MeetingHandler) GetMeetingHandler(c echo.Context) error {
	meetingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid meeting id"})
	}

	meeting, err := h.meetingUsecase.GetMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return h.meetingLookupError(c, err)
	}

	return c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) GetMeetingByRoomHandler(c echo.Context) error {
	meeting, err := h.meetingUsecase.GetMeetingByRoom(c.Request().Context(), c.Param("roomId"))
	if err != nil {
		return h.meetingLookupError(c, err)
	}

	return c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) AddParticipantHandler(c echo.Context) error {
	meetingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid meeting id"})
	}

	var req dto.AddParticipantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	participant, err := h.meetingUsecase.AddParticipant(c.Request().Context(), &input.AddParticipantInput{
		MeetingID: meetingID,
		Name:      req.Name,
		Avatar:    req.Avatar,
	})
	if err != nil {
		return h.meetingLookupError(c, err)
	}

	return c.JSON(http.StatusCreated, participant)
}

func (h *MeetingHandler) ListParticipantsHandler(c echo.Context) error {
	meetingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid meeting id"})
	}

	participants, err := h.meetingUsecase.ListParticipants(c.Request().Context(), meetingID)
	if err != nil {
		slog.Error("list participants", slog.Any(constant.Error, err), slog.Int64(constant.MeetingID, meetingID))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list participants"})
	}

	return c.JSON(http.StatusOK, participants)
}

func (h *MeetingHandler) CheckParticipantHandler(c echo.Context) error {
	meetingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid meeting id"})
	}

	participant, err := h.meetingUsecase.FindParticipant(c.Request().Context(), meetingID, c.Param("name"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusOK, dto.ParticipantCheckResponse{Exists: false})
	case err != nil:
		slog.Error("find participant", slog.Any(constant.Error, err), slog.Int64(constant.MeetingID, meetingID))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to check participant"})
	}

	return c.JSON(http.StatusOK, dto.ParticipantCheckResponse{Exists: true, Participant: participant})
}

func (h *MeetingHandler) DeleteParticipantHandler(c echo.Context) error {
	participantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid participant id"})
	}

	err = h.meetingUsecase.RemoveParticipant(c.Request().Context(), participantID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "participant not found"})
	case err != nil:
		slog.Error("delete participant", slog.Any(constant.Error, err), slog.Int64(constant.Participant, participantID))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete participant"})
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *MeetingHandler) meetingLookupError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "meeting not found"})
	}

	slog.Error("meeting lookup", slog.Any(constant.Error, err))

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to get meeting"})
}
