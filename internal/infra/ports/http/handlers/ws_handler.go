package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/qrave1/HotSeat/internal/application/config"
	"github.com/qrave1/HotSeat/internal/application/constant"
	"github.com/qrave1/HotSeat/internal/application/metric"
	"github.com/qrave1/HotSeat/internal/domain/events"
	"github.com/qrave1/HotSeat/internal/infra/adapters/memory"
	"github.com/qrave1/HotSeat/internal/usecase"
)

var errMalformed = errors.New("malformed message")

type WebSocketHandler struct {
	cfg      config.WebSocketConfig
	upgrader *websocket.Upgrader

	signalingUsecase    usecase.SignalingUsecase
	meetingPhaseUsecase usecase.MeetingPhaseUsecase

	wsConnRepo memory.WebsocketConnectionRepository
}

func NewWebSocketHandler(
	cfg *config.Config,
	signalingUsecase usecase.SignalingUsecase,
	meetingPhaseUsecase usecase.MeetingPhaseUsecase,
	wsConnRepo memory.WebsocketConnectionRepository,
) *WebSocketHandler {
	return &WebSocketHandler{
		cfg: cfg.WebSocket,
		upgrader: &websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if cfg.Debug {
					return true
				}

				return r.Header.Get("Origin") == cfg.Domain
			},
		},
		signalingUsecase:    signalingUsecase,
		meetingPhaseUsecase: meetingPhaseUsecase,
		wsConnRepo:          wsConnRepo,
	}
}

func (h *WebSocketHandler) Handle(c echo.Context) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"WebSocket upgrade error",
			slog.Any(constant.Error, err),
		)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()
	connID := uuid.NewString()

	h.wsConnRepo.Add(connID, ws)
	h.signalingUsecase.HandleConnect(ctx, connID)
	defer h.disconnect(connID)

	slog.Debug("websocket connected", slog.String(constant.ConnID, connID))

	ws.SetReadLimit(h.cfg.ReadLimit)
	if err = ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait)); err != nil {
		return err
	}
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	limiter := rate.NewLimiter(rate.Limit(h.cfg.MessageRate), h.cfg.MessageBurst)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			h.handleWebsocketError(connID, err)
			return nil
		}

		if !limiter.Allow() {
			metric.IncrementWSMessagesDropped(metric.DropReasonRateLimited)
			slog.Warn("websocket message rate limited", slog.String(constant.ConnID, connID))
			continue
		}

		signalMessage := new(events.Message)

		if err = json.Unmarshal(msg, signalMessage); err != nil {
			metric.IncrementWSMessagesDropped(metric.DropReasonMalformed)
			slog.Warn("unmarshal websocket message", slog.Any(constant.Error, err), slog.String(constant.ConnID, connID))
			continue
		}

		if err = h.handleMessage(ctx, connID, signalMessage); err != nil {
			h.logMessageError(connID, signalMessage.Type, err)
		}
	}
}

// disconnect: сначала комната сигналинга, затем встречи, затем транспорт
func (h *WebSocketHandler) disconnect(connID string) {
	ctx := context.Background()

	h.signalingUsecase.HandleDisconnect(ctx, connID)
	h.meetingPhaseUsecase.HandleDisconnect(ctx, connID)
	h.wsConnRepo.Remove(connID)
}

func (h *WebSocketHandler) handleMessage(
	ctx context.Context,
	connID string,
	msg *events.Message,
) error {
	switch msg.Type {
	case events.TypeJoinRoom:
		var joinEvent events.JoinRoomEvent

		if err := decode(msg, &joinEvent); err != nil {
			return err
		}

		if err := h.signalingUsecase.HandleJoin(ctx, connID, joinEvent); err != nil {
			return fmt.Errorf("handle join: %w", err)
		}

	case events.TypeLeaveRoom:
		roomID, err := decodeRoomID(msg)
		if err != nil && len(msg.Data) > 0 {
			return err
		}

		h.signalingUsecase.HandleLeave(ctx, connID, roomID)

	case events.TypeGetRoomParticipants:
		roomID, err := decodeRoomID(msg)
		if err != nil {
			return err
		}

		h.signalingUsecase.HandleGetParticipants(ctx, connID, roomID)

	case events.TypeWebRTCOffer, events.TypeWebRTCAnswer, events.TypeWebRTCICECandidate:
		kind, _ := events.RelayKindFromType(msg.Type)

		var relayEvent events.RelayEvent

		if err := decode(msg, &relayEvent); err != nil {
			return err
		}

		if err := h.signalingUsecase.HandleRelay(ctx, connID, kind, relayEvent); err != nil {
			return fmt.Errorf("handle relay: %w", err)
		}

	case events.TypeUpdateMediaState:
		var mediaEvent events.MediaStateEvent

		if err := decode(msg, &mediaEvent); err != nil {
			return err
		}

		h.signalingUsecase.HandleMediaState(ctx, connID, mediaEvent)

	case events.TypeJoinMeeting:
		roomID, err := decodeRoomID(msg)
		if err != nil {
			return err
		}

		if err = h.meetingPhaseUsecase.JoinMeeting(ctx, connID, roomID); err != nil {
			return fmt.Errorf("join meeting: %w", err)
		}

	case events.TypeLeaveMeeting:
		roomID, err := decodeRoomID(msg)
		if err != nil {
			return err
		}

		h.meetingPhaseUsecase.LeaveMeeting(ctx, connID, roomID)

	case events.TypePhaseChange:
		var phaseEvent events.PhaseChangeEvent

		if err := decode(msg, &phaseEvent); err != nil {
			return err
		}

		if err := h.meetingPhaseUsecase.ChangePhase(ctx, connID, phaseEvent); err != nil {
			return fmt.Errorf("change phase: %w", err)
		}

	case events.TypeParticipantStatusChange:
		var statusEvent events.ParticipantStatusEvent

		if err := decode(msg, &statusEvent); err != nil {
			return err
		}

		if err := h.meetingPhaseUsecase.UpdateParticipantStatus(ctx, connID, statusEvent); err != nil {
			return fmt.Errorf("update participant status: %w", err)
		}

	case events.TypeTimerSync:
		var timerEvent events.TimerSyncEvent

		if err := decode(msg, &timerEvent); err != nil {
			return err
		}

		if err := h.meetingPhaseUsecase.SyncTimer(ctx, connID, timerEvent); err != nil {
			return fmt.Errorf("sync timer: %w", err)
		}

	case events.TypePing:
		h.signalingUsecase.HandlePing(ctx, connID)

	default:
		return fmt.Errorf("%w: unknown message type", errMalformed)
	}

	return nil
}

func decode(msg *events.Message, v any) error {
	if err := json.Unmarshal(msg.Data, v); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", errMalformed, msg.Type, err)
	}

	return nil
}

// decodeRoomID принимает и строку "room", и объект {"roomId": "room"}
func decodeRoomID(msg *events.Message) (string, error) {
	var roomID string
	if err := json.Unmarshal(msg.Data, &roomID); err == nil {
		return roomID, nil
	}

	var roomEvent events.RoomEvent
	if err := decode(msg, &roomEvent); err != nil {
		return "", err
	}

	return roomEvent.RoomID, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, errMalformed) ||
		errors.Is(err, usecase.ErrRoomIDRequired) ||
		errors.Is(err, usecase.ErrInvalidPhase) ||
		errors.Is(err, usecase.ErrInvalidStatus) ||
		errors.Is(err, events.ErrTargetRequired)
}

func (h *WebSocketHandler) logMessageError(connID, messageType string, err error) {
	if isMalformed(err) {
		metric.IncrementWSMessagesDropped(metric.DropReasonMalformed)

		slog.Warn(
			"ignore malformed message",
			slog.Any(constant.Error, err),
			slog.String(constant.ConnID, connID),
			slog.String(constant.MessageType, messageType),
		)
		return
	}

	slog.Error(
		"handle message",
		slog.Any(constant.Error, err),
		slog.String(constant.ConnID, connID),
		slog.String(constant.MessageType, messageType),
	)
}

func (h *WebSocketHandler) handleWebsocketError(connID string, err error) {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		switch closeErr.Code {
		case websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived:
			slog.Info("client disconnected from websocket", slog.String(constant.ConnID, connID))
		default:
			slog.Error("websocket close error", slog.Any(constant.Error, err), slog.String(constant.ConnID, connID))
		}
	} else {
		slog.Warn(
			"websocket read",
			slog.Any(constant.Error, err),
			slog.String(constant.ConnID, connID),
		)
	}
}
