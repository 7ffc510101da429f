package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pion/webrtc/v4"

	"github.com/qrave1/HotSeat/internal/application/config"
)

type IceHandler struct {
	cfg *config.Config
	now func() time.Time
}

func NewIceHandler(cfg *config.Config) *IceHandler {
	return &IceHandler{cfg: cfg, now: time.Now}
}

// IceServers выдает STUN и, если настроен coturn, TURN с временными кредами
func (h *IceHandler) IceServers(c echo.Context) error {
	servers := []webrtc.ICEServer{h.cfg.STUNServer}

	if h.cfg.CoturnServer.Enabled() {
		servers = append(servers, h.turnServer())
	}

	return c.JSON(http.StatusOK, servers)
}

// turnServer формирует креды по схеме coturn use-auth-secret: username = время истечения
func (h *IceHandler) turnServer() webrtc.ICEServer {
	expiration := h.now().Add(h.cfg.CoturnServer.TTL).Unix()
	username := strconv.FormatInt(expiration, 10)

	// Создаём HMAC-SHA1 с использованием static-auth-secret
	mac := hmac.New(sha1.New, []byte(h.cfg.CoturnServer.Secret))
	mac.Write([]byte(username))
	password := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return webrtc.ICEServer{
		URLs:       h.cfg.CoturnServer.URLs(),
		Username:   username,
		Credential: password,
	}
}
