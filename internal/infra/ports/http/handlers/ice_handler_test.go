package handlers

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pion/webrtc/v4"

	"github.com/qrave1/HotSeat/internal/application/config"
)

type iceServerJSON struct {
	URLs       []string `json:"urls"`
	Username   string   `json:"username"`
	Credential string   `json:"credential"`
}

func callIce(t *testing.T, h *IceHandler) []iceServerJSON {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/ice", nil), rec)

	if err := h.IceServers(c); err != nil {
		t.Fatalf("ice servers: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}

	var servers []iceServerJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &servers); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return servers
}

func TestIceHandler_StunOnly(t *testing.T) {
	cfg := &config.Config{STUNServer: webrtc.ICEServer{URLs: []string{"stun:stun.example.com:3478"}}}

	servers := callIce(t, NewIceHandler(cfg))

	if len(servers) != 1 || servers[0].URLs[0] != "stun:stun.example.com:3478" {
		t.Fatalf("unexpected servers: %+v", servers)
	}
}

func TestIceHandler_TurnCredentials(t *testing.T) {
	cfg := &config.Config{
		STUNServer: webrtc.ICEServer{URLs: []string{"stun:stun.example.com:3478"}},
		CoturnServer: config.CoturnConfig{
			Host:   "turn.example.com:3478",
			Secret: "s3cr3t",
			TTL:    time.Hour,
		},
	}

	h := NewIceHandler(cfg)
	h.now = func() time.Time { return time.Unix(1_000_000, 0) }

	servers := callIce(t, h)
	if len(servers) != 2 {
		t.Fatalf("expected stun+turn, got %+v", servers)
	}

	turn := servers[1]
	if turn.Username != "1003600" {
		t.Fatalf("username=%q", turn.Username)
	}

	mac := hmac.New(sha1.New, []byte("s3cr3t"))
	mac.Write([]byte("1003600"))
	want := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if turn.Credential != want {
		t.Fatalf("credential=%s want %s", turn.Credential, want)
	}
	if len(turn.URLs) != 2 || turn.URLs[0] != "turn:turn.example.com:3478?transport=udp" {
		t.Fatalf("urls=%v", turn.URLs)
	}
}
