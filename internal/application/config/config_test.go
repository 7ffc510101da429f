package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.Port != "3000" {
		t.Fatalf("Port=%q, want %q", cfg.Port, "3000")
	}
	if cfg.WebSocket.PongWait != 60*time.Second || cfg.WebSocket.PingPeriod != 30*time.Second {
		t.Fatalf("unexpected ws timings: %+v", cfg.WebSocket)
	}
	if len(cfg.STUNServer.URLs) != 1 || cfg.STUNServer.URLs[0] != "stun:stun.l.google.com:19302" {
		t.Fatalf("unexpected stun server: %+v", cfg.STUNServer)
	}
	if cfg.CoturnServer.Enabled() {
		t.Fatalf("coturn must be disabled without COTURN_HOST")
	}
}

func TestNew_RejectsPingPeriodNotBelowPongWait(t *testing.T) {
	t.Setenv("WS_PONG_WAIT", "10s")
	t.Setenv("WS_PING_PERIOD", "10s")

	if _, err := New(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNew_Coturn(t *testing.T) {
	t.Setenv("COTURN_HOST", "turn.example.com:3478")
	t.Setenv("COTURN_SECRET", "s3cret")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !cfg.CoturnServer.Enabled() {
		t.Fatalf("coturn must be enabled")
	}

	urls := cfg.CoturnServer.URLs()
	if len(urls) != 2 || urls[0] != "turn:turn.example.com:3478?transport=udp" || urls[1] != "turn:turn.example.com:3478?transport=tcp" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		Name:     "hotseat",
		SSL:      "disable",
	}

	if got, want := p.DSN(), "postgresql://u:p@db:5433/hotseat?sslmode=disable"; got != want {
		t.Fatalf("DSN=%q, want %q", got, want)
	}

	p.URL = "postgres://override"
	if got := p.DSN(); got != "postgres://override" {
		t.Fatalf("DSN=%q, want URL override", got)
	}
}
