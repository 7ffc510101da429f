package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pion/webrtc/v4"
)

type Config struct {
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"3000"`
	MetricPort string `env:"METRIC_PORT" envDefault:"9090"`
	Domain     string `env:"DOMAIN" envDefault:"http://localhost:3000"`

	STUNServer webrtc.ICEServer

	STUNURL      string `env:"STUN_URL" envDefault:"stun:stun.l.google.com:19302"`
	CoturnServer CoturnConfig
	Postgres     PostgresConfig
	WebSocket    WebSocketConfig
}

type PostgresConfig struct {
	URL string `env:"POSTGRES_URL"`

	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Name     string `env:"POSTGRES_NAME" envDefault:"hotseat"`
	SSL      string `env:"POSTGRES_SSL" envDefault:"disable"`
}

func (p *PostgresConfig) DSN() string {
	if p.URL != "" {
		return p.URL
	}

	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.Name,
		p.SSL,
	)
}

// CoturnConfig - TURN опционален, без COTURN_HOST клиенты получают только STUN
type CoturnConfig struct {
	Host string `env:"COTURN_HOST"`

	// Secret - static-auth-secret coturn, нужен для генерации временных кредов для фронта
	Secret string        `env:"COTURN_SECRET"`
	TTL    time.Duration `env:"COTURN_CREDENTIALS_TTL" envDefault:"1h"`
}

func (c *CoturnConfig) Enabled() bool {
	return c.Host != "" && c.Secret != ""
}

func (c *CoturnConfig) URLs() []string {
	return []string{
		fmt.Sprintf("turn:%s?transport=udp", c.Host),
		fmt.Sprintf("turn:%s?transport=tcp", c.Host),
	}
}

type WebSocketConfig struct {
	PongWait   time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	PingPeriod time.Duration `env:"WS_PING_PERIOD" envDefault:"30s"`
	WriteWait  time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	ReadLimit  int64         `env:"WS_READ_LIMIT" envDefault:"65536"`
	SendBuffer int           `env:"WS_SEND_BUFFER" envDefault:"256"`

	// Лимит входящих сообщений на одно соединение
	MessageRate  float64 `env:"WS_MESSAGE_RATE" envDefault:"50"`
	MessageBurst int     `env:"WS_MESSAGE_BURST" envDefault:"100"`
}

func New() (*Config, error) {
	// .env опционален, переменные окружения имеют приоритет
	_ = godotenv.Load()

	c, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if c.WebSocket.PingPeriod >= c.WebSocket.PongWait {
		return nil, fmt.Errorf("WS_PING_PERIOD (%s) must be less than WS_PONG_WAIT (%s)", c.WebSocket.PingPeriod, c.WebSocket.PongWait)
	}

	c.STUNServer = webrtc.ICEServer{
		URLs: []string{c.STUNURL},
	}

	return &c, nil
}
