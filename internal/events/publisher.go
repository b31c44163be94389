package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	SubjectPreferencesUpdated = "trippy.preferences.updated"
	SubjectItineraryGenerated = "trippy.itinerary.generated"
)

type PreferencesUpdated struct {
	UserID          string   `json:"user_id"`
	City            string   `json:"city"`
	Interests       []string `json:"interests"`
	Recommendations []string `json:"recommendations,omitempty"`
	UpdatedAt       int64    `json:"updated_at"`
}

type ItineraryGenerated struct {
	UserID      string `json:"user_id,omitempty"`
	City        string `json:"city"`
	Provider    string `json:"provider"`
	Outcome     string `json:"outcome"`
	StopsParsed int    `json:"stops_parsed"`
	StopsMapped int    `json:"stops_mapped"`
	GeneratedAt int64  `json:"generated_at"`
}

// Publisher is best-effort: failures are logged by the implementation and
// never reach the caller.
type Publisher interface {
	Publish(subject string, payload any)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(string, any) {}

type NATSPublisher struct {
	conn   *nats.Conn
	logger *zap.Logger
}

func Connect(url string, logger *zap.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("trippy"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s: %w", url, err)
	}
	return NewNATSPublisher(conn, logger), nil
}

func NewNATSPublisher(conn *nats.Conn, logger *zap.Logger) *NATSPublisher {
	return &NATSPublisher{conn: conn, logger: logger}
}

func (p *NATSPublisher) Publish(subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Warn("event encode failed", zap.String("subject", subject), zap.Error(err))
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("event publish failed", zap.String("subject", subject), zap.Error(err))
	}
}

// Close flushes pending messages before closing the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
