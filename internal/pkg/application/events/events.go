package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

//go:generate moq -rm -out events_mock.go . EventSender

const InvocationEventType string = "ip-trace.invocation"
const eventSource string = "github.com/meli-challenge/ip-trace"

type InvocationMessage struct {
	IP             string    `json:"ip"`
	Country        string    `json:"country"`
	CountryCode    string    `json:"countryCode"`
	Distance       float64   `json:"distance"`
	NumberRequests float64   `json:"numberRequests"`
	Timestamp      time.Time `json:"timestamp"`
}

type EventSender interface {
	Send(ctx context.Context, message InvocationMessage) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = append(e.subscribers[n.Type], n.Subscribers...)
		}
	}

	return e
}

// Send delivers message to every subscriber of invocation events. All
// subscribers are tried even if one of them fails.
func (e *eventSender) Send(ctx context.Context, message InvocationMessage) error {
	subscribers := e.subscribers[InvocationEventType]
	if len(subscribers) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", message.IP, message.Timestamp.UnixNano()))
	event.SetTime(message.Timestamp)
	event.SetSource(eventSource)
	event.SetType(InvocationEventType)

	err = event.SetData(cloudevents.ApplicationJSON, message)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	var errs []error

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			errs = append(errs, fmt.Errorf("%s: %w", s.Endpoint, result))
		} else if !cloudevents.IsACK(result) {
			logger.Warn().Err(result).Msgf("event was not acknowledged by %s", s.Endpoint)
		}
	}

	return errors.Join(errs...)
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
