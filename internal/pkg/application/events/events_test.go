package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestConfig(t *testing.T) {
	is := setupTest(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml("http://notifications:8990")))

	is.NoErr(err)
	is.Equal(len(cfg.Notifications), 1)
	is.Equal(cfg.Notifications[0].ID, "invocations")
	is.Equal(cfg.Notifications[0].Subscribers[0].Endpoint, "http://notifications:8990")
}

func TestSendWithoutSubscribersIsANoop(t *testing.T) {
	is := setupTest(t)

	sender := New(nil)
	err := sender.Send(context.Background(), InvocationMessage{IP: "5.6.7.8"})

	is.NoErr(err)
}

func TestSendDeliversCloudEvent(t *testing.T) {
	is := setupTest(t)

	var eventType string
	var body []byte

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		eventType = r.Header.Get("Ce-Type")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer s.Close()

	cfg, err := LoadConfiguration(strings.NewReader(configYaml(s.URL)))
	is.NoErr(err)

	ts := time.Date(2021, 3, 17, 12, 0, 0, 0, time.UTC)
	err = New(cfg).Send(context.Background(), InvocationMessage{
		IP:             "5.6.7.8",
		Country:        "Germany",
		CountryCode:    "DEU",
		Distance:       11532,
		NumberRequests: 2,
		Timestamp:      ts,
	})
	is.NoErr(err)

	is.Equal(eventType, InvocationEventType)

	msg := InvocationMessage{}
	is.NoErr(json.Unmarshal(body, &msg))
	is.Equal(msg.Country, "Germany")
	is.Equal(msg.NumberRequests, 2.0)
	is.True(msg.Timestamp.Equal(ts))
}

func TestSendReportsUnreachableSubscriber(t *testing.T) {
	is := setupTest(t)

	s := httptest.NewServer(http.NotFoundHandler())
	url := s.URL
	s.Close()

	cfg, err := LoadConfiguration(strings.NewReader(configYaml(url)))
	is.NoErr(err)

	err = New(cfg).Send(context.Background(), InvocationMessage{IP: "5.6.7.8", Timestamp: time.Now()})
	is.True(err != nil)
}

func configYaml(endpoint string) string {
	return `
notifications:
  - id: invocations
    name: Traced invocations
    type: ip-trace.invocation
    subscribers:
    - endpoint: ` + endpoint + `
`
}

func setupTest(t *testing.T) *is.I {
	is := is.New(t)

	return is
}
