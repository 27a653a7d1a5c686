package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
	"heating_leads/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, Options{})

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func newWSServer(t *testing.T, wiz *mockWizard, origins []string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{Wizard: wiz}, nil, Options{AllowedOrigins: origins})
	r.GET("/ws/sessions/:id", h.wsSession)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, id string) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws/sessions/" + id
	q := u.Query()
	q.Set("interval_ms", "20")
	u.RawQuery = q.Encode()
	return u.String()
}

func TestWebSocket_SessionStream_InitialAndPeriodic(t *testing.T) {
	wiz := newMockWizard()
	srv := newWSServer(t, wiz, nil)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "s1"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != wsTypeSession || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var view struct {
		Session models.Session `json:"session"`
	}
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("unmarshal session: %v", err)
	}
	if view.Session.ID != "s1" || view.Session.State.View != models.ViewLanding {
		t.Fatalf("unexpected session: %+v", view.Session)
	}

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != wsTypeSession {
		t.Fatalf("expected type=session, got %+v", env)
	}
}

func TestWebSocket_UnknownSessionIs404(t *testing.T) {
	srv := newWSServer(t, newMockWizard(), nil)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(wsURL(srv, "missing"), nil)
	if err == nil {
		t.Fatalf("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 response, got %+v", resp)
	}
}

func TestWebSocket_SessionGoneSendsErrorAndCloses(t *testing.T) {
	wiz := newMockWizard()
	srv := newWSServer(t, wiz, nil)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "s1"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}

	// session expires between ticks
	wiz.setGetErr(apperr.NotFound("session not found"))

	for i := 0; i < 5; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		env = envelope{}
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("expected error envelope before close, got %v", err)
		}
		if env.Type == wsTypeError {
			break
		}
	}
	if env.Type != wsTypeError || env.Error == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}

	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	if err := conn.ReadJSON(&env); err == nil {
		t.Fatalf("expected connection to close after error")
	}
}

func TestWebSocket_RejectsForeignOrigin(t *testing.T) {
	srv := newWSServer(t, newMockWizard(), []string{"https://wizard.example"})

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	if _, _, err := dialer.Dial(wsURL(srv, "s1"), header); err == nil {
		t.Fatalf("expected origin to be rejected")
	}

	header.Set("Origin", "https://wizard.example")
	conn, _, err := dialer.Dial(wsURL(srv, "s1"), header)
	if err != nil {
		t.Fatalf("allowed origin rejected: %v", err)
	}
	_ = conn.Close()
}
