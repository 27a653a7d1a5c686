package handlers

import (
	"context"
	"net/http"
	"sync"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
	"heating_leads/internal/service"
	"heating_leads/internal/wizard"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockWizard serves one in-memory session and runs the real state machine.
type mockWizard struct {
	mu        sync.Mutex
	sess      models.Session
	createErr error
	getErr    error

	dispatched []wizard.Event
}

func newMockWizard() *mockWizard {
	return &mockWizard{sess: models.Session{ID: "s1", State: wizard.Initial()}}
}

func (m *mockWizard) Create(ctx context.Context) (models.Session, error) {
	return m.sess, m.createErr
}

func (m *mockWizard) setGetErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

func (m *mockWizard) Get(ctx context.Context, id string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(id)
}

func (m *mockWizard) get(id string) (models.Session, error) {
	if m.getErr != nil {
		return models.Session{}, m.getErr
	}
	if id != m.sess.ID {
		return models.Session{}, apperr.NotFound("session not found")
	}
	return m.sess, nil
}

func (m *mockWizard) Dispatch(ctx context.Context, id string, e wizard.Event) (service.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatched = append(m.dispatched, e)
	sess, err := m.get(id)
	if err != nil {
		return service.Outcome{}, err
	}
	next, effects, err := wizard.Transition(sess.State, e)
	out := service.Outcome{Session: sess, Effects: wizard.ClientEffects(effects)}
	if err != nil {
		out.Actions = wizard.AvailableEvents(sess.State)
		return out, err
	}
	m.sess.State = next
	out.Session = m.sess
	out.Summary = wizard.Summarize(next)
	out.Actions = wizard.AvailableEvents(next)
	return out, nil
}

type mockJournal struct {
	resp []models.WizardEvent
	err  error
	last service.JournalFilter
}

func (m *mockJournal) List(ctx context.Context, f service.JournalFilter) ([]models.WizardEvent, error) {
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	return newTestRouterWith(s, Options{AllowedOrigins: []string{"*"}})
}

func newTestRouterWith(s *service.Service, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(s, nil, opts).InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
