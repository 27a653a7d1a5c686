package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"heating_leads/internal/apperr"
	"heating_leads/internal/logger"
	"heating_leads/internal/models"
	"heating_leads/internal/repository"
	"heating_leads/internal/wizard"

	"github.com/google/uuid"
)

type WizardService struct {
	sessions repository.SessionRepo
	events   repository.EventRepo
	leads    LeadSink
	log      *logger.Logger
	locks    *keyedMutex
	now      func() time.Time
}

func NewWizardService(sessions repository.SessionRepo, events repository.EventRepo, leads LeadSink, log *logger.Logger) *WizardService {
	return &WizardService{
		sessions: sessions,
		events:   events,
		leads:    leads,
		log:      log,
		locks:    newKeyedMutex(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new session on the landing view and logs CREATED.
func (s *WizardService) Create(ctx context.Context) (models.Session, error) {
	now := s.now()
	sess := models.Session{
		ID:        uuid.NewString(),
		State:     wizard.Initial(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return models.Session{}, apperr.Internal("could not create session", err).WithOp("create")
	}
	s.journal(ctx, models.WizardEvent{
		SessionID:   sess.ID,
		OccurredAt:  now,
		Type:        models.EventCreated,
		Description: "Session created",
	})
	return sess, nil
}

func (s *WizardService) Get(ctx context.Context, id string) (models.Session, error) {
	sess, err := s.sessions.Load(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return models.Session{}, apperr.NotFound("session not found").WithOp("get")
		}
		return models.Session{}, apperr.Internal("could not load session", err).WithOp("get")
	}
	return sess, nil
}

// Dispatch applies e to the session. Events for one session are serialized.
// A rejected event returns the unchanged session in the Outcome together
// with the validation error.
func (s *WizardService) Dispatch(ctx context.Context, id string, e wizard.Event) (Outcome, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.Get(ctx, id)
	if err != nil {
		return Outcome{}, err
	}

	next, effects, err := wizard.Transition(sess.State, e)
	if err != nil {
		return outcomeOf(sess, effects), err
	}

	prevView := sess.State.View
	sess.State = next
	sess.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return Outcome{}, apperr.Internal("could not save session", err).WithOp(string(e.Type))
	}

	s.journal(ctx, models.WizardEvent{
		SessionID:   sess.ID,
		OccurredAt:  sess.UpdatedAt,
		Type:        strings.ToUpper(string(e.Type)),
		Description: describe(e.Type, prevView, next),
		Metadata:    transitionMeta(prevView, next),
	})

	for _, eff := range effects {
		if eff.Kind == wizard.EffectSubmitLead {
			s.submitLead(ctx, sess)
		}
	}
	return outcomeOf(sess, effects), nil
}

func (s *WizardService) submitLead(ctx context.Context, sess models.Session) {
	st := sess.State
	if st.Contact == nil || st.Result == nil {
		s.log.Errorw("lead_incomplete", "session_id", sess.ID)
		return
	}
	lead := models.Lead{
		ID:          uuid.NewString(),
		SessionID:   sess.ID,
		SubmittedAt: sess.UpdatedAt,
		Contact:     *st.Contact,
		Input:       st.Input,
		Result:      *st.Result,
	}
	if err := s.leads.Submit(ctx, lead); err != nil {
		s.log.Errorw("lead_submit_failed", "session_id", sess.ID, "lead_id", lead.ID, "err", err)
	}
}

// journal failures never fail the visitor's request.
func (s *WizardService) journal(ctx context.Context, ev models.WizardEvent) {
	if err := s.events.Append(ctx, ev); err != nil {
		s.log.Warnw("journal_append_failed", "session_id", ev.SessionID, "type", ev.Type, "err", err)
	}
}

func outcomeOf(sess models.Session, effects []wizard.Effect) Outcome {
	return Outcome{
		Session: sess,
		Effects: wizard.ClientEffects(effects),
		Summary: wizard.Summarize(sess.State),
		Actions: wizard.AvailableEvents(sess.State),
	}
}

func describe(t wizard.EventType, from models.WizardView, to models.WizardState) string {
	if from != to.View {
		return string(t) + ": " + string(from) + " -> " + string(to.View)
	}
	return string(t) + " on " + string(to.View)
}

func transitionMeta(from models.WizardView, to models.WizardState) map[string]any {
	meta := map[string]any{"from": from, "to": to.View}
	if to.View == models.ViewQuestionnaire {
		meta["step"] = to.Step
	}
	if to.Result != nil && from == models.ViewQuestionnaire {
		meta["co2_savings_tons"] = to.Result.CO2SavingsTons
		meta["financial_value"] = to.Result.FinancialValue
	}
	return meta
}
