package service

import (
	"context"
	"time"

	"heating_leads/internal/logger"
	"heating_leads/internal/models"
	"heating_leads/internal/repository"
	"heating_leads/internal/wizard"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Wizard drives visitor sessions through the lead wizard.
type Wizard interface {
	Create(ctx context.Context) (models.Session, error)
	Get(ctx context.Context, id string) (models.Session, error)
	Dispatch(ctx context.Context, id string, e wizard.Event) (Outcome, error)
}

// Journal exposes the append-only wizard event log.
type Journal interface {
	List(ctx context.Context, f JournalFilter) ([]models.WizardEvent, error)
}

// Janitor removes idle sessions until ctx is canceled.
type Janitor interface {
	Run(ctx context.Context, tick time.Duration)
}

// LeadSink receives every accepted contact submission.
type LeadSink interface {
	Submit(ctx context.Context, lead models.Lead) error
}

type Service struct {
	Wizard
	Journal
	Janitor
	Authorization
}

// Options carries the settings the services need from configuration.
type Options struct {
	SessionTTL time.Duration
	SigningKey string
	TokenTTL   time.Duration
	// Leads defaults to a LogLeadSink when nil.
	Leads LeadSink
}

func NewService(repos *repository.Repository, log *logger.Logger, opts Options) *Service {
	leads := opts.Leads
	if leads == nil {
		leads = NewLogLeadSink(log)
	}
	wiz := NewWizardService(repos.Sessions, repos.EventRepo, leads, log)
	return &Service{
		Wizard:        wiz,
		Journal:       NewJournalService(repos.EventRepo),
		Janitor:       NewJanitorService(wiz, opts.SessionTTL),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
