package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"heating_leads/internal/models"
)

// fakeEventRepo records appends and answers List with canned data.
type fakeEventRepo struct {
	mu        sync.Mutex
	appended  []models.WizardEvent
	appendErr error

	gotFrom time.Time
	gotTo   time.Time
	gotType string
	events  []models.WizardEvent
	listErr error
	calls   int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.WizardEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.WizardEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	return f.events, f.listErr
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

// recordingSink keeps every submitted lead.
type recordingSink struct {
	mu    sync.Mutex
	leads []models.Lead
	err   error
}

func (r *recordingSink) Submit(_ context.Context, lead models.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return r.err
}

// failingSessions fails every call.
type failingSessions struct{}

var errStoreDown = errors.New("store down")

func (failingSessions) Save(context.Context, models.Session) error { return errStoreDown }
func (failingSessions) Load(context.Context, string) (models.Session, error) {
	return models.Session{}, errStoreDown
}
func (failingSessions) Delete(context.Context, string) error { return errStoreDown }
func (failingSessions) IdleBefore(context.Context, time.Time) ([]string, error) {
	return nil, errStoreDown
}
