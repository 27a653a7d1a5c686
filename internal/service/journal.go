package service

import (
	"context"
	"strings"
	"time"

	"heating_leads/internal/apperr"
	"heating_leads/internal/models"
	"heating_leads/internal/repository"
)

type JournalService struct {
	eventRepo repository.EventRepo
}

func NewJournalService(eventRepo repository.EventRepo) *JournalService {
	return &JournalService{eventRepo: eventRepo}
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

func normalizeAndValidateFilter(f JournalFilter) (JournalFilter, error) {
	out := JournalFilter{
		From: normalizeToUTC(f.From),
		To:   normalizeToUTC(f.To),
		Type: normalizeEventType(f.Type),
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.From.After(out.To) {
		return JournalFilter{}, apperr.Validation("invalid time range: from must be <= to")
	}
	return out, nil
}

func (s *JournalService) List(ctx context.Context, f JournalFilter) ([]models.WizardEvent, error) {
	nf, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	events, err := s.eventRepo.List(ctx, nf.From, nf.To, nf.Type)
	if err != nil {
		return nil, apperr.Internal("could not list events", err).WithOp("journal")
	}
	return events, nil
}
