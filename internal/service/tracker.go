package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luanbartole/kairos/internal/domain"
	"github.com/luanbartole/kairos/internal/repository"
)

// Status describes the running timer.
type Status struct {
	Session    domain.Session
	ElapsedMin int
}

type trackerService struct {
	store      repository.SessionStore
	now        Clock
	defaultTag string
	observer   UseCaseObserver
}

// NewTrackerService creates the session tracker. A blank defaultTag falls
// back to domain.DefaultTag; a nil clock uses time.Now.
func NewTrackerService(store repository.SessionStore, clock Clock, defaultTag string, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		store:      store,
		now:        clockOrNow(clock),
		defaultTag: domain.NormalizeTag(defaultTag, domain.DefaultTag),
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *trackerService) Start(ctx context.Context, task, tag string) (msg string, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "start", time.Now(), fields, &err)

	task = strings.TrimSpace(task)
	if task == "" {
		return "", domain.ErrEmptyTask
	}

	_, currentErr := s.store.Current(ctx)
	switch {
	case currentErr == nil:
		return "", domain.ErrAlreadyRunning
	case !errors.Is(currentErr, repository.ErrNotFound):
		return "", fmt.Errorf("checking for running timer: %w", currentErr)
	}

	session := domain.NewSession(task, tag, s.defaultTag, s.now())
	fields["tag"] = session.Tag
	fields["start"] = session.Start
	if err = s.store.SaveCurrent(ctx, session); err != nil {
		return "", err
	}

	return fmt.Sprintf("Starting timer for task [%s] with tag [%s]", session.Task, session.Tag), nil
}

func (s *trackerService) Stop(ctx context.Context) (msg string, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "stop", time.Now(), fields, &err)

	session, err := s.current(ctx)
	if err != nil {
		return "", err
	}

	session.Finish(s.now())
	fields["tag"] = session.Tag
	fields["duration"] = session.Duration

	if err = s.store.Complete(ctx, session); err != nil {
		return "", err
	}
	return fmt.Sprintf("Session saved: %s [%s]", session.Task, session.Duration), nil
}

func (s *trackerService) Status(ctx context.Context) (*Status, error) {
	session, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{Session: *session, ElapsedMin: elapsedMinutes(session, s.now())}, nil
}

func (s *trackerService) Sessions(ctx context.Context) ([]domain.Session, error) {
	return s.store.List(ctx)
}

// current loads the running session, mapping an empty slot to
// domain.ErrNoActiveSession.
func (s *trackerService) current(ctx context.Context) (*domain.Session, error) {
	session, err := s.store.Current(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("loading running timer: %w", err)
	}
	return session, nil
}

// elapsedMinutes measures from the session's full start timestamp so a
// timer left running overnight still reports a positive figure.
func elapsedMinutes(session *domain.Session, now time.Time) int {
	started, err := time.ParseInLocation(domain.DateLayout+" "+domain.ClockLayout, session.Date+" "+session.Start, now.Location())
	if err != nil {
		return domain.MinutesBetween(session.Start, domain.ClockTime(now))
	}
	return int(now.Sub(started) / time.Minute)
}
