package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

// Activity fans a confirmed mutation out to the event stream and the shift
// journal. Both are optional and neither can fail the mutation.
type Activity struct {
	publisher EventPublisher
	journal   Journal
	now       func() time.Time
}

func NewActivity(publisher EventPublisher, journal Journal) *Activity {
	return &Activity{publisher: publisher, journal: journal, now: time.Now}
}

func (a *Activity) Confirmed(ctx context.Context, eventType, reference string, employeeID domain.ID, amount float64) {
	if a == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	if a.publisher != nil {
		err := a.publisher.Publish(ctx, domain.Event{
			Type:       eventType,
			Reference:  reference,
			EmployeeID: employeeID.String(),
			Amount:     amount,
			Timestamp:  a.now(),
		})
		if err != nil {
			log.Printf("[pos-svc] publish %s %s: %v", eventType, reference, err)
		}
	}

	if a.journal != nil {
		err := a.journal.Record(ctx, &domain.JournalEntry{
			Kind:       eventType,
			Reference:  reference,
			EmployeeID: employeeID.String(),
			Amount:     amount,
		})
		if err != nil {
			log.Printf("[pos-svc] journal %s %s: %v", eventType, reference, err)
		}
	}
}

func (a *Activity) Journal(ctx context.Context, since time.Time) ([]domain.JournalEntry, error) {
	if a == nil || a.journal == nil {
		return []domain.JournalEntry{}, nil
	}
	entries, err := a.journal.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}
	return entries, nil
}

// guardKey scopes a submission to the session that makes it. Guests have no
// session, so theirs are keyed by subject: the table, order or reviewer name.
func guardKey(action string, session *domain.Session, subject string) string {
	if session == nil {
		return "submit:" + action + ":guest:" + subject
	}
	return "submit:" + action + ":" + session.ID
}

// guarded runs submit while holding the guard for key. A concurrent call with
// the same key fails with a conflict instead of reaching the backend twice.
func guarded(ctx context.Context, guard SubmitGuard, key string, submit func() error) error {
	if guard == nil {
		return submit()
	}
	token, ok, err := guard.Acquire(ctx, key)
	if err != nil {
		return fmt.Errorf("acquire submit guard: %w", err)
	}
	if !ok {
		return domain.Conflictf("submission already in progress")
	}
	defer func() {
		if err := guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Printf("[pos-svc] release submit guard %s: %v", key, err)
		}
	}()
	return submit()
}

func employeeOf(session *domain.Session) domain.ID {
	if session == nil {
		return ""
	}
	return session.Employee.ID
}

func requireStaff(session *domain.Session, action string) error {
	if session == nil || !session.Employee.Role.IsStaff() {
		return domain.Forbiddenf("only staff can %s", action)
	}
	return nil
}
