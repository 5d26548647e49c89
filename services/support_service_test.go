package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/models"
)

func TestCreateTicketDefaults(t *testing.T) {
	var saved *models.ContactMessage
	contacts := &fakeContactStore{
		InsertFn: func(ctx context.Context, msg *models.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	svc := NewSupportService(contacts, zerolog.Nop())

	msg, err := svc.Create(context.Background(), &models.ContactMessage{
		Email:   "a@b.com",
		Name:    "A",
		Subject: "Order missing",
		Message: "Where is my order?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil {
		t.Fatal("ticket was not persisted")
	}
	if msg.TicketId == "" {
		t.Fatal("ticket id must be assigned")
	}
	if msg.Status != models.TicketPending {
		t.Fatalf("new tickets start pending, got %q", msg.Status)
	}
	if msg.Priority != models.PriorityNormal {
		t.Fatalf("priority should default to normal, got %q", msg.Priority)
	}
	if msg.AdminRead || !msg.ClientRead {
		t.Fatalf("read flags wrong: admin=%v client=%v", msg.AdminRead, msg.ClientRead)
	}
	if msg.ResolvedAt != nil {
		t.Fatal("new ticket must not carry a resolution timestamp")
	}
}

func TestReplyValidation(t *testing.T) {
	svc := NewSupportService(&fakeContactStore{}, zerolog.Nop())

	if _, err := svc.Reply(context.Background(), "t1", "", models.TicketResolved); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for empty reply, got %v", err)
	}
	if _, err := svc.Reply(context.Background(), "t1", "done", "pending"); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}
	if _, err := svc.Reply(context.Background(), "missing", "done", models.TicketResolved); KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReplyTransitions(t *testing.T) {
	ticket := func() *models.ContactMessage {
		return &models.ContactMessage{
			TicketId:   "t1",
			Email:      "a@b.com",
			Status:     models.TicketPending,
			ClientRead: true,
		}
	}
	var updated *models.ContactMessage
	contacts := &fakeContactStore{
		FindByTicketIdFn: func(ctx context.Context, ticketId string) (*models.ContactMessage, error) {
			return ticket(), nil
		},
		UpdateFn: func(ctx context.Context, msg *models.ContactMessage) error {
			updated = msg
			return nil
		},
	}
	svc := NewSupportService(contacts, zerolog.Nop())

	msg, err := svc.Reply(context.Background(), "t1", "Looking into it", models.TicketInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Status != models.TicketInProgress {
		t.Fatalf("expected in-progress, got %q", msg.Status)
	}
	if msg.ResolvedAt != nil {
		t.Fatal("in-progress reply must not stamp resolvedAt")
	}
	if msg.ClientRead {
		t.Fatal("reply must clear the client read flag")
	}
	if updated == nil {
		t.Fatal("ticket was not persisted")
	}

	msg, err = svc.Reply(context.Background(), "t1", "Refund issued", models.TicketResolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Status != models.TicketResolved {
		t.Fatalf("expected resolved, got %q", msg.Status)
	}
	if msg.ResolvedAt == nil {
		t.Fatal("resolution must stamp resolvedAt")
	}
}

func TestMarkRead(t *testing.T) {
	var updated *models.ContactMessage
	contacts := &fakeContactStore{
		FindByTicketIdFn: func(ctx context.Context, ticketId string) (*models.ContactMessage, error) {
			return &models.ContactMessage{TicketId: ticketId}, nil
		},
		UpdateFn: func(ctx context.Context, msg *models.ContactMessage) error {
			updated = msg
			return nil
		},
	}
	svc := NewSupportService(contacts, zerolog.Nop())

	if err := svc.MarkRead(context.Background(), "t1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated == nil || !updated.ClientRead {
		t.Fatal("client read flag not set")
	}
	if updated.AdminRead {
		t.Fatal("client mark-read must not touch the admin flag")
	}
}

func TestListForAdminMarksTicketsRead(t *testing.T) {
	var marked []string
	contacts := &fakeContactStore{
		ListByStatusFn: func(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error) {
			return []models.ContactMessage{
				{TicketId: "t1", AdminRead: false},
				{TicketId: "t2", AdminRead: true},
				{TicketId: "t3", AdminRead: false},
			}, 3, nil
		},
		MarkAdminReadFn: func(ctx context.Context, ticketIds []string) error {
			marked = ticketIds
			return nil
		},
	}
	svc := NewSupportService(contacts, zerolog.Nop())

	messages, _, err := svc.ListForAdmin(context.Background(), "", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(marked) != 2 || marked[0] != "t1" || marked[1] != "t3" {
		t.Fatalf("expected unread tickets t1 and t3 marked, got %v", marked)
	}
	for _, msg := range messages {
		if !msg.AdminRead {
			t.Fatalf("returned ticket %s should read as admin-read", msg.TicketId)
		}
	}
}
