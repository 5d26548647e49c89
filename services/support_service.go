package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Shahriar1638/Biznest-sub001/models"
	"github.com/Shahriar1638/Biznest-sub001/stores"
)

type SupportService struct {
	contacts stores.ContactStore
	log      zerolog.Logger
}

func NewSupportService(contacts stores.ContactStore, log zerolog.Logger) *SupportService {
	return &SupportService{contacts: contacts, log: log}
}

// Create opens a new ticket in pending state.
func (s *SupportService) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	now := time.Now()
	msg.TicketId = uuid.NewString()
	msg.Status = models.TicketPending
	msg.AdminRead = false
	msg.ClientRead = true
	msg.Reply = ""
	msg.ResolvedAt = nil
	msg.CreatedAt = now
	msg.UpdatedAt = now
	if msg.Priority == "" {
		msg.Priority = models.PriorityNormal
	}

	if err := s.contacts.Insert(ctx, msg); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to create ticket", err)
	}
	return msg, nil
}

// ListForAdmin returns tickets, optionally filtered by status. Viewing the
// list counts as the admin reading the tickets on that page.
func (s *SupportService) ListForAdmin(ctx context.Context, status string, page, limit int64) ([]models.ContactMessage, int64, error) {
	if status != "" && status != models.TicketPending && status != models.TicketInProgress && status != models.TicketResolved {
		return nil, 0, NewError(KindValidation, "Unknown ticket status")
	}
	messages, total, err := s.contacts.ListByStatus(ctx, status, page, limit)
	if err != nil {
		return nil, 0, WrapError(KindInfrastructure, "Error fetching tickets", err)
	}

	var unread []string
	for i := range messages {
		if !messages[i].AdminRead {
			unread = append(unread, messages[i].TicketId)
			messages[i].AdminRead = true
		}
	}
	if len(unread) > 0 {
		if err := s.contacts.MarkAdminRead(ctx, unread); err != nil {
			s.log.Error().Err(err).Int("tickets", len(unread)).Msg("failed to mark tickets admin-read")
		}
	}
	return messages, total, nil
}

// ListForClient returns the caller's own tickets.
func (s *SupportService) ListForClient(ctx context.Context, email string, page, limit int64) ([]models.ContactMessage, int64, error) {
	messages, total, err := s.contacts.ListByEmail(ctx, email, page, limit)
	if err != nil {
		return nil, 0, WrapError(KindInfrastructure, "Error fetching tickets", err)
	}
	return messages, total, nil
}

// Reply attaches an admin reply and moves the ticket to in-progress or
// resolved. ResolvedAt is only stamped on resolution.
func (s *SupportService) Reply(ctx context.Context, ticketId, reply, status string) (*models.ContactMessage, error) {
	if reply == "" {
		return nil, NewError(KindValidation, "Reply text is required")
	}
	if status != models.TicketInProgress && status != models.TicketResolved {
		return nil, NewError(KindValidation, "Status must be in-progress or resolved")
	}

	msg, err := s.fetch(ctx, ticketId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	msg.Reply = reply
	msg.Status = status
	msg.AdminRead = true
	msg.ClientRead = false
	msg.UpdatedAt = now
	if status == models.TicketResolved {
		msg.ResolvedAt = &now
	} else {
		msg.ResolvedAt = nil
	}

	if err := s.contacts.Update(ctx, msg); err != nil {
		return nil, WrapError(KindInfrastructure, "Failed to update ticket", err)
	}
	return msg, nil
}

// MarkRead records that the client has seen the latest reply. The admin
// side is marked through ListForAdmin.
func (s *SupportService) MarkRead(ctx context.Context, ticketId string) error {
	msg, err := s.fetch(ctx, ticketId)
	if err != nil {
		return err
	}

	msg.ClientRead = true
	msg.UpdatedAt = time.Now()

	if err := s.contacts.Update(ctx, msg); err != nil {
		return WrapError(KindInfrastructure, "Failed to update ticket", err)
	}
	return nil
}

func (s *SupportService) fetch(ctx context.Context, ticketId string) (*models.ContactMessage, error) {
	msg, err := s.contacts.FindByTicketId(ctx, ticketId)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, NewError(KindNotFound, "Ticket not found")
		}
		return nil, WrapError(KindInfrastructure, "Error fetching ticket", err)
	}
	return msg, nil
}
