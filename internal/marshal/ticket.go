package marshal

import (
	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/notion"
)

// Support ticket property names.
const (
	ticketTitle       = "Title"
	ticketDescription = "Description"
	ticketEmail       = "Email"
	ticketStatus      = "Status"
	ticketPriority    = "Priority"
	ticketDue         = "Due"
)

// TicketFromPage converts a workspace page into a SupportTicket record.
func TicketFromPage(page notion.Page) domain.SupportTicket {
	_, status := selectOf(page, ticketStatus)
	_, priority := selectOf(page, ticketPriority)
	return domain.SupportTicket{
		ID:          page.ID,
		Title:       titleOf(page, ticketTitle, "Untitled Ticket"),
		Description: richTextOf(page, ticketDescription),
		Email:       emailOf(page, ticketEmail),
		Status:      status,
		Priority:    priority,
		Due:         dateOf(page, ticketDue),
		CreatedAt:   page.CreatedTime,
		UpdatedAt:   page.LastEditedTime,
	}
}

// TicketProperties builds the property bag for writing a SupportTicket.
func TicketProperties(t domain.SupportTicket) map[string]notion.PropertyValue {
	props := make(map[string]notion.PropertyValue)
	if t.Title != "" {
		props[ticketTitle] = notion.PropertyValue{Title: notion.NewRichText(t.Title)}
	}
	if t.Description != "" {
		props[ticketDescription] = notion.PropertyValue{RichText: notion.NewRichText(t.Description)}
	}
	if t.Email != "" {
		props[ticketEmail] = notion.PropertyValue{Email: strPtr(t.Email)}
	}
	if t.Status != "" {
		props[ticketStatus] = notion.PropertyValue{Select: &notion.SelectOption{Name: t.Status}}
	}
	if t.Priority != "" {
		props[ticketPriority] = notion.PropertyValue{Select: &notion.SelectOption{Name: t.Priority}}
	}
	if !t.Due.IsZero() {
		props[ticketDue] = notion.PropertyValue{Date: &notion.Date{Start: t.Due.Format(dateLayout)}}
	}
	return props
}
