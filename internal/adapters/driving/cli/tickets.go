package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

var (
	ticketEmailFlag       string
	ticketSubjectFlag     string
	ticketDescriptionFlag string
	ticketPriorityFlag    string
	ticketDueFlag         string
	ticketStatusFlag      string
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List support tickets",
	RunE:  runTickets,
}

var ticketsNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Open a new support ticket",
	RunE:  runTicketsNew,
}

var ticketsUpdateCmd = &cobra.Command{
	Use:   "update [ticket-id]",
	Short: "Change a ticket's status",
	Args:  cobra.ExactArgs(1),
	RunE:  runTicketsUpdate,
}

func init() {
	ticketsNewCmd.Flags().StringVar(&ticketEmailFlag, "email", "", "requester email (required)")
	ticketsNewCmd.Flags().StringVar(&ticketSubjectFlag, "subject", "", "ticket subject (required)")
	ticketsNewCmd.Flags().StringVar(&ticketDescriptionFlag, "description", "", "ticket body")
	ticketsNewCmd.Flags().StringVar(&ticketPriorityFlag, "priority", "", "Low, Medium or High")
	ticketsNewCmd.Flags().StringVar(&ticketDueFlag, "due", "", "due date (YYYY-MM-DD)")
	ticketsUpdateCmd.Flags().StringVar(&ticketStatusFlag, "status", "", "new status (required)")
	ticketsCmd.AddCommand(ticketsNewCmd)
	ticketsCmd.AddCommand(ticketsUpdateCmd)
	rootCmd.AddCommand(ticketsCmd)
}

func runTickets(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	tickets, err := contentService.ListTickets(context.Background())
	if err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}

	if len(tickets) == 0 {
		cmd.Println("No tickets found.")
		return nil
	}

	for _, t := range tickets {
		status := t.Status
		if status == "" {
			status = "-"
		}
		cmd.Printf("%-12s %-40s %s\n", status, t.Title, t.Email)
	}
	return nil
}

func runTicketsNew(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	ticket := domain.SupportTicket{
		Title:       ticketSubjectFlag,
		Description: ticketDescriptionFlag,
		Email:       ticketEmailFlag,
		Priority:    ticketPriorityFlag,
	}
	if ticketDueFlag != "" {
		due, err := time.Parse("2006-01-02", ticketDueFlag)
		if err != nil {
			return fmt.Errorf("parse --due: %w", err)
		}
		ticket.Due = due
	}

	created, err := contentService.CreateTicket(context.Background(), ticket)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}

	cmd.Printf("Ticket created: %s (%s)\n", created.Title, created.Status)
	return nil
}

func runTicketsUpdate(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}
	if ticketStatusFlag == "" {
		return errors.New("no status given (use --status)")
	}

	updated, err := contentService.UpdateTicketStatus(context.Background(), args[0], ticketStatusFlag)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}

	cmd.Printf("Ticket updated: %s (%s)\n", updated.Title, updated.Status)
	return nil
}
