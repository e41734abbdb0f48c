package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/metrics"
	"github.com/Niketh-Putta/Terrawise-Ventures/pkg/logger"
	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
	"github.com/google/uuid"
)

const (
	emailPollInterval = 5 * time.Minute
	emailLookback     = 7 * 24 * time.Hour
)

// InterfaceEmailIngestService defines the mailbox polling interface
type InterfaceEmailIngestService interface {
	StartMonitoring(ctx context.Context)
	CheckForNewEmails() error
}

// EmailIngestService polls an IMAP inbox and stores new messages through the
// email service. Fetching the body marks messages seen on the server, so each
// message is picked up once.
type EmailIngestService struct {
	Config *config.Config
	Emails InterfaceEmailService
}

// NewEmailIngestService creates a new ingest service
func NewEmailIngestService(cfg *config.Config, emails InterfaceEmailService) InterfaceEmailIngestService {
	return &EmailIngestService{
		Config: cfg,
		Emails: emails,
	}
}

// 1 StartMonitoring polls the mailbox every five minutes until the context
// is cancelled. Intended to run in its own goroutine.
func (s *EmailIngestService) StartMonitoring(ctx context.Context) {
	if !s.Config.EmailConfigured() {
		logger.Warning("email monitoring disabled: no IMAP credentials configured")
		return
	}

	logger.Info("email monitoring started, polling every %s", emailPollInterval)
	if err := s.CheckForNewEmails(); err != nil {
		logger.Error("email poll: %v", err)
	}

	ticker := time.NewTicker(emailPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("email monitoring stopped")
			return
		case <-ticker.C:
			if err := s.CheckForNewEmails(); err != nil {
				logger.Error("email poll: %v", err)
			}
		}
	}
}

// 2 CheckForNewEmails runs a single poll cycle: connect, fetch unseen
// messages from the last seven days, store them, log out.
func (s *EmailIngestService) CheckForNewEmails() error {
	addr := fmt.Sprintf("%s:%s", s.Config.EmailHost, s.Config.EmailPort)
	c, err := client.DialTLS(addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer c.Logout()

	if err := c.Login(s.Config.EmailUser, s.Config.EmailPassword); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if _, err := c.Select("INBOX", false); err != nil {
		return fmt.Errorf("select inbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	criteria.Since = time.Now().Add(-emailLookback)
	ids, err := c.Search(criteria)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{section.FetchItem(), imap.FetchEnvelope}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	stored := 0
	for msg := range messages {
		email, err := s.parseMessage(msg, section)
		if err != nil {
			logger.Warning("parse message: %v", err)
			continue
		}
		created, err := s.Emails.SaveEmail(email)
		if err != nil {
			logger.Error("save email %s: %v", email.MessageID, err)
			continue
		}
		if created {
			stored++
			metrics.RecordEmailIngested()
		}
	}
	if err := <-done; err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if stored > 0 {
		logger.Info("stored %d new email(s)", stored)
	}
	return nil
}

func (s *EmailIngestService) parseMessage(msg *imap.Message, section *imap.BodySectionName) (*models.Email, error) {
	r := msg.GetBody(section)
	if r == nil {
		return nil, fmt.Errorf("message has no body section")
	}

	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("create reader: %w", err)
	}

	header := mr.Header
	email := &models.Email{
		ReceivedAt: time.Now(),
	}

	if id, err := header.MessageID(); err == nil && id != "" {
		email.MessageID = id
	} else {
		// Some senders omit Message-ID; generate one so dedup still works.
		email.MessageID = uuid.NewString()
	}
	if subject, err := header.Subject(); err == nil {
		email.Subject = subject
	}
	if date, err := header.Date(); err == nil && !date.IsZero() {
		email.ReceivedAt = date
	}
	if from, err := header.AddressList("From"); err == nil && len(from) > 0 {
		email.FromAddress = from[0].Address
		email.FromName = from[0].Name
	}
	if to, err := header.AddressList("To"); err == nil && len(to) > 0 {
		email.ToAddress = to[0].Address
	}

	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("next part: %w", err)
		}

		switch h := p.Header.(type) {
		case *mail.InlineHeader:
			// Plain-text and HTML alternatives are stored separately; the
			// first part of each kind wins.
			contentType, _, err := h.ContentType()
			if err != nil {
				continue
			}
			body, err := io.ReadAll(p.Body)
			if err != nil {
				continue
			}
			switch {
			case contentType == "text/html" && email.HTMLContent == "":
				email.HTMLContent = string(body)
			case contentType != "text/html" && email.TextContent == "":
				email.TextContent = string(body)
			}
		case *mail.AttachmentHeader:
			filename, _ := h.Filename()
			contentType, _, _ := h.ContentType()
			size, _ := io.Copy(io.Discard, p.Body)
			email.Attachments = append(email.Attachments, models.Attachment{
				Filename:    filename,
				ContentType: contentType,
				Size:        size,
			})
		}
	}

	email.Priority = DeterminePriority(email.Subject)
	return email, nil
}
