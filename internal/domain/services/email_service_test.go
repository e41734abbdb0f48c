package services

import (
	"testing"
	"time"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
)

func TestSaveEmailDedup(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmailService(db, newTestConfig())

	email := &models.Email{
		MessageID:   "<msg-1@example.com>",
		FromAddress: "buyer@example.com",
		ToAddress:   "sales@terrawise.com",
		Subject:     "Plot availability",
		TextContent: "Do you have corner plots left?",
		HTMLContent: "<p>Do you have corner plots left?</p>",
		ReceivedAt:  time.Now(),
	}
	created, err := svc.SaveEmail(email)
	if err != nil {
		t.Fatalf("SaveEmail failed: %v", err)
	}
	if !created {
		t.Fatal("Expected first save to create a row")
	}

	again := &models.Email{MessageID: "<msg-1@example.com>", FromAddress: "buyer@example.com", ReceivedAt: time.Now()}
	created, err = svc.SaveEmail(again)
	if err != nil {
		t.Fatalf("SaveEmail failed: %v", err)
	}
	if created {
		t.Error("Expected duplicate message id to be skipped")
	}

	emails, err := svc.GetAllEmails()
	if err != nil {
		t.Fatalf("GetAllEmails failed: %v", err)
	}
	if len(emails) != 1 {
		t.Errorf("Expected 1 stored email, got %d", len(emails))
	}
}

func TestSaveEmailStoresRecipientAndBothBodies(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmailService(db, newTestConfig())

	email := &models.Email{
		MessageID:   "<msg-3@example.com>",
		FromAddress: "buyer@example.com",
		ToAddress:   "sales@terrawise.com",
		Subject:     "Layout brochure",
		HTMLContent: "<h1>Brochure request</h1>",
		Attachments: models.AttachmentList{
			{Filename: "site-video.mp4", ContentType: "video/mp4", Size: 3 << 30},
		},
		ReceivedAt: time.Now(),
	}
	if _, err := svc.SaveEmail(email); err != nil {
		t.Fatalf("SaveEmail failed: %v", err)
	}

	got, err := svc.GetEmailByID(email.ID)
	if err != nil {
		t.Fatalf("GetEmailByID failed: %v", err)
	}
	if got.ToAddress != "sales@terrawise.com" {
		t.Errorf("Expected recipient to be stored, got %q", got.ToAddress)
	}
	// HTML-only messages keep their body
	if got.HTMLContent != "<h1>Brochure request</h1>" || got.TextContent != "" {
		t.Errorf("Unexpected content: text=%q html=%q", got.TextContent, got.HTMLContent)
	}
	if len(got.Attachments) != 1 || got.Attachments[0].Size != 3<<30 {
		t.Errorf("Expected attachment size to survive storage, got %+v", got.Attachments)
	}
}

func TestDeterminePriority(t *testing.T) {
	cases := []struct {
		subject string
		want    string
	}{
		{"URGENT: payment issue", models.EmailPriorityHigh},
		{"Need this asap please", models.EmailPriorityHigh},
		{"Emergency at the site", models.EmailPriorityHigh},
		{"Plot enquiry", models.EmailPriorityNormal},
		{"", models.EmailPriorityNormal},
	}
	for _, tc := range cases {
		if got := DeterminePriority(tc.subject); got != tc.want {
			t.Errorf("DeterminePriority(%q) = %q, want %q", tc.subject, got, tc.want)
		}
	}
}

func TestMarkAsRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewEmailService(db, newTestConfig())

	email := &models.Email{MessageID: "<msg-2@example.com>", FromAddress: "buyer@example.com", ReceivedAt: time.Now()}
	if _, err := svc.SaveEmail(email); err != nil {
		t.Fatalf("SaveEmail failed: %v", err)
	}

	unread, err := svc.GetUnreadEmails()
	if err != nil {
		t.Fatalf("GetUnreadEmails failed: %v", err)
	}
	if len(unread) != 1 {
		t.Fatalf("Expected 1 unread email, got %d", len(unread))
	}

	updated, err := svc.MarkAsRead(email.ID)
	if err != nil {
		t.Fatalf("MarkAsRead failed: %v", err)
	}
	if !updated.IsRead {
		t.Error("Expected email to be marked read")
	}

	unread, err = svc.GetUnreadEmails()
	if err != nil {
		t.Fatalf("GetUnreadEmails failed: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("Expected no unread emails, got %d", len(unread))
	}
}
