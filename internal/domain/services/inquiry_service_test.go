package services

import (
	"errors"
	"testing"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
)

func TestCreateInquiryDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db, newTestConfig())

	inquiry := &models.Inquiry{FullName: "Anita Mehta", Phone: "9876543201"}
	if err := svc.CreateInquiry(inquiry); err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}
	if inquiry.LeadStatus != models.LeadStatusNew {
		t.Errorf("Expected lead status %q, got %q", models.LeadStatusNew, inquiry.LeadStatus)
	}
	if inquiry.ID == 0 {
		t.Error("Expected an assigned id")
	}
}

func TestInquiryIDsMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db, newTestConfig())

	var last uint
	for i := 0; i < 5; i++ {
		inquiry := &models.Inquiry{FullName: "Test Lead", Phone: "9876543201"}
		if err := svc.CreateInquiry(inquiry); err != nil {
			t.Fatalf("CreateInquiry failed: %v", err)
		}
		if inquiry.ID <= last {
			t.Fatalf("Expected increasing ids, got %d after %d", inquiry.ID, last)
		}
		last = inquiry.ID
	}
}

func TestGetInquiriesForAgentDualPath(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db, newTestConfig())

	project := models.Project{Name: "Terrawise Gardens", Location: "Electronic City"}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}
	agent := &models.MarketingAgent{ID: 7, FullName: "Ravi Kumar", Phone: "9876555001", Password: "x", Status: models.AgentStatusApproved}
	if err := db.Create(agent).Error; err != nil {
		t.Fatalf("Failed to create agent: %v", err)
	}

	agentID := agent.ID
	byID := &models.Inquiry{FullName: "Lead One", Phone: "9876543201", MarketingAgentID: &agentID, ProjectID: &project.ID}
	byName := &models.Inquiry{FullName: "Lead Two", Phone: "9876543202", MarketingAgentName: "Ravi Kumar"}
	other := &models.Inquiry{FullName: "Lead Three", Phone: "9876543203", MarketingAgentName: "Someone Else"}
	for _, inq := range []*models.Inquiry{byID, byName, other} {
		if err := svc.CreateInquiry(inq); err != nil {
			t.Fatalf("CreateInquiry failed: %v", err)
		}
	}

	rows, err := svc.GetInquiriesForAgent(agent)
	if err != nil {
		t.Fatalf("GetInquiriesForAgent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 attributed leads, got %d", len(rows))
	}

	found := make(map[string]models.InquiryWithProject)
	for _, row := range rows {
		found[row.FullName] = row
	}
	if _, ok := found["Lead One"]; !ok {
		t.Error("Expected lead matched by agent id")
	}
	if _, ok := found["Lead Two"]; !ok {
		t.Error("Expected lead matched by agent name")
	}
	if found["Lead One"].ProjectName != "Terrawise Gardens" {
		t.Errorf("Expected joined project name, got %q", found["Lead One"].ProjectName)
	}
	if found["Lead Two"].ProjectName != "" {
		t.Errorf("Expected empty project name for lead without project, got %q", found["Lead Two"].ProjectName)
	}
}

func TestUpdateLeadStatusOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db, newTestConfig())

	inquiry := &models.Inquiry{FullName: "Suresh Reddy", Phone: "9876543202"}
	if err := svc.CreateInquiry(inquiry); err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}

	// Any non-empty value is accepted, including moving backwards
	for _, status := range []string{models.LeadStatusDealClosed, models.LeadStatusContacted, "custom_state"} {
		updated, err := svc.UpdateLeadStatus(inquiry.ID, status)
		if err != nil {
			t.Fatalf("UpdateLeadStatus(%q) failed: %v", status, err)
		}
		if updated.LeadStatus != status {
			t.Errorf("Expected status %q, got %q", status, updated.LeadStatus)
		}
	}

	if _, err := svc.UpdateLeadStatus(99999, "contacted"); !errors.Is(err, ErrInquiryNotFound) {
		t.Errorf("Expected ErrInquiryNotFound, got %v", err)
	}
}

func TestAddAgentComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewInquiryService(db, newTestConfig())

	inquiry := &models.Inquiry{FullName: "Suresh Reddy", Phone: "9876543202"}
	if err := svc.CreateInquiry(inquiry); err != nil {
		t.Fatalf("CreateInquiry failed: %v", err)
	}

	updated, err := svc.AddAgentComment(inquiry.ID, "Visited the site, very interested")
	if err != nil {
		t.Fatalf("AddAgentComment failed: %v", err)
	}
	if updated.AgentComment != "Visited the site, very interested" {
		t.Errorf("Expected comment to be stored, got %q", updated.AgentComment)
	}
	if updated.AgentCommentDate == nil {
		t.Error("Expected comment date to be stamped")
	}

	// A second comment replaces the first
	updated, err = svc.AddAgentComment(inquiry.ID, "Negotiating price")
	if err != nil {
		t.Fatalf("AddAgentComment failed: %v", err)
	}
	if updated.AgentComment != "Negotiating price" {
		t.Errorf("Expected replaced comment, got %q", updated.AgentComment)
	}
}
