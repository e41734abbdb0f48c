package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/app/routes"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/services"
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// clientAddr hands each test its own client address so the per-IP rate
// limiter never carries state across tests.
var clientAddr uint32

// apiClient drives the full router over httptest, carrying session cookies
// between requests like a browser would.
type apiClient struct {
	t       *testing.T
	router  *gin.Engine
	db      *gorm.DB
	addr    string
	cookies []*http.Cookie
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Project{},
		&models.Testimonial{},
		&models.Inquiry{},
		&models.SiteVisitEnquiry{},
		&models.ConstructionServiceEnquiry{},
		&models.GeneralEnquiry{},
		&models.MarketingAgent{},
		&models.OTPSession{},
		&models.AdminUser{},
		&models.Email{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		EnvType:              "TEST",
		SessionSecret:        "test-secret",
		SessionName:          "terrawise.sid",
		DefaultAdminEmail:    "admin@terrawise.com",
		DefaultAdminPassword: "admin123",
		DefaultAdminName:     "Terrawise Admin",
	}
	if err := services.NewAdminService(db, cfg).EnsureAdminExists(); err != nil {
		t.Fatalf("Failed to bootstrap admin: %v", err)
	}

	return &apiClient{
		t:      t,
		router: routes.SetupRouter(db, cfg, nil),
		db:     db,
		addr:   fmt.Sprintf("10.1.%d.1:5000", atomic.AddUint32(&clientAddr, 1)),
	}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = c.addr
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestCreateInquiry(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/inquiries", gin.H{
		"fullName":        "Ravi Kumar",
		"phone":           "9876543210",
		"email":           "ravi@example.com",
		"budget":          "20-30L",
		"privacyAccepted": true,
	})
	if w.Code != 201 {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if msg, _ := body["message"].(string); !strings.Contains(msg, "within 2 hours") {
		t.Errorf("Unexpected message: %q", msg)
	}

	var inquiry models.Inquiry
	if err := c.db.First(&inquiry).Error; err != nil {
		t.Fatalf("Expected inquiry to be stored: %v", err)
	}
	if inquiry.LeadStatus != models.LeadStatusNew {
		t.Errorf("Expected lead status %q, got %q", models.LeadStatusNew, inquiry.LeadStatus)
	}
}

func TestCreateInquiryValidation(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/inquiries", gin.H{
		"fullName": "Ravi Kumar",
		"phone":    "12345",
	})
	if w.Code != 400 {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["message"] != "Validation failed" {
		t.Errorf("Expected 'Validation failed', got %v", body["message"])
	}
	errs, _ := body["errors"].([]interface{})
	found := false
	for _, e := range errs {
		if m, ok := e.(map[string]interface{}); ok && m["field"] == "phone" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a validation error for field 'phone', got %v", body["errors"])
	}
}

func TestGetProjectNotFound(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("GET", "/api/projects/999999", nil)
	if w.Code != 404 {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "Project not found" {
		t.Errorf("Expected 'Project not found', got %v", body["message"])
	}

	// zero is not a valid id, not a missing project
	w = c.do("GET", "/api/projects/0", nil)
	if w.Code != 400 {
		t.Fatalf("Expected 400 for id 0, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "Invalid project ID" {
		t.Errorf("Expected 'Invalid project ID', got %v", body["message"])
	}
}

func TestProjectListResponseCache(t *testing.T) {
	c := newAPIClient(t)
	c.db.Create(&models.Project{Name: "Emerald Meadows", Location: "Maheshwaram", Status: "ongoing"})

	first := c.do("GET", "/api/projects", nil)
	if first.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", first.Code, first.Body.String())
	}
	if !strings.Contains(first.Body.String(), "Emerald Meadows") {
		t.Fatalf("Expected project in listing: %s", first.Body.String())
	}

	// the listing is response-cached, so a delete is not visible immediately
	c.db.Delete(&models.Project{}, 1)
	second := c.do("GET", "/api/projects", nil)
	if second.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", second.Code, second.Body.String())
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("Expected cached response, got %s", second.Body.String())
	}
}

func TestAdminSessionGate(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("GET", "/api/inquiries", nil)
	if w.Code != 401 {
		t.Fatalf("Expected 401 without session, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["error"] != "Not authenticated" {
		t.Errorf("Expected 'Not authenticated', got %v", body["error"])
	}

	w = c.do("POST", "/api/admin/login", gin.H{"email": "admin@terrawise.com", "password": "wrong"})
	if w.Code != 401 {
		t.Fatalf("Expected 401 for bad credentials, got %d: %s", w.Code, w.Body.String())
	}

	w = c.do("POST", "/api/admin/login", gin.H{"email": "admin@terrawise.com", "password": "admin123"})
	if w.Code != 200 {
		t.Fatalf("Expected 200 login, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["email"] != "admin@terrawise.com" {
		t.Errorf("Unexpected login response: %v", body)
	}

	w = c.do("GET", "/api/admin/me", nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200 from /admin/me with session, got %d: %s", w.Code, w.Body.String())
	}

	w = c.do("GET", "/api/inquiries", nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200 from gated route with session, got %d: %s", w.Code, w.Body.String())
	}

	w = c.do("POST", "/api/admin/logout", nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200 logout, got %d: %s", w.Code, w.Body.String())
	}
	w = c.do("GET", "/api/admin/me", nil)
	if w.Code != 401 {
		t.Errorf("Expected 401 after logout, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAgentRegistrationAndOTPLogin(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/marketing-agents", gin.H{
		"fullName":   "Priya Sharma",
		"phone":      "9876501234",
		"email":      "priya@example.com",
		"password":   "agent-pass",
		"address":    "Plot 12, Jubilee Hills, Hyderabad",
		"experience": "4 years in plot sales",
	})
	if w.Code != 201 {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	agent, _ := body["agent"].(map[string]interface{})
	if agent["status"] != models.AgentStatusApproved {
		t.Errorf("Expected new agent to be approved, got %v", agent["status"])
	}

	var stored models.MarketingAgent
	if err := c.db.Where("phone = ?", "9876501234").First(&stored).Error; err != nil {
		t.Fatalf("Expected agent to be stored: %v", err)
	}
	if stored.Address != "Plot 12, Jubilee Hills, Hyderabad" || stored.Experience != "4 years in plot sales" {
		t.Errorf("Expected address and experience to be stored, got %+v", stored)
	}

	// password login
	w = c.do("POST", "/api/marketing-agents/login", gin.H{"phone": "9876501234", "password": "agent-pass"})
	if w.Code != 200 {
		t.Fatalf("Expected 200 login, got %d: %s", w.Code, w.Body.String())
	}
	w = c.do("POST", "/api/marketing-agents/login", gin.H{"phone": "9876501234", "password": "nope"})
	if w.Code != 401 {
		t.Fatalf("Expected 401 for wrong password, got %d: %s", w.Code, w.Body.String())
	}

	// OTP login: no SMS key configured, so the code only lands in the store
	w = c.do("POST", "/api/marketing-agents/send-otp", gin.H{"phone": "9876501234"})
	if w.Code != 200 {
		t.Fatalf("Expected 200 send-otp, got %d: %s", w.Code, w.Body.String())
	}

	var session models.OTPSession
	if err := c.db.Where("phone = ?", "9876501234").First(&session).Error; err != nil {
		t.Fatalf("Expected an OTP session: %v", err)
	}

	w = c.do("POST", "/api/marketing-agents/verify-otp", gin.H{"phone": "9876501234", "otp": session.OTP})
	if w.Code != 200 {
		t.Fatalf("Expected 200 verify-otp, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["fullName"] != "Priya Sharma" {
		t.Errorf("Unexpected verify-otp response: %v", body)
	}

	// a code redeems once
	w = c.do("POST", "/api/marketing-agents/verify-otp", gin.H{"phone": "9876501234", "otp": session.OTP})
	if w.Code != 401 {
		t.Errorf("Expected 401 on OTP reuse, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSendOTPUnknownAgent(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/marketing-agents/send-otp", gin.H{"phone": "9999999999"})
	if w.Code != 404 {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	w = c.do("POST", "/api/marketing-agents/send-otp", gin.H{"phone": ""})
	if w.Code != 400 {
		t.Errorf("Expected 400 for missing phone, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPopupEnquiryBecomesSiteVisit(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/enquiries/popup", gin.H{
		"fullName": "Anil Varma",
		"phone":    "9876512345",
	})
	if w.Code != 201 {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var enquiry models.SiteVisitEnquiry
	if err := c.db.First(&enquiry).Error; err != nil {
		t.Fatalf("Expected a site visit enquiry: %v", err)
	}
	if enquiry.PreferredDate != "Not specified" {
		t.Errorf("Expected preferred date 'Not specified', got %q", enquiry.PreferredDate)
	}
}

func TestUpdateLeadStatusAndComment(t *testing.T) {
	c := newAPIClient(t)

	inquiry := models.Inquiry{FullName: "Kiran Das", Phone: "9876523456", LeadStatus: models.LeadStatusNew}
	c.db.Create(&inquiry)

	w := c.do("PATCH", fmt.Sprintf("/api/inquiries/%d/status", inquiry.ID), gin.H{"status": models.LeadStatusDealClosed})
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Inquiry
	c.db.First(&got, inquiry.ID)
	if got.LeadStatus != models.LeadStatusDealClosed {
		t.Errorf("Expected status %q, got %q", models.LeadStatusDealClosed, got.LeadStatus)
	}

	w = c.do("PATCH", fmt.Sprintf("/api/inquiries/%d/status", inquiry.ID), gin.H{"status": ""})
	if w.Code != 400 {
		t.Errorf("Expected 400 for blank status, got %d: %s", w.Code, w.Body.String())
	}

	w = c.do("PATCH", fmt.Sprintf("/api/inquiries/%d/comment", inquiry.ID), gin.H{"comment": "Visited site, very interested"})
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	c.db.First(&got, inquiry.ID)
	if got.AgentComment != "Visited site, very interested" || got.AgentCommentDate == nil {
		t.Errorf("Expected stamped agent comment, got %+v", got)
	}
}

func TestAgentInquiriesLookup(t *testing.T) {
	c := newAPIClient(t)

	agent := models.MarketingAgent{FullName: "Priya Sharma", Phone: "9876501234", Password: "x", Status: models.AgentStatusApproved}
	c.db.Create(&agent)
	c.db.Create(&models.Inquiry{FullName: "Lead One", Phone: "9000000001", MarketingAgentID: &agent.ID, LeadStatus: models.LeadStatusNew})
	c.db.Create(&models.Inquiry{FullName: "Lead Two", Phone: "9000000002", MarketingAgentName: "Priya Sharma", LeadStatus: models.LeadStatusNew})
	c.db.Create(&models.Inquiry{FullName: "Other Lead", Phone: "9000000003", LeadStatus: models.LeadStatusNew})

	w := c.do("GET", fmt.Sprintf("/api/marketing-agents/%d/inquiries", agent.ID), nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var leads []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &leads); err != nil {
		t.Fatalf("Failed to decode leads: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("Expected 2 attributed leads, got %d: %v", len(leads), leads)
	}

	w = c.do("GET", "/api/marketing-agents/424242/inquiries", nil)
	if w.Code != 404 {
		t.Errorf("Expected 404 for unknown agent, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCalculateEMI(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("POST", "/api/loan/emi", gin.H{
		"plotPrice":      5000000,
		"downPaymentPct": 20,
		"annualRatePct":  8.5,
		"tenureYears":    15,
	})
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if emi, _ := body["monthlyEmi"].(float64); emi < 39000 || emi > 40000 {
		t.Errorf("Expected EMI near 39390, got %v", body["monthlyEmi"])
	}
	if months, _ := body["tenureMonths"].(float64); months != 180 {
		t.Errorf("Expected 180 months, got %v", body["tenureMonths"])
	}

	w = c.do("POST", "/api/loan/emi", gin.H{"plotPrice": 5000000, "downPaymentPct": 120, "tenureYears": 15})
	if w.Code != 400 {
		t.Errorf("Expected 400 for invalid parameters, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthPing(t *testing.T) {
	c := newAPIClient(t)

	w := c.do("GET", "/api/ping", nil)
	if w.Code != 200 {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "pong" {
		t.Errorf("Expected pong, got %v", body)
	}
}
