package services

import (
	"errors"
	"testing"

	"github.com/Niketh-Putta/Terrawise-Ventures/internal/domain/models"
)

func TestProjectCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db, newTestConfig(), nil)

	project := &models.Project{
		Name:     "Terrawise Gardens",
		Location: "Shadnagar, Hyderabad",
		Status:   "ongoing",
	}
	if err := svc.CreateProject(project); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	got, err := svc.GetProjectByID(project.ID)
	if err != nil {
		t.Fatalf("GetProjectByID failed: %v", err)
	}
	if got.Name != "Terrawise Gardens" {
		t.Errorf("Expected name 'Terrawise Gardens', got %q", got.Name)
	}

	updated, err := svc.UpdateProject(project.ID, map[string]interface{}{"status": "completed"})
	if err != nil {
		t.Fatalf("UpdateProject failed: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("Expected status 'completed', got %q", updated.Status)
	}

	all, err := svc.GetAllProjects()
	if err != nil {
		t.Fatalf("GetAllProjects failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 project, got %d", len(all))
	}

	if err := svc.DeleteProject(project.ID); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if _, err := svc.GetProjectByID(project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound after delete, got %v", err)
	}
}

func TestGetProjectByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db, newTestConfig(), nil)

	if _, err := svc.GetProjectByID(999999); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}
