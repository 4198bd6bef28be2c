package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	entincident "github.com/nocforge/nocforge/ent/incident"
	"github.com/nocforge/nocforge/pkg/tools"
)

// IncidentService manages incident tickets. It implements
// tools.IncidentBackend so agents file incidents against the local store
// rather than an external system.
type IncidentService struct {
	client *ent.Client
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(client *ent.Client) *IncidentService {
	return &IncidentService{client: client}
}

// CreateIncident opens a new incident.
func (s *IncidentService) CreateIncident(httpCtx context.Context, req tools.IncidentRequest) (*tools.IncidentRecord, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.Incident.Create().
		SetID(uuid.NewString()).
		SetTitle(req.Title).
		SetStatus("open")
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.Severity != "" {
		builder.SetSeverity(req.Severity)
	}
	if req.Source != "" {
		builder.SetSource(req.Source)
	}
	if len(req.AffectedDevices) > 0 {
		builder.SetAffectedDevices(req.AffectedDevices)
	}

	incident, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incidentRecord(incident), nil
}

// UpdateIncident applies a status change and/or appends a note to the
// incident description.
func (s *IncidentService) UpdateIncident(httpCtx context.Context, incidentID string, update tools.IncidentUpdate) (*tools.IncidentRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	current, err := s.client.Incident.Query().
		Where(entincident.IDEQ(incidentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	builder := current.Update()
	if update.Status != "" {
		builder.SetStatus(update.Status)
	}
	if update.Note != "" {
		desc := current.Description
		if desc != "" {
			desc += "\n\n"
		}
		builder.SetDescription(desc + strings.TrimSpace(update.Note))
	}

	incident, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return incidentRecord(incident), nil
}

// GetIncident retrieves an incident by ID.
func (s *IncidentService) GetIncident(ctx context.Context, id string) (*ent.Incident, error) {
	incident, err := s.client.Incident.Query().
		Where(entincident.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents lists incidents newest-first, optionally by status.
func (s *IncidentService) ListIncidents(ctx context.Context, status string, limit int) ([]*ent.Incident, error) {
	query := s.client.Incident.Query()
	if status != "" {
		query = query.Where(entincident.StatusEQ(status))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	incidents, err := query.
		Order(ent.Desc(entincident.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return incidents, nil
}

func incidentRecord(incident *ent.Incident) *tools.IncidentRecord {
	return &tools.IncidentRecord{
		ID:       incident.ID,
		Title:    incident.Title,
		Severity: incident.Severity,
		Status:   incident.Status,
	}
}
