package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nocforge/nocforge/ent"
	entalert "github.com/nocforge/nocforge/ent/alert"
	"github.com/nocforge/nocforge/ent/predicate"
	entsession "github.com/nocforge/nocforge/ent/session"
)

// AlertInput is one ingested alert.
type AlertInput struct {
	Title       string
	Severity    string
	Source      string
	Device      string
	Description string
	SkipAI      bool
}

// AlertFilters narrows ListAlerts.
type AlertFilters struct {
	Status string
	Device string
	Limit  int
	Offset int
}

// AlertService manages alert ingestion and lifecycle.
type AlertService struct {
	client *ent.Client
}

// NewAlertService creates a new AlertService.
func NewAlertService(client *ent.Client) *AlertService {
	return &AlertService{client: client}
}

// CreateAlert ingests a new alert in status "new".
func (s *AlertService) CreateAlert(httpCtx context.Context, input *AlertInput) (*ent.Alert, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if input.Source == "" {
		return nil, NewValidationError("source", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	builder := s.client.Alert.Create().
		SetID(uuid.NewString()).
		SetTitle(input.Title).
		SetSource(input.Source).
		SetSkipAi(input.SkipAI).
		SetStatus(entalert.StatusNew)
	if input.Severity != "" {
		builder.SetSeverity(input.Severity)
	}
	if input.Device != "" {
		builder.SetDevice(input.Device)
	}
	if input.Description != "" {
		builder.SetDescription(input.Description)
	}

	alert, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return alert, nil
}

// GetAlert retrieves an alert by ID.
func (s *AlertService) GetAlert(ctx context.Context, id string) (*ent.Alert, error) {
	alert, err := s.client.Alert.Query().
		Where(entalert.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return alert, nil
}

// ListAlerts lists alerts newest-first with filtering and pagination.
func (s *AlertService) ListAlerts(ctx context.Context, filters AlertFilters) ([]*ent.Alert, int, error) {
	query := s.client.Alert.Query()
	if filters.Status != "" {
		query = query.Where(entalert.StatusEQ(entalert.Status(filters.Status)))
	}
	if filters.Device != "" {
		query = query.Where(entalert.DeviceEQ(filters.Device))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	alerts, err := query.
		Order(ent.Desc(entalert.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, total, nil
}

// UpdateAlertStatus sets an alert's status.
func (s *AlertService) UpdateAlertStatus(httpCtx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	if _, err := s.client.Alert.UpdateOneID(id).
		SetStatus(entalert.Status(status)).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	return nil
}

// AcknowledgeAlert stamps acknowledged_at.
func (s *AlertService) AcknowledgeAlert(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	if _, err := s.client.Alert.UpdateOneID(id).
		SetAcknowledgedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	return nil
}

// ResolveAlert marks the alert resolved and stamps resolved_at.
func (s *AlertService) ResolveAlert(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	if _, err := s.client.Alert.UpdateOneID(id).
		SetStatus(entalert.StatusResolved).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to resolve alert: %w", err)
	}
	return nil
}

// LinkIncident attaches an incident to the alert.
func (s *AlertService) LinkIncident(httpCtx context.Context, alertID, incidentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	if _, err := s.client.Alert.UpdateOneID(alertID).
		SetIncidentID(incidentID).
		Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to link incident: %w", err)
	}
	return nil
}

// ClaimNextNewAlert atomically claims the oldest unprocessed alert for this
// worker. The conditional update is the claim: with several workers polling,
// exactly one flips new to processing. Alerts ingested with skip_ai stay in
// the queue for humans and are never claimed. Returns ErrNotFound when the
// queue is empty.
func (s *AlertService) ClaimNextNewAlert(httpCtx context.Context, podID string) (*ent.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	candidates, err := s.client.Alert.Query().
		Where(
			entalert.StatusEQ(entalert.StatusNew),
			entalert.SkipAiEQ(false),
		).
		Order(ent.Asc(entalert.FieldCreatedAt)).
		Limit(10).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query new alerts: %w", err)
	}

	for _, candidate := range candidates {
		n, err := s.client.Alert.Update().
			Where(
				entalert.IDEQ(candidate.ID),
				entalert.StatusEQ(entalert.StatusNew),
			).
			SetStatus(entalert.StatusProcessing).
			SetPodID(podID).
			SetClaimedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim alert: %w", err)
		}
		if n == 1 {
			return s.GetAlert(ctx, candidate.ID)
		}
		// Another worker won this one; try the next candidate.
	}

	return nil, ErrNotFound
}

// RequeueStaleClaims flips processing alerts claimed longer than maxAge ago
// back to new so a live worker can pick them up. Covers workers that died
// mid-workflow without writing a terminal status. Alerts whose session is
// paused on a human approval are not stale, however long the human takes;
// requeueing one would start a duplicate run alongside the decidable pause.
// Idempotent.
func (s *AlertService) RequeueStaleClaims(httpCtx context.Context, maxAge time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), criticalWriteTimeout)
	defer cancel()

	paused, err := s.client.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusAwaitingApproval),
			entsession.TriggerTypeEQ("alert"),
		).
		Select(entsession.FieldTriggerID).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query paused sessions: %w", err)
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	predicates := []predicate.Alert{
		entalert.StatusEQ(entalert.StatusProcessing),
		entalert.ClaimedAtLTE(cutoff),
	}
	if len(paused) > 0 {
		predicates = append(predicates, entalert.IDNotIn(paused...))
	}

	n, err := s.client.Alert.Update().
		Where(predicates...).
		SetStatus(entalert.StatusNew).
		ClearPodID().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stale alerts: %w", err)
	}
	return n, nil
}
