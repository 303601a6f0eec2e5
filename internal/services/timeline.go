package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/loreweave/loreweave-backend/internal/platform/apierr"
	"github.com/loreweave/loreweave-backend/internal/platform/logger"
	"github.com/loreweave/loreweave-backend/internal/repos"
	"github.com/loreweave/loreweave-backend/internal/types"
)

type TimelineEventCreate struct {
	Title              string
	DisplayDate        string
	Description        string
	EraID              string
	Tags               []string
	LinkedCharacterIDs []string
	LinkedWritingIDs   []string
}

type TimelineEventPatch struct {
	Title              *string
	DisplayDate        *string
	Description        *string
	EraID              *string
	Tags               *[]string
	LinkedCharacterIDs *[]string
	LinkedWritingIDs   *[]string
}

type TimelineService interface {
	Create(ctx context.Context, projectID uuid.UUID, input TimelineEventCreate) (*types.TimelineEvent, error)
	List(ctx context.Context, projectID uuid.UUID) ([]types.TimelineEvent, error)
	Update(ctx context.Context, projectID uuid.UUID, eventID string, patch TimelineEventPatch) (*types.TimelineEvent, error)
	Delete(ctx context.Context, projectID uuid.UUID, eventID string) error
	Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []string) ([]types.TimelineEvent, error)
}

type timelineService struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewTimelineService(log *logger.Logger, projectRepo repos.ProjectRepo) TimelineService {
	return &timelineService{
		log:         log.With("service", "TimelineService"),
		projectRepo: projectRepo,
	}
}

// Create appends within the event's era: order is max+1 over the events
// sharing that era_id, 0 when the era has none yet. The referenced era is
// not checked for existence; era links are weak like every other link.
func (ts *timelineService) Create(ctx context.Context, projectID uuid.UUID, input TimelineEventCreate) (*types.TimelineEvent, error) {
	project, err := loadOwnedProject(ctx, ts.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	nextOrder := 0
	for _, ev := range project.Timeline {
		if ev.EraID == input.EraID && ev.Order >= nextOrder {
			nextOrder = ev.Order + 1
		}
	}
	event := types.TimelineEvent{
		ID:                 uuid.NewString(),
		Title:              input.Title,
		DisplayDate:        input.DisplayDate,
		Description:        input.Description,
		Tags:               orEmpty(input.Tags),
		LinkedCharacterIDs: orEmpty(input.LinkedCharacterIDs),
		LinkedWritingIDs:   orEmpty(input.LinkedWritingIDs),
		EraID:              input.EraID,
		Order:              nextOrder,
	}
	project.Timeline = append(project.Timeline, event)
	if _, err := ts.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &event, nil
}

func (ts *timelineService) List(ctx context.Context, projectID uuid.UUID) ([]types.TimelineEvent, error) {
	project, err := loadOwnedProject(ctx, ts.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	return project.Timeline, nil
}

func (ts *timelineService) Update(ctx context.Context, projectID uuid.UUID, eventID string, patch TimelineEventPatch) (*types.TimelineEvent, error) {
	project, err := loadOwnedProject(ctx, ts.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range project.Timeline {
		if project.Timeline[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierr.NotFound("event_not_found", errors.New("event does not exist in this project"))
	}
	event := project.Timeline[idx]
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.DisplayDate != nil {
		event.DisplayDate = *patch.DisplayDate
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.EraID != nil {
		event.EraID = *patch.EraID
	}
	if patch.Tags != nil {
		event.Tags = orEmpty(*patch.Tags)
	}
	if patch.LinkedCharacterIDs != nil {
		event.LinkedCharacterIDs = orEmpty(*patch.LinkedCharacterIDs)
	}
	if patch.LinkedWritingIDs != nil {
		event.LinkedWritingIDs = orEmpty(*patch.LinkedWritingIDs)
	}
	event.ID = eventID
	project.Timeline[idx] = event
	if _, err := ts.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return &event, nil
}

func (ts *timelineService) Delete(ctx context.Context, projectID uuid.UUID, eventID string) error {
	project, err := loadOwnedProject(ctx, ts.projectRepo, projectID)
	if err != nil {
		return err
	}
	kept := make([]types.TimelineEvent, 0, len(project.Timeline))
	for _, ev := range project.Timeline {
		if ev.ID != eventID {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(project.Timeline) {
		return apierr.NotFound("event_not_found", errors.New("event does not exist in this project"))
	}
	project.Timeline = datatypes.NewJSONSlice(kept)
	_, err = ts.projectRepo.Save(ctx, project)
	return err
}

// Reorder is the same reconciliation as era reorder, over the project-level
// timeline: listed ids get their index as the new order, unlisted ids keep
// theirs, unknown ids are ignored, then a stable sort restores the
// storage-order/order-field agreement.
func (ts *timelineService) Reorder(ctx context.Context, projectID uuid.UUID, orderedIDs []string) ([]types.TimelineEvent, error) {
	project, err := loadOwnedProject(ctx, ts.projectRepo, projectID)
	if err != nil {
		return nil, err
	}
	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i
	}
	events := make([]types.TimelineEvent, len(project.Timeline))
	copy(events, project.Timeline)
	for i := range events {
		if idx, ok := position[events[i].ID]; ok {
			events[i].Order = idx
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Order < events[j].Order
	})
	project.Timeline = datatypes.NewJSONSlice(events)
	if _, err := ts.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}
	return events, nil
}
