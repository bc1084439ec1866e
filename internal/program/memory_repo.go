package program

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps templates and instances in process memory.
// Used by the memory storage backend and by tests.
type MemoryRepo struct {
	mu             sync.RWMutex
	templates      map[int64]Template
	instances      map[uuid.UUID]*Instance
	lastTemplateID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		templates: make(map[int64]Template),
		instances: make(map[uuid.UUID]*Instance),
	}
}

func (r *MemoryRepo) AddTemplate(_ context.Context, template Template) (*Template, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastTemplateID++
	template.ID = r.lastTemplateID
	template.CreatedAt = time.Now()
	template.Sessions = cloneSessions(template.Sessions)
	r.templates[template.ID] = template

	stored := template
	stored.Sessions = cloneSessions(template.Sessions)
	return &stored, nil
}

func (r *MemoryRepo) GetTemplate(_ context.Context, id int64) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	template, ok := r.templates[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	template.Sessions = cloneSessions(template.Sessions)
	return &template, nil
}

func (r *MemoryRepo) AssignProgram(_ context.Context, userID uuid.UUID, templateID int64, startedAt time.Time) (*Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[templateID]; !ok {
		return nil, ErrTemplateNotFound
	}

	for _, instance := range r.instances {
		if instance.UserID == userID && instance.SupersededAt == nil {
			supersededAt := startedAt
			instance.SupersededAt = &supersededAt
		}
	}

	instance := NewInstance(userID, templateID, startedAt)
	r.instances[instance.ID] = instance

	assigned := *instance
	return &assigned, nil
}

func (r *MemoryRepo) GetActiveInstance(_ context.Context, userID uuid.UUID) (*Instance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, instance := range r.instances {
		if instance.UserID == userID && instance.SupersededAt == nil {
			active := *instance
			return &active, nil
		}
	}
	return nil, ErrInstanceNotFound
}

func (r *MemoryRepo) UpdateCursor(_ context.Context, instance *Instance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.instances[instance.ID]
	if !ok || stored.SupersededAt != nil {
		return ErrInstanceNotFound
	}

	instance.UpdatedAt = time.Now()
	stored.CurrentWeek = instance.CurrentWeek
	stored.CurrentSessionIndex = instance.CurrentSessionIndex
	stored.LastRolloverRecordID = instance.LastRolloverRecordID
	stored.UpdatedAt = instance.UpdatedAt
	return nil
}

func cloneSessions(sessions []SessionTemplate) []SessionTemplate {
	cloned := make([]SessionTemplate, len(sessions))
	for i, s := range sessions {
		cloned[i] = SessionTemplate{
			DayName:   s.DayName,
			Exercises: append([]ExerciseSpec(nil), s.Exercises...),
		}
	}
	return cloned
}
