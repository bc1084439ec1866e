package progression

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainprogress/internal/auth"
	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/2beens/trainprogress/pkg"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type service interface {
	AssignProgram(ctx context.Context, userID uuid.UUID, tmpl program.Template) (*ActiveProgram, error)
	ActiveProgram(ctx context.Context, userID uuid.UUID) (*ActiveProgram, error)
	Progress(ctx context.Context, userID uuid.UUID) (*Progress, error)
	IsSlotCompleted(ctx context.Context, userID uuid.UUID, week, slot int) (bool, error)
	RecordCompletion(ctx context.Context, userID uuid.UUID, input CompletionInput) (*CompletionResult, error)
	RecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) ([]workouts.CompletedWorkout, error)
	Summary(ctx context.Context, userID uuid.UUID) (*Summary, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

type SlotCompletedResponse struct {
	Week      int  `json:"week"`
	Slot      int  `json:"slot"`
	Completed bool `json:"completed"`
}

func (h *Handler) HandleAssignProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.assign")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var tmpl program.Template
	if err := json.NewDecoder(r.Body).Decode(&tmpl); err != nil {
		log.Errorf("assign program, unmarshal json params: %s", err)
		http.Error(w, "assign program failed", http.StatusBadRequest)
		return
	}

	active, err := h.service.AssignProgram(ctx, userID, tmpl)
	if err != nil {
		writeError(w, "assign program", err)
		return
	}

	pkg.WriteJSONResponse(w, active, http.StatusCreated)
}

func (h *Handler) HandleActiveProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.active")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	active, err := h.service.ActiveProgram(ctx, userID)
	if err != nil {
		writeError(w, "get active program", err)
		return
	}

	pkg.WriteJSONResponse(w, active, http.StatusOK)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.progress")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	progress, err := h.service.Progress(ctx, userID)
	if err != nil {
		writeError(w, "get progress", err)
		return
	}

	pkg.WriteJSONResponse(w, progress, http.StatusOK)
}

func (h *Handler) HandleSlotCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.slot")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil || week < 1 {
		http.Error(w, "invalid week", http.StatusBadRequest)
		return
	}
	slot, err := strconv.Atoi(vars["slot"])
	if err != nil {
		http.Error(w, "invalid slot", http.StatusBadRequest)
		return
	}

	completed, err := h.service.IsSlotCompleted(ctx, userID, week, slot)
	if err != nil {
		writeError(w, "check slot", err)
		return
	}

	pkg.WriteJSONResponse(w, SlotCompletedResponse{
		Week:      week,
		Slot:      slot,
		Completed: completed,
	}, http.StatusOK)
}

func (h *Handler) HandleRecordCompletion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.record")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var input CompletionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Errorf("record completion, unmarshal json params: %s", err)
		http.Error(w, "record completion failed", http.StatusBadRequest)
		return
	}
	if input.DurationSeconds < 0 {
		http.Error(w, "invalid duration", http.StatusBadRequest)
		return
	}

	result, err := h.service.RecordCompletion(ctx, userID, input)
	if err != nil {
		writeError(w, "record completion", err)
		return
	}

	pkg.WriteJSONResponse(w, result, http.StatusCreated)
}

func (h *Handler) HandleRecentWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.recent")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(mux.Vars(r)["limit"])
	if err != nil || limit < 1 {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	recent, err := h.service.RecentWorkouts(ctx, userID, limit)
	if err != nil {
		writeError(w, "get recent workouts", err)
		return
	}

	pkg.WriteJSONResponse(w, recent, http.StatusOK)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.summary")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(ctx, userID)
	if err != nil {
		writeError(w, "get summary", err)
		return
	}

	pkg.WriteJSONResponse(w, summary, http.StatusOK)
}

func requestUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "user missing", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, action string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, program.ErrInstanceNotFound),
		errors.Is(err, program.ErrTemplateNotFound):
		status = http.StatusNotFound
	case errors.Is(err, program.ErrInvalidTemplate),
		errors.Is(err, ErrIndexOutOfRange),
		errors.Is(err, ErrUnknownSession),
		errors.Is(err, workouts.ErrInvalidWorkout):
		status = http.StatusBadRequest
	case errors.Is(err, ErrProgramComplete),
		errors.Is(err, program.ErrConcurrentAssignment):
		status = http.StatusConflict
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrLockTimeout):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", action, err)
	} else {
		log.Debugf("%s: %s", action, err)
	}
	http.Error(w, action+" failed", status)
}
