package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/georgembugua00/manager-leave/internal/events"
	leaveerrors "github.com/georgembugua00/manager-leave/internal/leave/errors"
	"github.com/georgembugua00/manager-leave/internal/messaging/kafka"
	"github.com/georgembugua00/manager-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusDeclined  = "Declined"
	StatusRecalled  = "Recalled"
	StatusWithdrawn = "Withdrawn"
)

// LeaveTypes is the closed set of absence categories.
var LeaveTypes = []string{
	"Annual", "Sick", "Maternity", "Paternity", "Study", "Compassionate", "Unpaid",
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	History(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Pending(ctx context.Context) ([]LeaveResponse, error)
	Approved(ctx context.Context) ([]LeaveResponse, error)
	All(ctx context.Context) ([]LeaveResponse, error)
	Latest(ctx context.Context) (*LeaveResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Decline(ctx context.Context, id, reason string) (LeaveResponse, error)
	Recall(ctx context.Context, id, reason string) (LeaveResponse, error)
	Withdraw(ctx context.Context, id, reason string) (LeaveResponse, error)
	TeamLeaves(ctx context.Context, filter TeamFilter) ([]LeaveResponse, error)
	UsedDays(ctx context.Context, employeeID, leaveType string) (int, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// Apply records a new leave request with status Pending. Overlap with
// existing approved leave and entitlement balances are deliberately not
// checked here; the dashboard surfaces both for the manager to judge.
func (s *service) Apply(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, startDate, endDate, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("apply leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveType:   req.LeaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		Description: req.Description,
		Attachment:  req.Attachment,
		Status:      StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueRequestedEvent(ctx, tx, l); err != nil {
		s.logger.Error("apply leave enqueue event failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Pending(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByStatus(ctx, StatusPending)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approved(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByStatus(ctx, StatusApproved)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) All(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

// Latest returns the most recently created request, nil when the table is
// empty. An empty table is a normal state, not an error.
func (s *service) Latest(ctx context.Context) (*LeaveResponse, error) {
	l, err := s.repo.FindLatest(ctx)
	if err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, leaveerrors.ErrLeaveNotFound) {
			return nil, nil
		}
		return nil, mapped
	}

	resp := mapToResponse(*l)
	return &resp, nil
}

// UpdateStatus transitions a request addressed strictly by its unique id.
// Allowed transitions: Pending -> Approved|Declined, Approved ->
// Recalled|Withdrawn. Declining requires a reason; recall and withdraw
// reasons are optional.
func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("target_status", req.Status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	if req.Status == StatusDeclined && req.Reason == "" {
		return LeaveResponse{}, leaveerrors.ErrDeclineReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	previousStatus := l.Status
	if !isAllowedStatusTransition(previousStatus, req.Status) {
		s.logger.Warn("update leave status invalid transition",
			zap.String("leave_id", id),
			zap.String("from_status", previousStatus),
			zap.String("to_status", req.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = req.Status
	switch req.Status {
	case StatusDeclined:
		reason := req.Reason
		l.DeclineReason = &reason
		l.RecallReason = nil
	case StatusRecalled, StatusWithdrawn:
		l.DeclineReason = nil
		l.RecallReason = nil
		if req.Reason != "" {
			reason := req.Reason
			l.RecallReason = &reason
		}
	default:
		l.DeclineReason = nil
		l.RecallReason = nil
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave status persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueStatusChangedEvent(ctx, tx, l, previousStatus, req.Reason); err != nil {
		s.logger.Error("update leave status enqueue event failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("from_status", previousStatus),
		zap.String("to_status", l.Status),
	)

	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, id string) (LeaveResponse, error) {
	return s.UpdateStatus(ctx, id, UpdateStatusRequest{Status: StatusApproved})
}

func (s *service) Decline(ctx context.Context, id, reason string) (LeaveResponse, error) {
	return s.UpdateStatus(ctx, id, UpdateStatusRequest{Status: StatusDeclined, Reason: reason})
}

func (s *service) Recall(ctx context.Context, id, reason string) (LeaveResponse, error) {
	return s.UpdateStatus(ctx, id, UpdateStatusRequest{Status: StatusRecalled, Reason: reason})
}

func (s *service) Withdraw(ctx context.Context, id, reason string) (LeaveResponse, error) {
	return s.UpdateStatus(ctx, id, UpdateStatusRequest{Status: StatusWithdrawn, Reason: reason})
}

func (s *service) TeamLeaves(ctx context.Context, filter TeamFilter) ([]LeaveResponse, error) {
	for _, status := range filter.Statuses {
		if !isKnownStatus(status) {
			return nil, leaveerrors.ErrInvalidStatusFilter
		}
	}
	for _, leaveType := range filter.LeaveTypes {
		if !isKnownLeaveType(leaveType) {
			return nil, leaveerrors.ErrInvalidLeaveType
		}
	}

	leaves, err := s.repo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

// UsedDays sums inclusive day counts over the employee's Approved requests,
// optionally restricted to one leave type. A one-day leave counts as 1.
func (s *service) UsedDays(ctx context.Context, employeeID, leaveType string) (int, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, leaveerrors.ErrInvalidEmployeeID
	}
	if leaveType != "" && !isKnownLeaveType(leaveType) {
		return 0, leaveerrors.ErrInvalidLeaveType
	}

	leaves, err := s.repo.FindApprovedByEmployee(ctx, employeeID, leaveType)
	if err != nil {
		return 0, mapRepositoryError(err)
	}

	used := 0
	for _, l := range leaves {
		used += inclusiveDays(l.StartDate, l.EndDate)
	}
	return used, nil
}

func (s *service) enqueueRequestedEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LeaveRequestedEvent{
		EventType:  events.LeaveRequestedEventType,
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     events.LeaveRequestedEventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueueStatusChangedEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, previousStatus, reason string) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LeaveStatusChangedEvent{
		EventType:      events.LeaveStatusChangedEventType,
		LeaveID:        l.ID.String(),
		EmployeeID:     l.EmployeeID.String(),
		PreviousStatus: previousStatus,
		NewStatus:      l.Status,
		Reason:         reason,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave",
		AggregateID:   l.ID.String(),
		EventType:     events.LeaveStatusChangedEventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	switch currentStatus {
	case StatusPending:
		return targetStatus == StatusApproved || targetStatus == StatusDeclined
	case StatusApproved:
		return targetStatus == StatusRecalled || targetStatus == StatusWithdrawn
	default:
		// Declined, Recalled and Withdrawn are terminal
		return false
	}
}

func isKnownStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusDeclined, StatusRecalled, StatusWithdrawn:
		return true
	default:
		return false
	}
}

func isKnownLeaveType(leaveType string) bool {
	for _, t := range LeaveTypes {
		if t == leaveType {
			return true
		}
	}
	return false
}

func validateCreateRequest(req CreateLeaveRequest) (uuid.UUID, time.Time, time.Time, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return uuid.Nil, time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return employeeUUID, startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

// inclusiveDays counts both endpoints, so a same-day leave is 1 day.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:            l.ID.String(),
		EmployeeID:    l.EmployeeID.String(),
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format("2006-01-02"),
		EndDate:       l.EndDate.Format("2006-01-02"),
		Description:   l.Description,
		Attachment:    l.Attachment,
		Status:        l.Status,
		DeclineReason: l.DeclineReason,
		RecallReason:  l.RecallReason,
	}
	if l.Employee != nil {
		name := l.Employee.Name
		resp.EmployeeName = &name
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
