package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DevHanzala/TMS-PORTAL/internal/employee"
	"github.com/DevHanzala/TMS-PORTAL/internal/events"
	"github.com/DevHanzala/TMS-PORTAL/internal/filestore"
	filestoreerrors "github.com/DevHanzala/TMS-PORTAL/internal/filestore/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/messaging/kafka"
	payrollerrors "github.com/DevHanzala/TMS-PORTAL/internal/payroll/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/report"
	"github.com/DevHanzala/TMS-PORTAL/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const monthLayout = "2006-01"

// runCacheTTL keeps a generated run available for display and export
// without recomputation. Statements are a derived view, so expiry only
// costs a recompute.
const runCacheTTL = 24 * time.Hour

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetRun(ctx context.Context, fileID, month string) (GeneratePayrollResponse, error)
}

type service struct {
	db        *sql.DB
	files     filestore.Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	group     singleflight.Group
}

func NewService(
	db *sql.DB,
	files filestore.Repository,
	employees employee.Repository,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
) Service {
	return &service{
		db:        db,
		files:     files,
		employees: employees,
		outbox:    outbox,
		rdb:       rdb,
	}
}

func runCacheKey(fileID, month string) string {
	return fmt.Sprintf("payroll:run:%s:%s", fileID, month)
}

func (s *service) Generate(ctx context.Context, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error) {
	if req.FileID == "" {
		return GeneratePayrollResponse{}, payrollerrors.ErrNoFileSelected
	}

	month, err := time.Parse(monthLayout, req.Month)
	if err != nil {
		return GeneratePayrollResponse{}, payrollerrors.ErrNoMonthSelected
	}

	cfg := Config{
		Year:                   month.Year(),
		Month:                  month.Month(),
		SaturdayOffEmployeeIDs: make(map[string]struct{}, len(req.SaturdayOffEmployeeIDs)),
		OfficialLeaveDays:      req.OfficialLeaveDays,
		AllowedHoursPerDay:     req.AllowedHoursPerDay,
	}
	for _, id := range req.SaturdayOffEmployeeIDs {
		cfg.SaturdayOffEmployeeIDs[id] = struct{}{}
	}
	if err := cfg.Validate(); err != nil {
		return GeneratePayrollResponse{}, err
	}

	// Concurrent generate calls for the same file and month collapse
	// into one computation.
	key := runCacheKey(req.FileID, req.Month)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.generateRun(ctx, actorID, req, cfg, key)
	})
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	return v.(GeneratePayrollResponse), nil
}

func (s *service) generateRun(
	ctx context.Context,
	actorID string,
	req GeneratePayrollRequest,
	cfg Config,
	cacheKey string,
) (GeneratePayrollResponse, error) {
	file, err := s.files.FindByID(ctx, req.FileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GeneratePayrollResponse{}, filestoreerrors.ErrFileNotFound
		}
		return GeneratePayrollResponse{}, err
	}

	emps, err := s.employees.FindAll(ctx)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	roster := make([]PayProfile, len(emps))
	for i, emp := range emps {
		roster[i] = PayProfile{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			SalaryCap:  emp.SalaryCap,
			InTime:     emp.InTime,
			OutTime:    emp.OutTime,
		}
	}

	rows := report.Parse(file.FileData)

	statements, exclusions, err := GenerateAll(roster, rows, cfg)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	resp := GeneratePayrollResponse{
		FileID:      req.FileID,
		Month:       req.Month,
		Statements:  make(map[string]StatementResponse, len(statements)),
		Exclusions:  make([]ExclusionResponse, 0, len(exclusions)),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for id, stmt := range statements {
		resp.Statements[id] = mapStatementToResponse(stmt)
	}
	for _, exc := range exclusions {
		resp.Exclusions = append(resp.Exclusions, ExclusionResponse(exc))
	}

	if err := s.recordRun(ctx, actorID, req, resp); err != nil {
		return GeneratePayrollResponse{}, err
	}

	// Cache write is best-effort: a miss only costs a recompute.
	if s.rdb != nil {
		if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
			_ = s.rdb.Set(ctx, cacheKey, payload, runCacheTTL).Err()
		}
	}

	return resp, nil
}

// recordRun writes the payroll.generated event through the outbox in
// its own transaction so downstream consumers learn about the run.
func (s *service) recordRun(
	ctx context.Context,
	actorID string,
	req GeneratePayrollRequest,
	resp GeneratePayrollResponse,
) error {
	payload, err := json.Marshal(events.PayrollGeneratedEvent{
		EventType:     "payroll.generated",
		FileID:        req.FileID,
		Month:         req.Month,
		EmployeeCount: len(resp.Statements),
		ExcludedCount: len(resp.Exclusions),
		RequestedBy:   actorID,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_run",
		AggregateID:   req.FileID,
		EventType:     "payroll.generated",
		Topic:         events.PayrollGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *service) GetRun(ctx context.Context, fileID, month string) (GeneratePayrollResponse, error) {
	if s.rdb == nil {
		return GeneratePayrollResponse{}, payrollerrors.ErrRunNotFound
	}

	val, err := s.rdb.Get(ctx, runCacheKey(fileID, month)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return GeneratePayrollResponse{}, payrollerrors.ErrRunNotFound
		}
		return GeneratePayrollResponse{}, err
	}

	var resp GeneratePayrollResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		return GeneratePayrollResponse{}, payrollerrors.ErrRunNotFound
	}

	return resp, nil
}
