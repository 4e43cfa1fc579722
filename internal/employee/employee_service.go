package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "github.com/DevHanzala/TMS-PORTAL/internal/employee/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}
	registrationDate, err := parseOptionalDate(req.RegistrationDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joiningDate, err := parseOptionalDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	emp := &Employee{
		ID:               uuid.New(),
		EmployeeID:       req.EmployeeID,
		FullName:         req.FullName,
		Email:            req.Email,
		CNIC:             req.CNIC,
		Gender:           req.Gender,
		DOB:              dob,
		RegistrationDate: registrationDate,
		JoiningDate:      joiningDate,
		PostAppliedFor:   req.PostAppliedFor,
		ContactNumber:    req.ContactNumber,
		PermanentAddress: req.PermanentAddress,
		Skills:           req.Skills,
		Description:      req.Description,
		InTime:           req.InTime,
		OutTime:          req.OutTime,
		SalaryCap:        req.SalaryCap,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		resp[i] = mapToResponse(emp)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	dob, err := parseOptionalDate(req.DOB)
	if err != nil {
		return EmployeeResponse{}, err
	}
	joiningDate, err := parseOptionalDate(req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	emp.FullName = req.FullName
	emp.Email = req.Email
	emp.CNIC = req.CNIC
	emp.Gender = req.Gender
	if dob != nil {
		emp.DOB = dob
	}
	if joiningDate != nil {
		emp.JoiningDate = joiningDate
	}
	emp.PostAppliedFor = req.PostAppliedFor
	emp.ContactNumber = req.ContactNumber
	emp.PermanentAddress = req.PermanentAddress
	emp.Skills = req.Skills
	emp.Description = req.Description
	emp.InTime = req.InTime
	emp.OutTime = req.OutTime
	emp.SalaryCap = req.SalaryCap

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func parseOptionalDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	return &t, nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               emp.ID.String(),
		EmployeeID:       emp.EmployeeID,
		FullName:         emp.FullName,
		Email:            emp.Email,
		CNIC:             emp.CNIC,
		Gender:           emp.Gender,
		DOB:              formatOptionalDate(emp.DOB),
		RegistrationDate: formatOptionalDate(emp.RegistrationDate),
		JoiningDate:      formatOptionalDate(emp.JoiningDate),
		PostAppliedFor:   emp.PostAppliedFor,
		ContactNumber:    emp.ContactNumber,
		PermanentAddress: emp.PermanentAddress,
		Skills:           emp.Skills,
		Description:      emp.Description,
		InTime:           emp.InTime,
		OutTime:          emp.OutTime,
		SalaryCap:        emp.SalaryCap,
	}
}
