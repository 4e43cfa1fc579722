package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/DevHanzala/TMS-PORTAL/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_badge":
				return employeeerrors.ErrBadgeAlreadyExists
			case "uq_employee_cnic":
				return employeeerrors.ErrCNICAlreadyExists
			case "uq_employee_email":
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_employee_badge"):
			return employeeerrors.ErrBadgeAlreadyExists
		case strings.Contains(errMsg, "uq_employee_cnic"):
			return employeeerrors.ErrCNICAlreadyExists
		case strings.Contains(errMsg, "uq_employee_email"):
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	return err
}
