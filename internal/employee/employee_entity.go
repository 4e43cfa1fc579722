package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is one roster record. EmployeeID is the badge number the
// biometric device prints into attendance reports; it is the join key
// between the roster and a report section. SalaryCap is stored raw
// because HR records "N/A" for employees without an agreed salary.
type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       string     `gorm:"column:employee_id;type:varchar(30);not null;uniqueIndex:uq_employee_badge"`
	FullName         string     `gorm:"column:full_name;type:varchar(255);not null"`
	Email            string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	CNIC             string     `gorm:"column:cnic;type:varchar(20);not null;uniqueIndex:uq_employee_cnic"`
	Gender           string     `gorm:"type:varchar(10)"`
	DOB              *time.Time `gorm:"column:dob;type:date"`
	RegistrationDate *time.Time `gorm:"type:date"`
	JoiningDate      *time.Time `gorm:"type:date"`
	PostAppliedFor   string     `gorm:"type:varchar(100)"`
	ContactNumber    string     `gorm:"type:varchar(30)"`
	PermanentAddress string     `gorm:"type:text"`
	Skills           string     `gorm:"type:text"`
	Description      string     `gorm:"type:text"`
	InTime           string     `gorm:"column:in_time;type:varchar(10)"`
	OutTime          string     `gorm:"column:out_time;type:varchar(10)"`
	SalaryCap        string     `gorm:"column:salary_cap;type:varchar(20)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
