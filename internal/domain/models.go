package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department represents the department table
type Department struct {
	ID       int    `json:"department_id" db:"department_id"`
	Name     string `json:"department_name" db:"department_name"`
	Location string `json:"location" db:"location"`
}

// Employee represents the employee table. DepartmentID is nullable:
// an employee may be unassigned.
type Employee struct {
	ID           int       `json:"employee_id" db:"employee_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	HireDate     time.Time `json:"hire_date" db:"hire_date"`
	DepartmentID *int      `json:"department_id" db:"department_id"`
}

// Salary represents one row of an employee's salary history.
type Salary struct {
	ID            int             `json:"salary_id" db:"salary_id"`
	EmployeeID    int             `json:"employee_id" db:"employee_id"`
	BaseSalary    decimal.Decimal `json:"base_salary" db:"base_salary"`
	Bonus         decimal.Decimal `json:"bonus" db:"bonus"`
	EffectiveDate time.Time       `json:"effective_date" db:"effective_date"`
}

// TotalCompensation is base salary plus bonus for this record.
func (s Salary) TotalCompensation() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus)
}

// EmployeeView is an employee row joined with its department.
// Department fields are nil when the employee is unassigned or the
// department reference does not resolve.
type EmployeeView struct {
	EmployeeID     int       `json:"employee_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HireDate       time.Time `json:"hire_date"`
	DepartmentID   *int      `json:"department_id"`
	DepartmentName *string   `json:"department_name"`
	Location       *string   `json:"location"`
}

// FullName is the "first last" form the search filter matches against.
func (e EmployeeView) FullName() string {
	return e.FirstName + " " + e.LastName
}

// SalaryView is a salary row joined with employee and department names.
// EmployeeName is nil when the employee reference does not resolve;
// the row itself is still returned.
type SalaryView struct {
	SalaryID       int             `json:"salary_id"`
	EmployeeID     int             `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name"`
	DepartmentName *string         `json:"department_name"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	Bonus          decimal.Decimal `json:"bonus"`
	EffectiveDate  time.Time       `json:"effective_date"`
}

// TotalCompensation is base salary plus bonus for this record.
func (s SalaryView) TotalCompensation() decimal.Decimal {
	return s.BaseSalary.Add(s.Bonus)
}

// OverviewMetrics are the headline numbers of the dashboard. Average and
// payroll are computed over each employee's current salary record only,
// so salary history is never double-counted.
type OverviewMetrics struct {
	TotalEmployees      int             `json:"total_employees"`
	TotalDepartments    int             `json:"total_departments"`
	AverageCompensation decimal.Decimal `json:"average_compensation"`
	TotalPayroll        decimal.Decimal `json:"total_payroll"`
}

// DepartmentStats summarizes current compensation within one department.
// The numeric stats are nil when no employee of the department has a
// salary record; an average of nothing is not zero.
type DepartmentStats struct {
	DepartmentID        int              `json:"department_id"`
	DepartmentName      string           `json:"department_name"`
	EmployeeCount       int              `json:"employee_count"`
	MinCompensation     *decimal.Decimal `json:"min_compensation"`
	MaxCompensation     *decimal.Decimal `json:"max_compensation"`
	AverageCompensation *decimal.Decimal `json:"average_compensation"`
	TotalPayroll        *decimal.Decimal `json:"total_payroll"`
}

// Earner is one entry of a top-earners ranking.
type Earner struct {
	EmployeeID     int             `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	DepartmentName *string         `json:"department_name"`
	Compensation   decimal.Decimal `json:"compensation"`
}
