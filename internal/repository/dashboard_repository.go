package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrmetrics/employee_dashboard/internal/domain"
	"github.com/hrmetrics/employee_dashboard/internal/logger"
	"github.com/hrmetrics/employee_dashboard/internal/repository/builder"
)

const dateLayout = "2006-01-02"

type dashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository.
func NewDashboardRepository(db *sql.DB) domain.DashboardRepository {
	return &dashboardRepository{db: db}
}

// dataAccessErr tags a store failure so callers can match
// domain.ErrDataAccess while keeping the driver error in the chain.
func dataAccessErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(domain.ErrDataAccess, err))
}

// escapeLike neutralizes LIKE metacharacters so user search text matches
// literally. The conditions using the pattern must declare ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func parseDate(op, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, dataAccessErr(op, fmt.Errorf("malformed date %q: %w", raw, err))
	}
	return t, nil
}

func (r *dashboardRepository) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.EmployeeView, error) {
	b := builder.NewSQLBuilder()
	b.Select(
		"e.employee_id", "e.first_name", "e.last_name", "e.email", "e.hire_date",
		"e.department_id", "d.department_name", "d.location",
	).
		From("employee e").
		LeftJoin("department d", "e.department_id = d.department_id").
		OrderBy("e.employee_id ASC")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		b.WhereGroup(func(g *builder.SQLBuilder) *builder.SQLBuilder {
			return g.Where(`LOWER(e.first_name || ' ' || e.last_name) LIKE ? ESCAPE '\'`, pattern).
				Where(`LOWER(e.email) LIKE ? ESCAPE '\'`, pattern)
		})
	}

	query, args := b.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dataAccessErr("list employees", err)
	}
	defer rows.Close()

	var employees []domain.EmployeeView
	for rows.Next() {
		e, err := scanEmployeeView(ctx, rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("list employees", err)
	}
	return employees, nil
}

func (r *dashboardRepository) GetEmployeeByID(ctx context.Context, id int) (*domain.EmployeeView, error) {
	query, args := builder.NewSQLBuilder().
		Select(
			"e.employee_id", "e.first_name", "e.last_name", "e.email", "e.hire_date",
			"e.department_id", "d.department_name", "d.location",
		).
		From("employee e").
		LeftJoin("department d", "e.department_id = d.department_id").
		Where("e.employee_id = ?", id).
		Build()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dataAccessErr("get employee", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, dataAccessErr("get employee", err)
		}
		return nil, fmt.Errorf("employee %d: %w", id, domain.ErrNotFound)
	}
	return scanEmployeeView(ctx, rows)
}

// scanEmployeeView maps one joined row. A department reference that fails
// to resolve is surfaced as nil joined fields and logged, never dropped.
func scanEmployeeView(ctx context.Context, rows *sql.Rows) (*domain.EmployeeView, error) {
	var (
		e        domain.EmployeeView
		hireDate string
		deptID   sql.NullInt64
		deptName sql.NullString
		location sql.NullString
	)
	if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Email, &hireDate,
		&deptID, &deptName, &location); err != nil {
		return nil, dataAccessErr("scan employee", err)
	}

	hired, err := parseDate("scan employee", hireDate)
	if err != nil {
		return nil, err
	}
	e.HireDate = hired

	if deptID.Valid {
		id := int(deptID.Int64)
		e.DepartmentID = &id
	}
	if deptName.Valid {
		e.DepartmentName = &deptName.String
	}
	if location.Valid {
		e.Location = &location.String
	}
	if e.DepartmentID != nil && e.DepartmentName == nil {
		logger.WarnLog(ctx, "Referential anomaly: employee %d references missing department %d",
			e.EmployeeID, *e.DepartmentID)
	}
	return &e, nil
}

func (r *dashboardRepository) ListSalaries(ctx context.Context, filter domain.SalaryFilter) ([]domain.SalaryView, error) {
	b := builder.NewSQLBuilder()
	b.Select(
		"s.salary_id", "s.employee_id",
		"e.first_name || ' ' || e.last_name AS employee_name",
		"d.department_name",
		"s.base_salary", "s.bonus", "s.effective_date",
	).
		From("salary s").
		LeftJoin("employee e", "s.employee_id = e.employee_id").
		LeftJoin("department d", "e.department_id = d.department_id").
		OrderBy("s.employee_id ASC").
		OrderBy("s.effective_date ASC")

	if filter.MinTotal != nil {
		b.Where("s.base_salary + s.bonus >= ?", *filter.MinTotal)
	}
	if filter.MaxTotal != nil {
		b.Where("s.base_salary + s.bonus <= ?", *filter.MaxTotal)
	}

	query, args := b.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dataAccessErr("list salaries", err)
	}
	defer rows.Close()

	var salaries []domain.SalaryView
	for rows.Next() {
		var (
			s        domain.SalaryView
			empName  sql.NullString
			deptName sql.NullString
			effDate  string
		)
		if err := rows.Scan(&s.SalaryID, &s.EmployeeID, &empName, &deptName,
			&s.BaseSalary, &s.Bonus, &effDate); err != nil {
			return nil, dataAccessErr("scan salary", err)
		}

		effective, err := parseDate("scan salary", effDate)
		if err != nil {
			return nil, err
		}
		s.EffectiveDate = effective

		if empName.Valid {
			s.EmployeeName = &empName.String
		} else {
			logger.WarnLog(ctx, "Referential anomaly: salary %d references missing employee %d",
				s.SalaryID, s.EmployeeID)
		}
		if deptName.Valid {
			s.DepartmentName = &deptName.String
		}
		salaries = append(salaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("list salaries", err)
	}
	return salaries, nil
}

func (r *dashboardRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query, _ := builder.NewSQLBuilder().
		Select("department_id", "department_name", "location").
		From("department").
		OrderBy("department_id ASC").
		Build()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dataAccessErr("list departments", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Location); err != nil {
			return nil, dataAccessErr("scan department", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessErr("list departments", err)
	}
	return departments, nil
}
