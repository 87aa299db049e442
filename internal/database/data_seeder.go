package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hrmetrics/employee_dashboard/internal/logger"
)

// DataSeeder loads the sample dataset the dashboard ships with. Seeding
// runs once before the core is first queried; afterwards the store is
// read-only.
type DataSeeder struct {
	db *sql.DB
}

func NewDataSeeder(db *sql.DB) *DataSeeder {
	return &DataSeeder{db: db}
}

type departmentRow struct {
	id       int
	name     string
	location string
}

type employeeRow struct {
	id           int
	firstName    string
	lastName     string
	email        string
	hireDate     string
	departmentID int
}

type salaryRow struct {
	id            int
	employeeID    int
	baseSalary    float64
	bonus         float64
	effectiveDate string
}

var sampleDepartments = []departmentRow{
	{1, "Engineering", "New York"},
	{2, "Human Resources", "Boston"},
	{3, "Marketing", "San Francisco"},
	{4, "Sales", "Chicago"},
	{5, "Finance", "New York"},
}

var sampleEmployees = []employeeRow{
	{1, "John", "Doe", "john.doe@company.com", "2020-01-15", 1},
	{2, "Jane", "Smith", "jane.smith@company.com", "2019-03-22", 1},
	{3, "Michael", "Johnson", "michael.j@company.com", "2021-06-10", 2},
	{4, "Emily", "Williams", "emily.w@company.com", "2020-11-05", 3},
	{5, "David", "Brown", "david.b@company.com", "2018-09-12", 4},
	{6, "Sarah", "Davis", "sarah.d@company.com", "2022-02-28", 1},
	{7, "Robert", "Miller", "robert.m@company.com", "2019-07-19", 5},
	{8, "Lisa", "Wilson", "lisa.w@company.com", "2021-04-03", 3},
	{9, "James", "Moore", "james.m@company.com", "2020-08-17", 4},
	{10, "Maria", "Taylor", "maria.t@company.com", "2022-01-10", 2},
}

var sampleSalaries = []salaryRow{
	{1, 1, 95000, 5000, "2020-01-15"},
	{2, 2, 105000, 7000, "2019-03-22"},
	{3, 3, 65000, 3000, "2021-06-10"},
	{4, 4, 78000, 4000, "2020-11-05"},
	{5, 5, 88000, 6000, "2018-09-12"},
	{6, 6, 92000, 4500, "2022-02-28"},
	{7, 7, 110000, 8000, "2019-07-19"},
	{8, 8, 72000, 3500, "2021-04-03"},
	{9, 9, 85000, 5500, "2020-08-17"},
	{10, 10, 68000, 3200, "2022-01-10"},
}

// SeedSampleData creates the schema and bulk-inserts the sample rows
// inside a single transaction. Existing rows are cleared first so the
// seeder can be re-run for a full reseed.
func (ds *DataSeeder) SeedSampleData(ctx context.Context) error {
	start := time.Now()

	if err := CreateSchema(ctx, ds.db); err != nil {
		return err
	}

	tx, err := ds.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"salary", "employee", "department"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, d := range sampleDepartments {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO department (department_id, department_name, location) VALUES ($1, $2, $3)",
			d.id, d.name, d.location)
		if err != nil {
			return fmt.Errorf("seed department %d: %w", d.id, err)
		}
	}

	for _, e := range sampleEmployees {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO employee (employee_id, first_name, last_name, email, hire_date, department_id) VALUES ($1, $2, $3, $4, $5, $6)",
			e.id, e.firstName, e.lastName, e.email, e.hireDate, e.departmentID)
		if err != nil {
			return fmt.Errorf("seed employee %d: %w", e.id, err)
		}
	}

	for _, s := range sampleSalaries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO salary (salary_id, employee_id, base_salary, bonus, effective_date) VALUES ($1, $2, $3, $4, $5)",
			s.id, s.employeeID, s.baseSalary, s.bonus, s.effectiveDate)
		if err != nil {
			return fmt.Errorf("seed salary %d: %w", s.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	logger.InfoLog(ctx, "Seeded %d departments, %d employees, %d salary records in %s",
		len(sampleDepartments), len(sampleEmployees), len(sampleSalaries), time.Since(start))
	return nil
}
