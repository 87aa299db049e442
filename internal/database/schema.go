package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Dates are stored as ISO 8601 text so the DDL is valid for both the
// sqlite and postgres drivers. salary.employee_id is NOT NULL;
// employee.department_id stays nullable to model unassigned employees.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS department (
		department_id INTEGER PRIMARY KEY,
		department_name TEXT NOT NULL,
		location TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employee (
		employee_id INTEGER PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		hire_date TEXT NOT NULL,
		department_id INTEGER,
		FOREIGN KEY (department_id) REFERENCES department(department_id)
	)`,
	`CREATE TABLE IF NOT EXISTS salary (
		salary_id INTEGER PRIMARY KEY,
		employee_id INTEGER NOT NULL,
		base_salary REAL NOT NULL,
		bonus REAL DEFAULT 0,
		effective_date TEXT NOT NULL,
		FOREIGN KEY (employee_id) REFERENCES employee(employee_id)
	)`,
}

// CreateSchema creates the three dashboard tables if they do not exist.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
