package domain

import "context"

// EmployeeFilter narrows ListEmployees. An empty Search returns the
// unfiltered list.
type EmployeeFilter struct {
	Search string
}

// SalaryFilter bounds ListSalaries by total compensation (base + bonus),
// inclusive. A nil bound means unbounded on that side.
type SalaryFilter struct {
	MinTotal *float64
	MaxTotal *float64
}

// DashboardRepository defines the read operations of the dashboard core.
type DashboardRepository interface {
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeView, error)
	GetEmployeeByID(ctx context.Context, id int) (*EmployeeView, error)
	ListSalaries(ctx context.Context, filter SalaryFilter) ([]SalaryView, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}
