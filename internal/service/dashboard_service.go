package service

import (
	"context"
	"fmt"

	"github.com/hrmetrics/employee_dashboard/internal/domain"
)

// DashboardService runs one synchronous read sequence per interaction:
// fetch the record sets, then derive the requested view with the pure
// aggregation functions. No retries, no partial results; a failed read
// aborts the interaction.
type DashboardService struct {
	repo domain.DashboardRepository
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(repo domain.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// ListEmployees returns employees joined with department info, optionally
// narrowed by a case-insensitive name/email substring.
func (s *DashboardService) ListEmployees(ctx context.Context, search string) ([]domain.EmployeeView, error) {
	return s.repo.ListEmployees(ctx, domain.EmployeeFilter{Search: search})
}

// GetEmployee returns a single employee with joined department info.
func (s *DashboardService) GetEmployee(ctx context.Context, id int) (*domain.EmployeeView, error) {
	if id < 1 {
		return nil, fmt.Errorf("employee id %d: %w", id, domain.ErrInvalidArgument)
	}
	return s.repo.GetEmployeeByID(ctx, id)
}

// ListSalaries returns the full salary history joined with employee and
// department names, bounded inclusively by total compensation.
func (s *DashboardService) ListSalaries(ctx context.Context, minTotal, maxTotal *float64) ([]domain.SalaryView, error) {
	if minTotal != nil && maxTotal != nil && *minTotal > *maxTotal {
		return nil, fmt.Errorf("salary bounds [%v, %v]: %w", *minTotal, *maxTotal, domain.ErrInvalidArgument)
	}
	return s.repo.ListSalaries(ctx, domain.SalaryFilter{MinTotal: minTotal, MaxTotal: maxTotal})
}

// ListDepartments returns all departments.
func (s *DashboardService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListDepartments(ctx)
}

// GetOverview computes the dashboard headline metrics.
func (s *DashboardService) GetOverview(ctx context.Context) (*domain.OverviewMetrics, error) {
	employees, departments, salaries, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	metrics := Overview(employees, departments, salaries)
	return &metrics, nil
}

// GetDepartmentStats computes compensation stats for one department.
func (s *DashboardService) GetDepartmentStats(ctx context.Context, departmentID int) (*domain.DepartmentStats, error) {
	if departmentID < 1 {
		return nil, fmt.Errorf("department id %d: %w", departmentID, domain.ErrInvalidArgument)
	}

	employees, departments, salaries, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, dept := range departments {
		if dept.ID == departmentID {
			stats := DepartmentStatsFor(dept, employees, salaries)
			return &stats, nil
		}
	}
	return nil, fmt.Errorf("department %d: %w", departmentID, domain.ErrNotFound)
}

// GetAllDepartmentStats computes stats for every department, id order.
func (s *DashboardService) GetAllDepartmentStats(ctx context.Context) ([]domain.DepartmentStats, error) {
	employees, departments, salaries, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return AllDepartmentStats(departments, employees, salaries), nil
}

// GetTopEarners ranks the top n employees by current compensation.
func (s *DashboardService) GetTopEarners(ctx context.Context, n int) ([]domain.Earner, error) {
	if n < 1 {
		return nil, fmt.Errorf("top earners count %d: %w", n, domain.ErrInvalidArgument)
	}

	employees, err := s.repo.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	salaries, err := s.repo.ListSalaries(ctx, domain.SalaryFilter{})
	if err != nil {
		return nil, err
	}
	return TopEarners(n, employees, salaries)
}

// GetHeadcount maps department name to employee count.
func (s *DashboardService) GetHeadcount(ctx context.Context) (map[string]int, error) {
	employees, err := s.repo.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	return HeadcountByDepartment(employees), nil
}

func (s *DashboardService) loadAll(ctx context.Context) ([]domain.EmployeeView, []domain.Department, []domain.SalaryView, error) {
	employees, err := s.repo.ListEmployees(ctx, domain.EmployeeFilter{})
	if err != nil {
		return nil, nil, nil, err
	}
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	salaries, err := s.repo.ListSalaries(ctx, domain.SalaryFilter{})
	if err != nil {
		return nil, nil, nil, err
	}
	return employees, departments, salaries, nil
}
