package service

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/hrmetrics/employee_dashboard/internal/domain"
)

// UnassignedDepartment is the headcount bucket for employees without a
// department.
const UnassignedDepartment = "Unassigned"

// Everything in this file is a pure function of its input record sets:
// no store access, no hidden state, safe to recompute on every filter
// change.

// CurrentSalaries reduces a salary history to each employee's current
// record: the one with the latest effective date, ties broken by the
// highest salary id so the result is deterministic.
func CurrentSalaries(salaries []domain.SalaryView) map[int]domain.SalaryView {
	current := make(map[int]domain.SalaryView, len(salaries))
	for _, s := range salaries {
		prev, ok := current[s.EmployeeID]
		if !ok || supersedes(s, prev) {
			current[s.EmployeeID] = s
		}
	}
	return current
}

func supersedes(candidate, incumbent domain.SalaryView) bool {
	if candidate.EffectiveDate.After(incumbent.EffectiveDate) {
		return true
	}
	if candidate.EffectiveDate.Equal(incumbent.EffectiveDate) {
		return candidate.SalaryID > incumbent.SalaryID
	}
	return false
}

// Overview computes the dashboard headline metrics. Average and payroll
// cover only each employee's current salary record, so a superseded
// history row never inflates the totals. Employees with no salary
// records count toward headcount but not toward compensation figures.
func Overview(employees []domain.EmployeeView, departments []domain.Department, salaries []domain.SalaryView) domain.OverviewMetrics {
	current := CurrentSalaries(salaries)

	total := decimal.Zero
	for _, s := range current {
		total = total.Add(s.TotalCompensation())
	}

	avg := decimal.Zero
	if len(current) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(current)))).Round(2)
	}

	return domain.OverviewMetrics{
		TotalEmployees:      len(employees),
		TotalDepartments:    len(departments),
		AverageCompensation: avg,
		TotalPayroll:        total,
	}
}

// DepartmentStatsFor summarizes current compensation for one department.
// EmployeeCount covers every employee assigned to the department; the
// numeric stats cover those with at least one salary record and are nil
// when there are none, never zero.
func DepartmentStatsFor(dept domain.Department, employees []domain.EmployeeView, salaries []domain.SalaryView) domain.DepartmentStats {
	current := CurrentSalaries(salaries)

	stats := domain.DepartmentStats{
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
	}

	var comps []decimal.Decimal
	for _, e := range employees {
		if e.DepartmentID == nil || *e.DepartmentID != dept.ID {
			continue
		}
		stats.EmployeeCount++
		if s, ok := current[e.EmployeeID]; ok {
			comps = append(comps, s.TotalCompensation())
		}
	}
	if len(comps) == 0 {
		return stats
	}

	min, max, total := comps[0], comps[0], decimal.Zero
	for _, c := range comps {
		if c.LessThan(min) {
			min = c
		}
		if c.GreaterThan(max) {
			max = c
		}
		total = total.Add(c)
	}
	avg := total.Div(decimal.NewFromInt(int64(len(comps)))).Round(2)

	stats.MinCompensation = &min
	stats.MaxCompensation = &max
	stats.AverageCompensation = &avg
	stats.TotalPayroll = &total
	return stats
}

// AllDepartmentStats computes DepartmentStatsFor across every department,
// in department id order. Drives the department comparison views.
func AllDepartmentStats(departments []domain.Department, employees []domain.EmployeeView, salaries []domain.SalaryView) []domain.DepartmentStats {
	stats := make([]domain.DepartmentStats, 0, len(departments))
	for _, dept := range departments {
		stats = append(stats, DepartmentStatsFor(dept, employees, salaries))
	}
	return stats
}

// TopEarners ranks employees by current total compensation, descending,
// ties broken by employee id ascending. Employees without a salary
// record are not ranked. n must be positive.
func TopEarners(n int, employees []domain.EmployeeView, salaries []domain.SalaryView) ([]domain.Earner, error) {
	if n < 1 {
		return nil, fmt.Errorf("top earners count %d: %w", n, domain.ErrInvalidArgument)
	}

	current := CurrentSalaries(salaries)

	earners := make([]domain.Earner, 0, len(employees))
	for _, e := range employees {
		s, ok := current[e.EmployeeID]
		if !ok {
			continue
		}
		earners = append(earners, domain.Earner{
			EmployeeID:     e.EmployeeID,
			EmployeeName:   e.FullName(),
			DepartmentName: e.DepartmentName,
			Compensation:   s.TotalCompensation(),
		})
	}

	sort.Slice(earners, func(i, j int) bool {
		if !earners[i].Compensation.Equal(earners[j].Compensation) {
			return earners[i].Compensation.GreaterThan(earners[j].Compensation)
		}
		return earners[i].EmployeeID < earners[j].EmployeeID
	})

	if len(earners) > n {
		earners = earners[:n]
	}
	return earners, nil
}

// HeadcountByDepartment maps department name to employee count, with
// unassigned employees bucketed under UnassignedDepartment.
func HeadcountByDepartment(employees []domain.EmployeeView) map[string]int {
	counts := make(map[string]int)
	for _, e := range employees {
		name := UnassignedDepartment
		if e.DepartmentName != nil {
			name = *e.DepartmentName
		}
		counts[name]++
	}
	return counts
}
