package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrmetrics/employee_dashboard/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Scenario: two departments, three employees, four salary rows. Alice has
// a superseded 2023 record and a current 2024 record.
func scenarioDepartments() []domain.Department {
	return []domain.Department{
		{ID: 1, Name: "Engineering", Location: "New York"},
		{ID: 2, Name: "HR", Location: "Boston"},
	}
}

func scenarioEmployees() []domain.EmployeeView {
	return []domain.EmployeeView{
		{EmployeeID: 1, FirstName: "Alice", LastName: "Nguyen", Email: "alice@company.com", DepartmentID: intPtr(1), DepartmentName: strPtr("Engineering")},
		{EmployeeID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@company.com", DepartmentID: intPtr(1), DepartmentName: strPtr("Engineering")},
		{EmployeeID: 3, FirstName: "Carol", LastName: "Diaz", Email: "carol@company.com", DepartmentID: intPtr(2), DepartmentName: strPtr("HR")},
	}
}

func scenarioSalaries(t *testing.T) []domain.SalaryView {
	return []domain.SalaryView{
		{SalaryID: 1, EmployeeID: 1, BaseSalary: money(100000), Bonus: money(5000), EffectiveDate: date(t, "2023-01-01")},
		{SalaryID: 2, EmployeeID: 1, BaseSalary: money(110000), Bonus: money(6000), EffectiveDate: date(t, "2024-01-01")},
		{SalaryID: 3, EmployeeID: 2, BaseSalary: money(90000), Bonus: money(0), EffectiveDate: date(t, "2023-06-01")},
		{SalaryID: 4, EmployeeID: 3, BaseSalary: money(95000), Bonus: money(2000), EffectiveDate: date(t, "2023-03-01")},
	}
}

func TestCurrentSalaries(t *testing.T) {
	t.Run("Latest Effective Date Wins", func(t *testing.T) {
		current := CurrentSalaries(scenarioSalaries(t))
		if got := current[1].SalaryID; got != 2 {
			t.Errorf("expected salary 2 as current for employee 1, got %d", got)
		}
		if !current[1].TotalCompensation().Equal(money(116000)) {
			t.Errorf("expected current compensation 116000, got %s", current[1].TotalCompensation())
		}
	})

	t.Run("Same Date Tie Breaks On Highest Salary ID", func(t *testing.T) {
		day := date(t, "2024-01-01")
		salaries := []domain.SalaryView{
			{SalaryID: 7, EmployeeID: 1, BaseSalary: money(80000), EffectiveDate: day},
			{SalaryID: 9, EmployeeID: 1, BaseSalary: money(85000), EffectiveDate: day},
			{SalaryID: 8, EmployeeID: 1, BaseSalary: money(82000), EffectiveDate: day},
		}
		current := CurrentSalaries(salaries)
		if got := current[1].SalaryID; got != 9 {
			t.Errorf("expected salary 9 to win the tie, got %d", got)
		}
	})
}

func TestOverview(t *testing.T) {
	employees := scenarioEmployees()
	departments := scenarioDepartments()
	salaries := scenarioSalaries(t)

	metrics := Overview(employees, departments, salaries)

	if metrics.TotalEmployees != 3 {
		t.Errorf("expected 3 employees, got %d", metrics.TotalEmployees)
	}
	if metrics.TotalDepartments != 2 {
		t.Errorf("expected 2 departments, got %d", metrics.TotalDepartments)
	}
	// 116000 + 90000 + 97000; Alice's superseded 2023 record must not count.
	if !metrics.TotalPayroll.Equal(money(303000)) {
		t.Errorf("expected payroll 303000, got %s", metrics.TotalPayroll)
	}
	if !metrics.AverageCompensation.Equal(money(101000)) {
		t.Errorf("expected average 101000, got %s", metrics.AverageCompensation)
	}

	t.Run("Superseded Record Does Not Change Payroll", func(t *testing.T) {
		older := append(scenarioSalaries(t), domain.SalaryView{
			SalaryID: 5, EmployeeID: 2, BaseSalary: money(50000), Bonus: money(1000),
			EffectiveDate: date(t, "2020-01-01"),
		})
		withHistory := Overview(employees, departments, older)
		if !withHistory.TotalPayroll.Equal(metrics.TotalPayroll) {
			t.Errorf("payroll changed from %s to %s after adding a superseded record",
				metrics.TotalPayroll, withHistory.TotalPayroll)
		}
	})

	t.Run("Employees Without Salary Count In Headcount Only", func(t *testing.T) {
		// Assumption under test: a salary-less employee is excluded from
		// compensation figures but still counted as headcount.
		withNewHire := append(scenarioEmployees(), domain.EmployeeView{
			EmployeeID: 4, FirstName: "Dan", LastName: "Lee", Email: "dan@company.com",
		})
		m := Overview(withNewHire, departments, salaries)
		if m.TotalEmployees != 4 {
			t.Errorf("expected 4 employees, got %d", m.TotalEmployees)
		}
		if !m.TotalPayroll.Equal(money(303000)) {
			t.Errorf("expected payroll unchanged at 303000, got %s", m.TotalPayroll)
		}
		if !m.AverageCompensation.Equal(money(101000)) {
			t.Errorf("expected average unchanged at 101000, got %s", m.AverageCompensation)
		}
	})

	t.Run("Empty Dataset", func(t *testing.T) {
		m := Overview(nil, nil, nil)
		if m.TotalEmployees != 0 || m.TotalDepartments != 0 {
			t.Errorf("expected zero counts, got %+v", m)
		}
		if !m.TotalPayroll.IsZero() || !m.AverageCompensation.IsZero() {
			t.Errorf("expected zero totals, got %+v", m)
		}
	})
}

func TestDepartmentStatsFor(t *testing.T) {
	employees := scenarioEmployees()
	salaries := scenarioSalaries(t)

	t.Run("Engineering", func(t *testing.T) {
		stats := DepartmentStatsFor(scenarioDepartments()[0], employees, salaries)
		if stats.EmployeeCount != 2 {
			t.Errorf("expected 2 employees, got %d", stats.EmployeeCount)
		}
		if stats.AverageCompensation == nil || !stats.AverageCompensation.Equal(money(103000)) {
			t.Errorf("expected average 103000, got %v", stats.AverageCompensation)
		}
		if stats.MinCompensation == nil || !stats.MinCompensation.Equal(money(90000)) {
			t.Errorf("expected min 90000, got %v", stats.MinCompensation)
		}
		if stats.MaxCompensation == nil || !stats.MaxCompensation.Equal(money(116000)) {
			t.Errorf("expected max 116000, got %v", stats.MaxCompensation)
		}
		if stats.TotalPayroll == nil || !stats.TotalPayroll.Equal(money(206000)) {
			t.Errorf("expected payroll 206000, got %v", stats.TotalPayroll)
		}
	})

	t.Run("Empty Department Yields Nil Stats Not Zero", func(t *testing.T) {
		empty := domain.Department{ID: 9, Name: "Legal", Location: "Chicago"}
		stats := DepartmentStatsFor(empty, employees, salaries)
		if stats.EmployeeCount != 0 {
			t.Errorf("expected 0 employees, got %d", stats.EmployeeCount)
		}
		if stats.MinCompensation != nil || stats.MaxCompensation != nil ||
			stats.AverageCompensation != nil || stats.TotalPayroll != nil {
			t.Errorf("expected nil stats for empty department, got %+v", stats)
		}
	})

	t.Run("Department With Only Salary-less Employees", func(t *testing.T) {
		dept := domain.Department{ID: 3, Name: "Legal", Location: "Chicago"}
		staff := []domain.EmployeeView{
			{EmployeeID: 10, FirstName: "Eve", LastName: "Woods", DepartmentID: intPtr(3), DepartmentName: strPtr("Legal")},
		}
		stats := DepartmentStatsFor(dept, staff, nil)
		if stats.EmployeeCount != 1 {
			t.Errorf("expected 1 employee, got %d", stats.EmployeeCount)
		}
		if stats.AverageCompensation != nil {
			t.Errorf("expected nil average with no salary records, got %v", stats.AverageCompensation)
		}
	})
}

func TestAllDepartmentStats(t *testing.T) {
	stats := AllDepartmentStats(scenarioDepartments(), scenarioEmployees(), scenarioSalaries(t))
	if len(stats) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(stats))
	}
	if stats[0].DepartmentID != 1 || stats[1].DepartmentID != 2 {
		t.Errorf("expected department id order, got %d then %d", stats[0].DepartmentID, stats[1].DepartmentID)
	}
	if stats[1].TotalPayroll == nil || !stats[1].TotalPayroll.Equal(money(97000)) {
		t.Errorf("expected HR payroll 97000, got %v", stats[1].TotalPayroll)
	}
}

func TestTopEarners(t *testing.T) {
	employees := scenarioEmployees()
	salaries := scenarioSalaries(t)

	t.Run("Top One Is Alice", func(t *testing.T) {
		earners, err := TopEarners(1, employees, salaries)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(earners) != 1 {
			t.Fatalf("expected 1 earner, got %d", len(earners))
		}
		if earners[0].EmployeeID != 1 || !earners[0].Compensation.Equal(money(116000)) {
			t.Errorf("expected Alice at 116000, got %+v", earners[0])
		}
	})

	t.Run("Descending With ID Ascending Ties", func(t *testing.T) {
		day := date(t, "2024-01-01")
		tied := []domain.SalaryView{
			{SalaryID: 1, EmployeeID: 2, BaseSalary: money(100000), EffectiveDate: day},
			{SalaryID: 2, EmployeeID: 1, BaseSalary: money(100000), EffectiveDate: day},
			{SalaryID: 3, EmployeeID: 3, BaseSalary: money(120000), EffectiveDate: day},
		}
		earners, err := TopEarners(3, employees, tied)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ids := []int{earners[0].EmployeeID, earners[1].EmployeeID, earners[2].EmployeeID}
		if ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
			t.Errorf("expected order [3 1 2], got %v", ids)
		}
	})

	t.Run("Fewer Employees Than Requested", func(t *testing.T) {
		earners, err := TopEarners(10, employees, salaries)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(earners) != 3 {
			t.Errorf("expected all 3 earners, got %d", len(earners))
		}
	})

	t.Run("Non-Positive N Rejected", func(t *testing.T) {
		for _, n := range []int{0, -1} {
			if _, err := TopEarners(n, employees, salaries); !errors.Is(err, domain.ErrInvalidArgument) {
				t.Errorf("TopEarners(%d): expected ErrInvalidArgument, got %v", n, err)
			}
		}
	})
}

func TestHeadcountByDepartment(t *testing.T) {
	employees := append(scenarioEmployees(), domain.EmployeeView{
		EmployeeID: 4, FirstName: "Dan", LastName: "Lee", Email: "dan@company.com",
	})

	counts := HeadcountByDepartment(employees)

	if counts["Engineering"] != 2 {
		t.Errorf("expected 2 in Engineering, got %d", counts["Engineering"])
	}
	if counts["HR"] != 1 {
		t.Errorf("expected 1 in HR, got %d", counts["HR"])
	}
	if counts[UnassignedDepartment] != 1 {
		t.Errorf("expected 1 unassigned, got %d", counts[UnassignedDepartment])
	}
}
