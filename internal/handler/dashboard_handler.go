package handler

import (
	"bytes"
	_ "embed"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hrmetrics/employee_dashboard/internal/domain"
	"github.com/hrmetrics/employee_dashboard/internal/service"
	"github.com/hrmetrics/employee_dashboard/internal/service/serviceutils"
	"github.com/hrmetrics/employee_dashboard/pkg/reportxlsx"
)

//go:embed report_template.yaml
var reportTemplateYAML []byte

const dateLayout = "2006-01-02"

// defaultTopEarners matches the original dashboard's "Top 5 Earners" view.
const defaultTopEarners = 5

type DashboardHandler struct {
	svc      *service.DashboardService
	template *reportxlsx.ReportTemplate
}

func NewDashboardHandler(svc *service.DashboardService) (*DashboardHandler, error) {
	tpl, err := reportxlsx.LoadTemplate(reportTemplateYAML)
	if err != nil {
		return nil, err
	}
	return &DashboardHandler{svc: svc, template: tpl}, nil
}

// statusFor maps the error taxonomy to HTTP statuses: rejected parameters
// are the caller's fault, missing rows are 404, everything else is a
// store failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *DashboardHandler) OverviewHandler(c echo.Context) error {
	metrics, err := h.svc.GetOverview(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute overview", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Overview computed successfully", metrics)
}

func (h *DashboardHandler) ListEmployeesHandler(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to list employees", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", employees)
}

func (h *DashboardHandler) GetEmployeeHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	emp, err := h.svc.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", emp)
}

func (h *DashboardHandler) ListSalariesHandler(c echo.Context) error {
	minTotal, err := parseBound(c.QueryParam("min"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid minimum bound", err)
	}
	maxTotal, err := parseBound(c.QueryParam("max"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid maximum bound", err)
	}

	salaries, err := h.svc.ListSalaries(c.Request().Context(), minTotal, maxTotal)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to list salaries", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Salaries listed successfully", salaries)
}

func (h *DashboardHandler) ListDepartmentsHandler(c echo.Context) error {
	departments, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to list departments", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Departments listed successfully", departments)
}

func (h *DashboardHandler) DepartmentStatsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid department ID", err)
	}

	stats, err := h.svc.GetDepartmentStats(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute department stats", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Department stats computed successfully", stats)
}

func (h *DashboardHandler) AllDepartmentStatsHandler(c echo.Context) error {
	stats, err := h.svc.GetAllDepartmentStats(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute department stats", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Department stats computed successfully", stats)
}

func (h *DashboardHandler) TopEarnersHandler(c echo.Context) error {
	n := defaultTopEarners
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid top earners count", err)
		}
		n = parsed
	}

	earners, err := h.svc.GetTopEarners(c.Request().Context(), n)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to rank top earners", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Top earners ranked successfully", earners)
}

func (h *DashboardHandler) HeadcountHandler(c echo.Context) error {
	counts, err := h.svc.GetHeadcount(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to compute headcount", err)
	}

	entries := make([]HeadcountEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, HeadcountEntry{Department: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Department < entries[j].Department })

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Headcount computed successfully", entries)
}

// ExportReportHandler streams the dashboard tables as an xlsx workbook.
func (h *DashboardHandler) ExportReportHandler(c echo.Context) error {
	ctx := c.Request().Context()

	employees, err := h.svc.ListEmployees(ctx, "")
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to export report", err)
	}
	salaries, err := h.svc.ListSalaries(ctx, nil, nil)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to export report", err)
	}
	stats, err := h.svc.GetAllDepartmentStats(ctx)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to export report", err)
	}

	exporter := reportxlsx.NewExporter(h.template)
	exporter.BindSheet("Employees", employeeRows(employees))
	exporter.BindSheet("Salaries", salaryRows(salaries))
	exporter.BindSheet("Department Stats", statsRows(stats))

	var buf bytes.Buffer
	if err := exporter.WriteTo(&buf); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to render workbook", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="dashboard_report.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func parseBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func employeeRows(employees []domain.EmployeeView) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, map[string]interface{}{
			"employee_id": e.EmployeeID,
			"name":        e.FullName(),
			"email":       e.Email,
			"hire_date":   e.HireDate.Format(dateLayout),
			"department":  derefString(e.DepartmentName),
			"location":    derefString(e.Location),
		})
	}
	return rows
}

func salaryRows(salaries []domain.SalaryView) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(salaries))
	for _, s := range salaries {
		rows = append(rows, map[string]interface{}{
			"salary_id":      s.SalaryID,
			"employee":       derefString(s.EmployeeName),
			"department":     derefString(s.DepartmentName),
			"base_salary":    s.BaseSalary.InexactFloat64(),
			"bonus":          s.Bonus.InexactFloat64(),
			"total":          s.TotalCompensation().InexactFloat64(),
			"effective_date": s.EffectiveDate.Format(dateLayout),
		})
	}
	return rows
}

func statsRows(stats []domain.DepartmentStats) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(stats))
	for _, st := range stats {
		row := map[string]interface{}{
			"department":     st.DepartmentName,
			"employee_count": st.EmployeeCount,
		}
		if st.MinCompensation != nil {
			row["min"] = st.MinCompensation.InexactFloat64()
		}
		if st.MaxCompensation != nil {
			row["max"] = st.MaxCompensation.InexactFloat64()
		}
		if st.AverageCompensation != nil {
			row["avg"] = st.AverageCompensation.InexactFloat64()
		}
		if st.TotalPayroll != nil {
			row["total"] = st.TotalPayroll.InexactFloat64()
		}
		rows = append(rows, row)
	}
	return rows
}

func derefString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
