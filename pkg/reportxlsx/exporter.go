// Package reportxlsx renders tabular report data into an Excel workbook
// described by a YAML template: one sheet per template entry, a header
// row per column config, one worksheet row per bound record.
package reportxlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name    string         `yaml:"name"`
	Title   string         `yaml:"title"`
	Columns []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a sheet.
type ColumnConfig struct {
	Field  string  `yaml:"field"` // key into the bound row maps
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

// LoadTemplate parses and validates a YAML report template.
func LoadTemplate(data []byte) (*ReportTemplate, error) {
	var tpl ReportTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	if len(tpl.Sheets) == 0 {
		return nil, fmt.Errorf("report template has no sheets")
	}
	for _, sheet := range tpl.Sheets {
		if sheet.Name == "" {
			return nil, fmt.Errorf("report template sheet without a name")
		}
		if len(sheet.Columns) == 0 {
			return nil, fmt.Errorf("report template sheet %q has no columns", sheet.Name)
		}
	}
	return &tpl, nil
}

// Exporter binds row data to template sheets and renders the workbook.
type Exporter struct {
	template *ReportTemplate
	data     map[string][]map[string]interface{}
}

// NewExporter creates an exporter for the given template.
func NewExporter(tpl *ReportTemplate) *Exporter {
	return &Exporter{
		template: tpl,
		data:     make(map[string][]map[string]interface{}),
	}
}

// BindSheet attaches rows to the named template sheet. Row maps are keyed
// by the template's column Field names; missing keys render empty cells.
func (e *Exporter) BindSheet(name string, rows []map[string]interface{}) {
	e.data[name] = rows
}

// Build renders the bound data into an excelize workbook.
func (e *Exporter) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range e.template.Sheets {
		if i == 0 {
			// excelize starts with a default sheet; rename it.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		startRow := 1
		if sheet.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(1, 1)
			if err := f.SetCellValue(sheet.Name, cell, sheet.Title); err != nil {
				return nil, fmt.Errorf("write title on %q: %w", sheet.Name, err)
			}
			if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
				return nil, fmt.Errorf("style title on %q: %w", sheet.Name, err)
			}
			startRow = 2
		}

		for col, cfg := range sheet.Columns {
			cell, _ := excelize.CoordinatesToCellName(col+1, startRow)
			if err := f.SetCellValue(sheet.Name, cell, cfg.Header); err != nil {
				return nil, fmt.Errorf("write header on %q: %w", sheet.Name, err)
			}
			if err := f.SetCellStyle(sheet.Name, cell, cell, headerStyle); err != nil {
				return nil, fmt.Errorf("style header on %q: %w", sheet.Name, err)
			}
			if cfg.Width > 0 {
				colName, _ := excelize.ColumnNumberToName(col + 1)
				if err := f.SetColWidth(sheet.Name, colName, colName, cfg.Width); err != nil {
					return nil, fmt.Errorf("set column width on %q: %w", sheet.Name, err)
				}
			}
		}

		for rowIdx, row := range e.data[sheet.Name] {
			for col, cfg := range sheet.Columns {
				val, ok := row[cfg.Field]
				if !ok || val == nil {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(col+1, startRow+1+rowIdx)
				if err := f.SetCellValue(sheet.Name, cell, val); err != nil {
					return nil, fmt.Errorf("write cell %s on %q: %w", cell, sheet.Name, err)
				}
			}
		}
	}

	return f, nil
}

// WriteTo builds the workbook and streams it to w.
func (e *Exporter) WriteTo(w io.Writer) error {
	f, err := e.Build()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
