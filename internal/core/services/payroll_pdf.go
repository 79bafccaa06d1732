package services

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/TrenchWorks/workforce_payroll_app/internal/core/domain"
	"github.com/jung-kurt/gofpdf"
)

// RenderPayrollPDF renders the payroll summary as a printable A4 table for
// site offices that hand out paper payout sheets.
func (s *reportingService) RenderPayrollPDF(report *domain.PayrollReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Project: %s", report.ProjectName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s (%s)", report.StartDate, report.EndDate, report.PaymentPeriod))
	pdf.Ln(6)
	if report.OpenRate != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Open trenching rate: %s", report.OpenRate.StringFixed(2)))
		pdf.Ln(6)
	}
	if report.CloseRate != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Close trenching rate: %s", report.CloseRate.StringFixed(2)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	headers := []string{"Labourer Name", "ID Number", "Days", "Open (m)", "Close (m)", "Total (m)", "Earnings"}
	widths := []float64{60, 40, 18, 30, 30, 30, 35}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range report.Entries {
		cells := []string{
			e.LabourerName,
			e.IDNumber,
			strconv.Itoa(e.DaysWorked),
			e.OpenMeters.StringFixed(2),
			e.CloseMeters.StringFixed(2),
			e.TotalMeters.StringFixed(2),
			e.TotalEarnings.StringFixed(2),
		}
		for i, c := range cells {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := payrollTotals(report)
	pdf.SetFont("Helvetica", "B", 10)
	totalCells := []string{
		"TOTAL",
		"",
		strconv.Itoa(totals.DaysWorked),
		totals.OpenMeters.StringFixed(2),
		totals.CloseMeters.StringFixed(2),
		totals.TotalMeters.StringFixed(2),
		report.GrandTotal.StringFixed(2),
	}
	for i, c := range totalCells {
		align := "L"
		if i >= 2 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, c, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payroll pdf: %w", err)
	}
	return buf.Bytes(), nil
}
