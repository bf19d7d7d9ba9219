// Package export renders report payloads as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fieldops/internal/domain"
)

const (
	sheetKPIs   = "KPIs"
	sheetDaily  = "Daily Activity"
	sheetFunnel = "Funnel"
)

// WriteDashboardXLSX writes a workbook with one sheet per report section.
// Decimal values are exported as their string form so spreadsheet consumers
// see the exact amounts the API returned.
func WriteDashboardXLSX(w io.Writer, d *domain.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetKPIs); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeKPISheet(f, d); err != nil {
		return err
	}
	if err := writeDailySheet(f, d.TimeSeries); err != nil {
		return err
	}
	if err := writeFunnelSheet(f, d.Funnel); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func writeKPISheet(f *excelize.File, d *domain.Dashboard) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Range Start", d.Range.StartDate.UTC().Format("2006-01-02 15:04:05")},
		{"Range End", d.Range.EndDate.UTC().Format("2006-01-02 15:04:05")},
		{"Total Revenue", d.KPIs.TotalRevenue.String()},
		{"Outstanding Invoices", d.KPIs.OutstandingInvoices.String()},
		{"Jobs Created", d.KPIs.JobsCreated},
		{"Jobs Completed", d.KPIs.JobsCompleted},
		{"Lead Conversion Rate (%)", d.KPIs.LeadConversionRate},
		{"Avg Job Completion (days)", d.KPIs.AvgJobCompletionTime},
		{"Dispatch Throughput (per day)", d.KPIs.DispatchThroughput},
	}
	for i, row := range rows {
		if err := setRow(f, sheetKPIs, i+1, row); err != nil {
			return err
		}
	}

	// Client rankings below the scalar block.
	base := len(rows) + 2
	if err := setRow(f, sheetKPIs, base, []interface{}{"Top Clients By Revenue", ""}); err != nil {
		return err
	}
	for i, cr := range d.KPIs.TopClientsByRevenue {
		if err := setRow(f, sheetKPIs, base+1+i, []interface{}{cr.ClientName, cr.Revenue.String()}); err != nil {
			return err
		}
	}
	base += len(d.KPIs.TopClientsByRevenue) + 2
	if err := setRow(f, sheetKPIs, base, []interface{}{"Top Clients By Job Count", ""}); err != nil {
		return err
	}
	for i, cj := range d.KPIs.TopClientsByJobCount {
		if err := setRow(f, sheetKPIs, base+1+i, []interface{}{cj.ClientName, cj.JobCount}); err != nil {
			return err
		}
	}
	return nil
}

func writeDailySheet(f *excelize.File, series []domain.TimeSeriesPoint) error {
	if _, err := f.NewSheet(sheetDaily); err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}
	header := []interface{}{"Date", "Revenue", "Payments", "Jobs Created", "Jobs Completed", "Leads Created", "Leads Converted"}
	if err := setRow(f, sheetDaily, 1, header); err != nil {
		return err
	}
	for i, pt := range series {
		row := []interface{}{
			pt.Date,
			pt.Revenue.String(),
			pt.Payments.String(),
			pt.JobsCreated,
			pt.JobsCompleted,
			pt.LeadsCreated,
			pt.LeadsConverted,
		}
		if err := setRow(f, sheetDaily, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeFunnelSheet(f *excelize.File, funnel domain.Funnel) error {
	if _, err := f.NewSheet(sheetFunnel); err != nil {
		return fmt.Errorf("export: new sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Stage", "Count"},
		{"Total Leads", funnel.TotalLeads},
		{"Estimates Sent", funnel.EstimatesSent},
		{"Won", funnel.Won},
		{"Lost", funnel.Lost},
		{"Jobs Created", funnel.JobsCreated},
		{"Invoices Created", funnel.InvoicesCreated},
		{"Invoices Paid", funnel.InvoicesPaid},
		{"Conversion Rate (%)", funnel.ConversionRate},
	}
	for i, row := range rows {
		if err := setRow(f, sheetFunnel, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: set row: %w", err)
	}
	return nil
}
