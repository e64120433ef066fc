package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// MonthlyReport agrupa los datos del informe mensual: el cierre del mes y el
// detalle de sus cierres diarios.
type MonthlyReport struct {
	Year    int
	Month   time.Month
	Monthly *entity.FinanceStat
	Dailies []*entity.FinanceStat
}

// ReportPDFGenerator genera el PDF del informe financiero mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReport(report *MonthlyReport) ([]byte, error)
}

// ReportUseCase arma el informe mensual en PDF: recalcula el mes completo y
// delega el renderizado al generador.
type ReportUseCase struct {
	finance *UseCase
	pdf     ReportPDFGenerator
}

// NewReportUseCase crea el generador de informes.
func NewReportUseCase(finance *UseCase, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{finance: finance, pdf: pdf}
}

// GenerateMonthlyReportPDF recalcula el mes y devuelve el informe en PDF.
func (uc *ReportUseCase) GenerateMonthlyReportPDF(ctx context.Context, year int, month time.Month, employeeID string) ([]byte, error) {
	monthly, err := uc.finance.RecomputeMonth(ctx, year, month, employeeID)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	dailies, err := uc.finance.stats.ListByTypeAndRange(entity.StatTypeDay, first, last)
	if err != nil {
		return nil, fmt.Errorf("error al listar cierres diarios: %w", err)
	}

	report := &MonthlyReport{
		Year:    year,
		Month:   month,
		Monthly: monthly,
		Dailies: dailies,
	}
	pdf, err := uc.pdf.GenerateMonthlyReport(report)
	if err != nil {
		return nil, fmt.Errorf("error al generar PDF del informe: %w", err)
	}
	return pdf, nil
}
