package service

import (
	"context"
	"fmt"
	"io"

	"github.com/sangkips/solarpower/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

const requestsSheet = "Service Requests"

var requestColumns = []string{"ID", "Name", "Email", "Phone", "Service", "Message", "Submitted At", "Completed"}

// ExportService builds spreadsheet exports of back-office data
type ExportService struct {
	requestRepo repository.ServiceRequestRepository
}

// NewExportService creates a new export service
func NewExportService(requestRepo repository.ServiceRequestRepository) *ExportService {
	return &ExportService{requestRepo: requestRepo}
}

// WriteServiceRequests writes every service request as an XLSX workbook to w
func (s *ExportService) WriteServiceRequests(ctx context.Context, w io.Writer) error {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", requestsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range requestColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(requestsSheet, cell, title); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(requestColumns), 1)
	if err := f.SetCellStyle(requestsSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, r := range requests {
		completed := "No"
		if r.IsCompleted {
			completed = "Yes"
		}
		row := []interface{}{
			r.ID,
			r.Name,
			r.Email,
			r.Phone,
			r.Service.Label(),
			r.Message,
			r.SubmittedAt.UTC().Format("2006-01-02 15:04"),
			completed,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(requestsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
