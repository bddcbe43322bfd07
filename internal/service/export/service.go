package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// Service выгрузка заявок в Excel для админки
type Service struct {
	submissionRepo SubmissionRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса выгрузки
func NewService(submissionRepo SubmissionRepository, logger Logger) *Service {
	return &Service{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// ExportSubmissions выгружает заявки за период [start, end] в xlsx
func (s *Service) ExportSubmissions(ctx context.Context, start, end time.Time) ([]byte, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		s.logger.Warn("ExportSubmissions: invalid range start=%v end=%v", start, end)
		return nil, ErrInvalidRange
	}

	submissions, err := s.submissionRepo.List(ctx, domain.SubmissionFilter{
		StartDate: ptr.Ptr(start),
		EndDate:   ptr.Ptr(end),
	})
	if err != nil {
		s.logger.Error("ExportSubmissions: failed to list submissions: %v", err)
		return nil, fmt.Errorf("%w: failed to list submissions: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"id",
		"booking_date",
		"name",
		"phone",
		"note",
		"status",
		"source",
		"created_at",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: failed to write header: %v", ErrInternal, err)
	}

	row := 2
	for _, sub := range submissions {
		note := ""
		if sub.Note != nil {
			note = *sub.Note
		}

		excelRow := []interface{}{
			sub.ID,
			sub.BookingDate.Format(domain.DateFormat),
			sub.Name,
			sub.Phone,
			note,
			string(sub.Status),
			sub.Source,
			sub.CreatedAt.Format(time.RFC3339),
		}

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to build cell name: %v", ErrInternal, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("%w: failed to write row: %v", ErrInternal, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("%w: failed to write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("ExportSubmissions: exported %d submissions for %s..%s",
		len(submissions), start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	return buf.Bytes(), nil
}
