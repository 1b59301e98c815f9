package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

// XLSXLeadSheet records leads in a local Excel workbook. Used when no Google
// Sheet is configured, mainly in development.
type XLSXLeadSheet struct {
	path string
	mu   sync.Mutex
}

// NewXLSXLeadSheet creates the workbook with its header row if it does not exist
func NewXLSXLeadSheet(path string) (*XLSXLeadSheet, error) {
	if path == "" {
		return nil, fmt.Errorf("LEADS_XLSX_PATH not configured")
	}
	s := &XLSXLeadSheet{path: path}
	if err := s.EnsureHeaderRow(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the workbook location
func (s *XLSXLeadSheet) Path() string {
	return s.path
}

// AppendRow writes row after the last populated row
func (s *XLSXLeadSheet) AppendRow(ctx context.Context, row []interface{}) error {
	return s.update(ctx, func(f *excelize.File, rows [][]string) error {
		next := len(rows) + 1
		if next == 1 {
			// header missing, keep row 1 for it
			if err := writeRow(f, 1, LeadSheetHeader); err != nil {
				return err
			}
			next = 2
		}
		return writeRow(f, next, row)
	})
}

// EnsureHeaderRow writes LeadSheetHeader when the sheet is empty
func (s *XLSXLeadSheet) EnsureHeaderRow(ctx context.Context) error {
	return s.update(ctx, func(f *excelize.File, rows [][]string) error {
		if len(rows) > 0 {
			return nil
		}
		return writeRow(f, 1, LeadSheetHeader)
	})
}

func (s *XLSXLeadSheet) update(ctx context.Context, fn func(f *excelize.File, rows [][]string) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(LeadSheetName)
	if err != nil {
		return fmt.Errorf("failed to read lead workbook: %w", err)
	}
	if err := fn(f, rows); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create lead workbook directory: %w", err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save lead workbook: %w", err)
	}
	return nil
}

// open loads the workbook, creating it with a Leads sheet when missing
func (s *XLSXLeadSheet) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", LeadSheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create lead workbook: %w", err)
		}
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open lead workbook: %w", err)
	}

	if idx, _ := f.GetSheetIndex(LeadSheetName); idx < 0 {
		if _, err := f.NewSheet(LeadSheetName); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add %s sheet: %w", LeadSheetName, err)
		}
	}
	return f, nil
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(LeadSheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
