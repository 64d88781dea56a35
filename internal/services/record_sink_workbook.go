package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
	"premiumcalc/internal/models/db_models"
)

const defaultExcelSheet = "Sheet1"

// WorkbookRecordSink appends rows to a local .xlsx file, creating it with a
// header row on first use. Appends are serialized.
type WorkbookRecordSink struct {
	mu    sync.Mutex
	path  string
	sheet string
}

func NewWorkbookRecordSink(path, sheet string) (*WorkbookRecordSink, error) {
	if path == "" {
		return nil, fmt.Errorf("workbook path is required")
	}
	if sheet == "" {
		sheet = defaultExcelSheet
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create workbook directory: %w", err)
	}
	return &WorkbookRecordSink{path: path, sheet: sheet}, nil
}

func (s *WorkbookRecordSink) Name() string { return "workbook" }

func (s *WorkbookRecordSink) Append(ctx context.Context, record db_models.PremiumRecord) error {
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

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", s.sheet, err)
	}
	next := len(rows) + 1
	if len(rows) == 0 {
		header := make([]interface{}, len(db_models.RecordColumns))
		for i, col := range db_models.RecordColumns {
			header[i] = col
		}
		if err := setRow(f, s.sheet, 1, header); err != nil {
			return err
		}
		next = 2
	}

	if err := setRow(f, s.sheet, next, record.Row()); err != nil {
		return err
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (s *WorkbookRecordSink) open() (*excelize.File, error) {
	var f *excelize.File
	created := false
	if _, err := os.Stat(s.path); err == nil {
		f, err = excelize.OpenFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
	} else if os.IsNotExist(err) {
		f = excelize.NewFile()
		created = true
	} else {
		return nil, fmt.Errorf("stat workbook: %w", err)
	}

	idx, err := f.GetSheetIndex(s.sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("find sheet %s: %w", s.sheet, err)
	}
	if idx == -1 {
		if _, err := f.NewSheet(s.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", s.sheet, err)
		}
		if created {
			_ = f.DeleteSheet(defaultExcelSheet)
		}
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}
