package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
	"premiumcalc/internal/models/db_models"
)

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

type SheetsSinkConfig struct {
	SpreadsheetID    string
	SpreadsheetTitle string
	Tab              string
}

// SheetsRecordSink appends rows to a Google spreadsheet. It does not manage a
// header row.
type SheetsRecordSink struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	appendRange   string
}

// NewSheetsRecordSink resolves the spreadsheet (by id, or by title through
// Drive) and its target tab once.
func NewSheetsRecordSink(ctx context.Context, sheetsSvc *sheets.Service, driveSvc *drive.Service, cfg SheetsSinkConfig) (*SheetsRecordSink, error) {
	id := cfg.SpreadsheetID
	if id == "" {
		if driveSvc == nil {
			return nil, fmt.Errorf("spreadsheet id not set and drive lookup unavailable")
		}
		found, err := findSpreadsheetByTitle(ctx, driveSvc, cfg.SpreadsheetTitle)
		if err != nil {
			return nil, err
		}
		id = found
	}

	tab := cfg.Tab
	if tab == "" {
		ss, err := sheetsSvc.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("get spreadsheet %s: %w", id, err)
		}
		if len(ss.Sheets) == 0 || ss.Sheets[0].Properties == nil {
			return nil, fmt.Errorf("spreadsheet %s has no tabs", id)
		}
		tab = ss.Sheets[0].Properties.Title
	}

	return &SheetsRecordSink{
		values:        sheetsSvc.Spreadsheets.Values,
		spreadsheetID: id,
		appendRange:   "'" + strings.ReplaceAll(tab, "'", "''") + "'!A1",
	}, nil
}

func findSpreadsheetByTitle(ctx context.Context, driveSvc *drive.Service, title string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(title, "'", `\'`), spreadsheetMimeType)
	list, err := driveSvc.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("look up spreadsheet %q: %w", title, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found", title)
	}
	return list.Files[0].Id, nil
}

func (s *SheetsRecordSink) Name() string { return "sheets" }

func (s *SheetsRecordSink) Append(ctx context.Context, record db_models.PremiumRecord) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{record.Row()}}
	_, err := s.values.Append(s.spreadsheetID, s.appendRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to spreadsheet %s: %w", s.spreadsheetID, err)
	}
	return nil
}
