// Package sheets implements the ticket store against a Google Sheets
// worksheet via a service account.
package sheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/arbazmubasher1/TicketDashboard/internal/config"
	"github.com/arbazmubasher1/TicketDashboard/internal/models"
	"github.com/arbazmubasher1/TicketDashboard/internal/store"
)

type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64 // numeric id, needed for row deletion
}

// Open builds the Sheets client from either inline credentials JSON or a
// credentials file, then resolves the worksheet's numeric id by title.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	var cred option.ClientOption
	switch {
	case cfg.SheetsCredentialsJSON != "":
		cred = option.WithCredentialsJSON([]byte(cfg.SheetsCredentialsJSON))
	case cfg.SheetsCredentialsFile != "":
		cred = option.WithCredentialsFile(cfg.SheetsCredentialsFile)
	default:
		return nil, errors.New("sheets: no credentials configured (set GOOGLE_SHEETS_CREDENTIALS or GOOGLE_SHEETS_CREDENTIALS_FILE)")
	}
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("sheets: SPREADSHEET_ID is required")
	}

	svc, err := gsheets.NewService(ctx, cred, option.WithScopes(gsheets.SpreadsheetsScope))
	if err != nil {
		return nil, unavailable(err)
	}

	meta, err := svc.Spreadsheets.Get(cfg.SpreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, unavailable(err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == cfg.SheetName {
			return &Store{
				svc:           svc,
				spreadsheetID: cfg.SpreadsheetID,
				sheetName:     cfg.SheetName,
				sheetID:       sh.Properties.SheetId,
			}, nil
		}
	}
	return nil, fmt.Errorf("sheets: worksheet %q not found in spreadsheet", cfg.SheetName)
}

func (s *Store) ReadAll(ctx context.Context) ([]models.Ticket, error) {
	rng := fmt.Sprintf("%s!A%d:G", s.sheetName, store.FirstDataRow)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, unavailable(err)
	}
	out := make([]models.Ticket, 0, len(resp.Values))
	for i, row := range resp.Values {
		out = append(out, store.DecodeRow(toStrings(row), i+store.FirstDataRow))
	}
	return out, nil
}

func (s *Store) ReadRow(ctx context.Context, rowID int) (models.Ticket, error) {
	rng := fmt.Sprintf("%s!A%d:G%d", s.sheetName, rowID, rowID)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return models.Ticket{}, unavailable(err)
	}
	if len(resp.Values) == 0 {
		return models.Ticket{}, fmt.Errorf("%w: row %d", store.ErrRowNotFound, rowID)
	}
	return store.DecodeRow(toStrings(resp.Values[0]), rowID), nil
}

func (s *Store) Append(ctx context.Context, t models.Ticket) error {
	vr := &gsheets.ValueRange{Values: [][]any{toAnys(store.EncodeNewRow(t))}}
	rng := fmt.Sprintf("%s!A%d:G", s.sheetName, store.FirstDataRow)
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) UpdateRow(ctx context.Context, rowID int, t models.Ticket) error {
	vr := &gsheets.ValueRange{Values: [][]any{toAnys(store.EncodeRow(t))}}
	rng := fmt.Sprintf("%s!A%d:G%d", s.sheetName, rowID, rowID)
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) DeleteRow(ctx context.Context, rowID int) error {
	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			DeleteDimension: &gsheets.DeleteDimensionRequest{
				Range: &gsheets.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowID - 1), // API indices are 0-based
					EndIndex:   int64(rowID),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return unavailable(err)
	}
	return nil
}

// BatchUpdateColumn writes the whole column in one request instead of one
// per cell, which is what keeps the elapsed sync under the API quota.
func (s *Store) BatchUpdateColumn(ctx context.Context, column string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}
	rng := fmt.Sprintf("%s!%s%d:%s%d", s.sheetName, column, store.FirstDataRow, column, store.FirstDataRow+len(values)-1)
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, &gsheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

func toStrings(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func toAnys(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}
