package ledger

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/omkarinteriors/backend/internal/config"
)

// New builds the ledger Writer for the given configuration. When any of
// sheet id / client email / private key is missing it returns a Writer
// that reports every append as skipped, without error.
func New(ctx context.Context, cfg config.Config) (Writer, error) {
	if cfg.SheetID == "" || cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" {
		return disabled{reason: "google sheets not configured"}, nil
	}
	api, err := newSheetsAPI(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &SheetsWriter{api: api, now: time.Now}, nil
}

// sheetsAPI implements sheetAPI against the Google Sheets v4 service,
// authenticated with a service-account credential restricted to the
// spreadsheet-write scope.
type sheetsAPI struct {
	svc     *sheets.Service
	sheetID string
}

func newSheetsAPI(ctx context.Context, cfg config.Config) (*sheetsAPI, error) {
	creds := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(creds.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &sheetsAPI{svc: svc, sheetID: cfg.SheetID}, nil
}

func (a *sheetsAPI) ReadRow(ctx context.Context, rng string) ([]string, error) {
	resp, err := a.svc.Spreadsheets.Values.Get(a.sheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	row := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		row = append(row, fmt.Sprint(cell))
	}
	return row, nil
}

func (a *sheetsAPI) WriteRow(ctx context.Context, rng string, row []string) error {
	_, err := a.svc.Spreadsheets.Values.
		Update(a.sheetID, rng, valueRange(row)).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	return nil
}

func (a *sheetsAPI) AppendRow(ctx context.Context, rng string, row []string) error {
	_, err := a.svc.Spreadsheets.Values.
		Append(a.sheetID, rng, valueRange(row)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", rng, err)
	}
	return nil
}

// FormatHeader applies the cosmetic header treatment in one batch: bold
// text on a light-gray background, frozen top row, auto-sized columns.
func (a *sheetsAPI) FormatHeader(ctx context.Context, columns int64) error {
	batch := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: &sheets.GridRange{
						SheetId:          0,
						StartRowIndex:    0,
						EndRowIndex:      1,
						StartColumnIndex: 0,
						EndColumnIndex:   columns,
					},
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							TextFormat: &sheets.TextFormat{Bold: true},
							BackgroundColor: &sheets.Color{
								Red:   0.95,
								Green: 0.95,
								Blue:  0.95,
							},
						},
					},
					Fields: "userEnteredFormat(textFormat,backgroundColor)",
				},
			},
			{
				UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
					Properties: &sheets.SheetProperties{
						SheetId:        0,
						GridProperties: &sheets.GridProperties{FrozenRowCount: 1},
					},
					Fields: "gridProperties.frozenRowCount",
				},
			},
			{
				AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
					Dimensions: &sheets.DimensionRange{
						SheetId:    0,
						Dimension:  "COLUMNS",
						StartIndex: 0,
						EndIndex:   columns,
					},
				},
			},
		},
	}
	if _, err := a.svc.Spreadsheets.BatchUpdate(a.sheetID, batch).Context(ctx).Do(); err != nil {
		return fmt.Errorf("format header: %w", err)
	}
	return nil
}

func valueRange(row []string) *sheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{cells}}
}
