// Package ledger appends inquiries to an external Google Sheet that
// serves as a secondary audit trail. The email notification is the
// primary delivery guarantee; every caller treats this package as
// best-effort.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/omkarinteriors/backend/internal/model"
)

const (
	headerRange = "Sheet1!A1:G1"
	appendRange = "Sheet1!A1"
)

// istZone is the fixed rendering zone for ledger timestamps (UTC+5:30).
var istZone = time.FixedZone("IST", (5*60+30)*60)

// Result reports whether a row was actually appended. An unconfigured
// ledger yields {Appended: false} with a nil error.
type Result struct {
	Appended bool
	Reason   string
}

// Writer appends one inquiry row per call, provisioning the header row
// first when needed.
type Writer interface {
	Append(ctx context.Context, inq model.Inquiry) (Result, error)
}

// sheetAPI is the narrow slice of the spreadsheet service the writer
// needs. The production implementation lives in sheets.go.
type sheetAPI interface {
	ReadRow(ctx context.Context, rng string) ([]string, error)
	WriteRow(ctx context.Context, rng string, row []string) error
	AppendRow(ctx context.Context, rng string, row []string) error
	FormatHeader(ctx context.Context, columns int64) error
}

// SheetsWriter is the production Writer over the Google Sheets API.
type SheetsWriter struct {
	api sheetAPI
	now func() time.Time
}

// disabled is the Writer used when the sheet is not configured.
type disabled struct {
	reason string
}

func (d disabled) Append(ctx context.Context, inq model.Inquiry) (Result, error) {
	return Result{Appended: false, Reason: d.reason}, nil
}

// Append provisions the header if needed, then appends one row. Rows are
// written in strictly-append mode so existing data is never overwritten.
func (w *SheetsWriter) Append(ctx context.Context, inq model.Inquiry) (Result, error) {
	if err := w.ensureHeader(ctx); err != nil {
		return Result{}, err
	}
	row := []string{
		Timestamp(w.now()),
		inq.Name,
		inq.Email,
		inq.Phone,
		inq.Message,
		inq.IP,
		inq.UserAgent,
	}
	if err := w.api.AppendRow(ctx, appendRange, row); err != nil {
		return Result{}, err
	}
	return Result{Appended: true}, nil
}

// ensureHeader checks the sheet's first row against the canonical
// header and rewrites it, plus one batch of cosmetic formatting, on any
// mismatch. Repeating the correction is harmless: the final header
// content is the same no matter how many callers race through here.
func (w *SheetsWriter) ensureHeader(ctx context.Context) error {
	row, err := w.api.ReadRow(ctx, headerRange)
	if err != nil {
		// An unreadable first row gets the same treatment as a missing one.
		row = nil
	}
	if headerMatches(row) {
		return nil
	}
	if err := w.api.WriteRow(ctx, headerRange, model.LedgerHeader); err != nil {
		return err
	}
	return w.api.FormatHeader(ctx, int64(len(model.LedgerHeader)))
}

// headerMatches compares positionally and case-insensitively; a missing
// trailing cell counts as empty.
func headerMatches(row []string) bool {
	for i, want := range model.LedgerHeader {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if !strings.EqualFold(strings.TrimSpace(cell), want) {
			return false
		}
	}
	return true
}

// Timestamp renders t in the ledger's fixed regional zone as
// "DD-MM-YYYY HH:MM:SS AM/PM IST".
func Timestamp(t time.Time) string {
	return t.In(istZone).Format("02-01-2006 03:04:05 PM") + " IST"
}
