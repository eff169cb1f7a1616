package sheets

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	sheetsapi "google.golang.org/api/sheets/v4"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/errs"
)

const liveInfoSheet = "LiveInfo"

// ConfigStore keeps the single event configuration as key-value rows in a
// dedicated sheet. Reads fail soft: any problem with the collaborator yields
// the built-in defaults so the public site always has something to render.
type ConfigStore struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	clock         clock.Clock
	logger        *slog.Logger
}

func NewConfigStore(svc *sheetsapi.Service, spreadsheetID string, clk clock.Clock, logger *slog.Logger) *ConfigStore {
	return &ConfigStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		clock:         clk,
		logger:        logger,
	}
}

func (s *ConfigStore) Read(ctx context.Context) event.LiveInfo {
	defaults := event.Default()

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, liveInfoSheet+"!A:B").Context(ctx).Do()
	if err != nil {
		s.logger.Warn("live info sheet unreadable, using defaults", "error", err.Error())
		if ensureErr := s.ensureSheet(ctx); ensureErr != nil {
			s.logger.Warn("failed to create live info sheet", "error", ensureErr.Error())
		}
		return defaults
	}

	if len(resp.Values) == 0 {
		s.logger.Info("live info sheet empty, using defaults")
		return defaults
	}

	data := map[string]string{}
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		key, ok := row[0].(string)
		if !ok || key == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			if v, ok := row[1].(string); ok {
				value = v
			}
		}
		data[key] = value
	}

	return liveInfoFromMap(data, defaults)
}

// Write replaces the whole record. The update timestamp is stamped here from
// the server clock; anything the caller put in UpdatedAt is ignored.
func (s *ConfigStore) Write(ctx context.Context, info event.LiveInfo) error {
	if err := s.ensureSheet(ctx); err != nil {
		return err
	}

	info.UpdatedAt = s.clock.Now()

	vr := &sheetsapi.ValueRange{Values: liveInfoToRows(info)}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, liveInfoSheet+"!A:B", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return errs.Wrap(err, "failed to save live info to sheet")
	}
	return nil
}

func (s *ConfigStore) ensureSheet(ctx context.Context) error {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return errs.Wrap(err, "failed to inspect spreadsheet")
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == liveInfoSheet {
			return nil
		}
	}

	s.logger.Info("live info sheet missing, creating it")
	req := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: liveInfoSheet},
			}},
		},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return errs.Wrap(err, "failed to create live info sheet")
	}

	// Seed the fresh sheet so the next read returns real rows.
	seed := &sheetsapi.ValueRange{Values: liveInfoToRows(event.Default())}
	if _, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, liveInfoSheet+"!A:B", seed).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return errs.Wrap(err, "failed to seed live info defaults")
	}
	return nil
}

func liveInfoFromMap(data map[string]string, defaults event.LiveInfo) event.LiveInfo {
	info := defaults

	if v, ok := data["liveDate"]; ok && v != "" {
		info.LiveDate = v
	}
	if v, ok := data["liveTime1"]; ok && v != "" {
		info.LiveTime1 = v
	}
	if v, ok := data["liveTime2"]; ok {
		info.LiveTime2 = v
	}
	if v, ok := data["venue"]; ok && v != "" {
		info.Venue = v
	}
	if v, ok := data["venueAddress"]; ok {
		info.VenueAddress = v
	}
	info.GeneralPrice = parseIntField(data, "generalPrice", defaults.GeneralPrice)
	info.StudentPrice = parseIntField(data, "studentPrice", defaults.StudentPrice)
	info.DeliveryFee = parseIntField(data, "deliveryFee", defaults.DeliveryFee)
	info.MaxTickets = parseIntField(data, "maxTickets", defaults.MaxTickets)
	if v, ok := data["notes"]; ok {
		info.Notes = v
	}
	if v, ok := data["programImageUrl"]; ok && v != "" {
		info.ProgramImageURL = v
	}
	if v, ok := data["cancelPolicy"]; ok && v != "" {
		info.CancelPolicy = v
	}
	info.CancelDeadlineDays = parseIntField(data, "cancelDeadlineDays", defaults.CancelDeadlineDays)
	if v, ok := data["updatedAt"]; ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			info.UpdatedAt = t
		}
	}

	return info
}

// parseIntField falls back per-field on malformed cells rather than failing
// the whole read.
func parseIntField(data map[string]string, key string, fallback int) int {
	v, ok := data[key]
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func liveInfoToRows(info event.LiveInfo) [][]any {
	return [][]any{
		{"liveDate", info.LiveDate},
		{"liveTime1", info.LiveTime1},
		{"liveTime2", info.LiveTime2},
		{"venue", info.Venue},
		{"venueAddress", info.VenueAddress},
		{"generalPrice", strconv.Itoa(info.GeneralPrice)},
		{"studentPrice", strconv.Itoa(info.StudentPrice)},
		{"deliveryFee", strconv.Itoa(info.DeliveryFee)},
		{"maxTickets", strconv.Itoa(info.MaxTickets)},
		{"notes", info.Notes},
		{"programImageUrl", info.ProgramImageURL},
		{"cancelPolicy", info.CancelPolicy},
		{"cancelDeadlineDays", strconv.Itoa(info.CancelDeadlineDays)},
		{"updatedAt", info.UpdatedAt.Format(time.RFC3339)},
	}
}
