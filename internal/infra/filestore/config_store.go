package filestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/pkg/clock"
	"flute-live-api/internal/pkg/errs"
)

// liveInfoDocument is the on-disk JSON shape. Field names follow the API
// payload so the file stays hand-editable.
type liveInfoDocument struct {
	LiveDate           string `json:"liveDate"`
	LiveTime1          string `json:"liveTime1"`
	LiveTime2          string `json:"liveTime2,omitempty"`
	Venue              string `json:"venue"`
	VenueAddress       string `json:"venueAddress,omitempty"`
	GeneralPrice       int    `json:"generalPrice"`
	StudentPrice       int    `json:"studentPrice"`
	DeliveryFee        int    `json:"deliveryFee"`
	MaxTickets         int    `json:"maxTickets"`
	Notes              string `json:"notes,omitempty"`
	ProgramImageURL    string `json:"programImageUrl,omitempty"`
	CancelPolicy       string `json:"cancelPolicy"`
	CancelDeadlineDays int    `json:"cancelDeadlineDays"`
	UpdatedAt          string `json:"updatedAt"`
}

// ConfigStore keeps the event configuration in a local JSON file, for
// development and deployments without spreadsheet credentials. The read/write
// contract matches the sheets store: reads never fail, writes replace.
type ConfigStore struct {
	path   string
	clock  clock.Clock
	logger *slog.Logger
}

func NewConfigStore(path string, clk clock.Clock, logger *slog.Logger) *ConfigStore {
	return &ConfigStore{
		path:   path,
		clock:  clk,
		logger: logger,
	}
}

func (s *ConfigStore) Read(_ context.Context) event.LiveInfo {
	defaults := event.Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("live info file unreadable, using defaults", "path", s.path, "error", err.Error())
		}
		return defaults
	}

	var doc liveInfoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("live info file malformed, using defaults", "path", s.path, "error", err.Error())
		return defaults
	}

	return documentToLiveInfo(doc, defaults)
}

func (s *ConfigStore) Write(_ context.Context, info event.LiveInfo) error {
	info.UpdatedAt = s.clock.Now()

	data, err := json.MarshalIndent(liveInfoToDocument(info), "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode live info")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errs.Wrap(err, "failed to create data directory")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errs.Wrap(err, "failed to write live info file")
	}
	return nil
}

func documentToLiveInfo(doc liveInfoDocument, defaults event.LiveInfo) event.LiveInfo {
	info := event.LiveInfo{
		LiveDate:           doc.LiveDate,
		LiveTime1:          doc.LiveTime1,
		LiveTime2:          doc.LiveTime2,
		Venue:              doc.Venue,
		VenueAddress:       doc.VenueAddress,
		GeneralPrice:       doc.GeneralPrice,
		StudentPrice:       doc.StudentPrice,
		DeliveryFee:        doc.DeliveryFee,
		MaxTickets:         doc.MaxTickets,
		Notes:              doc.Notes,
		ProgramImageURL:    doc.ProgramImageURL,
		CancelPolicy:       doc.CancelPolicy,
		CancelDeadlineDays: doc.CancelDeadlineDays,
	}

	if info.LiveDate == "" {
		info.LiveDate = defaults.LiveDate
	}
	if info.LiveTime1 == "" {
		info.LiveTime1 = defaults.LiveTime1
	}
	if info.Venue == "" {
		info.Venue = defaults.Venue
	}
	if info.MaxTickets == 0 {
		info.MaxTickets = defaults.MaxTickets
	}
	if info.CancelPolicy == "" {
		info.CancelPolicy = defaults.CancelPolicy
	}

	if t, err := time.Parse(time.RFC3339, doc.UpdatedAt); err == nil {
		info.UpdatedAt = t
	} else {
		info.UpdatedAt = defaults.UpdatedAt
	}

	return info
}

func liveInfoToDocument(info event.LiveInfo) liveInfoDocument {
	return liveInfoDocument{
		LiveDate:           info.LiveDate,
		LiveTime1:          info.LiveTime1,
		LiveTime2:          info.LiveTime2,
		Venue:              info.Venue,
		VenueAddress:       info.VenueAddress,
		GeneralPrice:       info.GeneralPrice,
		StudentPrice:       info.StudentPrice,
		DeliveryFee:        info.DeliveryFee,
		MaxTickets:         info.MaxTickets,
		Notes:              info.Notes,
		ProgramImageURL:    info.ProgramImageURL,
		CancelPolicy:       info.CancelPolicy,
		CancelDeadlineDays: info.CancelDeadlineDays,
		UpdatedAt:          info.UpdatedAt.Format(time.RFC3339),
	}
}
