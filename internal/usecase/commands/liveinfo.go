package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"flute-live-api/internal/domain/event"
	"flute-live-api/internal/pkg/errs"
)

var ErrStoreWriteFailed = errs.New("configuration store write failed")

type LiveInfoCommands interface {
	UpdateLiveInfo(ctx context.Context, info event.LiveInfo) (event.LiveInfo, error)
	AttachProgramImage(ctx context.Context, data []byte) (event.LiveInfo, error)
}

type liveInfoCommandsImpl struct {
	store         ConfigStore
	maxImageBytes int64
	logger        *slog.Logger
}

func NewLiveInfoCommands(store ConfigStore, maxImageBytes int64, logger *slog.Logger) LiveInfoCommands {
	return &liveInfoCommandsImpl{
		store:         store,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// UpdateLiveInfo validates and persists a full replacement record. The cancel
// policy fields are pinned to the built-in values; the editor cannot change
// them. The stored record (with its server-stamped update time) is returned.
func (c *liveInfoCommandsImpl) UpdateLiveInfo(ctx context.Context, info event.LiveInfo) (event.LiveInfo, error) {
	if v := info.Validate(); v.HasErrors() {
		return event.LiveInfo{}, v
	}

	info.CancelPolicy = event.DefaultCancelPolicy
	info.CancelDeadlineDays = event.DefaultCancelDeadlineDays

	if err := c.store.Write(ctx, info); err != nil {
		c.logger.Error("failed to save live info", "error", err.Error())
		return event.LiveInfo{}, errs.Mark(err, ErrStoreWriteFailed)
	}

	return c.store.Read(ctx), nil
}

// AttachProgramImage validates an uploaded image (size and content type),
// encodes it as a data URI and stores it on the current configuration.
func (c *liveInfoCommandsImpl) AttachProgramImage(ctx context.Context, data []byte) (event.LiveInfo, error) {
	var v errs.ValidationErrors

	if len(data) == 0 {
		v.Add("image", "画像ファイルを選択してください")
		return event.LiveInfo{}, v
	}
	if int64(len(data)) > c.maxImageBytes {
		v.Add("image", "ファイルサイズは5MB以下にしてください")
		return event.LiveInfo{}, v
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		v.Add("image", "画像ファイルを選択してください")
		return event.LiveInfo{}, v
	}

	info := c.store.Read(ctx)
	info.ProgramImageURL = fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	if err := c.store.Write(ctx, info); err != nil {
		c.logger.Error("failed to save program image", "error", err.Error())
		return event.LiveInfo{}, errs.Mark(err, ErrStoreWriteFailed)
	}

	return c.store.Read(ctx), nil
}
