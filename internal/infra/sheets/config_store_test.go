//go:build unit

package sheets

import (
	"testing"
	"time"

	"flute-live-api/internal/domain/event"

	"github.com/stretchr/testify/assert"
)

func TestLiveInfoFromMap(t *testing.T) {
	defaults := event.Default()

	t.Run("empty map yields defaults", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{}, defaults)
		assert.Equal(t, defaults.LiveDate, info.LiveDate)
		assert.Equal(t, defaults.GeneralPrice, info.GeneralPrice)
		assert.Equal(t, defaults.MaxTickets, info.MaxTickets)
	})

	t.Run("stored values win over defaults", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{
			"liveDate":     "2025年12月20日（土）",
			"generalPrice": "4500",
			"maxTickets":   "8",
			"notes":        "受付は13時から",
		}, defaults)

		assert.Equal(t, "2025年12月20日（土）", info.LiveDate)
		assert.Equal(t, 4500, info.GeneralPrice)
		assert.Equal(t, 8, info.MaxTickets)
		assert.Equal(t, "受付は13時から", info.Notes)
	})

	t.Run("a stored zero stays zero", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{
			"deliveryFee":  "0",
			"generalPrice": "0",
		}, defaults)

		assert.Equal(t, 0, info.DeliveryFee)
		assert.Equal(t, 0, info.GeneralPrice)
	})

	t.Run("malformed cell falls back per field", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{
			"generalPrice": "four thousand",
			"studentPrice": "3500",
		}, defaults)

		assert.Equal(t, defaults.GeneralPrice, info.GeneralPrice)
		assert.Equal(t, 3500, info.StudentPrice)
	})

	t.Run("empty optional fields clear the defaults", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{
			"liveTime2":    "",
			"venueAddress": "",
			"notes":        "",
		}, defaults)

		assert.Empty(t, info.LiveTime2)
		assert.Empty(t, info.VenueAddress)
		assert.Empty(t, info.Notes)
	})

	t.Run("update timestamp parses from RFC3339", func(t *testing.T) {
		info := liveInfoFromMap(map[string]string{
			"updatedAt": "2025-09-01T12:00:00+09:00",
		}, defaults)

		expected := time.Date(2025, 9, 1, 12, 0, 0, 0, time.FixedZone("", 9*60*60))
		assert.True(t, info.UpdatedAt.Equal(expected))
	})
}

func TestLiveInfoRowsRoundTrip(t *testing.T) {
	info := event.Default()
	info.LiveTime2 = "18:00"
	info.DeliveryFee = 0
	info.UpdatedAt = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	rows := liveInfoToRows(info)

	data := map[string]string{}
	for _, row := range rows {
		data[row[0].(string)] = row[1].(string)
	}

	got := liveInfoFromMap(data, event.Default())

	assert.Equal(t, info.LiveDate, got.LiveDate)
	assert.Equal(t, "18:00", got.LiveTime2)
	assert.Equal(t, 0, got.DeliveryFee)
	assert.Equal(t, info.GeneralPrice, got.GeneralPrice)
	assert.Equal(t, info.CancelPolicy, got.CancelPolicy)
	assert.True(t, got.UpdatedAt.Equal(info.UpdatedAt))
}
