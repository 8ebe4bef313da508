package spacex

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/Ananya178/spacex-launch-prediction/core"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/uuid"
)

func TestDashboard_WriteLog(t *testing.T) {
	t.Run("should reject an unknown level", func(t *testing.T) {
		d, err := New()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if err := d.WriteLog("TRACE", "nope"); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})

	t.Run("should write to the logger, the repository and the handler", func(t *testing.T) {
		var buf bytes.Buffer
		var handled []domain.Log
		renderID := uuid.New()

		d := setupTestDashboard(t,
			WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
			WithLogHandler(func(log domain.Log) error {
				handled = append(handled, log)
				return nil
			}),
		)

		err := d.WriteLog("WARN", "slow render",
			core.LogWithRenderID(renderID),
			core.LogWithContext(map[string]any{"site": "KSC LC 39A"}),
		)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		if !strings.Contains(buf.String(), "slow render") || !strings.Contains(buf.String(), renderID.String()) {
			t.Errorf("\nwanted:\nlogger output with message and render id\ngot:\n%q", buf.String())
		}

		if len(handled) != 1 || handled[0].Level != "WARN" {
			t.Fatalf("\nwanted:\none WARN log\ngot:\n%+v", handled)
		}

		stored, err := d.Logs()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(stored) != 1 {
			t.Fatalf("\nwanted:\n1 stored log\ngot:\n%d", len(stored))
		}
		if stored[0].ID != handled[0].ID {
			t.Errorf("\nwanted:\n%v\ngot:\n%v", handled[0].ID, stored[0].ID)
		}
		if stored[0].Context["site"] != "KSC LC 39A" {
			t.Errorf("\nwanted:\nKSC LC 39A\ngot:\n%v", stored[0].Context["site"])
		}
	})

	t.Run("should return the handler error", func(t *testing.T) {
		d, err := New(WithLogHandler(func(domain.Log) error { return bytes.ErrTooLarge }))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if err := d.WriteLog("INFO", "x"); err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
	})
}
