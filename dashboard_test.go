package spacex

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Ananya178/spacex-launch-prediction/db"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func setupTestRepo(t *testing.T) *db.Repository {
	t.Helper()

	dbConn, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.New() failed: %v", err)
	}
	return db.NewRepository(dbConn)
}

func setupTestDashboard(t *testing.T, options ...func(*Dashboard) error) *Dashboard {
	t.Helper()

	repo := setupTestRepo(t)
	d, err := New(append([]func(*Dashboard) error{WithRepo(repo)}, options...)...)
	if err != nil {
		t.Fatalf("creating dashboard: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestDashboard_Render(t *testing.T) {
	tests := []struct {
		name string
		sel  domain.FilterSelection
		want domain.ChartDescription
	}{
		{
			name: "should count every site when both filters are all",
			sel:  domain.AllSelection(),
			want: domain.ChartDescription{
				Title:      domain.ChartTitle,
				Categories: []string{"CCAFS SLC 40", "KSC LC 39A", "VAFB SLC 4E"},
				Counts:     []int{2, 1, 1},
			},
		},
		{
			name: "should filter by site",
			sel:  domain.FilterSelection{Site: "CCAFS SLC 40", Orbit: "all"},
			want: domain.ChartDescription{
				Title:      domain.ChartTitle,
				Categories: []string{"CCAFS SLC 40"},
				Counts:     []int{2},
			},
		},
		{
			name: "should filter by orbit",
			sel:  domain.FilterSelection{Site: "all", Orbit: "Polar"},
			want: domain.ChartDescription{
				Title:      domain.ChartTitle,
				Categories: []string{"VAFB SLC 4E"},
				Counts:     []int{1},
			},
		},
		{
			name: "should return an empty chart when nothing matches",
			sel:  domain.FilterSelection{Site: "KSC LC 39A", Orbit: "LEO"},
			want: domain.ChartDescription{
				Title:      domain.ChartTitle,
				Categories: []string{},
				Counts:     []int{},
			},
		},
	}

	d := setupTestDashboard(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := d.Render(context.Background(), tt.sel)
			if err != nil {
				t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
			}
			if diff := cmp.Diff(tt.want, event.Chart); diff != "" {
				t.Errorf("chart mismatch (-wanted +got):\n%s", diff)
			}
			if event.ID == uuid.Nil {
				t.Errorf("\nwanted:\nrender id\ngot:\n%v", event.ID)
			}
			if event.Selection != tt.sel {
				t.Errorf("\nwanted:\n%+v\ngot:\n%+v", tt.sel, event.Selection)
			}
		})
	}

	t.Run("should normalize an empty selection", func(t *testing.T) {
		event, err := d.Render(context.Background(), domain.FilterSelection{})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if event.Selection != domain.AllSelection() {
			t.Errorf("\nwanted:\n%+v\ngot:\n%+v", domain.AllSelection(), event.Selection)
		}
		if event.Summary.Launches != 4 {
			t.Errorf("\nwanted:\n4\ngot:\n%d", event.Summary.Launches)
		}
	})

	t.Run("should return error for a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := d.Render(ctx, domain.AllSelection()); !errors.Is(err, context.Canceled) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", context.Canceled, err)
		}
	})

	t.Run("should serve concurrent renders", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make(chan error, 16)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				event, err := d.Render(context.Background(), domain.AllSelection())
				if err != nil {
					errs <- err
					return
				}
				if event.Chart.Total() != 4 {
					errs <- errors.New("wrong total")
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
	})
}

func TestDashboard_RenderWithExtension(t *testing.T) {
	t.Run("should apply the extension to the chart", func(t *testing.T) {
		ext := &domain.Extension{ID: uuid.New(), Name: "retitle", LuaContent: `
			function processChart(selection, chart)
				chart.title = "Launches at " .. selection.site
				return chart
			end
		`}
		d := setupTestDashboard(t, WithExtension(ext))

		event, err := d.Render(context.Background(), domain.FilterSelection{Site: "KSC LC 39A", Orbit: "all"})
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if event.Chart.Title != "Launches at KSC LC 39A" {
			t.Errorf("\nwanted:\n%q\ngot:\n%q", "Launches at KSC LC 39A", event.Chart.Title)
		}
	})

	t.Run("should use a chart table built inside the extension", func(t *testing.T) {
		ext := &domain.Extension{ID: uuid.New(), Name: "rebuild", LuaContent: `
			function processChart(selection, chart)
				return { title = "Rebuilt", categories = { "a", "b" }, counts = { 1, 2 } }
			end
		`}
		d := setupTestDashboard(t, WithExtension(ext))

		event, err := d.Render(context.Background(), domain.AllSelection())
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		want := domain.ChartDescription{Title: "Rebuilt", Categories: []string{"a", "b"}, Counts: []int{1, 2}}
		if diff := cmp.Diff(want, event.Chart); diff != "" {
			t.Errorf("chart mismatch (-wanted +got):\n%s", diff)
		}
	})

	t.Run("should keep the chart and log when the extension fails", func(t *testing.T) {
		ext := &domain.Extension{ID: uuid.New(), Name: "broken", LuaContent: `
			function processChart(selection, chart)
				return { categories = { "a" }, counts = {} }
			end
		`}
		d := setupTestDashboard(t, WithExtension(ext))

		event, err := d.Render(context.Background(), domain.AllSelection())
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if event.Chart.Title != domain.ChartTitle || event.Chart.Total() != 4 {
			t.Errorf("\nwanted:\npipeline chart\ngot:\n%+v", event.Chart)
		}

		logs, err := d.Logs()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(logs) != 1 {
			t.Fatalf("\nwanted:\n1 log\ngot:\n%d", len(logs))
		}
		if logs[0].Level != "ERROR" {
			t.Errorf("\nwanted:\nERROR\ngot:\n%s", logs[0].Level)
		}
		if logs[0].RenderID == nil || *logs[0].RenderID != event.ID {
			t.Errorf("\nwanted:\n%v\ngot:\n%v", event.ID, logs[0].RenderID)
		}
		if logs[0].ExtensionID == nil || *logs[0].ExtensionID != ext.ID {
			t.Errorf("\nwanted:\n%v\ngot:\n%v", ext.ID, logs[0].ExtensionID)
		}
	})
}

func TestDashboard_RenderHandler(t *testing.T) {
	t.Run("should call the render handler with the event", func(t *testing.T) {
		var got []RenderEvent
		d := setupTestDashboard(t, WithRenderHandler(func(event RenderEvent) error {
			got = append(got, event)
			return nil
		}))

		event, err := d.Render(context.Background(), domain.AllSelection())
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if diff := cmp.Diff([]RenderEvent{event}, got, cmpopts.EquateApproxTime(0)); diff != "" {
			t.Errorf("event mismatch (-wanted +got):\n%s", diff)
		}
	})

	t.Run("should return the handler error with the event", func(t *testing.T) {
		d := setupTestDashboard(t, WithRenderHandler(func(RenderEvent) error {
			return errors.New("forced error")
		}))

		event, err := d.Render(context.Background(), domain.AllSelection())
		if err == nil {
			t.Fatalf("\nwanted:\nerror\ngot:\nnil")
		}
		if event.Chart.Total() != 4 {
			t.Errorf("\nwanted:\n4\ngot:\n%d", event.Chart.Total())
		}
	})
}

func TestDashboard_Options(t *testing.T) {
	d := setupTestDashboard(t)

	t.Run("should list sites in first-seen order after All", func(t *testing.T) {
		got, err := d.Options(domain.FieldLaunchSite)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		want := []domain.Option{
			{Label: "All", Value: "all"},
			{Label: "CCAFS SLC 40", Value: "CCAFS SLC 40"},
			{Label: "KSC LC 39A", Value: "KSC LC 39A"},
			{Label: "VAFB SLC 4E", Value: "VAFB SLC 4E"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("options mismatch (-wanted +got):\n%s", diff)
		}
	})

	t.Run("should return error for an unknown field", func(t *testing.T) {
		_, err := d.Options(domain.Field("payload"))
		if !errors.Is(err, domain.ErrUnknownField) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", domain.ErrUnknownField, err)
		}
	})
}

func TestDashboard_Stats(t *testing.T) {
	t.Run("should count store and repository rows", func(t *testing.T) {
		d := setupTestDashboard(t)
		if err := d.WriteLog("INFO", "counted"); err != nil {
			t.Fatalf("writing log: %v", err)
		}

		got, err := d.Stats()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		want := Stats{Records: 4, StoredLaunches: 4, StoredSuccessful: 3, StoredLogs: 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("stats mismatch (-wanted +got):\n%s", diff)
		}
	})

	t.Run("should count only the store without a repository", func(t *testing.T) {
		d, err := New()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}

		got, err := d.Stats()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if diff := cmp.Diff(Stats{Records: 4}, got); diff != "" {
			t.Errorf("stats mismatch (-wanted +got):\n%s", diff)
		}
	})
}

func TestDashboard_Logs(t *testing.T) {
	t.Run("should return ErrNoRepository without a repository", func(t *testing.T) {
		d, err := New()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if _, err := d.Logs(); !errors.Is(err, ErrNoRepository) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", ErrNoRepository, err)
		}
	})
}

func TestDashboard_Close(t *testing.T) {
	t.Run("should be safe to call twice", func(t *testing.T) {
		repo := setupTestRepo(t)
		d, err := New(WithRepo(repo))
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if err := d.Close(); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if err := d.Close(); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
	})
}
