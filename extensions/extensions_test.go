package extensions

import (
	"testing"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/google/uuid"
)

type mockDashboardService struct {
	WriteLogFunc func(level string, message string, options ...func(log *domain.Log) error) error
	OptionsFunc  func(field domain.Field) ([]domain.Option, error)
}

func (m *mockDashboardService) WriteLog(level string, message string, options ...func(log *domain.Log) error) error {
	if m.WriteLogFunc != nil {
		return m.WriteLogFunc(level, message, options...)
	}
	return nil
}

func (m *mockDashboardService) Options(field domain.Field) ([]domain.Option, error) {
	if m.OptionsFunc != nil {
		return m.OptionsFunc(field)
	}
	return []domain.Option{
		{Label: "All", Value: "all"},
		{Label: "CCAFS SLC 40", Value: "CCAFS SLC 40"},
	}, nil
}

func setupTestExtension(t *testing.T, luaCode string, options ...func(*Runtime) error) (*Runtime, *mockDashboardService) {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("generating uuid : %v", err)
	}
	ext := &domain.Extension{
		ID:         id,
		Name:       "test-extension",
		LuaContent: luaCode,
	}
	runtime := &Runtime{Data: ext}

	mockDashboard := &mockDashboardService{}

	err = runtime.PrepareState(mockDashboard, options)
	if err != nil {
		t.Fatalf("preparing state: %v", err)
	}

	return runtime, mockDashboard
}
