package extensions

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Shopify/go-lua"
	"github.com/Shopify/goluago/util"
)

// chartHook is the global Lua function called after every render.
const chartHook = "processChart"

// MaxLogs is the number of printed lines kept in Runtime.Logs. Older lines are dropped.
const MaxLogs = 256

// restrictedGlobals are removed from every Lua state before the extension code runs.
var restrictedGlobals = []string{
	"os",
	"io",
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"package",
	"debug",
	"collectgarbage",
	"string",
}

// ErrInvalidChart is returned when processChart returns a table that is not a valid chart.
var ErrInvalidChart = errors.New("invalid chart returned by extension")

// DashboardService is the subset of the dashboard exposed to Lua extensions.
type DashboardService interface {
	WriteLog(level string, message string, options ...func(log *domain.Log) error) error
	Options(field domain.Field) ([]domain.Option, error)
}

// ExtensionLog is a line printed by an extension through the Lua print function.
type ExtensionLog struct {
	Time time.Time // The time the line was printed.
	Text string    // Tab separated values passed to print.
}

// Runtime executes a single extension inside its own Lua state.
// A Lua state is not safe for concurrent use, so every call into it holds mu.
type Runtime struct {
	Data     *domain.Extension            // The extension definition, including its Lua source.
	LuaState *lua.State                   // The sandboxed Lua state, nil until PrepareState succeeds.
	Logs     []ExtensionLog               // The most recent MaxLogs lines printed by the extension.
	OnLog    func(log ExtensionLog) error // Optional handler invoked for every printed line.

	mu sync.Mutex
}

// ExtensionWithLogHandler sets the handler invoked for every line the extension prints.
func ExtensionWithLogHandler(handler func(log ExtensionLog) error) func(*Runtime) error {
	return func(runtime *Runtime) error {
		if runtime.OnLog != nil {
			return errors.New("extension already has a log handler defined")
		}
		runtime.OnLog = handler
		return nil
	}
}

// NewRuntime creates a runtime for ext and prepares its Lua state.
func NewRuntime(ext *domain.Extension, service DashboardService, options ...func(*Runtime) error) (*Runtime, error) {
	runtime := &Runtime{Data: ext}
	if err := runtime.PrepareState(service, options); err != nil {
		return nil, err
	}
	return runtime, nil
}

// PrepareState applies options, builds the sandboxed Lua state, registers the
// dashboard library and runs the extension source once to define its globals.
func (runtime *Runtime) PrepareState(service DashboardService, options []func(*Runtime) error) error {
	if runtime.Data == nil {
		return errors.New("extension has no definition")
	}

	for _, option := range options {
		if err := option(runtime); err != nil {
			return fmt.Errorf("applying option on extension %s : %w", runtime.Data.Name, err)
		}
	}

	l := lua.NewState()
	lua.Require(l, "_G", lua.BaseOpen, true)
	lua.Require(l, "table", lua.TableOpen, true)
	lua.Require(l, "math", lua.MathOpen, true)
	lua.Require(l, "bit32", lua.Bit32Open, true)
	l.Pop(4)

	for _, global := range restrictedGlobals {
		l.PushNil()
		l.SetGlobal(global)
	}

	runtime.LuaState = l
	registerDashboardLibrary(l, runtime, service)
	runtime.registerPrint()

	if runtime.Data.LuaContent == "" {
		return nil
	}
	if err := runtime.ExecuteLua(runtime.Data.LuaContent); err != nil {
		return fmt.Errorf("loading extension %s : %w", runtime.Data.Name, err)
	}
	return nil
}

// ExecuteLua runs code in the extension's Lua state. Returned values are left on the stack.
func (runtime *Runtime) ExecuteLua(code string) error {
	runtime.mu.Lock()
	defer runtime.mu.Unlock()

	if runtime.LuaState == nil {
		return errors.New("extension runtime is closed")
	}
	if err := lua.DoString(runtime.LuaState, code); err != nil {
		return fmt.Errorf("executing lua : %w", err)
	}
	return nil
}

// ProcessChart calls the extension's processChart(selection, chart) function.
// When the function is not defined or returns nil, chart is returned unchanged.
// A returned table replaces the chart after validation; a table that is not a
// valid chart returns an error wrapping ErrInvalidChart.
func (runtime *Runtime) ProcessChart(sel domain.FilterSelection, chart domain.ChartDescription) (domain.ChartDescription, error) {
	runtime.mu.Lock()
	defer runtime.mu.Unlock()

	l := runtime.LuaState
	if l == nil {
		return chart, errors.New("extension runtime is closed")
	}
	top := l.Top()
	defer l.SetTop(top)

	l.Global(chartHook)
	if !l.IsFunction(-1) {
		return chart, nil
	}

	util.DeepPush(l, map[string]any{
		"site":  sel.Site,
		"orbit": sel.Orbit,
	})
	util.DeepPush(l, chartToTable(chart))

	if err := l.ProtectedCall(2, 1, 0); err != nil {
		return chart, fmt.Errorf("calling %s : %w", chartHook, err)
	}

	if l.IsNil(-1) {
		return chart, nil
	}

	value, err := util.PullTable(l, l.AbsIndex(-1))
	if err != nil {
		return chart, fmt.Errorf("%w: %v", ErrInvalidChart, err)
	}

	return chartFromTable(value)
}

// Close releases the Lua state.
func (runtime *Runtime) Close() {
	runtime.mu.Lock()
	defer runtime.mu.Unlock()
	runtime.LuaState = nil
}

// registerPrint replaces the Lua print function so printed lines are kept in
// runtime.Logs and forwarded to OnLog instead of stdout.
func (runtime *Runtime) registerPrint() {
	runtime.LuaState.Register("print", func(l *lua.State) int {
		n := l.Top()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			switch {
			case l.IsNil(i):
				parts = append(parts, "nil")
			case l.IsBoolean(i):
				parts = append(parts, fmt.Sprintf("%t", l.ToBoolean(i)))
			case l.IsString(i):
				text, _ := l.ToString(i)
				parts = append(parts, text)
			default:
				parts = append(parts, lua.TypeNameOf(l, i))
			}
		}

		entry := ExtensionLog{Time: time.Now(), Text: strings.Join(parts, "\t")}
		if len(runtime.Logs) >= MaxLogs {
			n := copy(runtime.Logs, runtime.Logs[len(runtime.Logs)-MaxLogs+1:])
			runtime.Logs = runtime.Logs[:n]
		}
		runtime.Logs = append(runtime.Logs, entry)
		if runtime.OnLog != nil {
			if err := runtime.OnLog(entry); err != nil {
				lua.Errorf(l, "handling print: %s", err.Error())
			}
		}
		return 0
	})
}
