package extensions

import (
	"github.com/Ananya178/spacex-launch-prediction/core"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Shopify/go-lua"
	"github.com/Shopify/goluago/util"
	"github.com/google/uuid"
)

// registerDashboardLibrary registers the `dashboard` global library and its
// sub-libraries into the Lua state.
func registerDashboardLibrary(l *lua.State, runtime *Runtime, service DashboardService) {
	funcs := []lua.RegistryFunction{
		// log writes a message to the dashboard's log.
		//
		// @param message string The message to log.
		// @param level string (optional) The log level (e.g., "INFO", "WARN", "ERROR").
		// Defaults to "INFO".
		{Name: "log", Function: func(l *lua.State) int {
			message := lua.CheckString(l, 2)
			level := lua.OptString(l, 3, "INFO")

			var options []func(*domain.Log) error
			if runtime.Data != nil && runtime.Data.ID != uuid.Nil {
				options = append(options, core.LogWithExtensionID(runtime.Data.ID))
			}
			if err := service.WriteLog(level, message, options...); err != nil {
				lua.Errorf(l, "writing log : %s", err.Error())
				return 0
			}
			return 0
		}},
		// options returns the dropdown options for a field, "All" first.
		//
		// @param field string Either "launchSite" or "orbit".
		// @return table An array of {label, value} tables.
		{Name: "options", Function: func(l *lua.State) int {
			field := lua.CheckString(l, 2)

			options, err := service.Options(domain.Field(field))
			if err != nil {
				lua.Errorf(l, "getting options : %s", err.Error())
				return 0
			}

			result := make([]any, len(options))
			for i, option := range options {
				result[i] = map[string]any{
					"label": option.Label,
					"value": option.Value,
				}
			}
			util.DeepPush(l, result)
			return 1
		}},
	}

	lua.NewLibrary(l, funcs)
	l.SetGlobal("dashboard")

	registerChartLibrary(l)
}
