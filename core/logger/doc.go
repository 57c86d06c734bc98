// Package logger provides structured logging utilities built on Go's standard slog package.
//
// It offers a small factory for configured loggers and a set of attribute helpers
// that keep attribute naming consistent across packages.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/viewrouter/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("viewrouter"),
//	)
//
//	log.Info("route table loaded",
//		logger.Component("registry"),
//		logger.Count("routes", 11),
//	)
//
// # Environment Configurations
//
//	// Development: text format, debug level
//	devLogger := logger.New(logger.WithDevelopment("viewrouter"))
//
//	// Production: JSON format, info level
//	prodLogger := logger.New(logger.WithProduction("viewrouter"))
//
//	// Custom configuration
//	customLogger := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for missing values, which slog drops:
//
//	log.Debug("location resolved",
//		logger.Route(match.Route.Name()),
//		logger.Path("/admin/clientes/editar/42"),
//		logger.Params(match.Params),
//		logger.Error(err), // omitted when err is nil
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
