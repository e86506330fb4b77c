// Package logger builds slog loggers and provides attribute helpers with
// consistent keys.
//
//	log := logger.New(
//		logger.WithProduction("eradate"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Info("era table written",
//		logger.Component("eragen"),
//		logger.Count("eras", table.Len()),
//		logger.Duration(time.Since(start)),
//	)
//
// Helpers such as Error, Era and RequestID return an empty slog.Attr for nil or
// empty input, which slog omits, so they can be passed without checks:
//
//	log.Warn("parse failed", logger.Error(err), logger.Layout(layout))
package logger
