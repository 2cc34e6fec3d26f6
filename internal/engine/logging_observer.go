package engine

import "log/slog"

// LoggingObserver logs every lifecycle event through structured logging.
type LoggingObserver struct {
	logger *slog.Logger
}

func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{logger: slog.Default()}
}

func (o *LoggingObserver) OnEvent(event Event) {
	o.logger.Debug("statement lifecycle",
		"event", string(event.Type),
		"statement_id", event.StatementID,
		"data", event.Data,
	)
}
