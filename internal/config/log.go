package config

import "go.uber.org/zap"

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
)

type logEntry struct {
	level   logLevel
	message string
}

// Log buffers messages emitted during config resolution, before zap exists.
type Log struct {
	entries []logEntry
}

func newLog() *Log {
	return &Log{}
}

func (l *Log) debug(message string) {
	l.entries = append(l.entries, logEntry{level: levelDebug, message: message})
}

func (l *Log) info(message string) {
	l.entries = append(l.entries, logEntry{level: levelInfo, message: message})
}

func (l *Log) warn(message string) {
	l.entries = append(l.entries, logEntry{level: levelWarn, message: message})
}

func (l *Log) FlushToZap(logger *zap.Logger) {
	for _, entry := range l.entries {
		switch entry.level {
		case levelDebug:
			logger.Debug(entry.message)
		case levelInfo:
			logger.Info(entry.message)
		case levelWarn:
			logger.Warn(entry.message)
		}
	}
	l.entries = nil
}
