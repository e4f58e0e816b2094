package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ChannelLogger holds one rotating file logger per severity.
type ChannelLogger struct {
	Info    zerolog.Logger
	Warning zerolog.Logger
	Error   zerolog.Logger
}

// AppLogger separates HTTP-side and realtime-side log streams so websocket
// chatter does not drown out request logs.
type AppLogger struct {
	Http     ChannelLogger
	Realtime ChannelLogger
}

func NewLogger() *AppLogger {
	_ = os.MkdirAll("logs", 0755)

	zerolog.TimeFieldFormat = "2006-01-02 15:04:05.000"

	console := consoleWriter()
	log := &AppLogger{}

	log.Http.Info = newMultiLogger(console, "logs/http.info.log")
	log.Http.Warning = newMultiLogger(console, "logs/http.warning.log")
	log.Http.Error = newMultiLogger(console, "logs/http.error.log")

	log.Realtime.Info = newMultiLogger(console, "logs/realtime.info.log")
	log.Realtime.Warning = newMultiLogger(console, "logs/realtime.warning.log")
	log.Realtime.Error = newMultiLogger(console, "logs/realtime.error.log")

	return log
}

func newMultiLogger(console zerolog.ConsoleWriter, filepath string) zerolog.Logger {
	multi := io.MultiWriter(console, fileWriter(filepath))
	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05.000",
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(i.(string)))
		},
	}
}

func fileWriter(filename string) io.Writer {
	return zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     20,
			MaxBackups: 5,
			Compress:   true,
		},
		NoColor:    true,
		TimeFormat: "2006-01-02 15:04:05.000",
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("[%s]", i)
		},
		FormatLevel: func(i interface{}) string {
			return fmt.Sprintf("[%s]", strings.ToUpper(i.(string)))
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
	}
}
