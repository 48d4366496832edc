package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var mu sync.Mutex
var loggers = make(map[string]*logHandle)

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvlStr := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 35 // magenta
		}
		lvlStr = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvlStr)
	}
	const timeFormat = "2006/01/02 15:04:05.000000"
	str := fmt.Sprintf("%s %s[%d] <%s>: %s",
		e.Time.Format(timeFormat),
		l.name,
		os.Getpid(),
		lvlStr,
		strings.TrimRight(e.Message, "\n"))
	if e.HasCaller() {
		str += fmt.Sprintf(" [%s:%d]", methodName(e.Caller.Function), e.Caller.Line)
	}
	if len(e.Data) != 0 {
		str += " " + fmt.Sprint(e.Data)
	}
	return []byte(str + "\n"), nil
}

// methodName strips the package path from a fully qualified function name.
func methodName(fullFuncName string) string {
	if i := strings.LastIndex(fullFuncName, "."); i >= 0 {
		return fullFuncName[i+1:]
	}
	return fullFuncName
}

// SupportANSIColor reports whether fd is a terminal that understands color codes.
func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && os.Getenv("TERM") != "dumb"
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: SupportANSIColor(os.Stderr.Fd())}
	l.Formatter = l
	l.SetReportCaller(true)
	return l
}

// GetLogger returns a logger mounted on root logger
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	logger := newLogger(name)
	loggers[name] = logger
	return logger
}

// SetLogLevel sets Level to all the loggers in the map
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.colorful = false
	}
}

// SetOutput redirects all the loggers, mostly useful in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	for _, logger := range loggers {
		logger.SetOutput(w)
	}
}
