package logging

import (
	"fmt"
	"io"
	"strings"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level ("debug", "info", ...) and format
// ("text" or "json"). A nil out selects a colour-capable stdout.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		if out == nil {
			out = colorable.NewColorableStdout()
			l.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		}
	case "json":
		if out == nil {
			out = colorable.NewNonColorable(colorable.NewColorableStdout())
		}
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	l.SetOutput(out)
	return l, nil
}
