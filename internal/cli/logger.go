package cli

import "log"

type LogKind int

const (
	LogConfigLoaded LogKind = iota
	LogConfigMissing
	LogParams
	LogMismatch
	LogMAX
)

// Logger receives events of command line tool.
type Logger interface {
	Report(event LogKind, v ...interface{})
}

// DefaultLogger writes events with standard log package.
var DefaultLogger Logger = defaultLogger{}

type defaultLogger struct{}

func (d defaultLogger) Report(event LogKind, v ...interface{}) {
	switch event {
	case LogConfigLoaded:
		log.Printf("statelessrnd: using config file %s", v[0].(string))
	case LogConfigMissing:
		log.Printf("statelessrnd: no config file found, using flags and environment")
	case LogParams:
		a, c, m := v[0].(uint64), v[1].(uint64), v[2].(uint64)
		log.Printf("statelessrnd: parameters A=%d C=%d M=%d", a, c, m)
	case LogMismatch:
		err := v[0].(error)
		log.Printf("statelessrnd: reference mismatch: %s", err.Error())
	default:
		args := []interface{}{"statelessrnd: unexpected event:", event}
		args = append(args, v...)
		log.Print(args...)
	}
}
