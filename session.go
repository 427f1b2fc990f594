package lightsetups

// Session is selection state owned by the UI layer: the name of the setup
// the user currently has picked in the chooser. It deliberately lives
// outside the Document so closing or swapping documents cannot carry a
// stale selection along.
type Session struct {
	current string
}

func (s *Session) Select(name string) { s.current = name }
func (s *Session) Current() string    { return s.current }
func (s *Session) Clear()             { s.current = "" }

// Reporter receives apply outcomes; hosts route it into their own
// notification surface.
type Reporter interface {
	Report(r Report)
}

type logReporter struct {
	log Logger
}

// NewLogReporter reports through a Logger, for hosts without a
// notification UI of their own.
func NewLogReporter(log Logger) Reporter {
	return &logReporter{log: log}
}

func (lr *logReporter) Report(r Report) {
	if r.Failed() {
		lr.log.Errorf("%s", r.Message)
		return
	}
	lr.log.Infof("%s", r.Message)
}
