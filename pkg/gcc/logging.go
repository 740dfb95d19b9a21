package gcc

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is the default *logrus.Entry every propagator uses until
// WithLogger attaches a real one. Built once so the hot path of Propagate
// never allocates a logger.
var discardLogger = func() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}()

// WithLogger is implemented by the propagators that report at conflict
// and propagation boundaries — the three global GCC propagators, whose
// failure reasons are worth tracing. The pairwise lattice propagators are
// on the hot path of every fixpoint pass and deliberately do not carry a
// logger field.
type WithLogger interface {
	SetLogger(entry *logrus.Entry)
}

// SetLogger implements WithLogger.
func (p *GccUpperBound) SetLogger(entry *logrus.Entry) { p.logger = loggerOrDiscard(entry) }

// SetLogger implements WithLogger.
func (p *GccInequalitySets) SetLogger(entry *logrus.Entry) { p.logger = loggerOrDiscard(entry) }

// SetLogger implements WithLogger.
func (p *GccLowerboundConflicts) SetLogger(entry *logrus.Entry) { p.logger = loggerOrDiscard(entry) }

func loggerOrDiscard(entry *logrus.Entry) *logrus.Entry {
	if entry == nil {
		return discardLogger
	}
	return entry
}
