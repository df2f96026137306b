package logs

import (
	"time"

	"github.com/go-logr/logr"
	"github.com/miruken-go/safe/promise"
)

// Trace returns a promise with the same outcome as p that reports its
// settlement to the logger. Fulfillment logs "completed" at verbosity 1
// and rejection logs "failed" through the logger's error sink. The
// outcome itself is never altered.
func Trace[T any](
	log       logr.Logger,
	operation string,
	p         *promise.Promise[T],
) *promise.Promise[T] {
	if p == nil {
		panic("p cannot be nil")
	}
	if operation != "" {
		log = log.WithName(operation)
	}
	start := time.Now()
	return promise.WithContext(p.Context(), func(resolve func(T), reject func(error)) {
		if val, err := p.Await(); err != nil {
			log.Error(err, "failed", "duration", time.Since(start))
			reject(err)
		} else {
			log.V(1).Info("completed", "duration", time.Since(start))
			resolve(val)
		}
	})
}
