package observability

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
)

var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

// HTTPMetrics returns the process-wide Prometheus HTTP middleware. Creating
// the middleware registers collectors with the default registry, so it must
// only happen once even when multiple servers are constructed (tests).
func HTTPMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = InitMetrics(serviceName)
	})
	return promMW
}
