package paging

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts pager activity per list family.
type Metrics struct {
	// PagesFetched counts pages returned by fetchers.
	PagesFetched *prometheus.CounterVec
	// PageErrors counts failed fetches, including repeated tokens.
	PageErrors *prometheus.CounterVec
}

// NewMetrics creates the pager collectors and registers them with reg when
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		PagesFetched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azmodels_pages_fetched_total",
				Help: "Total number of pages fetched by pagers",
			},
			[]string{"family"},
		),
		PageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "azmodels_page_errors_total",
				Help: "Total number of failed page fetches",
			},
			[]string{"family"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.PagesFetched, m.PageErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) fetched(family string) {
	if m != nil {
		m.PagesFetched.WithLabelValues(family).Inc()
	}
}

func (m *Metrics) failed(family string) {
	if m != nil {
		m.PageErrors.WithLabelValues(family).Inc()
	}
}
