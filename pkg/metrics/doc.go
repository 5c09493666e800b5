// Package metrics exposes Prometheus counters for form submissions and
// strength checks. Collectors are package globals; call RegisterMetrics once
// at startup and mount Handler on /metrics.
package metrics
