package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

const (
	// Namespace for all metrics
	namespace = "lazysim"
	// Subsystem for estimate gauges and counters
	subsystem = "estimation"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalEstimationCollector is set by SetGlobalEstimationCollector() when metrics are enabled
	globalEstimationCollector EstimationMetricsRecorder
)

// EstimationMetricsRecorder defines the interface for recording estimate results.
// Application handlers record through the package-level helpers below.
type EstimationMetricsRecorder interface {
	RecordEnergy(employeeID string, status economy.PhaseStatus)
	RecordMining(depositID string, estimate economy.MiningEstimate)
	RecordProduction(machineID string, estimate economy.ProductionEstimate)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalEstimationCollector sets the global estimation collector
func SetGlobalEstimationCollector(collector EstimationMetricsRecorder) {
	globalEstimationCollector = collector
}

// RecordEnergy records an employee phase evaluation globally
func RecordEnergy(employeeID string, status economy.PhaseStatus) {
	if globalEstimationCollector != nil {
		globalEstimationCollector.RecordEnergy(employeeID, status)
	}
}

// RecordMining records a mining estimate globally
func RecordMining(depositID string, estimate economy.MiningEstimate) {
	if globalEstimationCollector != nil {
		globalEstimationCollector.RecordMining(depositID, estimate)
	}
}

// RecordProduction records a production estimate globally
func RecordProduction(machineID string, estimate economy.ProductionEstimate) {
	if globalEstimationCollector != nil {
		globalEstimationCollector.RecordProduction(machineID, estimate)
	}
}
