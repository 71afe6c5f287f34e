package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/lazysim/internal/domain/economy"
)

// EstimationMetricsCollector exports the latest estimate per subject.
// Gauges are overwritten on each evaluation; nothing here is a source of truth.
type EstimationMetricsCollector struct {
	evaluationsTotal *prometheus.CounterVec

	// Employee metrics
	employeeEnergy  *prometheus.GaugeVec
	employeeWorking *prometheus.GaugeVec

	// Deposit metrics
	miningProgress      *prometheus.GaugeVec
	miningYield         *prometheus.GaugeVec
	miningActiveWorkers *prometheus.GaugeVec

	// Machine metrics
	productionProgress   *prometheus.GaugeVec
	productionCycles     *prometheus.GaugeVec
	productionProduced   *prometheus.GaugeVec
	productionDurability *prometheus.GaugeVec
	productionBlocked    *prometheus.GaugeVec
}

// NewEstimationMetricsCollector creates a new estimation metrics collector
func NewEstimationMetricsCollector() *EstimationMetricsCollector {
	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      name,
				Help:      help,
			},
			labels,
		)
	}

	return &EstimationMetricsCollector{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "evaluations_total",
				Help:      "Total number of estimates computed by kind",
			},
			[]string{"kind"},
		),

		employeeEnergy:  gauge("employee_energy_percent", "Employee energy in the current phase", "employee_id"),
		employeeWorking: gauge("employee_working", "1 if the employee is in the working phase", "employee_id"),

		miningProgress:      gauge("mining_progress_percent", "Progress toward the next harvest tick", "deposit_id"),
		miningYield:         gauge("mining_estimated_yield", "Units the backend will credit at the next harvest", "deposit_id"),
		miningActiveWorkers: gauge("mining_active_workers", "Crew members currently working a deposit", "deposit_id"),

		productionProgress:   gauge("production_progress_percent", "Progress within the current production cycle", "machine_id"),
		productionCycles:     gauge("production_cycles_completed", "Cycles the backend will credit at its next tick", "machine_id"),
		productionProduced:   gauge("production_estimated_produced", "Units the backend will credit at its next tick", "machine_id"),
		productionDurability: gauge("production_estimated_durability", "Advisory durability after the completed cycles", "machine_id"),
		productionBlocked:    gauge("production_blocked", "1 if the machine cannot produce", "machine_id"),
	}
}

// Register registers all estimation metrics with the Prometheus registry
func (c *EstimationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.evaluationsTotal,
		c.employeeEnergy,
		c.employeeWorking,
		c.miningProgress,
		c.miningYield,
		c.miningActiveWorkers,
		c.productionProgress,
		c.productionCycles,
		c.productionProduced,
		c.productionDurability,
		c.productionBlocked,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordEnergy records an employee phase evaluation
func (c *EstimationMetricsCollector) RecordEnergy(employeeID string, status economy.PhaseStatus) {
	c.evaluationsTotal.WithLabelValues("energy").Inc()
	c.employeeEnergy.WithLabelValues(employeeID).Set(status.EnergyPercent)
	c.employeeWorking.WithLabelValues(employeeID).Set(boolToFloat(status.IsWorking()))
}

// RecordMining records a mining estimate
func (c *EstimationMetricsCollector) RecordMining(depositID string, estimate economy.MiningEstimate) {
	c.evaluationsTotal.WithLabelValues("mining").Inc()
	c.miningProgress.WithLabelValues(depositID).Set(estimate.ProgressPercent)
	c.miningYield.WithLabelValues(depositID).Set(float64(estimate.EstimatedYield))
	c.miningActiveWorkers.WithLabelValues(depositID).Set(float64(estimate.ActiveWorkers))
}

// RecordProduction records a production estimate
func (c *EstimationMetricsCollector) RecordProduction(machineID string, estimate economy.ProductionEstimate) {
	c.evaluationsTotal.WithLabelValues("production").Inc()
	c.productionProgress.WithLabelValues(machineID).Set(estimate.ProgressPercent)
	c.productionCycles.WithLabelValues(machineID).Set(float64(estimate.CyclesCompleted))
	c.productionProduced.WithLabelValues(machineID).Set(float64(estimate.EstimatedProduced))
	c.productionDurability.WithLabelValues(machineID).Set(estimate.EstimatedDurability)
	c.productionBlocked.WithLabelValues(machineID).Set(boolToFloat(!estimate.CanProduce))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
