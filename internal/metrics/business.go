// Package metrics holds the prometheus collectors of the exercises service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	accountOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exercises_account_operations_total",
		Help: "Bank account operations by kind and outcome",
	}, []string{"operation", "outcome"}) // operation=create|open|close|get|deposit|withdraw

	accountsOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "exercises_accounts_open",
		Help: "Number of currently open bank accounts",
	})

	ledgerIOUsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exercises_ledger_ious_total",
		Help: "Ledger IOUs recorded by outcome",
	}, []string{"outcome"})

	ledgerUsersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exercises_ledger_users_created_total",
		Help: "Total number of ledger users created",
	})

	treeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "exercises_tree_requests_total",
		Help: "Tree re-root and path requests by kind and outcome",
	}, []string{"kind", "outcome"}) // kind=pov|path
)

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// RecordAccountOperation counts a bank account operation.
func RecordAccountOperation(operation string, err error) {
	accountOperationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

// IncAccountsOpen increments the open accounts gauge.
func IncAccountsOpen() {
	accountsOpen.Inc()
}

// DecAccountsOpen decrements the open accounts gauge.
func DecAccountsOpen() {
	accountsOpen.Dec()
}

// RecordIOU counts a ledger IOU attempt.
func RecordIOU(err error) {
	ledgerIOUsTotal.WithLabelValues(outcome(err)).Inc()
}

// RecordUserCreated counts a created ledger user.
func RecordUserCreated() {
	ledgerUsersCreatedTotal.Inc()
}

// RecordTreeRequest counts a tree request.
func RecordTreeRequest(kind string, err error) {
	treeRequestsTotal.WithLabelValues(kind, outcome(err)).Inc()
}
