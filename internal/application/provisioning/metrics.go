package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tenantsProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tenants_provisioned_total",
		Help: "Total number of tenants provisioned successfully",
	})

	provisioningFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "provisioning_failures_total",
		Help: "Total number of provisioning attempts that failed and were compensated",
	})

	orphanedIdentities = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orphaned_identities_total",
		Help: "Total number of confirmed identities deleted for lacking a staging record",
	})
)
