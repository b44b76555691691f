// Package logging provides standard field definitions for structured logging
package logging

// Standard log field names shared across the service
const (
	FieldConnID    = "conn_id"
	FieldRemote    = "remote"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatencyMs = "latency_ms"
	FieldService   = "service"
	FieldVersion   = "version"
	FieldUptimeSec = "uptime_seconds"
	FieldError     = "error"
	FieldSeverity  = "severity"
	FieldCheckName = "check_name"
)

// Health statuses used in log output and response bodies
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)
