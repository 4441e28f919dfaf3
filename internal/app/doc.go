// Package app wires the application together: logger, format registry,
// job-file configuration, and the per-job import/export loop. Startup
// defects (bad schema data, unloadable configuration) panic; runtime
// failures flow back as errors.
package app
