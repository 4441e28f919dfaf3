// Package config defines the HCL job-file model for the importer: which
// documents to read, which store to load them into, and how strictly to
// decode. A job file may reference environment variables through the `env`
// object, so the same file works across machines.
package config
