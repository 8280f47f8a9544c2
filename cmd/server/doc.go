// Package main is the entry point for the mirofs server.
//
// The server exposes an in-memory hierarchical tree store through a service
// provider registry: REST endpoints for discovery and tool execution, a
// WebSocket stream of change events, and Prometheus metrics.
//
// Configuration:
//   - Environment variables (12-factor)
//   - Optional YAML config file (-config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Default configuration
//	./server
//
//	# Explicit port and config file
//	./server -port 9000 -config ./config.yaml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
