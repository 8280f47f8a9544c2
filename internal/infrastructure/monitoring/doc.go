/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the mirofs
service, tracking HTTP requests, service tool calls, WebSocket streams, and
tree store contents.

# Features

- HTTP request metrics (latency, throughput, size)
- Service call metrics (duration, errors)
- Tree store gauges (nodes, files, directories, bytes)
- WebSocket connection and event metrics
- Uptime tracking

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Record custom metrics
	metrics.SetStoreStats(nodes, files, dirs, bytes)
	metrics.RecordWSEvent("create")

	// Time operations
	timer := monitoring.NewTimer(metrics, "filesystem", "write")
	// ... perform operation ...
	timer.Stop("ok")

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
