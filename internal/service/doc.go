// Package service provides the service registry for provider management.
//
// The registry maintains a catalog of available service providers and handles
// service discovery, tool execution, and relevance scoring for intent queries.
//
// Components:
//   - Registry: Central service catalog
//   - Provider: Interface for service implementations
//   - Service discovery with relevance scoring
//
// Discovery Algorithm:
//   - Keyword matching in name/description
//   - Capability matching
//   - Category bonus for exact matches
//   - Score-based ranking
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(filesystemProvider)
//	services := registry.Discover("read file", 5)
//	result, err := registry.Execute(ctx, "store.read", params, appCtx)
package service
