package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/mirofs/mirofs/internal/shared/types"
	"github.com/mirofs/mirofs/internal/vfs"
)

// Provider exposes process information and store-wide statistics
type Provider struct {
	store     *vfs.Store
	startTime time.Time
}

// NewProvider creates a system provider backed by store
func NewProvider(store *vfs.Store) *Provider {
	return &Provider{
		store:     store,
		startTime: time.Now(),
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Process information and tree store statistics",
		Category:    types.CategorySystem,
		Capabilities: []string{
			"info",
			"monitoring",
		},
		Tools: []types.Tool{
			{
				ID:          "system.info",
				Name:        "System Info",
				Description: "Get process and runtime information",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.time",
				Name:        "Current Time",
				Description: "Get current server time",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.stats",
				Name:        "Store Statistics",
				Description: "Get node, file, directory and byte counts for the tree store",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "system.ping",
				Name:        "Ping",
				Description: "Test service availability",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a system operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "system.info":
		return p.info()
	case "system.time":
		return p.currentTime()
	case "system.stats":
		return p.stats()
	case "system.ping":
		return p.ping()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Provider) info() (*types.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return success(map[string]interface{}{
		"go_version":     runtime.Version(),
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_alloc":   m.Alloc / 1024 / 1024,      // MB
		"memory_total":   m.TotalAlloc / 1024 / 1024, // MB
		"memory_sys":     m.Sys / 1024 / 1024,        // MB
		"uptime_seconds": time.Since(p.startTime).Seconds(),
	})
}

func (p *Provider) currentTime() (*types.Result, error) {
	now := time.Now()
	return success(map[string]interface{}{
		"timestamp": now.Unix(),
		"iso":       now.Format(time.RFC3339),
		"unix_ms":   now.UnixMilli(),
	})
}

func (p *Provider) stats() (*types.Result, error) {
	st := p.store.Stats()
	return success(map[string]interface{}{
		"nodes":       st.Nodes,
		"files":       st.Files,
		"directories": st.Directories,
		"bytes":       st.Bytes,
	})
}

func (p *Provider) ping() (*types.Result, error) {
	return success(map[string]interface{}{
		"pong":      true,
		"timestamp": time.Now().Unix(),
	})
}

func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
