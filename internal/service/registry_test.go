package service

import (
	"context"
	"testing"

	"github.com/mirofs/mirofs/internal/shared/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryFilesystem,
		Capabilities: []string{"read", "write"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Empty service ID should be rejected")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}
	if services[0].ID != "test1" || services[1].ID != "test2" {
		t.Errorf("Expected sorted IDs, got %s, %s", services[0].ID, services[1].ID)
	}

	cat := types.CategoryFilesystem
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 filesystem services, got %d", len(filtered))
	}

	other := types.CategorySystem
	if got := r.List(&other); len(got) != 0 {
		t.Errorf("Expected no system services, got %d", len(got))
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "filesystem"})

	results := r.Discover("filesystem read write", 5)
	if len(results) == 0 {
		t.Fatal("Should discover filesystem service")
	}

	if results[0].ID != "filesystem" {
		t.Errorf("Expected filesystem service, got %s", results[0].ID)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected successful execution")
	}
}

func TestExecuteBadToolID(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Execute(context.Background(), "noseparator", nil, nil); err == nil {
		t.Error("Tool ID without separator should fail")
	}
	if _, err := r.Execute(context.Background(), "missing.tool", nil, nil); err == nil {
		t.Error("Unknown service should fail")
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	totalServices := stats["total_services"].(int)
	if totalServices != 2 {
		t.Errorf("Expected 2 total services, got %d", totalServices)
	}

	totalTools := stats["total_tools"].(int)
	if totalTools != 2 {
		t.Errorf("Expected 2 total tools, got %d", totalTools)
	}
}
