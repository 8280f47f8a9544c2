package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*FilesystemOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read",
			Name:        "Read File",
			Description: "Read file contents",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.write",
			Name:        "Write File",
			Description: "Write data to file (overwrites existing)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "string", Description: "Data to write", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.append",
			Name:        "Append to File",
			Description: "Append data to end of file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "string", Description: "Data to append", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.update",
			Name:        "Update File",
			Description: "Write data to file, honoring the write permission bit",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "string", Description: "Data to write", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.create",
			Name:        "Create File",
			Description: "Create a new file, optionally with initial content",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "string", Description: "Initial content", Required: false},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.delete",
			Name:        "Delete File",
			Description: "Delete a file or empty directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.exists",
			Name:        "Check Existence",
			Description: "Check if a file or directory exists",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Read reads file contents
func (b *BasicOps) Read(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	data, err := b.Store.ReadFile(path)
	if err != nil {
		return Failure(fmt.Sprintf("read failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": string(data),
		"size":    len(data),
	})
}

// Write writes data to file (overwrites)
func (b *BasicOps) Write(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	data, ok := params["data"].(string)
	if !ok {
		return Failure("data parameter required")
	}

	if err := b.Store.WriteFile(path, []byte(data), false); err != nil {
		return Failure(fmt.Sprintf("write failed: %v", err))
	}

	return Success(map[string]interface{}{
		"written": true,
		"path":    path,
		"size":    len(data),
	})
}

// Append appends data to file
func (b *BasicOps) Append(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	data, ok := params["data"].(string)
	if !ok {
		return Failure("data parameter required")
	}

	if err := b.Store.WriteFile(path, []byte(data), true); err != nil {
		return Failure(fmt.Sprintf("append failed: %v", err))
	}

	return Success(map[string]interface{}{
		"appended": true,
		"path":     path,
	})
}

// Update writes data to file behind the write permission bit
func (b *BasicOps) Update(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	data, ok := params["data"].(string)
	if !ok {
		return Failure("data parameter required")
	}

	if err := b.Store.UpdateFile(path, []byte(data), false); err != nil {
		return Failure(fmt.Sprintf("update failed: %v", err))
	}

	return Success(map[string]interface{}{
		"updated": true,
		"path":    path,
		"size":    len(data),
	})
}

// Create creates a new file
func (b *BasicOps) Create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	var content []byte
	if data, ok := params["data"].(string); ok {
		content = []byte(data)
	}

	if err := b.Store.Create(path, content, false); err != nil {
		return Failure(fmt.Sprintf("create failed: %v", err))
	}

	return Success(map[string]interface{}{"created": true, "path": path})
}

// Delete deletes a file or empty directory
func (b *BasicOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	if err := b.Store.Delete(path); err != nil {
		return Failure(fmt.Sprintf("delete failed: %v", err))
	}

	return Success(map[string]interface{}{"deleted": true, "path": path})
}

// Exists checks whether a node is present
func (b *BasicOps) Exists(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := b.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	return Success(map[string]interface{}{
		"exists": b.Store.Exists(path),
		"path":   path,
	})
}
