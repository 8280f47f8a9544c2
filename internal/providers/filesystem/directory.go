package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
)

// DirectoryOps handles directory operations
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.mkdir",
			Name:        "Create Directory",
			Description: "Create a new directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.list",
			Name:        "List Directory",
			Description: "List contents of a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.tree",
			Name:        "Directory Tree",
			Description: "Render a directory subtree as an indented listing",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
	}
}

// Mkdir creates a directory
func (d *DirectoryOps) Mkdir(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := d.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	if err := d.Store.Create(path, nil, true); err != nil {
		return Failure(fmt.Sprintf("mkdir failed: %v", err))
	}

	return Success(map[string]interface{}{"created": true, "path": path})
}

// List lists directory contents
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := d.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	entries, err := d.Store.ListDirectory(path)
	if err != nil {
		return Failure(fmt.Sprintf("list failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"entries": entries,
		"count":   len(entries),
	})
}

// Tree renders a directory subtree
func (d *DirectoryOps) Tree(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := d.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	rendered, err := d.Store.Tree(path)
	if err != nil {
		return Failure(fmt.Sprintf("tree failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path": path,
		"tree": rendered,
	})
}
