package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
	"github.com/mirofs/mirofs/internal/vfs"
)

// OperationOps handles node-level structural operations
type OperationOps struct {
	*FilesystemOps
}

// GetTools returns structural operation tool definitions
func (o *OperationOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.rename",
			Name:        "Rename",
			Description: "Rename a file or directory within its parent",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Current path", Required: true},
				{Name: "name", Type: "string", Description: "New name", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.copy",
			Name:        "Copy",
			Description: "Deep-copy a node into a destination directory",
			Parameters: []types.Parameter{
				{Name: "source", Type: "string", Description: "Source path", Required: true},
				{Name: "destination", Type: "string", Description: "Destination directory path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.chmod",
			Name:        "Change Permissions",
			Description: "Set the read/write/execute permission bits on a node",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
				{Name: "read", Type: "boolean", Description: "Read bit", Required: true},
				{Name: "write", Type: "boolean", Description: "Write bit", Required: true},
				{Name: "execute", Type: "boolean", Description: "Execute bit", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Rename renames a node within its parent
func (o *OperationOps) Rename(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := o.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return Failure("name parameter required")
	}

	if err := o.Store.Rename(path, name); err != nil {
		return Failure(fmt.Sprintf("rename failed: %v", err))
	}

	return Success(map[string]interface{}{
		"renamed": true,
		"path":    path,
		"name":    name,
	})
}

// Copy deep-copies a node into a destination directory
func (o *OperationOps) Copy(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	source, ok := params["source"].(string)
	if !ok || source == "" {
		return Failure("source parameter required")
	}

	destination, ok := params["destination"].(string)
	if !ok || destination == "" {
		return Failure("destination parameter required")
	}

	if err := o.Store.Copy(source, destination); err != nil {
		return Failure(fmt.Sprintf("copy failed: %v", err))
	}

	return Success(map[string]interface{}{
		"copied":      true,
		"source":      source,
		"destination": destination,
	})
}

// Chmod sets the permission bits on a node
func (o *OperationOps) Chmod(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := o.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	read, okR := params["read"].(bool)
	write, okW := params["write"].(bool)
	execute, okX := params["execute"].(bool)
	if !okR || !okW || !okX {
		return Failure("read, write and execute parameters required")
	}

	perms := vfs.Permissions{Read: read, Write: write, Execute: execute}
	if err := o.Store.ChangePermissions(path, perms); err != nil {
		return Failure(fmt.Sprintf("chmod failed: %v", err))
	}

	return Success(map[string]interface{}{
		"changed": true,
		"path":    path,
		"mode":    perms.String(),
	})
}
