package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
)

// MetadataOps handles metadata inspection and mutation
type MetadataOps struct {
	*FilesystemOps
}

// GetTools returns metadata operation tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.stat",
			Name:        "Node Metadata",
			Description: "Get structured metadata for a file or directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.info",
			Name:        "Node Summary",
			Description: "Get a human-readable summary of a file or directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.tag.add",
			Name:        "Add Tag",
			Description: "Attach a tag to a node",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
				{Name: "tag", Type: "string", Description: "Tag to attach", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.tag.remove",
			Name:        "Remove Tag",
			Description: "Detach a tag from a node",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
				{Name: "tag", Type: "string", Description: "Tag to detach", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.mime.set",
			Name:        "Set MIME Type",
			Description: "Override the MIME type recorded on a node",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Node path", Required: true},
				{Name: "mime", Type: "string", Description: "MIME type", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Stat returns structured node metadata
func (m *MetadataOps) Stat(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := m.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	info, err := m.Store.Stat(path)
	if err != nil {
		return Failure(fmt.Sprintf("stat failed: %v", err))
	}

	return Success(map[string]interface{}{
		"name":        info.Name,
		"path":        info.Path,
		"is_dir":      info.IsDir,
		"size":        info.Size,
		"mode":        info.Mode,
		"owner":       info.Owner,
		"group":       info.Group,
		"mime_type":   info.MIMEType,
		"tags":        info.Tags,
		"created_at":  info.CreatedAt.Unix(),
		"modified_at": info.ModifiedAt.Unix(),
		"accessed_at": info.AccessedAt.Unix(),
		"id":          info.ID,
	})
}

// Info returns the human-readable node summary
func (m *MetadataOps) Info(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := m.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	summary, err := m.Store.GetInfo(path)
	if err != nil {
		return Failure(fmt.Sprintf("info failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path": path,
		"info": summary,
	})
}

// AddTag attaches a tag to a node
func (m *MetadataOps) AddTag(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := m.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	tag, ok := params["tag"].(string)
	if !ok || tag == "" {
		return Failure("tag parameter required")
	}

	if err := m.Store.AddTag(path, tag); err != nil {
		return Failure(fmt.Sprintf("tag add failed: %v", err))
	}

	return Success(map[string]interface{}{"tagged": true, "path": path, "tag": tag})
}

// RemoveTag detaches a tag from a node
func (m *MetadataOps) RemoveTag(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := m.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	tag, ok := params["tag"].(string)
	if !ok || tag == "" {
		return Failure("tag parameter required")
	}

	if err := m.Store.RemoveTag(path, tag); err != nil {
		return Failure(fmt.Sprintf("tag remove failed: %v", err))
	}

	return Success(map[string]interface{}{"untagged": true, "path": path, "tag": tag})
}

// SetMIME overrides the MIME type on a node
func (m *MetadataOps) SetMIME(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := m.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	mime, ok := params["mime"].(string)
	if !ok || mime == "" {
		return Failure("mime parameter required")
	}

	if err := m.Store.SetMIMEType(path, mime); err != nil {
		return Failure(fmt.Sprintf("mime set failed: %v", err))
	}

	return Success(map[string]interface{}{"set": true, "path": path, "mime": mime})
}
