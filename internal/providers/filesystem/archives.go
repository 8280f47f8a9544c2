package filesystem

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
)

// ArchiveOps handles tar.gz subtree snapshots
type ArchiveOps struct {
	*FilesystemOps
}

// GetTools returns archive tool definitions
func (a *ArchiveOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.archive.export",
			Name:        "Export Archive",
			Description: "Export a directory subtree as a base64-encoded tar.gz archive",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.archive.import",
			Name:        "Import Archive",
			Description: "Import a base64-encoded tar.gz archive into a directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Destination directory path", Required: true},
				{Name: "data", Type: "string", Description: "Base64-encoded archive", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Export exports a subtree as a base64 tar.gz archive
func (a *ArchiveOps) Export(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := a.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	var buf bytes.Buffer
	if err := a.Store.ExportArchive(path, &buf); err != nil {
		return Failure(fmt.Sprintf("export failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"archive": base64.StdEncoding.EncodeToString(buf.Bytes()),
		"size":    buf.Len(),
	})
}

// Import imports a base64 tar.gz archive into a directory
func (a *ArchiveOps) Import(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	path, ok := a.PathParam(params)
	if !ok {
		return Failure("path parameter required")
	}

	data, ok := params["data"].(string)
	if !ok || data == "" {
		return Failure("data parameter required")
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return Failure(fmt.Sprintf("invalid base64 data: %v", err))
	}

	if err := a.Store.ImportArchive(path, bytes.NewReader(raw)); err != nil {
		return Failure(fmt.Sprintf("import failed: %v", err))
	}

	return Success(map[string]interface{}{"imported": true, "path": path})
}
