package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
	"github.com/mirofs/mirofs/internal/vfs"
)

// Provider implements filesystem operations over the in-memory tree store
type Provider struct {
	basic     *BasicOps
	directory *DirectoryOps
	ops       *OperationOps
	metadata  *MetadataOps
	search    *SearchOps
	archives  *ArchiveOps
}

// NewProvider creates a modular filesystem provider backed by store
func NewProvider(store *vfs.Store) *Provider {
	ops := &FilesystemOps{Store: store}

	return &Provider{
		basic:     &BasicOps{FilesystemOps: ops},
		directory: &DirectoryOps{FilesystemOps: ops},
		ops:       &OperationOps{FilesystemOps: ops},
		metadata:  &MetadataOps{FilesystemOps: ops},
		search:    &SearchOps{FilesystemOps: ops},
		archives:  &ArchiveOps{FilesystemOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.ops.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.search.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "File and directory operations on the in-memory tree store",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read",
			"write",
			"create",
			"delete",
			"list",
			"stat",
			"rename",
			"copy",
			"search",
			"tags",
			"archives",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Basic operations
	case "filesystem.read":
		return p.basic.Read(ctx, params, appCtx)
	case "filesystem.write":
		return p.basic.Write(ctx, params, appCtx)
	case "filesystem.append":
		return p.basic.Append(ctx, params, appCtx)
	case "filesystem.update":
		return p.basic.Update(ctx, params, appCtx)
	case "filesystem.create":
		return p.basic.Create(ctx, params, appCtx)
	case "filesystem.delete":
		return p.basic.Delete(ctx, params, appCtx)
	case "filesystem.exists":
		return p.basic.Exists(ctx, params, appCtx)

	// Directory operations
	case "filesystem.mkdir":
		return p.directory.Mkdir(ctx, params, appCtx)
	case "filesystem.list":
		return p.directory.List(ctx, params, appCtx)
	case "filesystem.tree":
		return p.directory.Tree(ctx, params, appCtx)

	// Structural operations
	case "filesystem.rename":
		return p.ops.Rename(ctx, params, appCtx)
	case "filesystem.copy":
		return p.ops.Copy(ctx, params, appCtx)
	case "filesystem.chmod":
		return p.ops.Chmod(ctx, params, appCtx)

	// Metadata operations
	case "filesystem.stat":
		return p.metadata.Stat(ctx, params, appCtx)
	case "filesystem.info":
		return p.metadata.Info(ctx, params, appCtx)
	case "filesystem.tag.add":
		return p.metadata.AddTag(ctx, params, appCtx)
	case "filesystem.tag.remove":
		return p.metadata.RemoveTag(ctx, params, appCtx)
	case "filesystem.mime.set":
		return p.metadata.SetMIME(ctx, params, appCtx)

	// Search operations
	case "filesystem.search.tag":
		return p.search.SearchTag(ctx, params, appCtx)
	case "filesystem.search.mime":
		return p.search.SearchMIME(ctx, params, appCtx)
	case "filesystem.search.glob":
		return p.search.SearchGlob(ctx, params, appCtx)

	// Archive operations
	case "filesystem.archive.export":
		return p.archives.Export(ctx, params, appCtx)
	case "filesystem.archive.import":
		return p.archives.Import(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
