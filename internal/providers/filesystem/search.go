package filesystem

import (
	"context"
	"fmt"

	"github.com/mirofs/mirofs/internal/shared/types"
)

// SearchOps handles tree-wide file search
type SearchOps struct {
	*FilesystemOps
}

// GetTools returns search tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.search.tag",
			Name:        "Search by Tag",
			Description: "Find files carrying a tag",
			Parameters: []types.Parameter{
				{Name: "tag", Type: "string", Description: "Tag to match", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.search.mime",
			Name:        "Search by MIME Type",
			Description: "Find files with an exact MIME type",
			Parameters: []types.Parameter{
				{Name: "mime", Type: "string", Description: "MIME type to match", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.search.glob",
			Name:        "Search by Glob",
			Description: "Find files whose path matches a glob pattern (** supported)",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Glob pattern", Required: true},
			},
			Returns: "array",
		},
	}
}

// SearchTag finds files carrying a tag
func (s *SearchOps) SearchTag(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	tag, ok := params["tag"].(string)
	if !ok || tag == "" {
		return Failure("tag parameter required")
	}

	results := s.Store.SearchByTag(tag)
	return Success(map[string]interface{}{
		"tag":     tag,
		"results": results,
		"count":   len(results),
	})
}

// SearchMIME finds files with an exact MIME type
func (s *SearchOps) SearchMIME(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	mime, ok := params["mime"].(string)
	if !ok || mime == "" {
		return Failure("mime parameter required")
	}

	results := s.Store.SearchByMIME(mime)
	return Success(map[string]interface{}{
		"mime":    mime,
		"results": results,
		"count":   len(results),
	})
}

// SearchGlob finds files whose path matches a glob pattern
func (s *SearchOps) SearchGlob(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	results, err := s.Store.SearchByGlob(pattern)
	if err != nil {
		return Failure(fmt.Sprintf("glob search failed: %v", err))
	}

	return Success(map[string]interface{}{
		"pattern": pattern,
		"results": results,
		"count":   len(results),
	})
}
