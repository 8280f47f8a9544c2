package filesystem

import (
	"github.com/mirofs/mirofs/internal/shared/types"
	"github.com/mirofs/mirofs/internal/vfs"
)

// FilesystemOps provides common operation helpers over the tree store
type FilesystemOps struct {
	Store *vfs.Store
}

// PathParam extracts the required path parameter
func (ops *FilesystemOps) PathParam(params map[string]interface{}) (string, bool) {
	path, ok := params["path"].(string)
	return path, ok && path != ""
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure helper
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
