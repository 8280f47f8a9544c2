package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteReadRoundTrip tests that a write followed by a read returns the
// exact bytes written.
func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/note.txt", nil, false))
	require.NoError(t, s.WriteFile("/note.txt", []byte("hello world"), false))

	content, err := s.ReadFile("/note.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), content)
}

// TestWriteAppend tests that appending yields the concatenation of both
// writes and that size tracks the result.
func TestWriteAppend(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/log.txt", []byte("first"), false))
	require.NoError(t, s.WriteFile("/log.txt", []byte(" second"), true))

	content, err := s.ReadFile("/log.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("first second"), content)

	info, err := s.Stat("/log.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(len("first second")), info.Size)
}

// TestWriteReplaceShrinks tests that a non-append write discards the old
// content entirely.
func TestWriteReplaceShrinks(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/f.txt", []byte("a long initial payload"), false))
	require.NoError(t, s.WriteFile("/f.txt", []byte("x"), false))

	content, err := s.ReadFile("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), content)

	info, err := s.Stat("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Size)
}

// TestWriteDirectory tests that directories reject content writes.
func TestWriteDirectory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/dir", nil, true))
	assert.ErrorIs(t, s.WriteFile("/dir", []byte("x"), false), ErrIsADirectory)
	_, err := s.ReadFile("/dir")
	assert.ErrorIs(t, err, ErrIsADirectory)
}

// TestWriteMissing tests write and read against an absent leaf.
func TestWriteMissing(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.WriteFile("/nope.txt", []byte("x"), false), ErrNotFound)
	_, err := s.ReadFile("/nope.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestUpdateRespectsPermissions tests the checked/unchecked write asymmetry:
// once the write bit is cleared, UpdateFile fails but WriteFile still goes
// through.
func TestUpdateRespectsPermissions(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/guarded.txt", []byte("v1"), false))
	require.NoError(t, s.UpdateFile("/guarded.txt", []byte("v2"), false))

	require.NoError(t, s.ChangePermissions("/guarded.txt", Permissions{Read: true}))

	err := s.UpdateFile("/guarded.txt", []byte("v3"), false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	content, err := s.ReadFile("/guarded.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), content)

	require.NoError(t, s.WriteFile("/guarded.txt", []byte("v3"), false))
	content, err = s.ReadFile("/guarded.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), content)
}

// TestUpdateDirectory tests that the checked write reports a directory
// target as not found.
func TestUpdateDirectory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/dir", nil, true))
	assert.ErrorIs(t, s.UpdateFile("/dir", []byte("x"), false), ErrNotFound)
}

// TestReadTouchesAccessedAt tests that the access timestamp moves on the
// stored node, not on a throwaway copy.
func TestReadTouchesAccessedAt(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/f.txt", []byte("x"), false))
	before, err := s.Stat("/f.txt")
	require.NoError(t, err)

	_, err = s.ReadFile("/f.txt")
	require.NoError(t, err)

	after, err := s.Stat("/f.txt")
	require.NoError(t, err)
	assert.False(t, after.AccessedAt.Before(before.AccessedAt))
	assert.Equal(t, before.ModifiedAt, after.ModifiedAt)
}

// TestChangePermissionsMode tests the rwx string rendering after a chmod.
func TestChangePermissionsMode(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/bin.sh", []byte("#!/bin/sh\n"), false))
	require.NoError(t, s.ChangePermissions("/bin.sh", Permissions{Read: true, Write: true, Execute: true}))

	info, err := s.Stat("/bin.sh")
	require.NoError(t, err)
	assert.Equal(t, "rwx", info.Mode)
	assert.True(t, info.Permissions.Execute)
}

// TestTags tests add/remove idempotence.
func TestTags(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/f.txt", []byte("x"), false))
	require.NoError(t, s.AddTag("/f.txt", "important"))
	require.NoError(t, s.AddTag("/f.txt", "important"))
	require.NoError(t, s.AddTag("/f.txt", "draft"))

	info, err := s.Stat("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"important", "draft"}, info.Tags)

	require.NoError(t, s.RemoveTag("/f.txt", "draft"))
	require.NoError(t, s.RemoveTag("/f.txt", "absent"))

	info, err = s.Stat("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"important"}, info.Tags)
}

// TestSetMIMEType tests the manual classifier override.
func TestSetMIMEType(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/data.bin", []byte{0x00, 0x01}, false))
	require.NoError(t, s.SetMIMEType("/data.bin", "application/octet-stream"))

	info, err := s.Stat("/data.bin")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", info.MIMEType)
}

// TestMIMEDetection tests content sniffing when enabled and the text/plain
// default when disabled.
func TestMIMEDetection(t *testing.T) {
	detecting := NewWithConfig(Config{DetectMIME: true})
	require.NoError(t, detecting.Create("/page.html", []byte("<!DOCTYPE html><html></html>"), false))
	info, err := detecting.Stat("/page.html")
	require.NoError(t, err)
	assert.Contains(t, info.MIMEType, "text/html")

	plain := newTestStore(t)
	require.NoError(t, plain.Create("/page.html", []byte("<!DOCTYPE html><html></html>"), false))
	info, err = plain.Stat("/page.html")
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMIME, info.MIMEType)
}

// TestDefaultMetadata tests the defaults stamped on fresh nodes.
func TestDefaultMetadata(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("/f.txt", []byte("x"), false))
	info, err := s.Stat("/f.txt")
	require.NoError(t, err)

	assert.Equal(t, "root", info.Owner)
	assert.Equal(t, "root", info.Group)
	assert.Equal(t, "rw-", info.Mode)
	assert.False(t, info.ReadOnly)
	assert.False(t, info.Hidden)
	assert.NotEmpty(t, info.ID)

	require.NoError(t, s.Create("/dir", nil, true))
	dirInfo, err := s.Stat("/dir")
	require.NoError(t, err)
	assert.Equal(t, DirectoryMIME, dirInfo.MIMEType)
	assert.NotEqual(t, info.ID, dirInfo.ID)
}
