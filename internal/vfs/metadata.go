package vfs

import (
	"time"

	"github.com/google/uuid"
)

// Permissions is the read/write/execute triple attached to every node.
type Permissions struct {
	Read    bool `json:"read"`
	Write   bool `json:"write"`
	Execute bool `json:"execute"`
}

// String renders the triple in ls style, e.g. "rw-".
func (p Permissions) String() string {
	b := [3]byte{'-', '-', '-'}
	if p.Read {
		b[0] = 'r'
	}
	if p.Write {
		b[1] = 'w'
	}
	if p.Execute {
		b[2] = 'x'
	}
	return string(b[:])
}

// Metadata is the record attached to every node. Timestamps, size and
// permissions are maintained by the store; owner, group, flags and tags are
// free-form caller data.
type Metadata struct {
	ID          string      `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	ModifiedAt  time.Time   `json:"modified_at"`
	AccessedAt  time.Time   `json:"accessed_at"`
	Size        int64       `json:"size"`
	Permissions Permissions `json:"permissions"`
	Owner       string      `json:"owner"`
	Group       string      `json:"group"`
	ReadOnly    bool        `json:"is_read_only"`
	Hidden      bool        `json:"is_hidden"`
	MIMEType    string      `json:"mime_type"`
	Tags        []string    `json:"tags"`
}

func newMetadata(now time.Time, owner, group, mime string) *Metadata {
	return &Metadata{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		ModifiedAt:  now,
		AccessedAt:  now,
		Permissions: Permissions{Read: true, Write: true},
		Owner:       owner,
		Group:       group,
		MIMEType:    mime,
		Tags:        nil,
	}
}

func (m *Metadata) touchModified(now time.Time) {
	m.ModifiedAt = now
}

func (m *Metadata) touchAccessed(now time.Time) {
	m.AccessedAt = now
}

func (m *Metadata) hasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone deep-copies the record. The copy gets a fresh ID: it describes a new
// node, not an alias of the old one.
func (m *Metadata) clone() *Metadata {
	out := *m
	out.ID = uuid.NewString()
	out.Tags = append([]string(nil), m.Tags...)
	return &out
}
