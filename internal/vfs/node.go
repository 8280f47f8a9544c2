package vfs

// node is either a *file or a *directory. The variant set is closed; the
// store owns every node reachable from its root.
type node interface {
	name() string
	meta() *Metadata
	isDir() bool
	clone() node
	rename(string)
}

type file struct {
	nodeName string
	content  []byte
	metadata *Metadata
}

func (f *file) name() string    { return f.nodeName }
func (f *file) meta() *Metadata { return f.metadata }
func (f *file) isDir() bool     { return false }
func (f *file) rename(n string) { f.nodeName = n }

func (f *file) clone() node {
	return &file{
		nodeName: f.nodeName,
		content:  append([]byte(nil), f.content...),
		metadata: f.metadata.clone(),
	}
}

type directory struct {
	nodeName string
	children map[string]node
	metadata *Metadata
}

func newDirectory(name string, meta *Metadata) *directory {
	return &directory{
		nodeName: name,
		children: make(map[string]node),
		metadata: meta,
	}
}

func (d *directory) name() string    { return d.nodeName }
func (d *directory) meta() *Metadata { return d.metadata }
func (d *directory) isDir() bool     { return true }
func (d *directory) rename(n string) { d.nodeName = n }

func (d *directory) clone() node {
	out := newDirectory(d.nodeName, d.metadata.clone())
	for name, child := range d.children {
		out.children[name] = child.clone()
	}
	return out
}
