package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/tsawler/scaena/xmlnode"
)

// Content types used to classify package parts.
const (
	slideContentType = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	themeContentType = "application/vnd.openxmlformats-officedocument.theme+xml"
)

// Container provides named access to the parts of an open package. It wraps
// the zip archive together with its content-type manifest, so parts can be
// located either by exact name or by declared content type.
type Container struct {
	parts     map[string]*zip.File
	names     []string
	defaults  map[string]string // extension (lowercase, no dot) -> content type
	overrides map[string]string // part name -> content type
}

// NewContainer opens a package from a positioned reader.
func NewContainer(r io.ReaderAt, size int64) (*Container, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}

	c := &Container{
		parts:     make(map[string]*zip.File, len(zr.File)),
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, f := range zr.File {
		name := strings.TrimPrefix(path.Clean(f.Name), "/")
		c.parts[name] = f
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)

	// Manifest problems are not fatal: slide collection falls back to a
	// part-name scan when the manifest is unusable.
	c.parseManifest()

	return c, nil
}

// ContainerFromBytes opens a package held in memory.
func ContainerFromBytes(data []byte) (*Container, error) {
	return NewContainer(bytes.NewReader(data), int64(len(data)))
}

// parseManifest reads [Content_Types].xml into the default and override
// tables.
func (c *Container) parseManifest() {
	data, err := c.ReadPart("[Content_Types].xml")
	if err != nil {
		return
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		return
	}
	for _, child := range root.Children {
		switch child.Local() {
		case "Default":
			ext := strings.ToLower(child.Attr("Extension"))
			if ext != "" {
				c.defaults[ext] = child.Attr("ContentType")
			}
		case "Override":
			name := strings.TrimPrefix(child.Attr("PartName"), "/")
			if name != "" {
				c.overrides[name] = child.Attr("ContentType")
			}
		}
	}
}

// HasPart reports whether a part exists in the container.
func (c *Container) HasPart(name string) bool {
	_, ok := c.parts[strings.TrimPrefix(path.Clean(name), "/")]
	return ok
}

// ReadPart returns the raw bytes of a named part.
func (c *Container) ReadPart(name string) ([]byte, error) {
	f, ok := c.parts[strings.TrimPrefix(path.Clean(name), "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Parts returns all part names in sorted order.
func (c *Container) Parts() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// ContentType returns the declared content type of a part, consulting the
// manifest's overrides first and extension defaults second.
func (c *Container) ContentType(name string) string {
	name = strings.TrimPrefix(path.Clean(name), "/")
	if ct, ok := c.overrides[name]; ok {
		return ct
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	return c.defaults[ext]
}

// PartsByContentType returns the names of all parts the manifest declares
// with the given content type, sorted. Manifest entries whose part is not
// actually in the archive are ignored.
func (c *Container) PartsByContentType(ct string) []string {
	var out []string
	for name, t := range c.overrides {
		if t != ct {
			continue
		}
		if _, ok := c.parts[name]; !ok {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SlideParts returns the slide part names in deck order. Classification
// prefers the manifest; a part-name scan covers packages with a broken or
// missing manifest. Order is by the number embedded in the part name, not by
// archive listing order.
func (c *Container) SlideParts() []string {
	parts := c.PartsByContentType(slideContentType)
	if len(parts) == 0 {
		for _, name := range c.names {
			if strings.HasPrefix(name, "ppt/slides/slide") &&
				strings.HasSuffix(name, ".xml") &&
				!strings.Contains(name, "_rels") {
				parts = append(parts, name)
			}
		}
	}
	sort.SliceStable(parts, func(i, j int) bool {
		ni, nj := slideNumber(parts[i]), slideNumber(parts[j])
		if ni != nj {
			return ni < nj
		}
		return parts[i] < parts[j]
	})
	return parts
}

// slideNumber extracts the numeric suffix from a path like
// "ppt/slides/slide12.xml". Parts without one sort first.
func slideNumber(partName string) int {
	base := strings.TrimSuffix(path.Base(partName), ".xml")
	i := len(base)
	for i > 0 && base[i-1] >= '0' && base[i-1] <= '9' {
		i--
	}
	var num int
	fmt.Sscanf(base[i:], "%d", &num)
	return num
}

// Relationship is one entry of a part's .rels file.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Relationships is the parsed relationship part of one source part. Targets
// resolve relative to the source part's directory, with "../" segments
// normalized away.
type Relationships struct {
	baseDir string
	byID    map[string]Relationship
	order   []string
}

// Relationships loads the .rels part belonging to partName. Pass "" for the
// package-level relationships. A missing .rels part yields an empty, usable
// set; a malformed one is an error the caller scopes to its own context.
func (c *Container) Relationships(partName string) (*Relationships, error) {
	var relsPath, baseDir string
	if partName == "" {
		relsPath = "_rels/.rels"
	} else {
		baseDir = path.Dir(partName)
		relsPath = path.Join(baseDir, "_rels", path.Base(partName)+".rels")
	}

	rels := &Relationships{baseDir: baseDir, byID: make(map[string]Relationship)}
	if !c.HasPart(relsPath) {
		return rels, nil
	}

	data, err := c.ReadPart(relsPath)
	if err != nil {
		return nil, err
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relsPath, err)
	}

	for _, child := range root.Children {
		if child.Local() != "Relationship" {
			continue
		}
		rel := Relationship{
			ID:       child.Attr("Id"),
			Type:     child.Attr("Type"),
			Target:   child.Attr("Target"),
			External: strings.EqualFold(child.Attr("TargetMode"), "External"),
		}
		if rel.ID == "" {
			continue
		}
		if _, dup := rels.byID[rel.ID]; !dup {
			rels.order = append(rels.order, rel.ID)
		}
		rels.byID[rel.ID] = rel
	}
	return rels, nil
}

// Get returns the relationship with the given id.
func (r *Relationships) Get(id string) (Relationship, bool) {
	if r == nil {
		return Relationship{}, false
	}
	rel, ok := r.byID[id]
	return rel, ok
}

// Target resolves a relationship id to a part name. External targets are
// returned verbatim (they are URLs, not parts). Unknown ids resolve to "".
func (r *Relationships) Target(id string) string {
	rel, ok := r.Get(id)
	if !ok {
		return ""
	}
	if rel.External {
		return rel.Target
	}
	return resolveTarget(r.baseDir, rel.Target)
}

// FirstOfType returns the first relationship whose type ends with the given
// suffix, in declaration order.
func (r *Relationships) FirstOfType(suffix string) (Relationship, bool) {
	if r == nil {
		return Relationship{}, false
	}
	for _, id := range r.order {
		rel := r.byID[id]
		if strings.HasSuffix(rel.Type, suffix) {
			return rel, true
		}
	}
	return Relationship{}, false
}

// All returns the relationships in declaration order.
func (r *Relationships) All() []Relationship {
	if r == nil {
		return nil
	}
	out := make([]Relationship, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Len reports the number of relationships.
func (r *Relationships) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byID)
}

// resolveTarget maps a relationship target onto a container part name.
// Targets are relative to the source part's directory; "../" climbs out of
// it, and a leading "/" addresses the package root directly.
func resolveTarget(baseDir, target string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		return ""
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(baseDir, target))
}
