package pptx

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewContainerNotZip(t *testing.T) {
	_, err := ContainerFromBytes([]byte("this is not a zip archive"))
	if !errors.Is(err, ErrInvalidContainer) {
		t.Errorf("Expected ErrInvalidContainer, got %v", err)
	}
}

func TestReadPart(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/presentation.xml": "<p/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	got, err := c.ReadPart("ppt/presentation.xml")
	if err != nil {
		t.Fatalf("ReadPart failed: %v", err)
	}
	if string(got) != "<p/>" {
		t.Errorf("ReadPart = %q, want %q", got, "<p/>")
	}

	// Leading slashes normalize to the same part.
	if _, err := c.ReadPart("/ppt/presentation.xml"); err != nil {
		t.Errorf("ReadPart with leading slash failed: %v", err)
	}

	_, err = c.ReadPart("ppt/nope.xml")
	if !errors.Is(err, ErrMissingPart) {
		t.Errorf("Expected ErrMissingPart, got %v", err)
	}

	if !c.HasPart("ppt/presentation.xml") {
		t.Error("HasPart returned false for existing part")
	}
	if c.HasPart("ppt/nope.xml") {
		t.Error("HasPart returned true for missing part")
	}
}

func TestContentType(t *testing.T) {
	data := buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="png" ContentType="image/png"/>
  <Default Extension="XML" ContentType="application/xml"/>
  <Override PartName="/ppt/special.png" ContentType="image/x-special"/>
</Types>`,
		"ppt/special.png": "a",
		"ppt/plain.png":   "b",
		"ppt/thing.xml":   "<x/>",
		"ppt/other.bin":   "c",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	tests := []struct {
		name string
		want string
	}{
		{"ppt/special.png", "image/x-special"},
		{"ppt/plain.png", "image/png"},
		{"/ppt/plain.png", "image/png"},
		{"ppt/thing.xml", "application/xml"},
		{"ppt/other.bin", ""},
	}
	for _, tt := range tests {
		if got := c.ContentType(tt.name); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPartsByContentTypeIgnoresGhosts(t *testing.T) {
	data := buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/ppt/slides/slide1.xml" ContentType="` + slideContentType + `"/>
  <Override PartName="/ppt/slides/slide2.xml" ContentType="` + slideContentType + `"/>
</Types>`,
		"ppt/slides/slide1.xml": "<p/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	got := c.PartsByContentType(slideContentType)
	want := []string{"ppt/slides/slide1.xml"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PartsByContentType = %v, want %v", got, want)
	}
}

func TestSlidePartsOrder(t *testing.T) {
	// slide10 sorts after slide2 numerically even though it sorts before it
	// lexicographically.
	overrides := `<?xml version="1.0"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/ppt/slides/slide10.xml" ContentType="` + slideContentType + `"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="` + slideContentType + `"/>
  <Override PartName="/ppt/slides/slide2.xml" ContentType="` + slideContentType + `"/>
</Types>`

	data := buildZip(t, map[string]string{
		"[Content_Types].xml":              overrides,
		"ppt/slides/slide10.xml":           "<p/>",
		"ppt/slides/slide1.xml":            "<p/>",
		"ppt/slides/slide2.xml":            "<p/>",
		"ppt/slides/_rels/slide1.xml.rels": "<Relationships/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	want := []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/slide10.xml",
	}
	if got := c.SlideParts(); !reflect.DeepEqual(got, want) {
		t.Errorf("SlideParts = %v, want %v", got, want)
	}
}

func TestSlidePartsFallbackScan(t *testing.T) {
	// No manifest at all: slides are found by name, rels parts excluded.
	data := buildZip(t, map[string]string{
		"ppt/slides/slide2.xml":            "<p/>",
		"ppt/slides/slide1.xml":            "<p/>",
		"ppt/slides/_rels/slide1.xml.rels": "<Relationships/>",
		"ppt/notesSlides/notesSlide1.xml":  "<p/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	want := []string{"ppt/slides/slide1.xml", "ppt/slides/slide2.xml"}
	if got := c.SlideParts(); !reflect.DeepEqual(got, want) {
		t.Errorf("SlideParts = %v, want %v", got, want)
	}
}

func TestRelationships(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": "<p/>",
		"ppt/slides/_rels/slide1.xml.rels": `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/page" TargetMode="External"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="/ppt/slideLayouts/slideLayout1.xml"/>
</Relationships>`,
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	rels, err := c.Relationships("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Relationships failed: %v", err)
	}
	if rels.Len() != 3 {
		t.Fatalf("Len = %d, want 3", rels.Len())
	}

	targets := []struct {
		id   string
		want string
	}{
		{"rId1", "ppt/media/image1.png"},
		{"rId2", "https://example.com/page"},
		{"rId3", "ppt/slideLayouts/slideLayout1.xml"},
		{"rId9", ""},
	}
	for _, tt := range targets {
		if got := rels.Target(tt.id); got != tt.want {
			t.Errorf("Target(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}

	rel, ok := rels.Get("rId2")
	if !ok {
		t.Fatal("Get(rId2) not found")
	}
	if !rel.External {
		t.Error("rId2 should be external")
	}

	img, ok := rels.FirstOfType("/image")
	if !ok || img.ID != "rId1" {
		t.Errorf("FirstOfType(/image) = %+v, %v; want rId1", img, ok)
	}
	if _, ok := rels.FirstOfType("/chart"); ok {
		t.Error("FirstOfType(/chart) should not match")
	}

	all := rels.All()
	if len(all) != 3 || all[0].ID != "rId1" || all[2].ID != "rId3" {
		t.Errorf("All() out of order: %+v", all)
	}
}

func TestRelationshipsMissingPart(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml": "<p/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	rels, err := c.Relationships("ppt/slides/slide1.xml")
	if err != nil {
		t.Fatalf("Relationships on missing part should not fail: %v", err)
	}
	if rels.Len() != 0 {
		t.Errorf("Len = %d, want 0", rels.Len())
	}
	if got := rels.Target("rId1"); got != "" {
		t.Errorf("Target on empty set = %q, want empty", got)
	}
}

func TestRelationshipsMalformed(t *testing.T) {
	data := buildZip(t, map[string]string{
		"ppt/slides/slide1.xml":            "<p/>",
		"ppt/slides/_rels/slide1.xml.rels": "<Relationships><Relationship",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	if _, err := c.Relationships("ppt/slides/slide1.xml"); err == nil {
		t.Error("Expected error for malformed rels part")
	}
}

func TestPackageRelationships(t *testing.T) {
	data := buildZip(t, map[string]string{
		"_rels/.rels":          testRootRels,
		"ppt/presentation.xml": "<p/>",
	})
	c, err := ContainerFromBytes(data)
	if err != nil {
		t.Fatalf("ContainerFromBytes failed: %v", err)
	}

	rels, err := c.Relationships("")
	if err != nil {
		t.Fatalf("Relationships failed: %v", err)
	}
	doc, ok := rels.FirstOfType("/officeDocument")
	if !ok {
		t.Fatal("officeDocument relationship not found")
	}
	if got := rels.Target(doc.ID); got != "ppt/presentation.xml" {
		t.Errorf("Target = %q, want ppt/presentation.xml", got)
	}
}
