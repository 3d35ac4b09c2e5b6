package pptx

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"sync"

	"github.com/tsawler/scaena/model"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BatchResult is the outcome of one image extraction in a batch. Failures
// stay isolated here instead of aborting the batch.
type BatchResult struct {
	ID   string
	Data *model.ImageData
	Err  error
}

// OK reports whether the extraction produced usable data.
func (r BatchResult) OK() bool { return r.Err == nil && r.Data != nil }

// ExtractImageData reads the media part behind a drawing relationship id
// and wraps it with format, hash and dimension metadata.
func ExtractImageData(ctx *Context, embedID string) (*model.ImageData, error) {
	rel, ok := ctx.Rels.Get(embedID)
	if !ok {
		return nil, fmt.Errorf("no image relationship %q", embedID)
	}
	if rel.External {
		return nil, fmt.Errorf("image %q is externally linked", embedID)
	}
	target := ctx.Rels.Target(embedID)
	data, err := ctx.Container.ReadPart(target)
	if err != nil {
		return nil, fmt.Errorf("reading image %s: %w", target, err)
	}
	return DecodeImageData(data), nil
}

// DecodeImageData wraps raw image bytes with their sniffed format, content
// hash and pixel dimensions. Dimension decoding is best effort; bytes no
// registered decoder understands keep zero dimensions.
func DecodeImageData(data []byte) *model.ImageData {
	format := model.DetectImageFormat(data)
	sum := sha256.Sum256(data)
	img := &model.ImageData{
		Bytes:  data,
		Format: format,
		MIME:   format.MIME(),
		Size:   len(data),
		Hash:   hex.EncodeToString(sum[:]),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width = cfg.Width
		img.Height = cfg.Height
	}
	return img
}

// ProcessBatch extracts several images concurrently, bounded by the
// configured worker count, and returns one result per id in submission
// order.
func ProcessBatch(ctx *Context, ids []string) []BatchResult {
	results := make([]BatchResult, len(ids))
	if len(ids) == 0 {
		return results
	}

	workers := ctx.Opts.imageWorkers()
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				data, err := ExtractImageData(ctx, ids[i])
				results[i] = BatchResult{ID: ids[i], Data: data, Err: err}
			}
		}()
	}
	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// imageResult returns the extraction result for a relationship id, served
// from the slide's prefetched batch when available.
func (c *Context) imageResult(id string) BatchResult {
	if r, ok := c.images[id]; ok {
		return r
	}
	data, err := ExtractImageData(c, id)
	return BatchResult{ID: id, Data: data, Err: err}
}
