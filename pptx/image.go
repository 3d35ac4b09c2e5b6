package pptx

import (
	"strconv"

	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// ImageProcessor handles picture nodes. Embedded payloads are resolved
// through the slide's prefetched batch; when extraction fails or is
// skipped the element degrades to the raw relationship target so callers
// can still see where the picture lived.
type ImageProcessor struct{}

// Name identifies the processor.
func (p *ImageProcessor) Name() string { return "image" }

// CanProcess claims every pic node.
func (p *ImageProcessor) CanProcess(n *xmlnode.Node) bool {
	return n.Local() == "pic"
}

// Process converts a picture node into an image element.
func (p *ImageProcessor) Process(n *xmlnode.Node, ctx *Context) ([]model.Element, error) {
	blipFill := n.Child("blipFill")
	blip := blipFill.Child("blip")

	embed := blip.Attr("embed")
	if embed == "" {
		embed = blip.Attr("link")
	}
	if embed == "" {
		// A pic without any payload reference draws nothing.
		return nil, nil
	}

	img := &model.ImageElement{Geometry: parseGeometry(n, ctx)}
	img.ID = elementID(n, ctx, "image")
	if pr := xmlnode.FindNode(n, "cNvPr"); pr != nil {
		img.AltText = pr.Attr("descr")
	}
	if sr := blipFill.Child("srcRect"); sr != nil {
		img.Crop = parseCrop(sr)
	}

	if rel, ok := ctx.Rels.Get(embed); ok && rel.External {
		img.Src = rel.Target
	} else if !ctx.Opts.SkipImages {
		res := ctx.imageResult(embed)
		if res.Err != nil {
			ctx.Warn("image", "extracting %s: %v", embed, res.Err)
		} else if res.Data != nil {
			img.Data = res.Data
			img.Src = res.Data.DataURL()
		}
	}
	if img.Src == "" {
		img.Src = ctx.Rels.Target(embed)
	}

	if ctx.ocr != nil && img.AltText == "" && img.Data != nil {
		if text, err := ctx.ocr.RecognizeImage(img.Data.Bytes); err == nil {
			img.AltText = text
		} else {
			ctx.Warn("ocr", "recognizing %s: %v", embed, err)
		}
	}
	if img.AltText == "" {
		if pr := xmlnode.FindNode(n, "cNvPr"); pr != nil {
			img.AltText = pr.Attr("name")
		}
	}

	return []model.Element{img}, nil
}

// parseCrop reads a source rectangle's insets, stored in thousandths of a
// percent, into fractions of the image. An all-zero rectangle means no
// crop.
func parseCrop(n *xmlnode.Node) *model.CropRect {
	crop := &model.CropRect{
		Left:   cropAttr(n, "l"),
		Top:    cropAttr(n, "t"),
		Right:  cropAttr(n, "r"),
		Bottom: cropAttr(n, "b"),
	}
	if crop.Left == 0 && crop.Top == 0 && crop.Right == 0 && crop.Bottom == 0 {
		return nil
	}
	return crop
}

func cropAttr(n *xmlnode.Node, name string) float64 {
	v := n.Attr(name)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f / 100000
}
