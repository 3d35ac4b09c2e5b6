package pptx

import (
	"fmt"
	"path"
	"strings"

	"github.com/tsawler/scaena/colors"
	"github.com/tsawler/scaena/emu"
	"github.com/tsawler/scaena/geometry"
	"github.com/tsawler/scaena/model"
	"github.com/tsawler/scaena/xmlnode"
)

// parseSlide reads one slide part into the document model. Errors here are
// scoped to the slide; the caller records them and keeps going with the
// rest of the deck.
func (p *Parser) parseSlide(ctx *Context, partName string) (*model.Slide, error) {
	data, err := ctx.Container.ReadPart(partName)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", partName, err)
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", partName, err)
	}

	slide := &model.Slide{ID: ctx.SlideID, Number: ctx.SlideNum}

	if !ctx.Opts.SkipImages {
		if ids := collectImageIDs(root); len(ids) > 0 {
			ctx.Diag("prefetching %d image(s)", len(ids))
			ctx.images = make(map[string]BatchResult, len(ids))
			for _, r := range ProcessBatch(ctx, ids) {
				ctx.images[r.ID] = r
			}
		}
	}

	if cSld := root.Child("cSld"); cSld != nil {
		slide.Background = parseBackground(cSld.Child("bg"), ctx)
		if tree := cSld.Child("spTree"); tree != nil {
			slide.Elements = p.walkTree(tree, ctx)
		}
	}

	if !ctx.Opts.SkipNotes {
		slide.Notes = parseNotes(ctx)
	}
	return slide, nil
}

// slideID names a slide after its part: ppt/slides/slide3.xml -> slide3.
func slideID(partName string) string {
	base := path.Base(partName)
	return strings.TrimSuffix(base, path.Ext(base))
}

// collectImageIDs gathers the distinct embedded image relationship ids
// referenced anywhere in the slide, in document order, for batch
// prefetching.
func collectImageIDs(root *xmlnode.Node) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, blip := range xmlnode.FindNodes(root, "blip") {
		id := blip.Attr("embed")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// walkTree converts a shape tree's children into elements in document
// order. Groups are walked in place so their children land exactly where
// the group sat in the order.
func (p *Parser) walkTree(tree *xmlnode.Node, ctx *Context) []model.Element {
	var out []model.Element
	for _, child := range tree.Children {
		switch child.Local() {
		case "grpSp":
			out = append(out, p.walkGroup(child, ctx)...)
		case "nvGrpSpPr", "grpSpPr":
			// group bookkeeping, not content
		default:
			out = append(out, p.dispatch(child, ctx)...)
		}
	}
	return out
}

// walkGroup composes the group's transform onto the accumulated one and
// flattens the children into the parent's element list.
func (p *Parser) walkGroup(grp *xmlnode.Node, ctx *Context) []model.Element {
	t := groupTransform(grp)
	return p.walkTree(grp, ctx.withTransform(ctx.Transform.Compose(t)))
}

// dispatch hands a node to the first processor that claims it. Nodes no
// processor wants (graphic frames, ole objects) are skipped quietly; a
// processor failure costs only this node.
func (p *Parser) dispatch(n *xmlnode.Node, ctx *Context) []model.Element {
	for _, proc := range p.procs {
		if !proc.CanProcess(n) {
			continue
		}
		els, err := proc.Process(n, ctx)
		if err != nil {
			ctx.Warn(proc.Name(), "processing <%s>: %v", n.Name, err)
			return nil
		}
		ctx.Diag("%s produced %d element(s) from <%s>", proc.Name(), len(els), n.Name)
		return els
	}
	ctx.Diag("no processor for <%s>", n.Name)
	return nil
}

// groupTransform reads a group's xfrm into a transform mapping child
// coordinates into the parent space.
func groupTransform(grp *xmlnode.Node) geometry.GroupTransform {
	xfrm := xmlnode.FindPath(grp, "grpSpPr", "xfrm")
	if xfrm == nil {
		return geometry.Identity()
	}
	var offX, offY, extX, extY, chOffX, chOffY, chExtX, chExtY float64
	if off := xfrm.Child("off"); off != nil {
		offX = emu.AttrToPoints(off.Attr("x"))
		offY = emu.AttrToPoints(off.Attr("y"))
	}
	if ext := xfrm.Child("ext"); ext != nil {
		extX = emu.AttrToPoints(ext.Attr("cx"))
		extY = emu.AttrToPoints(ext.Attr("cy"))
	}
	if chOff := xfrm.Child("chOff"); chOff != nil {
		chOffX = emu.AttrToPoints(chOff.Attr("x"))
		chOffY = emu.AttrToPoints(chOff.Attr("y"))
	}
	if chExt := xfrm.Child("chExt"); chExt != nil {
		chExtX = emu.AttrToPoints(chExt.Attr("cx"))
		chExtY = emu.AttrToPoints(chExt.Attr("cy"))
	}
	t := geometry.NewGroupTransform(offX, offY, extX, extY, chOffX, chOffY, chExtX, chExtY)
	t.Rotation = rotAttr(xfrm)
	t.FlipH = boolAttr(xfrm, "flipH")
	t.FlipV = boolAttr(xfrm, "flipV")
	return t
}

// parseBackground reads the slide's bg node. Solid and gradient fills
// resolve through the theme; picture fills carry a data URL when the
// payload extracts and fall back to the raw relationship target when it
// does not.
func parseBackground(bg *xmlnode.Node, ctx *Context) *model.Background {
	if bg == nil {
		return nil
	}
	if pr := bg.Child("bgPr"); pr != nil {
		if sf := pr.Child("solidFill"); sf != nil {
			if c := colors.Resolve(sf, ctx.Theme); c != "" {
				return &model.Background{Type: model.BackgroundSolid, Color: c}
			}
			return nil
		}
		if gf := pr.Child("gradFill"); gf != nil {
			if g := colors.Gradient(gf, ctx.Theme); g != nil {
				return &model.Background{Type: model.BackgroundGradient, Gradient: g}
			}
			return nil
		}
		if bf := pr.Child("blipFill"); bf != nil {
			return imageBackground(bf, ctx)
		}
		return nil
	}
	if ref := styleRef(bg, "bgRef"); ref != nil {
		if c := colors.Resolve(ref, ctx.Theme); c != "" {
			return &model.Background{Type: model.BackgroundSolid, Color: c}
		}
	}
	return nil
}

func imageBackground(bf *xmlnode.Node, ctx *Context) *model.Background {
	blip := bf.Child("blip")
	embed := blip.Attr("embed")
	if embed == "" {
		embed = blip.Attr("link")
	}
	if embed == "" {
		return nil
	}

	out := &model.Background{Type: model.BackgroundImage}
	if rel, ok := ctx.Rels.Get(embed); ok && rel.External {
		out.Image = rel.Target
		return out
	}
	if !ctx.Opts.SkipImages {
		res := ctx.imageResult(embed)
		if res.OK() {
			out.Image = res.Data.DataURL()
			return out
		}
		if res.Err != nil {
			ctx.Warn("background", "extracting %s: %v", embed, res.Err)
		}
	}
	out.Image = ctx.Rels.Target(embed)
	if out.Image == "" {
		return nil
	}
	return out
}

// parseNotes pulls the plain text of the slide's notes page, skipping the
// slide-image and slide-number placeholders those pages carry.
func parseNotes(ctx *Context) string {
	rel, ok := ctx.Rels.FirstOfType("/notesSlide")
	if !ok {
		return ""
	}
	target := ctx.Rels.Target(rel.ID)
	if target == "" {
		return ""
	}
	data, err := ctx.Container.ReadPart(target)
	if err != nil {
		ctx.Warn("notes", "reading %s: %v", target, err)
		return ""
	}
	root, err := xmlnode.Parse(data)
	if err != nil {
		ctx.Warn("notes", "parsing %s: %v", target, err)
		return ""
	}

	var parts []string
	for _, sp := range xmlnode.FindNodes(root, "sp") {
		switch placeholderType(sp) {
		case "sldImg", "sldNum":
			continue
		}
		if txt := textOf(sp.Child("txBody")); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, "\n")
}
