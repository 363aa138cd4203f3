package svg

import "strconv"

// resourceKind selects one of the per-kind id counters.
type resourceKind int

const (
	kindGradient resourceKind = iota
	kindClip
	kindPath
	kindImage
	kindPattern
	kindColorFilter
	kindCount
)

var resourcePrefixes = [kindCount]string{
	kindGradient:    "gradient",
	kindClip:        "clip",
	kindPath:        "path",
	kindImage:       "img",
	kindPattern:     "pattern",
	kindColorFilter: "cfilter",
}

// identRegistry hands out document-unique element ids. Each kind counts
// independently from zero, so the first gradient is gradient_0 no matter
// how many clips came before it. Ids are never reused or deduplicated.
type identRegistry struct {
	counts [kindCount]int
}

func (r *identRegistry) next(kind resourceKind) string {
	id := resourcePrefixes[kind] + "_" + strconv.Itoa(r.counts[kind])
	r.counts[kind]++
	return id
}

// resources holds the reference strings resolved for a single draw. Each
// field is either a url(#id) reference to a definition emitted just
// before the element, or for paintServer a literal color value.
type resources struct {
	paintServer string
	clip        string
	colorFilter string
}

// resolveResources emits the definitions a paint needs and returns the
// references pointing at them. Clip and shader definitions share one
// defs block; the color filter definition follows it as a sibling.
func (d *Device) resolveResources(ctx drawCtx, paint *Paint) resources {
	res := resources{paintServer: svgColor(paint.Color)}

	if paint.Shader != nil || !ctx.clip.IsWideOpen() {
		defs := d.openElement("defs")
		if !ctx.clip.IsWideOpen() {
			d.addClipResources(&res, ctx)
		}
		if paint.Shader != nil {
			d.addShaderResources(&res, paint.Shader)
		}
		defs.Close()
	}

	if paint.ColorFilter != nil {
		d.addColorFilterResources(&res, paint.ColorFilter)
	}
	return res
}

// addClipResources reduces the active clip stack to a single clipPath
// definition holding either a rect or a path child.
func (d *Device) addClipResources(res *resources, ctx drawCtx) {
	reduced, rule := ctx.clip.Reduce()
	ruleName := "nonzero"
	if rule == FillRuleEvenOdd {
		ruleName = "evenodd"
	}

	id := d.ids.next(kindClip)
	clip := d.openElement("clipPath")
	clip.attr("id", id)

	if r, ok := reduced.IsRect(); ok || reduced.IsEmpty() {
		rect := d.openElement("rect")
		rect.rectAttributes(r)
		rect.attr("clip-rule", ruleName)
		rect.Close()
	} else {
		path := d.openElement("path")
		path.pathAttributes(reduced)
		path.attr("clip-rule", ruleName)
		path.Close()
	}
	clip.Close()

	res.clip = "url(#" + id + ")"
}

func (d *Device) addShaderResources(res *resources, shader Shader) {
	switch s := shader.(type) {
	case *LinearGradient:
		d.addGradientResources(res, s)
	case *ImageShader:
		d.addImageShaderResources(res, s)
	}
}

// addGradientResources emits a linearGradient definition in user space.
// Gradients with fewer than two stops carry no color transition and are
// skipped, leaving the flat paint color in place.
func (d *Device) addGradientResources(res *resources, g *LinearGradient) {
	if len(g.Stops) < 2 {
		Logger().Debug("gradient skipped", "stops", len(g.Stops))
		return
	}

	id := d.ids.next(kindGradient)
	grad := d.openElement("linearGradient")
	grad.attr("id", id)
	grad.attr("gradientUnits", "userSpaceOnUse")
	if !g.Local.IsIdentity() {
		grad.attr("gradientTransform", transformString(g.Local))
	}
	grad.attrScalar("x1", g.Start.X)
	grad.attrScalar("y1", g.Start.Y)
	grad.attrScalar("x2", g.End.X)
	grad.attrScalar("y2", g.End.Y)

	for _, stop := range g.Stops {
		s := d.openElement("stop")
		s.attrScalar("offset", stop.Offset)
		s.attr("stop-color", svgColor(stop.Color))
		if !stop.Color.IsOpaque() {
			s.attr("stop-opacity", svgOpacity(stop.Color))
		}
		s.Close()
	}
	grad.Close()

	res.paintServer = "url(#" + id + ")"
}

// addImageShaderResources emits a pattern definition wrapping the shader
// image as a data URI. A repeating axis sizes the pattern tile to the
// image's pixel extent; a non-repeating axis stretches it to 100% so a
// single copy covers the viewport.
func (d *Device) addImageShaderResources(res *resources, s *ImageShader) {
	uri, err := s.Image.DataURI()
	if err != nil {
		Logger().Warn("image shader skipped", "error", err)
		return
	}

	width := strconv.Itoa(s.Image.Width())
	height := strconv.Itoa(s.Image.Height())

	patternWidth := "100%"
	if s.TileX == TileRepeat {
		patternWidth = width
	}
	patternHeight := "100%"
	if s.TileY == TileRepeat {
		patternHeight = height
	}

	id := d.ids.next(kindPattern)
	pattern := d.openElement("pattern")
	pattern.attr("id", id)
	pattern.attr("patternUnits", "userSpaceOnUse")
	pattern.attr("patternContentUnits", "userSpaceOnUse")
	pattern.attr("width", patternWidth)
	pattern.attr("height", patternHeight)
	pattern.attr("x", "0")
	pattern.attr("y", "0")

	img := d.openElement("image")
	img.attr("id", d.ids.next(kindImage))
	img.attr("x", "0")
	img.attr("y", "0")
	img.attr("width", width)
	img.attr("height", height)
	img.attr("xlink:href", uri)
	img.Close()

	pattern.Close()

	res.paintServer = "url(#" + id + ")"
}

// addColorFilterResources emits a filter definition for the constant
// color, source-in blend form. Other blend modes have no markup
// equivalent here and resolve to no filter.
func (d *Device) addColorFilterResources(res *resources, cf *BlendColorFilter) {
	if cf.Mode != BlendSourceIn {
		return
	}

	id := d.ids.next(kindColorFilter)
	filter := d.openElement("filter")
	filter.attr("id", id)
	filter.attr("x", "0%")
	filter.attr("y", "0%")
	filter.attr("width", "100%")
	filter.attr("height", "100%")

	flood := d.openElement("feFlood")
	flood.attr("flood-color", svgColor(cf.Color))
	flood.attr("flood-opacity", svgOpacity(cf.Color))
	flood.attr("result", "flood")
	flood.Close()

	comp := d.openElement("feComposite")
	comp.attr("in", "flood")
	comp.attr("operator", "in")
	comp.Close()

	filter.Close()

	res.colorFilter = "url(#" + id + ")"
}

// requiresViewportReset reports whether the paint carries a repeating
// image shader. Patterns sized in pixels repeat relative to the nearest
// viewport, so such draws nest inside a fresh svg element matching the
// shape bounds.
func requiresViewportReset(paint *Paint) bool {
	s, ok := paint.Shader.(*ImageShader)
	return ok && s.repeats()
}
