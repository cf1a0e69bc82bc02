package placeable

import (
	"gridwright/internal/pose"
)

// ResolveExtent derives the axis-aligned extent of a template at identity
// rotation. Policy, in priority order:
//
//  1. a single rigid part: its declared size;
//  2. a composite with a designated anchor part: the anchor's size;
//  3. otherwise: the aggregate bounds over every part (offset +/- half size);
//  4. when nothing above yields a size, the default 4x4x4 extent.
//
// Pure and side-effect free; safe to call every frame.
func ResolveExtent(t *Template) pose.Extent {
	if t == nil {
		return pose.DefaultExtent()
	}
	if len(t.Parts) == 1 {
		if e, ok := partExtent(t.Parts[0]); ok {
			return e
		}
		return pose.DefaultExtent()
	}
	if t.Anchor != "" {
		for _, p := range t.Parts {
			if p.Name == t.Anchor {
				if e, ok := partExtent(p); ok {
					return e
				}
				break
			}
		}
	}
	if e, ok := aggregateExtent(t.Parts); ok {
		return e
	}
	return pose.DefaultExtent()
}

// partExtent returns a part's declared size, rejecting non-positive axes.
func partExtent(p PartDef) (pose.Extent, bool) {
	if p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0 {
		return pose.Extent{}, false
	}
	return pose.Extent{Width: p.Size[0], Height: p.Size[1], Depth: p.Size[2]}, true
}

// aggregateExtent is the union of all sized parts' boxes around the template
// origin.
func aggregateExtent(parts []PartDef) (pose.Extent, bool) {
	var lo, hi [3]float32
	found := false
	for _, p := range parts {
		if p.Size[0] <= 0 || p.Size[1] <= 0 || p.Size[2] <= 0 {
			continue
		}
		for i := 0; i < 3; i++ {
			half := p.Size[i] * 0.5
			if !found {
				lo[i] = p.Offset[i] - half
				hi[i] = p.Offset[i] + half
				continue
			}
			lo[i] = min(lo[i], p.Offset[i]-half)
			hi[i] = max(hi[i], p.Offset[i]+half)
		}
		found = true
	}
	if !found {
		return pose.Extent{}, false
	}
	return pose.Extent{Width: hi[0] - lo[0], Height: hi[1] - lo[1], Depth: hi[2] - lo[2]}, true
}
