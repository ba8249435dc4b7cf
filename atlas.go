package blitz

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Region is a named source rectangle on an atlas page.
type Region struct {
	Texture Texture
	Rect    Rect
}

// Atlas maps names to source rectangles on one or more page textures. Pass
// a region's Texture and &Rect to the SpriteBatch draw calls.
type Atlas struct {
	Pages []Texture

	regions []Region
	names   map[string]int
}

// Len returns the number of regions.
func (a *Atlas) Len() int { return len(a.regions) }

// At returns region i. Grid atlases are in row-major order; JSON atlases are
// sorted by name.
func (a *Atlas) At(i int) Region { return a.regions[i] }

// Region returns the named region.
func (a *Atlas) Region(name string) (Region, bool) {
	i, ok := a.names[name]
	if !ok {
		return Region{}, false
	}
	return a.regions[i], true
}

// Names returns the region names in index order.
func (a *Atlas) Names() []string {
	out := make([]string, len(a.regions))
	for name, i := range a.names {
		out[i] = name
	}
	return out
}

// NewGridAtlas splits tex into rows x cols equal cells named "r,c".
func NewGridAtlas(tex Texture, rows, cols int) *Atlas {
	if tex == nil {
		panic("blitz: NewGridAtlas with nil texture")
	}
	if rows <= 0 || cols <= 0 {
		panic("blitz: NewGridAtlas with non-positive rows or columns")
	}
	cw, ch := float32(tex.Width()/cols), float32(tex.Height()/rows)
	a := &Atlas{Pages: []Texture{tex}, names: make(map[string]int, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a.names[fmt.Sprintf("%d,%d", r, c)] = len(a.regions)
			a.regions = append(a.regions, Region{tex, Rect{float32(c) * cw, float32(r) * ch, cw, ch}})
		}
	}
	return a
}

// LoadAtlas parses TexturePacker JSON data for the given page textures.
// Supports both the hash format (single "frames" object) and the array
// format ("textures" array with per-page frame lists). Rotated frames are
// rejected since quads cannot express them.
func LoadAtlas(jsonData []byte, pages []Texture) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("blitz: parse atlas JSON: %w", err)
	}

	var byPage []map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("blitz: parse atlas textures array: %w", err)
		}
		for _, t := range textures {
			byPage = append(byPage, t.Frames)
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("blitz: parse atlas frames: %w", err)
		}
		byPage = append(byPage, frames)
	default:
		return nil, fmt.Errorf("blitz: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	if len(byPage) > len(pages) {
		return nil, fmt.Errorf("blitz: atlas has %d pages, got %d textures", len(byPage), len(pages))
	}

	type named struct {
		name string
		r    Region
	}
	var all []named
	for page, frames := range byPage {
		if pages[page] == nil {
			return nil, fmt.Errorf("blitz: atlas page %d has no texture", page)
		}
		for name, f := range frames {
			if f.Rotated {
				return nil, fmt.Errorf("blitz: atlas frame %q is rotated", name)
			}
			all = append(all, named{name, Region{
				Texture: pages[page],
				Rect:    Rect{float32(f.Frame.X), float32(f.Frame.Y), float32(f.Frame.W), float32(f.Frame.H)},
			}})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })

	a := &Atlas{Pages: pages, names: make(map[string]int, len(all))}
	for _, n := range all {
		if _, dup := a.names[n.name]; dup {
			return nil, fmt.Errorf("blitz: atlas frame %q defined twice", n.name)
		}
		a.names[n.name] = len(a.regions)
		a.regions = append(a.regions, n.r)
	}
	return a, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}
