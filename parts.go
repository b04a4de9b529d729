package decor

import "log/slog"

// A Region is one of the four decoration strips composited around the
// window body.
type Region int

const (
	RegionHeader Region = iota
	RegionLeft
	RegionRight
	RegionBottom
)

var regions = [...]Region{RegionHeader, RegionLeft, RegionRight, RegionBottom}

func (r Region) String() string {
	switch r {
	case RegionHeader:
		return "header"
	case RegionLeft:
		return "left"
	case RegionRight:
		return "right"
	case RegionBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// location is the coarse location of a pointer entering the region.
// Motion refines it.
func (r Region) location() Location {
	switch r {
	case RegionLeft:
		return LocationLeft
	case RegionRight:
		return LocationRight
	case RegionBottom:
		return LocationBottom
	default:
		return LocationHead
	}
}

type part struct {
	sub Subsurface
}

func (p *part) scale() int {
	if p == nil {
		return 1
	}
	if s := p.sub.Scale(); s > 0 {
		return s
	}
	return 1
}

func (p *part) hide() {
	if p == nil {
		return
	}
	p.sub.Attach(nil)
	p.sub.Commit()
}

// parts tracks the per-region surfaces while the decorations exist.
// Regions whose surface could not be created stay nil and are skipped
// by rendering.
type parts struct {
	all [len(regions)]*part
}

func (ps *parts) get(r Region) *part { return ps.all[r] }

func (ps *parts) create(provider SurfaceProvider, log *slog.Logger) {
	for _, r := range regions {
		if ps.all[r] != nil {
			continue
		}

		sub, err := provider.NewSubsurface()
		if err != nil {
			log.Error("create decoration surface", "region", r, "err", err)
			continue
		}
		ps.all[r] = &part{sub: sub}
	}
}

func (ps *parts) hide() {
	for _, p := range ps.all {
		p.hide()
	}
}

func (ps *parts) destroy() {
	for i, p := range ps.all {
		if p == nil {
			continue
		}
		p.sub.Destroy()
		ps.all[i] = nil
	}
}
