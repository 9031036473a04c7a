package colorsep

import (
	"github.com/chewxy/math32"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/vector"
)

// Version is the colorsep release.
const Version = "0.1.0"

// Report summarizes a run for machines.
type Report struct {
	Version   string           `json:"version"`
	Profile   string           `json:"profile"`
	Size      int              `json:"size"`
	Target    int              `json:"target"`
	InkLimit  *float32         `json:"ink_limit,omitempty"` // nil when unlimited
	Primaries []vector.Vector3 `json:"primaries"`
	Stats     Stats            `json:"stats"`
	Files     []FileInfo       `json:"files"`
}

// NewReport builds the report of a finished run.
func NewReport(setup Setup, r *Result, files []FileInfo) Report {
	rep := Report{
		Version:   Version,
		Size:      setup.Size,
		Target:    setup.Target,
		Primaries: setup.Primaries,
		Files:     files,
	}
	if setup.Transform != nil {
		rep.Profile = setup.Transform.Name()
	}
	if !math32.IsInf(setup.InkLimit, 1) {
		limit := setup.InkLimit
		rep.InkLimit = &limit
	}
	if r != nil {
		rep.Stats = r.Stats
	}
	return rep
}

// Marshal encodes the report with c, or codec.Default when c is nil.
func (r Report) Marshal(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r)
}
