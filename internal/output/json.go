// internal/output/json.go
package output

import (
	"io"

	"gffq-core/feature"
	"gffq/internal/jsonutil"
	"gffq/pkg/api"
)

// ToAPIFeature converts a domain feature to the stable wire schema (v1).
func ToAPIFeature(f feature.Feature) api.FeatureV1 {
	return api.FeatureV1{
		ID:          f.ID,
		Seqid:       f.Seqid,
		Source:      f.Source,
		Featuretype: f.Featuretype,
		Start:       f.Start,
		End:         f.End,
		Score:       f.Score,
		Strand:      f.Strand,
		Frame:       f.Frame,
		Attributes:  f.Attributes.Map(),
	}
}

// WriteJSON writes a single pretty-indented JSON array of v1 features.
func WriteJSON(w io.Writer, list []feature.Feature) error {
	out := make([]api.FeatureV1, 0, len(list))
	for _, f := range list {
		out = append(out, ToAPIFeature(f))
	}
	return jsonutil.EncodePretty(w, out)
}

// StreamJSONL streams one v1 feature per line.
func StreamJSONL(w io.Writer, in <-chan feature.Feature) error {
	for f := range in {
		if err := jsonutil.EncodeLine(w, ToAPIFeature(f)); err != nil {
			return err
		}
	}
	return nil
}
