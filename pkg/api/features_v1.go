// pkg/api/features_v1.go

// Package api defines the stable wire schemas emitted by gffq. Fields may be
// added but never renamed or removed within a major version.
package api

// FeatureV1 is the JSON form of one feature record.
type FeatureV1 struct {
	ID          string              `json:"id"`
	Seqid       string              `json:"seqid"`
	Source      string              `json:"source,omitempty"`
	Featuretype string              `json:"featuretype"`
	Start       int                 `json:"start"`
	End         int                 `json:"end"`
	Score       string              `json:"score,omitempty"`
	Strand      string              `json:"strand,omitempty"`
	Frame       string              `json:"frame,omitempty"`
	Attributes  map[string][]string `json:"attributes,omitempty"`
}
