package vectors

import "github.com/dendrascience/delium/dhash"

const (
	referenceInput = "abcdefghijklmnopqrstuvwxyz"
	referencePath  = "2h4usk#5/73uytg#9/#4"
)

// Reference returns the canonical vectors of the scheme. Any implementation
// must reproduce all of them exactly.
func Reference() Set {
	return NewSet(
		Vector{
			Algorithm: dhash.NameSHA256,
			Mode:      ModeFlat,
			Input:     referenceInput,
			Stride:    3,
			Repeat:    5,
			Want:      "bdeeb2f01e7e2a0220bd2795f711f5a57fa1e3d103aa38185047b57be6faac93",
		},
		Vector{
			Algorithm: dhash.NameSHA512,
			Mode:      ModeFlat,
			Input:     referenceInput,
			Stride:    3,
			Repeat:    5,
			Want:      "e8a8973107efe6870290346983a70ab543c16b6d41c01070d7d913f02276df459b19c3d3721ce85c3af305c50ebf14ca0371bc13f8c5164de338d516a266e1fe",
		},
		Vector{
			Algorithm: dhash.NameSHA256,
			Mode:      ModePath,
			Input:     referenceInput,
			Path:      referencePath,
			Want:      "83174f4e554fc2ff4f6a1456512a41f96d924bb11309567c93f6c743748466ec",
		},
		Vector{
			Algorithm: dhash.NameSHA512,
			Mode:      ModePath,
			Input:     referenceInput,
			Path:      referencePath,
			Want:      "2f0e5b60007e304f072d0735123afc6135ac08be74d7a668458c103ae46166036adf09e9ffee8ae184d6d5a616bcf2e2678d432bf31b99e46ff491c8d6330c08",
		},
	)
}
