// Package reconcile partitions extracted records against a ground-truth
// set by identifier membership.
package reconcile

import "github.com/Abhijeet-077/Query-AI-Agent/internal/domain"

// Compare classifies every extracted record as a match or extractor-only,
// and every ground-truth record absent from the extracted set as
// ground-truth-only. Identity is the identifier alone: exact,
// case-sensitive string equality, with no comparison of name or type.
// Duplicate identifiers are not deduplicated on either side; each record
// is classified individually. A matched ground-truth record is represented
// once, via the extracted-side copy in Matches.
func Compare(extracted, groundTruth []domain.EntityRecord) domain.ReconciliationResult {
	truthIDs := make(map[string]struct{}, len(groundTruth))
	for _, r := range groundTruth {
		truthIDs[r.Identifier] = struct{}{}
	}
	extractedIDs := make(map[string]struct{}, len(extracted))
	for _, r := range extracted {
		extractedIDs[r.Identifier] = struct{}{}
	}

	result := domain.ReconciliationResult{
		Matches:         []domain.EntityRecord{},
		ExtractorOnly:   []domain.EntityRecord{},
		GroundTruthOnly: []domain.EntityRecord{},
	}
	for _, r := range extracted {
		if _, ok := truthIDs[r.Identifier]; ok {
			result.Matches = append(result.Matches, r)
		} else {
			result.ExtractorOnly = append(result.ExtractorOnly, r)
		}
	}
	for _, r := range groundTruth {
		if _, ok := extractedIDs[r.Identifier]; !ok {
			result.GroundTruthOnly = append(result.GroundTruthOnly, r)
		}
	}
	return result
}
