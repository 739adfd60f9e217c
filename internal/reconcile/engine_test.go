package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

func record(id, name string, entityType domain.EntityType) domain.EntityRecord {
	return domain.EntityRecord{
		Identifier: id,
		Relation:   domain.RelationIdentifierOf,
		EntityName: name,
		EntityType: entityType,
	}
}

func TestCompare_PartitionsByIdentifier(t *testing.T) {
	extracted := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
		record("BBBBB2222B", "Ravi Kumar", domain.EntityTypeIndividual),
	}
	groundTruth := []domain.EntityRecord{
		record("BBBBB2222B", "Ravi Kumar", domain.EntityTypeIndividual),
		record("CCCCC3333C", "Mehta Udyog", domain.EntityTypeOrganisation),
	}

	result := Compare(extracted, groundTruth)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "BBBBB2222B", result.Matches[0].Identifier)

	require.Len(t, result.ExtractorOnly, 1)
	assert.Equal(t, "AAAAA1111A", result.ExtractorOnly[0].Identifier)

	require.Len(t, result.GroundTruthOnly, 1)
	assert.Equal(t, "CCCCC3333C", result.GroundTruthOnly[0].Identifier)
}

func TestCompare_IdentifierOnlyIdentity(t *testing.T) {
	extracted := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
	}
	groundTruth := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders Pvt Ltd", domain.EntityTypeIndividual),
	}

	result := Compare(extracted, groundTruth)

	// Name and type differences do not break a match; the extracted copy
	// is the one reported.
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Sharma Traders", result.Matches[0].EntityName)
	assert.Empty(t, result.ExtractorOnly)
	assert.Empty(t, result.GroundTruthOnly)
}

func TestCompare_CaseSensitiveIdentifiers(t *testing.T) {
	extracted := []domain.EntityRecord{
		record("abcde1234f", "Sharma Traders", domain.EntityTypeOrganisation),
	}
	groundTruth := []domain.EntityRecord{
		record("ABCDE1234F", "Sharma Traders", domain.EntityTypeOrganisation),
	}

	result := Compare(extracted, groundTruth)

	assert.Empty(t, result.Matches)
	assert.Len(t, result.ExtractorOnly, 1)
	assert.Len(t, result.GroundTruthOnly, 1)
}

func TestCompare_DuplicatesNotDeduplicated(t *testing.T) {
	extracted := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
	}
	groundTruth := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
	}

	result := Compare(extracted, groundTruth)

	assert.Len(t, result.Matches, 2)
	assert.Empty(t, result.ExtractorOnly)
	assert.Empty(t, result.GroundTruthOnly)
}

func TestCompare_EmptySidesYieldEmptySlices(t *testing.T) {
	result := Compare(nil, nil)

	assert.NotNil(t, result.Matches)
	assert.NotNil(t, result.ExtractorOnly)
	assert.NotNil(t, result.GroundTruthOnly)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.ExtractorOnly)
	assert.Empty(t, result.GroundTruthOnly)
}

func TestCompare_EmptyGroundTruth(t *testing.T) {
	extracted := []domain.EntityRecord{
		record("AAAAA1111A", "Sharma Traders", domain.EntityTypeOrganisation),
	}

	result := Compare(extracted, nil)

	assert.Empty(t, result.Matches)
	assert.Len(t, result.ExtractorOnly, 1)
	assert.Empty(t, result.GroundTruthOnly)
}
