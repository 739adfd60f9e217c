package domain

// EntityType classifies an extracted entity name.
type EntityType string

const (
	EntityTypeOrganisation EntityType = "Organisation"
	EntityTypeIndividual   EntityType = "Individual"
)

// EntityTypeFromLabel resolves a free-form type label to an EntityType.
// Only the exact Organisation label maps to Organisation; everything else
// is Individual. This is a closed two-way choice with no third state.
func EntityTypeFromLabel(label string) EntityType {
	if label == string(EntityTypeOrganisation) {
		return EntityTypeOrganisation
	}
	return EntityTypeIndividual
}

// Relation links an identifier to its associated entity. Modeled as an
// enum of one value so future relation kinds are not a breaking change.
type Relation string

const (
	RelationIdentifierOf Relation = "IDENTIFIER_OF"
)

// DocumentFormat represents the accepted input document formats.
type DocumentFormat string

const (
	FormatText DocumentFormat = "txt"
	FormatPDF  DocumentFormat = "pdf"
)

// AllowedContentTypes maps MIME content types to DocumentFormat. Anything
// else is rejected before normalization is attempted.
var AllowedContentTypes = map[string]DocumentFormat{
	"text/plain":      FormatText,
	"application/pdf": FormatPDF,
}

// AllowedExtensions maps file extensions (without dot) to the declared
// content type, used when a multipart part carries no Content-Type.
var AllowedExtensions = map[string]string{
	"txt": "text/plain",
	"pdf": "application/pdf",
}
