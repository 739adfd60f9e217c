package extractor

import "strings"

// OrganisationKeywords is the fixed keyword set that classifies an entity
// name as an Organisation. Matching is case-sensitive substring match.
// This list encodes business logic, not prompt flavor; keep it in sync
// with the schema enum labels.
var OrganisationKeywords = []string{
	"PVT. LTD.",
	"LTD.",
	"SERVICES",
	"AGENCIES",
	"TRADERS",
	"COMMERCIALS",
	"UDYOG",
	"ENTERPRISES",
	"CONSULTANTS",
	"DEVELOPERS",
	"BUILDERS",
	"LOGISTICS",
	"MARKETING",
	"MERCHANTS",
}

// BuildEntityPrompt returns the extraction prompt for a normalized document
// text. The prompt embeds the full classification ruleset and the expected
// record shape.
func BuildEntityPrompt(documentText string) string {
	return `You are a document data extraction assistant. Analyze the document text below and identify EVERY occurrence of three entity categories: organisations, individual names, and PAN identifier codes (10-character uppercase alphanumeric codes).

Emit exactly one record per PAN found, linking the PAN to its associated organisation or individual name through the fixed relation "IDENTIFIER_OF". Do not skip, summarize, or merge any occurrences.

CLASSIFICATION RULES (apply exactly as written):
- An entity name is classified "Organisation" if it contains any of the following keywords (case-sensitive, substring match): ` + strings.Join(OrganisationKeywords, ", ") + `.
- A name suffixed with "(HUF)" denotes a Hindu Undivided Family and is classified "Individual"; retain the "(HUF)" tag inside entityName.
- All other names are classified "Individual".

Return ONLY a valid JSON array with no markdown formatting, no code fences, no explanation, just the raw JSON. Each element must be an object with exactly these four keys:
{"identifier": "", "relation": "IDENTIFIER_OF", "entityName": "", "entityType": ""}

where entityType is either "Organisation" or "Individual". If no entities are found, return an empty array [].

DOCUMENT TEXT:
` + documentText
}
