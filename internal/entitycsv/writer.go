// Package entitycsv implements the CSV dialect used for entity record
// export and ground-truth import. Export quotes every field; import uses a
// tolerant quoted-or-bare tokenizer so names containing commas survive the
// round trip.
package entitycsv

import (
	"strings"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// FileName is the fixed download filename for exported records.
const FileName = "extracted_entities.csv"

// Columns defines the export header row.
var Columns = []string{"PAN", "Relation", "Entity Name", "Entity Type"}

// Encode serializes records to CSV. Every field value is wrapped in double
// quotes regardless of content; literal quotes are escaped by doubling.
// Rows are newline-joined with no trailing newline.
func Encode(records []domain.EntityRecord) string {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, encodeRow(Columns))
	for _, r := range records {
		rows = append(rows, encodeRow([]string{
			r.Identifier,
			string(r.Relation),
			r.EntityName,
			string(r.EntityType),
		}))
	}
	return strings.Join(rows, "\n")
}

func encodeRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
