package entitycsv

import (
	"fmt"
	"strings"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// Required column names in an imported ground-truth CSV. Positions are
// looked up by name, not fixed index; extra columns are ignored.
const (
	colIdentifier = "PAN"
	colEntityName = "Entity Name"
	colEntityType = "Entity Type"
)

// MissingColumnsError reports which required columns are absent from an
// imported CSV header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error {
	return domain.ErrMissingColumns
}

// Decode parses a ground-truth CSV into entity records. A file with fewer
// than two lines (header + at least one row) yields an empty result, not
// an error. The relation is always synthesized; the format carries no
// relation column. Rows whose identifier or entity name is empty after
// trimming are skipped silently.
func Decode(text string) ([]domain.EntityRecord, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return []domain.EntityRecord{}, nil
	}

	header := splitHeader(strings.TrimSuffix(lines[0], "\r"))
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, required := range []string{colIdentifier, colEntityName, colEntityType} {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	records := make([]domain.EntityRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(strings.TrimSuffix(line, "\r"))
		identifier := strings.TrimSpace(fieldAt(fields, index[colIdentifier]))
		name := strings.TrimSpace(fieldAt(fields, index[colEntityName]))
		if identifier == "" || name == "" {
			continue
		}
		typeLabel := strings.TrimSpace(fieldAt(fields, index[colEntityType]))
		records = append(records, domain.EntityRecord{
			Identifier: identifier,
			Relation:   domain.RelationIdentifierOf,
			EntityName: name,
			EntityType: domain.EntityTypeFromLabel(typeLabel),
		})
	}
	return records, nil
}

// splitHeader parses the header row by naive comma split with
// quote-character stripping. Column names must match exactly after the
// strip; surrounding whitespace is not trimmed.
func splitHeader(line string) []string {
	parts := strings.Split(line, ",")
	cols := make([]string, len(parts))
	for i, p := range parts {
		cols[i] = strings.ReplaceAll(p, `"`, "")
	}
	return cols
}

// splitFields tokenizes a data row. A field is either a double-quoted run
// (contents may include commas, a doubled quote is a literal quote) or a
// run of non-comma, non-quote characters. Delimiting quotes are stripped
// from the value.
func splitFields(line string) []string {
	var fields []string
	i := 0
	for {
		var field strings.Builder
		if i < len(line) && line[i] == '"' {
			i++
			for i < len(line) {
				c := line[i]
				if c == '"' {
					if i+1 < len(line) && line[i+1] == '"' {
						field.WriteByte('"')
						i += 2
						continue
					}
					i++
					break
				}
				field.WriteByte(c)
				i++
			}
		} else {
			for i < len(line) && line[i] != ',' && line[i] != '"' {
				field.WriteByte(line[i])
				i++
			}
		}
		fields = append(fields, field.String())
		if i >= len(line) {
			break
		}
		if line[i] == ',' {
			i++
			if i == len(line) {
				// trailing comma means a trailing empty field
				fields = append(fields, "")
				break
			}
		}
	}
	return fields
}

func fieldAt(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}
