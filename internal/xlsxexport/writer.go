// Package xlsxexport builds the spreadsheet variant of the entity export.
package xlsxexport

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/entitycsv"
)

// FileName is the fixed download filename for the XLSX export variant.
const FileName = "extracted_entities.xlsx"

const (
	entitiesSheet = "Entities"
	reconSheet    = "Reconciliation"
)

// Reconciliation status labels used in the Status column.
const (
	statusMatched         = "matched"
	statusExtractorOnly   = "extractor_only"
	statusGroundTruthOnly = "ground_truth_only"
)

// Write builds an XLSX workbook with an Entities sheet mirroring the CSV
// columns and, when a reconciliation result exists, a Reconciliation sheet
// with a Status column.
func Write(records []domain.EntityRecord, result *domain.ReconciliationResult) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", entitiesSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	header := make([]interface{}, len(entitycsv.Columns))
	for i, c := range entitycsv.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(entitiesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{r.Identifier, string(r.Relation), r.EntityName, string(r.EntityType)}
		if err := f.SetSheetRow(entitiesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if result != nil {
		if err := writeReconciliation(f, result); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeReconciliation(f *excelize.File, result *domain.ReconciliationResult) error {
	if _, err := f.NewSheet(reconSheet); err != nil {
		return fmt.Errorf("adding reconciliation sheet: %w", err)
	}
	header := []interface{}{"PAN", "Entity Name", "Entity Type", "Status"}
	if err := f.SetSheetRow(reconSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing reconciliation header: %w", err)
	}

	rowNum := 2
	writeBucket := func(records []domain.EntityRecord, status string) error {
		for _, r := range records {
			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}
			row := []interface{}{r.Identifier, r.EntityName, string(r.EntityType), status}
			if err := f.SetSheetRow(reconSheet, cell, &row); err != nil {
				return fmt.Errorf("writing reconciliation row %d: %w", rowNum, err)
			}
			rowNum++
		}
		return nil
	}

	if err := writeBucket(result.Matches, statusMatched); err != nil {
		return err
	}
	if err := writeBucket(result.ExtractorOnly, statusExtractorOnly); err != nil {
		return err
	}
	return writeBucket(result.GroundTruthOnly, statusGroundTruthOnly)
}
