// Package export renders admin downloads.
package export

import (
	"encoding/json"
	"time"

	"github.com/xuri/excelize/v2"

	"cookitsimple/entities"
)

const historySheet = "Imports"

// HistoryWorkbook renders the import ledger as a spreadsheet. Titles are
// pulled from the retained raw payloads.
func HistoryWorkbook(entries []entities.ImportedRecipe) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, err
	}

	header := []any{"Source ID", "Source Project", "Local Recipe ID", "Imported At", "Title"}
	if err := f.SetSheetRow(historySheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, e := range entries {
		var localID any
		if e.LocalRecipeID != nil {
			localID = *e.LocalRecipeID
		}
		row := []any{
			e.SourceRecipeID,
			e.SourceProject,
			localID,
			e.ImportedAt.Format(time.RFC3339),
			titleFromRaw(e.RawData),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(historySheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// titleFromRaw digs the recipe title out of the stored provider payload;
// a broken payload yields an empty cell, not an error.
func titleFromRaw(raw string) string {
	var v struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return ""
	}
	return v.Title
}
