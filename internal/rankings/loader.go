package rankings

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
)

// Load reads a rankings table, dispatching on file extension: .xlsx and
// .xlsm go through the Excel reader, everything else is treated as CSV.
func Load(path string) ([]models.Player, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV reads a rankings CSV with a header row
func LoadCSV(path string) ([]models.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rankings file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rowsToPlayers(rows, path)
}

// LoadXLSX reads the first sheet of an Excel rankings export
func LoadXLSX(path string) ([]models.Player, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rankings file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsToPlayers(rows, path)
}

func rowsToPlayers(rows [][]string, path string) ([]models.Player, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s has no data rows", path)
	}
	idx, err := buildIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var players []models.Player
	for _, row := range rows[1:] {
		if p, ok := rowToPlayer(row, idx); ok {
			players = append(players, p)
		}
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("%s has no usable player rows", path)
	}
	return players, nil
}
