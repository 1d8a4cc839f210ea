package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// GamesXLSX renders a generated batch as a spreadsheet, one game per row.
func (s *serv) GamesXLSX(cfg config.GameConfig, games []model.GeneratedGame) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, cfg.Name()); err != nil {
		return nil, err
	}
	sheet = cfg.Name()

	headers := []interface{}{"Game", "Numbers", "Sum", "Evens", "Odds", "Score"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}

	for i, g := range games {
		row := []interface{}{
			i + 1,
			joinNumbers(g.Numbers),
			g.SumValue,
			g.EvenCount,
			g.OddCount,
			g.CompatibilityScore,
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GamesCSV renders a generated batch as CSV with the same columns as the
// spreadsheet export.
func (s *serv) GamesCSV(cfg config.GameConfig, games []model.GeneratedGame) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"game", "numbers", "sum", "evens", "odds", "score"}); err != nil {
		return nil, err
	}
	for i, g := range games {
		record := []string{
			strconv.Itoa(i + 1),
			joinNumbers(g.Numbers),
			strconv.Itoa(g.SumValue),
			strconv.Itoa(g.EvenCount),
			strconv.Itoa(g.OddCount),
			strconv.FormatFloat(g.CompatibilityScore, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HistoryXLSX renders the stored history in the same layout the official
// exports use, so a round trip through ImportFile works.
func (s *serv) HistoryXLSX(ctx context.Context, cfg config.GameConfig) ([]byte, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headers := []interface{}{"Concurso", "Data Sorteio"}
	for i := 1; i <= cfg.BallCount(); i++ {
		headers = append(headers, fmt.Sprintf("Bola%d", i))
	}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}

	for i, d := range draws {
		row := []interface{}{d.Contest, ""}
		if !d.Date.IsZero() {
			row[1] = d.Date.Format("02/01/2006")
		}
		for _, n := range d.Numbers {
			row = append(row, n)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func joinNumbers(numbers []int) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, strconv.Itoa(n))
	}
	return strings.Join(parts, " ")
}
