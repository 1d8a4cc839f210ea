package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// ImportFile loads draws from an .xlsx history export. The first sheet must
// carry a header row with a contest column, an optional date column and one
// column per drawn ball. Already stored contests are skipped.
func (s *serv) ImportFile(ctx context.Context, cfg config.GameConfig, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("%s has no data rows", path)
	}

	layout, err := mapColumns(rows[0], cfg.BallCount())
	if err != nil {
		return 0, err
	}

	draws := make([]model.Draw, 0, len(rows)-1)
	for i, row := range rows[1:] {
		d, err := parseRow(layout, row)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
		draws = append(draws, d)
	}

	stored, err := s.storeDraws(ctx, cfg, draws)
	if err != nil {
		return 0, err
	}

	slog.Info("import finished", "game", cfg.Slug(), "file", path, "stored", stored)
	return stored, nil
}

type columnLayout struct {
	contest int
	date    int // -1 when absent
	balls   []int
}

// mapColumns locates the contest, date and ball columns by header name. Ball
// columns are any headers starting with "bola" or "dezena", in sheet order.
func mapColumns(header []string, ballCount int) (columnLayout, error) {
	layout := columnLayout{contest: -1, date: -1}

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch {
		case name == "concurso" || name == "contest":
			layout.contest = i
		case strings.HasPrefix(name, "data") || name == "date":
			layout.date = i
		case strings.HasPrefix(name, "bola") || strings.HasPrefix(name, "dezena"):
			layout.balls = append(layout.balls, i)
		}
	}

	if layout.contest < 0 {
		return layout, fmt.Errorf("no contest column found")
	}
	if len(layout.balls) != ballCount {
		return layout, fmt.Errorf("found %d ball columns, expected %d", len(layout.balls), ballCount)
	}
	return layout, nil
}

func parseRow(layout columnLayout, row []string) (model.Draw, error) {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	contest, err := strconv.Atoi(cell(layout.contest))
	if err != nil {
		return model.Draw{}, fmt.Errorf("invalid contest %q", cell(layout.contest))
	}

	var date time.Time
	if raw := cell(layout.date); raw != "" {
		for _, format := range []string{"02/01/2006", "2006-01-02", "01-02-06"} {
			if parsed, err := time.Parse(format, raw); err == nil {
				date = parsed
				break
			}
		}
	}

	numbers := make([]int, 0, len(layout.balls))
	for _, idx := range layout.balls {
		n, err := strconv.Atoi(cell(idx))
		if err != nil {
			return model.Draw{}, fmt.Errorf("invalid drawn number %q", cell(idx))
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	return model.Draw{Contest: contest, Date: date, Numbers: numbers}, nil
}
