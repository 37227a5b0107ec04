package scorepadservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
)

const (
	boardSheet   = "Scorepad"
	matchesSheet = "Matches"
)

// ExportXLSX writes the board to one sheet and the raw matches to another.
func (s *ScorepadService) ExportXLSX(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "ExportXLSX", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
			st, err := s.loadState(ctx, db, id)
			if err != nil {
				return notFoundAsFailure[[]byte](err)
			}
			data, err := writeWorkbook(st)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			return results.SuccessResult[[]byte, error](data), nil
		}))
}

func writeWorkbook(st *scorepadState) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), boardSheet); err != nil {
		return nil, fmt.Errorf("failed to name board sheet: %w", err)
	}
	if _, err := f.NewSheet(matchesSheet); err != nil {
		return nil, fmt.Errorf("failed to create matches sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	roundEnd, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create round style: %w", err)
	}

	board := st.board()

	boardHeader := []any{"#"}
	for _, p := range board.Players {
		boardHeader = append(boardHeader, p.Name)
	}
	boardHeader = append(boardHeader, "Score", "Winners")
	if err := writeRow(f, boardSheet, 1, boardHeader, header); err != nil {
		return nil, err
	}
	for i, row := range board.Rows {
		cells := []any{row.Index}
		for _, score := range row.Scores {
			cells = append(cells, score)
		}
		cells = append(cells, row.Score, strings.Join(row.Winners, ", "))

		style := 0
		if row.NewRound {
			style = roundEnd
		}
		if err := writeRow(f, boardSheet, i+2, cells, style); err != nil {
			return nil, err
		}
	}

	matchHeader := []any{"#", "Winners", "Team", "Bids", "Points", "Bidding", "Special points", "Score"}
	if err := writeRow(f, matchesSheet, 1, matchHeader, header); err != nil {
		return nil, err
	}
	for i, m := range st.matches {
		cells := []any{
			m.Seq,
			strings.Join(board.Rows[i].Winners, ", "),
			m.Team,
			strings.Join(m.Bids, ", "),
			m.Points,
			m.Bidding,
			m.SpecialPoints,
			m.Score,
		}
		if err := writeRow(f, matchesSheet, i+2, cells, 0); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow writes cells starting at column A of row; a non-zero style is
// applied to the written range.
func writeRow(f *excelize.File, sheet string, row int, cells []any, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, first, &cells); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	if style == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(cells), row)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("failed to style %s row %d: %w", sheet, row, err)
	}
	return nil
}
