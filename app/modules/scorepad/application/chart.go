package scorepadservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Black-And-White-Club/doppelkopf/app/shared/operation"
	"github.com/Black-And-White-Club/doppelkopf/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette colors the running score chart.
type ChartPalette struct {
	Background drawing.Color
	Text       drawing.Color
	Lines      []drawing.Color
}

// DefaultPalette is used unless the service is configured otherwise.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorWhite,
	Text:       drawing.ColorFromHex("333333"),
	Lines: []drawing.Color{
		drawing.ColorFromHex("1b5e20"),
		drawing.ColorFromHex("b71c1c"),
		drawing.ColorFromHex("0d47a1"),
		drawing.ColorFromHex("f9a825"),
		drawing.ColorFromHex("4a148c"),
	},
}

// RenderChart draws one line per player over the match index.
func (s *ScorepadService) RenderChart(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return operation.Unwrap(operation.Run(s.runner, ctx, "RenderChart", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
			st, err := s.loadState(ctx, db, id)
			if err != nil {
				return notFoundAsFailure[[]byte](err)
			}
			png, err := renderRunningScores(st, s.palette)
			if err != nil {
				return results.OperationResult[[]byte, error]{}, err
			}
			return results.SuccessResult[[]byte, error](png), nil
		}))
}

func renderRunningScores(st *scorepadState, palette ChartPalette) ([]byte, error) {
	board := st.board()
	if len(board.Rows) == 0 || len(board.Players) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]float64, len(board.Rows)+1)
	for i := range xValues {
		xValues[i] = float64(i)
	}

	minY, maxY := 0.0, 0.0
	series := make([]chart.Series, 0, len(board.Players))
	for j, p := range board.Players {
		yValues := make([]float64, len(board.Rows)+1)
		for i, row := range board.Rows {
			v := float64(row.Scores[j])
			yValues[i+1] = v
			minY = min(minY, v)
			maxY = max(maxY, v)
		}
		color := palette.Lines[j%len(palette.Lines)]
		series = append(series, chart.ContinuousSeries{
			Name:    p.Name,
			XValues: xValues,
			YValues: yValues,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Match",
			ValueFormatter: func(v any) string { return fmt.Sprintf("%.0f", v) },
			Style:          chart.Style{FontColor: palette.Text},
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(len(board.Rows))},
		},
		YAxis: chart.YAxis{
			Name:           "Score",
			ValueFormatter: func(v any) string { return fmt.Sprintf("%.0f", v) },
			Style:          chart.Style{FontColor: palette.Text},
			Range:          &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No matches recorded yet"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create placeholder renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart font: %w", err)
	}

	r.SetDPI(chart.DefaultDPI)
	chart.Draw.Box(r, chart.NewBox(0, 0, width, height), chart.Style{
		FillColor:   palette.Background,
		StrokeColor: palette.Background,
		StrokeWidth: 1,
	})

	r.SetFont(font)
	r.SetFontColor(palette.Text)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to render placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
