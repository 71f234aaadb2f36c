package service

import (
	"errors"
	"fmt"
	"github.com/wcharczuk/go-chart/v2"
)

// BarSeries draws one bar per X value, shifted by Offset, so several series can be grouped side by side.
type BarSeries struct {
	Name    string
	Style   chart.Style
	XValues []float64
	YValues []float64
	Width   float64
	Offset  float64
}

func (b BarSeries) GetName() string {
	return b.Name
}

func (b BarSeries) GetStyle() chart.Style {
	return b.Style
}

func (b BarSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (b BarSeries) Len() int {
	return len(b.XValues)
}

func (b BarSeries) GetValues(index int) (float64, float64) {
	return b.XValues[index] + b.Offset, b.YValues[index]
}

func (b BarSeries) Validate() error {
	if len(b.XValues) == 0 {
		return errors.New(fmt.Sprintf("bar series [%s] must have x values set", b.Name))
	}

	if len(b.XValues) != len(b.YValues) {
		return errors.New(fmt.Sprintf("bar series [%s] must have the same number of x and y values", b.Name))
	}

	if b.Width <= 0 {
		return errors.New(fmt.Sprintf("bar series [%s] must have a positive width", b.Name))
	}

	return nil
}

func (b BarSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := b.Style.InheritFrom(defaults)
	half := b.Width / 2
	base := canvasBox.Bottom - yrange.Translate(yrange.GetMin())

	for index := range b.XValues {
		x, y := b.GetValues(index)

		left := canvasBox.Left + xrange.Translate(x-half)
		right := canvasBox.Left + xrange.Translate(x+half)
		top := canvasBox.Bottom - yrange.Translate(y)

		r.SetFillColor(style.FillColor)
		r.SetStrokeColor(style.StrokeColor)
		r.SetStrokeWidth(style.StrokeWidth)
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, base)
		r.LineTo(left, base)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()
	}
}
