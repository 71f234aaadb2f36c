package service

import (
	"bytes"
	"fmt"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/repository"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
)

const BarWidth = 0.4

var ColorOrange = drawing.ColorFromHex("ffa500")
var ColorPurple = drawing.ColorFromHex("800080")
var ColorSkyBlue = drawing.ColorFromHex("87ceeb")
var ColorLightGreen = drawing.ColorFromHex("90ee90")
var ColorGrey = drawing.ColorFromHex("808080")
var ColorGrid = drawing.ColorFromHex("dddddd")

type ChartServiceInterface interface {
	PlotPriceComparison(btc model.MarketChart, eth model.MarketChart) (string, error)
	PlotVolumeComparison(btc model.MarketChart, eth model.MarketChart) (string, error)
	PlotMarketCapPie(global model.GlobalMarket) (string, error)
}

type ChartService struct {
	OutputDir       string
	Days            int64
	Currency        string
	Session         *model.Session
	Viewer          ChartViewerInterface
	ChartRepository repository.ChartStorageInterface
	Formatter       *utils.Formatter
	TimeService     utils.TimeServiceInterface
}

func (c *ChartService) PlotPriceComparison(btc model.MarketChart, eth model.MarketChart) (string, error) {
	series, err := PriceSeries(btc, eth)
	if err != nil {
		return "", err
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("BTC vs ETH Price Trend (Last %d Days)", c.Days),
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Days Ago",
			GridMajorStyle: c.gridStyle(),
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(max(series.Len()-1, 1))},
		},
		YAxis: chart.YAxis{
			Name:           fmt.Sprintf("Price (%s)", c.Formatter.FormatCurrency(c.Currency)),
			GridMajorStyle: c.gridStyle(),
			Range:          PaddedRange(series.Bitcoin, series.Ethereum),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Bitcoin (BTC)",
				XValues: series.Days,
				YValues: series.Bitcoin,
				Style:   chart.Style{StrokeColor: ColorOrange, StrokeWidth: 2, DotColor: ColorOrange, DotWidth: 3},
			},
			chart.ContinuousSeries{
				Name:    "Ethereum (ETH)",
				XValues: series.Days,
				YValues: series.Ethereum,
				Style:   chart.Style{StrokeColor: ColorPurple, StrokeWidth: 2, DotColor: ColorPurple, DotWidth: 3},
			},
		},
	}
	if series.Len() == 0 {
		graph.Series = []chart.Series{emptySeries()}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return c.save(model.ChartKindPriceComparison, series.Len(), graph.Render)
}

func (c *ChartService) PlotVolumeComparison(btc model.MarketChart, eth model.MarketChart) (string, error) {
	series, err := VolumeSeries(btc, eth)
	if err != nil {
		return "", err
	}

	maxVolume := 0.00
	for i := 0; i < series.Len(); i++ {
		maxVolume = max(maxVolume, series.Bitcoin[i], series.Ethereum[i])
	}
	if maxVolume <= 0 {
		maxVolume = 1
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("BTC vs ETH Daily Trading Volume (Last %d Days)", c.Days),
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Days Ago",
			Range: &chart.ContinuousRange{Min: -1, Max: float64(series.Len())},
		},
		YAxis: chart.YAxis{
			Name:  fmt.Sprintf("Volume (%s)", c.Formatter.FormatCurrency(c.Currency)),
			Range: &chart.ContinuousRange{Min: 0, Max: maxVolume * 1.05},
			ValueFormatter: func(v interface{}) string {
				if value, ok := v.(float64); ok {
					return c.Formatter.FormatCompact(value)
				}

				return ""
			},
		},
		Series: []chart.Series{
			BarSeries{
				Name:    "BTC Volume",
				XValues: series.Days,
				YValues: series.Bitcoin,
				Width:   BarWidth,
				Offset:  -BarWidth / 2,
				Style:   chart.Style{FillColor: ColorSkyBlue, StrokeColor: ColorSkyBlue, StrokeWidth: 1},
			},
			BarSeries{
				Name:    "ETH Volume",
				XValues: series.Days,
				YValues: series.Ethereum,
				Width:   BarWidth,
				Offset:  BarWidth / 2,
				Style:   chart.Style{FillColor: ColorLightGreen, StrokeColor: ColorLightGreen, StrokeWidth: 1},
			},
		},
	}
	if series.Len() == 0 {
		graph.Series = []chart.Series{emptySeries()}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return c.save(model.ChartKindVolumeComparison, series.Len(), graph.Render)
}

func (c *ChartService) PlotMarketCapPie(global model.GlobalMarket) (string, error) {
	shares, err := MarketCapShares(global)
	if err != nil {
		return "", err
	}

	pie := chart.PieChart{
		Title:  "Crypto Market Cap Dominance",
		Width:  700,
		Height: 700,
		Values: []chart.Value{
			c.slice("Bitcoin", shares.Bitcoin, ColorOrange),
			c.slice("Ethereum", shares.Ethereum, ColorPurple),
			c.slice("Others", shares.Others, ColorGrey),
		},
	}

	return c.save(model.ChartKindMarketCapPie, 3, pie.Render)
}

func (c *ChartService) slice(label string, percent float64, color drawing.Color) chart.Value {
	return chart.Value{
		Label: c.Formatter.FormatSliceLabel(label, percent),
		Value: percent,
		Style: chart.Style{FillColor: color, StrokeColor: drawing.ColorWhite, StrokeWidth: 1},
	}
}

// PaddedRange spans all values with a 5% margin and never collapses to a zero-width range.
func PaddedRange(values ...[]float64) *chart.ContinuousRange {
	low := math.Inf(1)
	high := math.Inf(-1)
	for _, list := range values {
		for _, value := range list {
			low = math.Min(low, value)
			high = math.Max(high, value)
		}
	}

	if math.IsInf(low, 1) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}

	pad := (high - low) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(high)*0.05, 1)
	}

	return &chart.ContinuousRange{Min: low - pad, Max: high + pad}
}

// emptySeries keeps go-chart's series validation satisfied when the API returned no points.
func emptySeries() chart.Series {
	return chart.ContinuousSeries{
		Name:    "No data",
		XValues: []float64{0},
		YValues: []float64{0},
		Style:   chart.Style{Hidden: true},
	}
}

func (c *ChartService) gridStyle() chart.Style {
	return chart.Style{StrokeColor: ColorGrid, StrokeWidth: 1.0}
}

func (c *ChartService) save(kind string, points int, render func(chart.RendererProvider, io.Writer) error) (string, error) {
	var buffer bytes.Buffer
	err := render(chart.PNG, &buffer)
	if err != nil {
		return "", fmt.Errorf("[%s] render: %w", kind, err)
	}

	path := filepath.Join(c.OutputDir, model.ChartFileName(kind))
	err = os.WriteFile(path, buffer.Bytes(), 0644)
	if err != nil {
		return "", fmt.Errorf("[%s] write %s: %w", kind, path, err)
	}

	log.Printf("[%s] Chart saved to %s", kind, path)

	if c.Viewer != nil {
		err = c.Viewer.Show(path)
		if err != nil {
			log.Printf("[%s] %s", kind, err.Error())
		}
	}

	if c.ChartRepository != nil {
		err = c.ChartRepository.SaveRender(model.ChartRender{
			SessionUuid: c.getSessionUuid(),
			Kind:        kind,
			FilePath:    path,
			Points:      points,
			RenderedAt:  c.TimeService.GetNowDateTimeString(),
		})
		if err != nil {
			log.Printf("[%s] Render history is not saved: %s", kind, err.Error())
		}
	}

	return path, nil
}

func (c *ChartService) getSessionUuid() string {
	if c.Session == nil {
		return ""
	}

	return c.Session.Uuid
}
