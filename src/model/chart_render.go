package model

const ChartKindPriceComparison = "price_comparison"
const ChartKindVolumeComparison = "volume_comparison"
const ChartKindMarketCapPie = "market_cap_pie"

type ChartRender struct {
	Id          int64  `json:"id"`
	SessionUuid string `json:"sessionUuid"`
	Kind        string `json:"kind"`
	FilePath    string `json:"filePath"`
	Points      int    `json:"points"`
	RenderedAt  string `json:"renderedAt"`
}

func ChartFileName(kind string) string {
	return kind + ".png"
}
