package domain

// Statistics summarises one month. TotalSoldItems counts every record of the
// month, sold or not; TotalNotSoldItems counts the ones with sold = 0.
type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int64   `json:"totalSoldItems"`
	TotalNotSoldItems int64   `json:"totalNotSoldItems"`
}

type PriceRangeCount struct {
	PriceRange string `json:"priceRange"`
	ItemCount  int64  `json:"itemCount"`
}

type CategoryCount struct {
	Category  string `json:"category"`
	ItemCount int64  `json:"itemCount"`
}

type CombinedReport struct {
	Statistics Statistics        `json:"statistics"`
	BarChart   []PriceRangeCount `json:"barChart"`
	PieChart   []CategoryCount   `json:"pieChart"`
}
