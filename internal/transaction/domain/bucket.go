package domain

import (
	"fmt"
	"strings"
)

// PriceBucket is a price interval of the bar chart. A price belongs to the
// first bucket whose Max it does not exceed; the last bucket is open-ended.
type PriceBucket struct {
	Label string
	Max   float64
	Open  bool
}

var PriceBuckets = []PriceBucket{
	{Label: "0 - 100", Max: 100},
	{Label: "101 - 200", Max: 200},
	{Label: "201 - 300", Max: 300},
	{Label: "301 - 400", Max: 400},
	{Label: "401 - 500", Max: 500},
	{Label: "501 - 600", Max: 600},
	{Label: "601 - 700", Max: 700},
	{Label: "701 - 800", Max: 800},
	{Label: "801 - 900", Max: 900},
	{Label: "901-above", Open: true},
}

// BucketFor returns the label of the bucket price falls into.
func BucketFor(price float64) string {
	for _, b := range PriceBuckets {
		if b.Open || price <= b.Max {
			return b.Label
		}
	}
	return PriceBuckets[len(PriceBuckets)-1].Label
}

// BucketIndex returns the position of label in PriceBuckets, or -1.
func BucketIndex(label string) int {
	for i, b := range PriceBuckets {
		if b.Label == label {
			return i
		}
	}
	return -1
}

// BucketCaseSQL renders the bucket table as a SQL CASE expression over column.
func BucketCaseSQL(column string) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	for _, b := range PriceBuckets {
		if b.Open {
			fmt.Fprintf(&sb, " ELSE '%s'", b.Label)
			continue
		}
		fmt.Fprintf(&sb, " WHEN %s <= %g THEN '%s'", column, b.Max, b.Label)
	}
	sb.WriteString(" END")
	return sb.String()
}
