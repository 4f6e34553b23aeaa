package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Product is one row of the products table: a product together with its sale metadata.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	DateOfSale  string   `json:"dateOfSale"`
	Sold        SoldFlag `json:"sold"`
}

// SourceProduct is a record as served by the remote seed dataset.
type SourceProduct struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	DateOfSale  string   `json:"dateOfSale"`
	Sold        SoldFlag `json:"sold"`
}

func (s SourceProduct) ToProduct() Product {
	return Product{
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		Category:    s.Category,
		DateOfSale:  s.DateOfSale,
		Sold:        s.Sold,
	}
}

// SoldFlag is stored as 0 or 1. The dataset ships booleans, older dumps ship numbers.
type SoldFlag int

func (f *SoldFlag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*f = 1
		return nil
	case "false", "null":
		*f = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("sold: expected boolean or number, got %s", data)
	}
	if n != 0 {
		*f = 1
	} else {
		*f = 0
	}
	return nil
}
