package models

// Category is a product category row. Created at seeding, immutable afterwards.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog item belonging to a category.
type Product struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	CategoryID int64   `json:"category_id"`
	Price      float64 `json:"price"`
}

// SaleRecord is a single recorded sale of a product.
type SaleRecord struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	Revenue      float64 `json:"revenue"`
	QuantitySold int     `json:"quantity_sold"`
	SaleDate     string  `json:"sale_date"`
}
