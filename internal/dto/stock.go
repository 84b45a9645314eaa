package dto

type StockRow struct {
	ID          int64  `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	OutletID    int64  `json:"outlet_id"`
	OutletName  string `json:"outlet_name"`
	Quantity    int    `json:"quantity"`
	MinStock    int    `json:"min_stock"`
}

type LowStockRow struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentQuantity int    `json:"current_quantity"`
	MinStock        int    `json:"min_stock"`
	OutletName      string `json:"outlet_name"`
}
