package domain

// StockLevel is the on-hand quantity of one product at one outlet. It is
// decremented only inside the confirm transaction.
type StockLevel struct {
	ID        int64
	ProductID int64
	OutletID  int64
	Quantity  int
}
