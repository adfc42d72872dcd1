package cart

// ProductRef is the denormalized product snapshot captured when an item
// enters the cart. It is never re-validated against the live catalog; the
// stock value recorded here is only consulted by the quantity ceiling rules.
type ProductRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	CountInStock int    `json:"countInStock"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// Item is a single cart line. Redeemed items come from the loyalty-point
// redemption path: their product carries price 0 by convention and PointsCost
// records the point debit to apply at checkout.
type Item struct {
	Product    ProductRef `json:"product"`
	Quantity   int        `json:"quantity"`
	IsRedeemed bool       `json:"isRedeemed"`
	PointsCost int        `json:"pointsCost"`
}

// Snapshot is an ordered cart item list. Insertion order is preserved and at
// most one item exists per product id.
type Snapshot []Item

// Count is the total quantity across all items.
func (s Snapshot) Count() int {
	total := 0
	for _, item := range s {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price × quantity over all items. Redeemed items carry
// price 0, so they contribute nothing without special-casing.
func (s Snapshot) TotalPrice() int64 {
	var total int64
	for _, item := range s {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

func (s Snapshot) indexOf(productID string) int {
	for i, item := range s {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Contains reports whether an item for the given product id is present.
func (s Snapshot) Contains(productID string) bool {
	return s.indexOf(productID) >= 0
}

func (s Snapshot) clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}
