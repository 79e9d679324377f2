package models

// Order is a customer purchase request awaiting external fulfillment.
// It references a Product by id; the reference is not checked for
// existence at write time.
type Order struct {
	Name      string `json:"name"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Quantity  int    `json:"quantity"`
	ProductID string `json:"productId"`
	Timestamp string `json:"timestamp"`
	Purchased bool   `json:"purchased"`
	Called    bool   `json:"called"`
}

// Fields returns the document representation written to the clients
// collection. Every new order carries purchased=false and called=false;
// both flags belong to the external fulfillment process.
func (o *Order) Fields() map[string]any {
	return map[string]any{
		"name":      o.Name,
		"lastName":  o.LastName,
		"phone":     o.Phone,
		"quantity":  o.Quantity,
		"productId": o.ProductID,
		"timestamp": o.Timestamp,
		"purchased": false,
		"called":    false,
	}
}
