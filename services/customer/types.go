package customer

type Customer struct {
	ID        string    `json:"id" firestore:"id" bson:"_id"`
	FirstName string    `json:"firstName" firestore:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName" bson:"lastName"`
	UserName  string    `json:"userName" firestore:"userName" bson:"userName"`
	Invoices  []Invoice `json:"invoices" firestore:"invoices" bson:"invoices"`
}

func (c *Customer) DocumentID() string      { return c.ID }
func (c *Customer) SetDocumentID(id string) { c.ID = id }

// Invoice is embedded in its Customer and has no identity of its own.
type Invoice struct {
	Subtotal    float64    `json:"subtotal" firestore:"subtotal" bson:"subtotal"`
	Tax         float64    `json:"tax" firestore:"tax" bson:"tax"`
	DateCreated string     `json:"dateCreated" firestore:"dateCreated" bson:"dateCreated"`
	DateShipped string     `json:"dateShipped" firestore:"dateShipped" bson:"dateShipped"`
	LineItems   []LineItem `json:"lineItems" firestore:"lineItems" bson:"lineItems"`
}

type LineItem struct {
	Name     string  `json:"name" firestore:"name" bson:"name"`
	Price    float64 `json:"price" firestore:"price" bson:"price"`
	Quantity int     `json:"quantity" firestore:"quantity" bson:"quantity"`
}
