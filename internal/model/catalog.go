package model

const (
	CategoryElectronics = "electronics"
	CategoryFashion     = "fashion"
	CategoryHome        = "home"
	CategoryGaming      = "gaming"
)

// ProductItem is a catalog entry. Seq records the position in the seeded
// catalog so scans can be restored to insertion order.
type ProductItem struct {
	ProductID   string  `dynamodbav:"productId"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Price       float64 `dynamodbav:"price"`
	ImageURL    string  `dynamodbav:"imageUrl"`
	Rating      float64 `dynamodbav:"rating,omitempty"`
	Description string  `dynamodbav:"description,omitempty"`
	Seq         int     `dynamodbav:"seq"`
	CreatedAt   string  `dynamodbav:"createdAt"`
}
