package dto

type ProductResponse struct {
	ProductID   string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Description string  `json:"description,omitempty"`
}

type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
