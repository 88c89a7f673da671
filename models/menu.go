package models

type Topping struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	PriceSmall  float64 `json:"price_small"`
	PriceLarge  float64 `json:"price_large"`
	Category    string  `json:"category"`
	Image       *string `json:"image,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description string  `json:"description"`
}

// ResolveImageURL fills ImageURL from the stored relative path. The API
// always serves absolute URLs, never the raw path.
func (m *MenuItem) ResolveImageURL(baseURL string) {
	if m.Image == nil || *m.Image == "" {
		m.ImageURL = nil
		return
	}
	url := baseURL + "/uploads/" + *m.Image
	m.ImageURL = &url
}
