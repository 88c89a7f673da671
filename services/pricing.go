package services

import "pizza-shop/models"

// LineTotal prices one order line: the size price plus every topping,
// multiplied by the quantity.
func LineTotal(item models.MenuItem, size string, toppings []models.Topping, quantity int) float64 {
	price := item.PriceSmall
	if size == "Large" {
		price = item.PriceLarge
	}

	for _, t := range toppings {
		price += t.Price
	}

	return price * float64(quantity)
}
