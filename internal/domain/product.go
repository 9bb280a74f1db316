package domain

// Product categories sold by the storefront. The four printer
// subcategories share the /printers landing page; ink, paper and
// supplies are top-level.
var ProductCategories = []string{
	"home-printers",
	"office-printers",
	"inkjet-printers",
	"laser-printers",
	"ink",
	"paper",
	"supplies",
}

// Delivery classes are coarse fulfillment labels, not computed estimates.
var DeliveryTimes = []string{"Same Day", "Next Day", "2-3 Days"}

type Product struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          string  `json:"price"`
	Category       string  `json:"category"`
	Brand          string  `json:"brand"`
	ImageURL       string  `json:"imageUrl"`
	Stock          int     `json:"stock"`
	IsActive       bool    `json:"isActive"`
	Specifications *string `json:"specifications"`
	Compatibility  *string `json:"compatibility"`
	DeliveryTime   string  `json:"deliveryTime"`
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Price          *string `json:"price"`
	Category       *string `json:"category"`
	Brand          *string `json:"brand"`
	ImageURL       *string `json:"imageUrl"`
	Stock          *int    `json:"stock"`
	IsActive       *bool   `json:"isActive"`
	Specifications *string `json:"specifications"`
	Compatibility  *string `json:"compatibility"`
	DeliveryTime   *string `json:"deliveryTime"`
}

func ValidCategory(c string) bool {
	for _, v := range ProductCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidDeliveryTime(d string) bool {
	for _, v := range DeliveryTimes {
		if v == d {
			return true
		}
	}
	return false
}
