package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"inkpaper-express/internal/domain"
	productrepo "inkpaper-express/internal/repository/product"
)

const (
	printerImage = "https://images.unsplash.com/photo-1612198188060-c7c2a3b66eae?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"
	supplyImage  = "https://images.unsplash.com/photo-1586953208448-b95a79798f07?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600"
)

func jsonStr(s string) *string {
	return &s
}

// Products returns the sample catalog the storefront launches with.
func Products() []domain.Product {
	return []domain.Product{
		{
			Name:           "HP DeskJet 3755",
			Description:    "Compact All-in-One Wireless Printer - Perfect for home use with mobile printing",
			Price:          "89.99",
			Category:       "home-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          45,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 8 ppm black, 5.5 ppm color","Connectivity":"Wi-Fi, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 1,000 pages"}`),
			Compatibility:  jsonStr(`["HP 65 Black","HP 65 Tri-color"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP ENVY 6055e",
			Description:    "All-in-One Wireless Color Inkjet Printer with Smart Tasks - Ideal for home offices",
			Price:          "129.99",
			Category:       "home-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          38,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 10 ppm black, 7 ppm color","Connectivity":"Wi-Fi, USB, Bluetooth","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 1,000 pages"}`),
			Compatibility:  jsonStr(`["HP 67 Black","HP 67 Tri-color"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP OfficeJet Pro 9015e",
			Description:    "Smart Office All-in-One with Fast Print Speeds - Built for business productivity",
			Price:          "179.99",
			Category:       "office-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          32,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 22 ppm black, 18 ppm color","Connectivity":"Wi-Fi, Ethernet, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 25,000 pages"}`),
			Compatibility:  jsonStr(`["HP 962 Black","HP 962 Cyan","HP 962 Magenta","HP 962 Yellow"]`),
			DeliveryTime:   "Next Day",
		},
		{
			Name:           "HP OfficeJet Pro 8025e",
			Description:    "All-in-One Color Printer with Advanced Security - Perfect for small businesses",
			Price:          "199.99",
			Category:       "office-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          25,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 20 ppm black, 10 ppm color","Connectivity":"Wi-Fi, Ethernet, USB, Fax","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 20,000 pages"}`),
			Compatibility:  jsonStr(`["HP 952 Black","HP 952 Cyan","HP 952 Magenta","HP 952 Yellow"]`),
			DeliveryTime:   "Next Day",
		},
		{
			Name:           "HP ENVY Photo 7855",
			Description:    "Premium All-in-One Photo Printer - Professional quality prints with vibrant colors",
			Price:          "149.99",
			Category:       "inkjet-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          22,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 15 ppm black, 10 ppm color","Connectivity":"Wi-Fi, USB, SD Card","Paper Size":"Up to 8.5 x 14 inches","Photo Printing":"4x6 borderless in 43 seconds"}`),
			Compatibility:  jsonStr(`["HP 64 Black","HP 64 Tri-color","HP 64 Photo Black"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP DeskJet 4155e",
			Description:    "Wireless All-in-One Inkjet Printer - Affordable printing for everyday needs",
			Price:          "79.99",
			Category:       "inkjet-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          55,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 8.5 ppm black, 5.5 ppm color","Connectivity":"Wi-Fi, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 1,000 pages"}`),
			Compatibility:  jsonStr(`["HP 67 Black","HP 67 Tri-color"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP LaserJet Pro M404dn",
			Description:    "Monochrome Laser Printer with Ethernet - Fast, reliable printing for offices",
			Price:          "249.99",
			Category:       "laser-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          28,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 38 ppm","Connectivity":"Ethernet, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 80,000 pages"}`),
			Compatibility:  jsonStr(`["HP 58A Black"]`),
			DeliveryTime:   "Next Day",
		},
		{
			Name:           "HP Color LaserJet Pro M255dw",
			Description:    "Wireless Color Laser Printer - Professional color printing with fast speeds",
			Price:          "329.99",
			Category:       "laser-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          18,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 22 ppm color and black","Connectivity":"Wi-Fi, Ethernet, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 40,000 pages"}`),
			Compatibility:  jsonStr(`["HP 207A Black","HP 207A Cyan","HP 207A Magenta","HP 207A Yellow"]`),
			DeliveryTime:   "Next Day",
		},
		{
			Name:           "HP LaserJet Enterprise M507dn",
			Description:    "Enterprise Monochrome Laser Printer - High-volume printing with advanced security",
			Price:          "449.99",
			Category:       "laser-printers",
			Brand:          "HP",
			ImageURL:       printerImage,
			Stock:          12,
			IsActive:       true,
			Specifications: jsonStr(`{"Print Speed":"Up to 45 ppm","Connectivity":"Ethernet, USB","Paper Size":"Up to 8.5 x 14 inches","Monthly Duty Cycle":"Up to 150,000 pages"}`),
			Compatibility:  jsonStr(`["HP 89A Black","HP 89X Black High Yield"]`),
			DeliveryTime:   "Next Day",
		},
		{
			Name:           "HP 65 Ink Combo Pack",
			Description:    "Original HP 65 Black & Tri-color Ink Cartridges - 2 Cartridges",
			Price:          "49.99",
			Category:       "ink",
			Brand:          "HP",
			ImageURL:       supplyImage,
			Stock:          8,
			IsActive:       true,
			Specifications: jsonStr(`{"Page Yield":"Approx. 120 pages black, 100 pages color","Ink Type":"Dye-based","Colors":"Black, Cyan, Magenta, Yellow"}`),
			Compatibility:  jsonStr(`["HP DeskJet 3755","HP DeskJet 2655","HP DeskJet 3700"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP 962 XL High Yield Ink Set",
			Description:    "High Yield Black, Cyan, Magenta & Yellow Ink Cartridges - 4 Pack",
			Price:          "89.99",
			Category:       "ink",
			Brand:          "HP",
			ImageURL:       supplyImage,
			Stock:          15,
			IsActive:       true,
			Specifications: jsonStr(`{"Page Yield":"Approx. 2000 pages black, 1600 pages color","Ink Type":"Pigment-based","Colors":"Black, Cyan, Magenta, Yellow"}`),
			Compatibility:  jsonStr(`["HP OfficeJet Pro 9015e","HP OfficeJet Pro 9025e"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP Multipurpose Paper",
			Description:    "8.5\" x 11\" 20lb Copy Paper - 500 Sheets per Ream",
			Price:          "12.99",
			Category:       "paper",
			Brand:          "HP",
			ImageURL:       supplyImage,
			Stock:          120,
			IsActive:       true,
			Specifications: jsonStr(`{"Weight":"20 lb","Brightness":"92","Opacity":"94%"}`),
			Compatibility:  jsonStr(`["All HP Printers"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP Premium Photo Paper",
			Description:    "Glossy Photo Paper 4x6 inch - 100 Sheets",
			Price:          "19.99",
			Category:       "paper",
			Brand:          "HP",
			ImageURL:       supplyImage,
			Stock:          75,
			IsActive:       true,
			Specifications: jsonStr(`{"Finish":"Glossy","Weight":"60 lb","Size":"4 x 6 inches"}`),
			Compatibility:  jsonStr(`["All HP Inkjet Printers"]`),
			DeliveryTime:   "Same Day",
		},
		{
			Name:           "HP USB Cable",
			Description:    "USB 2.0 A-to-B Cable for HP Printers - 6 feet",
			Price:          "14.99",
			Category:       "supplies",
			Brand:          "HP",
			ImageURL:       supplyImage,
			Stock:          50,
			IsActive:       true,
			Specifications: jsonStr(`{"Length":"6 feet","Type":"USB 2.0 A-to-B","Compatibility":"Most HP Printers"}`),
			Compatibility:  jsonStr(`["Most HP Printers"]`),
			DeliveryTime:   "Same Day",
		},
	}
}

// Memory loads the sample catalog into an in-memory repository. Used at
// api startup when no database is configured.
func Memory(ctx context.Context, repo productrepo.Repository) error {
	for _, p := range Products() {
		if _, err := repo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %q: %w", p.Name, err)
		}
	}
	return nil
}

// Apply inserts the sample catalog for manual testing against postgres.
// It is idempotent via ON CONFLICT on the product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO products (name, description, price, category, brand, image_url, stock, is_active, specifications, compatibility, delivery_time)
VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    brand = EXCLUDED.brand,
    image_url = EXCLUDED.image_url,
    stock = EXCLUDED.stock,
    is_active = EXCLUDED.is_active,
    specifications = EXCLUDED.specifications,
    compatibility = EXCLUDED.compatibility,
    delivery_time = EXCLUDED.delivery_time
`
	for _, p := range Products() {
		_, err := pool.Exec(ctx, q,
			p.Name,
			p.Description,
			p.Price,
			p.Category,
			p.Brand,
			p.ImageURL,
			p.Stock,
			p.IsActive,
			p.Specifications,
			p.Compatibility,
			p.DeliveryTime,
		)
		if err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	return nil
}
