package order

import (
	"time"

	"inkpaper-express/internal/domain"
)

// Milestone offsets from order creation. The timeline is a display
// convenience derived from the status; it does not reflect carrier events.
const (
	processedOffset = 24 * time.Hour
	shippedOffset   = 48 * time.Hour
	transitOffset   = 72 * time.Hour
	deliveredOffset = 96 * time.Hour
)

const milestoneTimeFormat = "Jan 2, 2006 3:04 PM"

type Milestone struct {
	Label     string `json:"label"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// TrackedOrder is the tracking endpoint's payload: the order plus its
// derived timeline and synthetic carrier fields.
type TrackedOrder struct {
	domain.Order
	Timeline          []Milestone `json:"timeline"`
	TrackingNumber    string      `json:"trackingNumber"`
	EstimatedDelivery string      `json:"estimatedDelivery"`
}

// Timeline derives the milestone sequence for an order. "Order Placed"
// and "Order Processed" are always present and completed; shipping
// milestones appear once the order left Processing; the final two are
// pending with an expected date until the order is Delivered.
func Timeline(o domain.Order) []Milestone {
	placed := o.CreatedAt

	timeline := []Milestone{
		{Label: "Order Placed", Date: placed.Format(milestoneTimeFormat), Completed: true},
		{Label: "Order Processed", Date: placed.Add(processedOffset).Format(milestoneTimeFormat), Completed: true},
	}

	if o.Status == domain.StatusInTransit || o.Status == domain.StatusDelivered {
		timeline = append(timeline,
			Milestone{Label: "Shipped", Date: placed.Add(shippedOffset).Format(milestoneTimeFormat), Completed: true},
			Milestone{Label: "In Transit", Date: placed.Add(transitOffset).Format(milestoneTimeFormat), Completed: true},
		)
	}

	if o.Status == domain.StatusDelivered {
		delivered := placed.Add(deliveredOffset).Format(milestoneTimeFormat)
		timeline = append(timeline,
			Milestone{Label: "Out for Delivery", Date: delivered, Completed: true},
			Milestone{Label: "Delivered", Date: delivered, Completed: true},
		)
	} else {
		expected := "Expected " + placed.Add(deliveredOffset).Format("Jan 2")
		timeline = append(timeline,
			Milestone{Label: "Out for Delivery", Date: expected, Completed: false},
			Milestone{Label: "Delivered", Date: expected, Completed: false},
		)
	}

	return timeline
}
