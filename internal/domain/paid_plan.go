package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanDuration is one bookable duration of a paid plan, with its hosted
// checkout URL.
type PlanDuration struct {
	Weeks       int     `bson:"weeks" json:"weeks"`
	Price       float64 `bson:"price" json:"price"`
	CheckoutURL string  `bson:"checkoutUrl,omitempty" json:"checkoutUrl,omitempty"`
}

// PaidPlan is a purchasable coaching plan offered by the platform.
type PaidPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Durations   []PlanDuration     `bson:"durations" json:"durations"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DurationFor returns the plan duration matching the given number of weeks.
func (p *PaidPlan) DurationFor(weeks int) (PlanDuration, bool) {
	for _, d := range p.Durations {
		if d.Weeks == weeks {
			return d, true
		}
	}
	return PlanDuration{}, false
}
