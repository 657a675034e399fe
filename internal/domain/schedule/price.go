package schedule

import "math"

// Price keeps feed totals in whole integer euros to avoid floating point
// drift in comparisons.
type Price struct {
	Amount int64
}

// PriceFromTotal rounds a raw feed total to whole euros.
func PriceFromTotal(total float64) Price {
	return Price{Amount: int64(math.Round(total))}
}

// PriceBucket is the coarse heatmap classification of a FREE week's price.
type PriceBucket string

const (
	PriceBucketUnknown PriceBucket = "unknown"
	PriceBucketLow     PriceBucket = "low"
	PriceBucketMid     PriceBucket = "mid"
	PriceBucketHigh    PriceBucket = "high"
)

// Bucket thresholds, in whole euros.
const (
	priceLowBelow = 5000
	priceMidBelow = 10000
)

// Bucket classifies a price for heatmap coloring. A nil price buckets as
// unknown.
func (p *Price) Bucket() PriceBucket {
	switch {
	case p == nil:
		return PriceBucketUnknown
	case p.Amount < priceLowBelow:
		return PriceBucketLow
	case p.Amount < priceMidBelow:
		return PriceBucketMid
	default:
		return PriceBucketHigh
	}
}
