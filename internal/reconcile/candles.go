package reconcile

import (
	"math/big"
	"sort"
	"time"

	"github.com/patentdex/patentdex/internal/domain"
)

// BucketWidth is the candle width used for all chart views.
const BucketWidth = time.Minute

// Bucket reduces trade history into fixed-width OHLC candles. The reduction
// is deterministic: the same history always yields the same candles, and
// total candle volume equals total trade volume. An empty history yields an
// empty chart, not an error.
func Bucket(trades []domain.TradeRecord, width time.Duration) []domain.Candle {
	if len(trades) == 0 {
		return []domain.Candle{}
	}
	if width <= 0 {
		width = BucketWidth
	}

	sorted := make([]domain.TradeRecord, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	widthSec := int64(width / time.Second)
	var candles []domain.Candle
	var current *domain.Candle

	for _, trade := range sorted {
		bucket := trade.Timestamp.Unix() / widthSec * widthSec
		price := trade.Price
		if price == nil {
			price = new(big.Int)
		}
		volume := trade.Volume
		if volume == nil {
			volume = new(big.Int)
		}

		if current == nil || current.Time != bucket {
			candles = append(candles, domain.Candle{
				Time:   bucket,
				Open:   new(big.Int).Set(price),
				High:   new(big.Int).Set(price),
				Low:    new(big.Int).Set(price),
				Close:  new(big.Int).Set(price),
				Volume: new(big.Int).Set(volume),
			})
			current = &candles[len(candles)-1]
			continue
		}

		if price.Cmp(current.High) > 0 {
			current.High.Set(price)
		}
		if price.Cmp(current.Low) < 0 {
			current.Low.Set(price)
		}
		current.Close.Set(price)
		current.Volume.Add(current.Volume, volume)
	}

	return candles
}

// Window trims a candle series to its most recent n entries.
func Window(candles []domain.Candle, n int) []domain.Candle {
	if n <= 0 || len(candles) <= n {
		return candles
	}
	return candles[len(candles)-n:]
}
