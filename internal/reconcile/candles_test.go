package reconcile_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/patentdex/patentdex/internal/domain"
	"github.com/patentdex/patentdex/internal/reconcile"
)

func trade(unix int64, price, volume int64) domain.TradeRecord {
	return domain.TradeRecord{
		Timestamp: time.Unix(unix, 0).UTC(),
		Price:     big.NewInt(price),
		Volume:    big.NewInt(volume),
	}
}

func TestBucketEmptyHistory(t *testing.T) {
	candles := reconcile.Bucket(nil, time.Minute)
	assert.NotNil(t, candles)
	assert.Empty(t, candles)

	candles = reconcile.Bucket([]domain.TradeRecord{}, time.Minute)
	assert.NotNil(t, candles)
	assert.Empty(t, candles)
}

func TestBucketMergesTradesInSameWindow(t *testing.T) {
	base := int64(1700000040) // not minute aligned
	trades := []domain.TradeRecord{
		trade(base, 100, 10),
		trade(base+10, 130, 5),
		trade(base+20, 90, 3),
	}

	candles := reconcile.Bucket(trades, time.Minute)
	assert.Len(t, candles, 1)

	c := candles[0]
	assert.Equal(t, int64(1700000040), c.Time)
	assert.Zero(t, c.Time%60)
	assert.Equal(t, "100", c.Open.String())
	assert.Equal(t, "130", c.High.String())
	assert.Equal(t, "90", c.Low.String())
	assert.Equal(t, "90", c.Close.String())
	assert.Equal(t, "18", c.Volume.String())
}

func TestBucketSplitsAcrossWindows(t *testing.T) {
	base := int64(1700000040)
	trades := []domain.TradeRecord{
		trade(base, 100, 1),
		trade(base+70, 200, 2),
		trade(base+140, 300, 3),
	}

	candles := reconcile.Bucket(trades, time.Minute)
	assert.Len(t, candles, 3)
	assert.Equal(t, candles[0].Time+60, candles[1].Time)
	assert.Equal(t, candles[1].Time+60, candles[2].Time)
}

func TestBucketIsDeterministic(t *testing.T) {
	base := int64(1700000000)
	trades := []domain.TradeRecord{
		trade(base+5, 100, 1),
		trade(base+65, 110, 2),
		trade(base+15, 120, 3),
		trade(base+70, 105, 4),
	}

	first := reconcile.Bucket(trades, time.Minute)
	second := reconcile.Bucket(trades, time.Minute)
	assert.Equal(t, first, second)

	// Input order within a bucket does not change the outcome for
	// distinct timestamps
	reversed := []domain.TradeRecord{trades[3], trades[2], trades[1], trades[0]}
	assert.Equal(t, first, reconcile.Bucket(reversed, time.Minute))
}

func TestBucketPreservesTotalVolume(t *testing.T) {
	base := int64(1700000000)
	trades := []domain.TradeRecord{
		trade(base, 100, 7),
		trade(base+30, 110, 11),
		trade(base+90, 105, 13),
		trade(base+600, 120, 17),
	}

	candles := reconcile.Bucket(trades, time.Minute)

	total := new(big.Int)
	for _, c := range candles {
		total.Add(total, c.Volume)
	}
	assert.Equal(t, int64(7+11+13+17), total.Int64())
}

func TestBucketNilPriceAndVolume(t *testing.T) {
	trades := []domain.TradeRecord{
		{Timestamp: time.Unix(1700000000, 0).UTC()},
	}

	candles := reconcile.Bucket(trades, time.Minute)
	assert.Len(t, candles, 1)
	assert.Equal(t, "0", candles[0].Open.String())
	assert.Equal(t, "0", candles[0].Volume.String())
}

func TestWindow(t *testing.T) {
	candles := reconcile.Bucket([]domain.TradeRecord{
		trade(1700000000, 100, 1),
		trade(1700000060, 110, 1),
		trade(1700000120, 120, 1),
	}, time.Minute)

	trimmed := reconcile.Window(candles, 2)
	assert.Len(t, trimmed, 2)
	assert.Equal(t, candles[1].Time, trimmed[0].Time)
	assert.Equal(t, candles[2].Time, trimmed[1].Time)

	assert.Equal(t, candles, reconcile.Window(candles, 10))
	assert.Equal(t, candles, reconcile.Window(candles, 0))
}
