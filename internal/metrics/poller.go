package metrics

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type heightReader interface {
	LastBlockIndex(ctx context.Context) (int64, error)
}

// Poller periodically samples the ledger height and derives the
// transaction rate between consecutive ticks. It runs until its context
// is cancelled; a failed tick is logged and skipped, never retried early.
type Poller struct {
	ledger   heightReader
	store    Store
	interval time.Duration

	lastHeight int64
	lastSeen   time.Time
}

func NewPoller(ledger heightReader, store Store, interval time.Duration) *Poller {
	return &Poller{
		ledger:     ledger,
		store:      store,
		interval:   interval,
		lastHeight: -1,
	}
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.collect(ctx); err != nil {
				log.Printf("metrics: sample skipped: %v", err)
			}
		}
	}
}

func (p *Poller) collect(ctx context.Context) error {
	height, err := p.ledger.LastBlockIndex(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rate := decimal.Zero
	if p.lastHeight >= 0 && now.After(p.lastSeen) {
		elapsed := decimal.NewFromFloat(now.Sub(p.lastSeen).Seconds())
		rate = decimal.NewFromInt(height - p.lastHeight).Div(elapsed).Round(4)
	}

	sample := Sample{
		ID:        uuid.New(),
		Height:    height,
		TxRate:    rate,
		CreatedAt: now,
	}
	if err := p.store.InsertSample(ctx, sample); err != nil {
		return err
	}

	p.lastHeight = height
	p.lastSeen = now
	return nil
}
