// File: services/feed/rotator.go
package feed

import (
	"context"
	"sync"
	"time"

	"estateconnect/models"
	"estateconnect/utils"
)

// Testimonials is the fixed home-page quote rotation.
var Testimonials = []models.Testimonial{
	{Name: "Grace Namutebi", Role: "Home Buyer", Content: "Found my dream home in Kampala within two weeks. The verified listings saved me from so many scams."},
	{Name: "Robert Okello", Role: "Property Agent", Content: "Estate Connect brings me serious buyers. My listings get real visibility across the region."},
	{Name: "Diana Atim", Role: "Architect", Content: "Selling my plans online was never this simple. Upload once, earn from every download."},
}

// Rotator advances a testimonial index on a fixed interval, wrapping modulo
// the testimonial count. The goroutine stops when the context is cancelled.
type Rotator struct {
	mu       sync.RWMutex
	index    int
	interval time.Duration
	items    []models.Testimonial
}

// NewRotator returns a rotator over the fixed testimonial set.
func NewRotator(interval time.Duration) *Rotator {
	return &Rotator{interval: interval, items: Testimonials}
}

// Start runs the rotation until ctx is cancelled.
func (r *Rotator) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			utils.GetLogger().Info("Testimonial rotator shutdown signal received")
			return
		case <-ticker.C:
			r.mu.Lock()
			r.index = (r.index + 1) % len(r.items)
			r.mu.Unlock()
		}
	}
}

// Current returns the testimonial at the current rotation index.
func (r *Rotator) Current() models.Testimonial {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[r.index]
}
