// Package notify announces finished publications to downstream consumers.
package notify

import (
	"context"
	"errors"
	"time"
)

type Event struct {
	Bucket       string    `json:"bucket"`
	MetadataURL  string    `json:"metadataUrl"`
	ImageURL     string    `json:"imageUrl"`
	AnimationURL *string   `json:"animationUrl,omitempty"`
	PublishedAt  time.Time `json:"publishedAt"`
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

type multi []Notifier

// Multi sends every event to each notifier in turn. All notifiers are tried;
// the returned error joins their failures.
func Multi(notifiers ...Notifier) Notifier {
	return multi(notifiers)
}

func (m multi) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
