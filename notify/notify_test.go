package notify

import (
	"context"
	"errors"
	"testing"
)

type countingNotifier struct {
	calls int
	err   error
}

func (c *countingNotifier) Notify(ctx context.Context, event Event) error {
	c.calls++
	return c.err
}

func TestMulti(t *testing.T) {
	failure := errors.New("unavailable")

	tests := []struct {
		name    string
		errs    []error
		wantErr bool
	}{
		{name: "all succeed", errs: []error{nil, nil}},
		{name: "first fails", errs: []error{failure, nil}, wantErr: true},
		{name: "none", errs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var notifiers []Notifier
			var counters []*countingNotifier
			for _, err := range tt.errs {
				c := &countingNotifier{err: err}
				counters = append(counters, c)
				notifiers = append(notifiers, c)
			}

			err := Multi(notifiers...).Notify(context.Background(), Event{Bucket: "b"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr && !errors.Is(err, failure) {
				t.Errorf("expected %v in %v", failure, err)
			}

			for i, c := range counters {
				if c.calls != 1 {
					t.Errorf("notifier %d called %d times", i, c.calls)
				}
			}
		})
	}
}
