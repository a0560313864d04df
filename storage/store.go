package storage

import (
	"context"

	"github.com/finch-technologies/media-publisher/log"
	"github.com/finch-technologies/media-publisher/storage/types"
)

// Store writes obj and returns its public URL.
//
// The URL is derived from bucket and key alone, so it is returned even when
// the write fails. A failed write is logged here and also returned; callers
// that want best-effort semantics ignore the error and keep the URL.
func Store(ctx context.Context, backend Backend, obj types.Object) (string, error) {
	err := backend.PutObject(ctx, obj)
	if err != nil {
		log.ErrorFields("upload failed", map[string]any{
			"bucket": obj.Bucket,
			"key":    obj.Key,
			"error":  err.Error(),
		})
	} else {
		log.Infof("uploaded filename: %s", obj.Key)
	}

	url := backend.ObjectURL(obj.Bucket, obj.Key)
	log.Debugf("location: %s", url)

	return url, err
}
