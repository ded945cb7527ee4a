// Package events decodes S3-compatible bucket notifications. MinIO (and
// AWS S3) publish one JSON document per event, each carrying a Records
// array; object keys inside records are URL-encoded.
package events

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

const objectCreatedPrefix = "s3:ObjectCreated:"

type notification struct {
	Records []record `json:"Records"`
}

type record struct {
	EventName string `json:"eventName"`
	S3        struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key  string `json:"key"`
			Size int64  `json:"size"`
		} `json:"object"`
	} `json:"s3"`
}

// CreatedObjectKeys parses a bucket-notification payload and returns the
// decoded keys of objects created by it. Records for other event types
// (deletions, access events) are skipped.
func CreatedObjectKeys(payload []byte) ([]string, error) {
	var n notification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("decoding bucket notification: %w", err)
	}

	var keys []string
	for _, r := range n.Records {
		if !strings.HasPrefix(r.EventName, objectCreatedPrefix) {
			continue
		}
		key, err := url.QueryUnescape(r.S3.Object.Key)
		if err != nil {
			return nil, fmt.Errorf("decoding object key %q: %w", r.S3.Object.Key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
