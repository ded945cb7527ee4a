package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatedObjectKeys(t *testing.T) {
	payload := []byte(`{
		"EventName": "s3:ObjectCreated:Put",
		"Records": [
			{
				"eventName": "s3:ObjectCreated:Put",
				"s3": {
					"bucket": {"name": "benfordapp"},
					"object": {"key": "benfordapp%2Falice%2Freport-42.pdf", "size": 1024}
				}
			},
			{
				"eventName": "s3:ObjectRemoved:Delete",
				"s3": {
					"bucket": {"name": "benfordapp"},
					"object": {"key": "benfordapp%2Falice%2Fold.pdf"}
				}
			}
		]
	}`)

	keys, err := CreatedObjectKeys(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"benfordapp/alice/report-42.pdf"}, keys)
}

func TestCreatedObjectKeys_PlusDecodesToSpace(t *testing.T) {
	payload := []byte(`{"Records":[{"eventName":"s3:ObjectCreated:Put","s3":{"object":{"key":"benfordapp/alice/annual+report-1.pdf"}}}]}`)

	keys, err := CreatedObjectKeys(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"benfordapp/alice/annual report-1.pdf"}, keys)
}

func TestCreatedObjectKeys_EmptyRecords(t *testing.T) {
	keys, err := CreatedObjectKeys([]byte(`{"Records":[]}`))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestCreatedObjectKeys_MalformedJSON(t *testing.T) {
	_, err := CreatedObjectKeys([]byte(`{"Records":`))
	assert.Error(t, err)
}

func TestCreatedObjectKeys_BadKeyEncoding(t *testing.T) {
	payload := []byte(`{"Records":[{"eventName":"s3:ObjectCreated:Put","s3":{"object":{"key":"bad%zz"}}}]}`)
	_, err := CreatedObjectKeys(payload)
	assert.Error(t, err)
}
