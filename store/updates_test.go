package store

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	by, ok := IncrementBy(Increment(3))
	require.True(t, ok)
	assert.Equal(t, int64(3), by)

	_, ok = IncrementBy("not-a-sentinel")
	assert.False(t, ok)

	assert.True(t, IsServerTimestamp(ServerTimestamp))
	assert.False(t, IsServerTimestamp("not-a-sentinel"))
	assert.False(t, IsServerTimestamp(nil))
}

func TestTranslateValueResolvesSentinels(t *testing.T) {
	assert.Equal(t, firestore.ServerTimestamp, translateValue(ServerTimestamp))
	assert.Equal(t, firestore.Increment(2), translateValue(Increment(2)))
	assert.Equal(t, "plain", translateValue("plain"))
}

func TestTranslateValueRecursesIntoMaps(t *testing.T) {
	got := translateValue(map[string]interface{}{
		"receivedBy":  "Karim",
		"deliveredAt": ServerTimestamp,
	})

	m, ok := got.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Karim", m["receivedBy"])
	assert.Equal(t, firestore.ServerTimestamp, m["deliveredAt"])
}

func TestToUpdatesBuildsOnePathPerField(t *testing.T) {
	updates := toUpdates(map[string]interface{}{
		"status":    "completed",
		"updatedAt": ServerTimestamp,
	})

	require.Len(t, updates, 2)
	byPath := map[string]interface{}{}
	for _, u := range updates {
		byPath[u.Path] = u.Value
	}
	assert.Equal(t, "completed", byPath["status"])
	assert.Equal(t, firestore.ServerTimestamp, byPath["updatedAt"])
}
