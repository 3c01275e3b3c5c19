package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_UnsupportedScheme(t *testing.T) {
	tests := []string{
		"",
		"mysql://root@localhost/saa",
		"localhost:5432",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			store, err := Open(context.Background(), url, "saa_archi")
			assert.Error(t, err)
			assert.Nil(t, store)
		})
	}
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), "memory://", "")
	assert.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
}
