package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupMinioContainer(t *testing.T) (Config, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image: "minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     "minioadmin",
			"MINIO_ROOT_PASSWORD": "minioadmin",
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "9000")

	config := Config{
		Endpoint:  fmt.Sprintf("%s:%d", host, port.Int()),
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "audio-uploads",
		UseSSL:    false,
	}

	teardown := func() {
		container.Terminate(context.Background())
	}

	return config, teardown
}

func TestBlobStorage_Store(t *testing.T) {
	config, teardown := setupMinioContainer(t)
	defer teardown()

	ctx := context.Background()

	// Creates the bucket on first use.
	s, err := NewBlobStorage(ctx, config)
	assert.NoError(t, err)

	url, err := s.Store(ctx, []byte("fake mp3 bytes"), "note.mp3", "audio/mpeg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, fmt.Sprintf("http://%s/%s/", config.Endpoint, config.Bucket)))
	assert.True(t, strings.HasSuffix(url, "-note.mp3"))

	// Reconnecting against the existing bucket works as well.
	s2, err := NewBlobStorage(ctx, config)
	assert.NoError(t, err)

	_, err = s2.Store(ctx, []byte("more bytes"), "second.wav", "audio/wav")
	assert.NoError(t, err)
}

func TestBlobStorage_FileURL(t *testing.T) {
	s := &BlobStorage{config: Config{Endpoint: "blobs.example.com", Bucket: "audio-uploads", UseSSL: true}}
	assert.Equal(t, "https://blobs.example.com/audio-uploads/123-note.mp3", s.FileURL("123-note.mp3"))

	s = &BlobStorage{config: Config{Endpoint: "localhost:9000", Bucket: "audio-uploads"}}
	assert.Equal(t, "http://localhost:9000/audio-uploads/123-note.mp3", s.FileURL("123-note.mp3"))
}
