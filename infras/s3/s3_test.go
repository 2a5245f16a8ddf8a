package s3_test

import (
	"context"
	"testing"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	"grandplaza/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "https://storage.example.com/"
	cfg.External.S3.BucketName = "documents"

	assert.Equal(t, "https://storage.example.com/documents/documents/invoice/invoice-INV001.txt",
		s3.ObjectURL(cfg, "documents/invoice/invoice-INV001.txt"))

	cfg.External.S3.PublicDomain = "https://cdn.grandplaza.com/"
	assert.Equal(t, "https://cdn.grandplaza.com/documents/invoice/invoice-INV001.txt",
		s3.ObjectURL(cfg, "documents/invoice/invoice-INV001.txt"))
}

func TestObjectName(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = "https://storage.example.com"
	cfg.External.S3.BucketName = "documents"
	cfg.External.S3.PublicDomain = "https://cdn.grandplaza.com"

	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "public domain", url: "https://cdn.grandplaza.com/documents/inquiry/inquiry-INQ001.txt", want: "documents/inquiry/inquiry-INQ001.txt"},
		{name: "api endpoint", url: "https://storage.example.com/documents/invoice/invoice-INV002.txt", want: "invoice/invoice-INV002.txt"},
		{name: "foreign url", url: "https://elsewhere.example.com/file.txt", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.ObjectName(cfg, tt.url))
		})
	}
}

func TestNew_WithoutBucket(t *testing.T) {
	client := s3.New(&config.Config{}, mocks.NewOtel())

	_, err := client.UploadFileBytes(context.Background(), "documents", "invoice-INV001.txt", "text/plain", []byte("x"))
	assert.ErrorIs(t, err, s3.ErrStorageDisabled)
	assert.Empty(t, client.GetObjectNameFromURL("https://cdn.grandplaza.com/x"))
}
