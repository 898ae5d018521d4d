package s3client

import (
	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// IsConfigured сообщает, настроено ли файловое хранилище
func IsConfigured() bool {
	return Client != nil
}
