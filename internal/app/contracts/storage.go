package contracts

import "context"

type Storage interface {
	UploadJSONObject(ctx context.Context, bucketName, objectName string, data []byte) (string, error)
}
