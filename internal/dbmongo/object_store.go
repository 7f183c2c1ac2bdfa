package dbmongo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ObjectStore is a path-addressed blob store backed by GridFS. The storage
// path doubles as the GridFS filename so callers never see ObjectIDs.
type ObjectStore struct {
	gridFS *gridfs.Bucket
}

func NewObjectStore(mongoClient *MongoClient) *ObjectStore {
	return &ObjectStore{
		gridFS: mongoClient.GridFS,
	}
}

type StoredBlob struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	UploaderID  int64     `json:"uploader_id"`
	StoredAt    time.Time `json:"stored_at"`
}

// Put stores a blob under path. Writing the same path twice creates a new
// GridFS revision; the catalog's unique path index keeps that from happening
// under normal operation.
func (os *ObjectStore) Put(ctx context.Context, path, contentType string, uploaderID int64, data []byte) (*StoredBlob, error) {
	metadata := bson.M{
		"content_type": contentType,
		"uploader_id":  uploaderID,
		"stored_at":    time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := os.gridFS.OpenUploadStream(path, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("blob copy failed: %w", err)
	}

	return &StoredBlob{
		Path:        path,
		Size:        size,
		ContentType: contentType,
		UploaderID:  uploaderID,
		StoredAt:    time.Now(),
	}, nil
}

// Get opens a download stream for the blob stored under path.
func (os *ObjectStore) Get(ctx context.Context, path string) (io.Reader, *StoredBlob, error) {
	stream, err := os.gridFS.OpenDownloadStreamByName(path)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	blob := &StoredBlob{
		Path:        path,
		Size:        fileInfo.Length,
		ContentType: getStringFromMap(metadata, "content_type"),
		StoredAt:    fileInfo.UploadDate,
	}

	return stream, blob, nil
}

// Delete removes every revision stored under path.
func (os *ObjectStore) Delete(ctx context.Context, path string) error {
	cursor, err := os.gridFS.Find(bson.M{"filename": path})
	if err != nil {
		return fmt.Errorf("blob lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var file struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&file); err != nil {
			return fmt.Errorf("blob decode failed: %w", err)
		}
		if err := os.gridFS.Delete(file.ID); err != nil {
			return fmt.Errorf("blob delete failed: %w", err)
		}
	}
	return cursor.Err()
}

// Helper function for metadata extraction
func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
