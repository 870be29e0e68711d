package storage

import (
	"bytes"
	"context"
	"errors"

	"voxia/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// GridFSBlobStore stores generated PDFs in a GridFS bucket keyed by ObjectID.
type GridFSBlobStore struct {
	Bucket *gridfs.Bucket
}

func NewGridFSBlobStore(bucket *gridfs.Bucket) GridFSBlobStore {
	return GridFSBlobStore{Bucket: bucket}
}

// Upload writes data under a fresh file id and returns it. The driver's
// gridfs API is deadline-based, so the context deadline is carried over.
func (s GridFSBlobStore) Upload(ctx context.Context, filename string, data []byte) (primitive.ObjectID, error) {
	if dl, ok := ctx.Deadline(); ok {
		_ = s.Bucket.SetWriteDeadline(dl)
	}
	stream, err := s.Bucket.OpenUploadStream(filename)
	if err != nil {
		return primitive.NilObjectID, domain.StorageError{Op: "open upload stream", Err: err}
	}
	if _, err := stream.Write(data); err != nil {
		_ = stream.Abort()
		return primitive.NilObjectID, domain.StorageError{Op: "upload blob", Err: err}
	}
	if err := stream.Close(); err != nil {
		return primitive.NilObjectID, domain.StorageError{Op: "finalize upload", Err: err}
	}
	id, ok := stream.FileID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, domain.StorageError{Op: "upload blob", Err: errors.New("unexpected file id type")}
	}
	return id, nil
}

// Download reads the whole blob and its stored filename.
func (s GridFSBlobStore) Download(ctx context.Context, id primitive.ObjectID) ([]byte, string, error) {
	if dl, ok := ctx.Deadline(); ok {
		_ = s.Bucket.SetReadDeadline(dl)
	}
	stream, err := s.Bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", domain.NotFoundError{Resource: "file"}
		}
		return nil, "", domain.StorageError{Op: "open download stream", Err: err}
	}
	defer stream.Close()

	name := ""
	if f := stream.GetFile(); f != nil {
		name = f.Name
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, "", domain.StorageError{Op: "download blob", Err: err}
	}
	return buf.Bytes(), name, nil
}

func (s GridFSBlobStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if dl, ok := ctx.Deadline(); ok {
		_ = s.Bucket.SetWriteDeadline(dl)
	}
	if err := s.Bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return domain.NotFoundError{Resource: "file"}
		}
		return domain.StorageError{Op: "delete blob", Err: err}
	}
	return nil
}
