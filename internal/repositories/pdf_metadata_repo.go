package repositories

import (
	"context"

	"voxia/internal/domain"
	"voxia/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PdfMetadataRepository wraps the pdfmetadatas collection.
type PdfMetadataRepository struct {
	Col *mongo.Collection
}

func NewPdfMetadataRepository(db *mongo.Database) PdfMetadataRepository {
	return PdfMetadataRepository{Col: db.Collection("pdfmetadatas")}
}

func (r PdfMetadataRepository) Insert(ctx context.Context, md models.PdfMetadata) (models.PdfMetadata, error) {
	res, err := r.Col.InsertOne(ctx, md)
	if err != nil {
		return md, domain.StorageError{Op: "insert pdf metadata", Err: err}
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		md.ID = id
	}
	return md, nil
}

func (r PdfMetadataRepository) DeleteByFileID(ctx context.Context, fileID primitive.ObjectID) error {
	if _, err := r.Col.DeleteOne(ctx, bson.M{"fileId": fileID}); err != nil {
		return domain.StorageError{Op: "delete pdf metadata", Err: err}
	}
	return nil
}
