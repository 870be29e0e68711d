package services

import (
	"context"
	"errors"
	"testing"

	"voxia/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent    []*gomail.Message
	sendErr error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSendWithPdfAttachesStoredBlob(t *testing.T) {
	blobs := newFakeBlobStore()
	fileID, err := blobs.Upload(context.Background(), "form.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)

	sender := &fakeSender{}
	svc := EmailService{Blobs: blobs, Sender: sender, From: "noreply@voxia.local"}

	err = svc.SendWithPdf(context.Background(), "alice@example.com", "Your request form", "", "", fileID.Hex())
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
}

func TestSendWithPdfUnknownBlobSendsNothing(t *testing.T) {
	sender := &fakeSender{}
	svc := EmailService{Blobs: newFakeBlobStore(), Sender: sender, From: "noreply@voxia.local"}

	err := svc.SendWithPdf(context.Background(), "alice@example.com", "Your request form", "", "", primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, sender.sent, "no mail may go out when the blob is missing")
}

func TestSendWithPdfMalformedID(t *testing.T) {
	svc := EmailService{Blobs: newFakeBlobStore(), Sender: &fakeSender{}, From: "noreply@voxia.local"}

	err := svc.SendWithPdf(context.Background(), "alice@example.com", "subject", "", "", "nope")
	require.Error(t, err)
	assert.True(t, domain.IsInvalidID(err))
}

func TestSendWithPdfTransportFailure(t *testing.T) {
	blobs := newFakeBlobStore()
	fileID, err := blobs.Upload(context.Background(), "form.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)

	sender := &fakeSender{sendErr: errors.New("connection refused")}
	svc := EmailService{Blobs: blobs, Sender: sender, From: "noreply@voxia.local"}

	err = svc.SendWithPdf(context.Background(), "alice@example.com", "subject", "", "", fileID.Hex())
	require.Error(t, err)
	assert.True(t, domain.IsMailTransport(err))
}

func TestSendResetPassword(t *testing.T) {
	sender := &fakeSender{}
	svc := EmailService{Sender: sender, From: "noreply@voxia.local"}

	require.NoError(t, svc.SendResetPassword("bob@example.com", "http://localhost:3000/reset-password?token=abc"))
	require.Len(t, sender.sent, 1)
}
