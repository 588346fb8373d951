package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "store-42", "Order shipped", "Order #7 is on its way",
		map[string]string{"order_id": "7"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "store-42", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Order shipped", msg.Notification.Title)
	assert.Equal(t, "7", msg.Data["order_id"])
}

func TestFirebaseService_SendTopicNotification_InvalidTopic(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "store 42/with spaces", "t", "b", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTopic)
	assert.True(t, IsPermanentSendError(err))
	assert.Empty(t, sender.sent)
}

func TestFirebaseService_SendTopicNotification_SendError(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	err := svc.SendTopicNotification(context.Background(), "store-1", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send topic notification")
	assert.False(t, IsPermanentSendError(err))
}
