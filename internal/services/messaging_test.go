package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-private-chat/internal/idgen"
	"github.com/sbilibin2017/gw-private-chat/internal/models"
	"github.com/sbilibin2017/gw-private-chat/internal/presence"
	"github.com/sbilibin2017/gw-private-chat/internal/repositories"
	"github.com/sbilibin2017/gw-private-chat/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConversationRepo(t *testing.T) *repositories.ConversationFileRepository {
	t.Helper()
	repo, err := repositories.NewConversationFileRepository(
		filepath.Join(t.TempDir(), repositories.ConversationsFileName),
		repositories.DefaultMessageLimit,
		idgen.New(),
	)
	require.NoError(t, err)
	return repo
}

func privateMessage(body string) models.Message {
	return models.Message{
		SenderID:     "A",
		SenderName:   "alice",
		ReceiverID:   "B",
		ReceiverName: "bob",
		Message:      body,
	}
}

func TestMessagingService_SendAndFetchIsSymmetric(t *testing.T) {
	ctx := context.Background()
	tracker := presence.NewMemoryTracker(presence.DefaultWindow)
	svc := services.NewMessagingService(newConversationRepo(t), tracker, nil)

	stored, err := svc.SendPrivateMessage(ctx, privateMessage("hello"))
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.NotEmpty(t, stored.Timestamp)

	ab, err := svc.FetchPrivateMessages(ctx, "A", "B")
	require.NoError(t, err)
	ba, err := svc.FetchPrivateMessages(ctx, "B", "A")
	require.NoError(t, err)

	assert.Equal(t, []models.Message{stored}, ab)
	assert.Equal(t, ab, ba)

	status, err := tracker.ListWithStatus(ctx, []models.User{{ID: "A"}, {ID: "B"}})
	require.NoError(t, err)
	assert.True(t, status[0].IsOnline, "sender is refreshed")
	assert.False(t, status[1].IsOnline)
}

func TestMessagingService_RetainsLast100(t *testing.T) {
	ctx := context.Background()
	svc := services.NewMessagingService(newConversationRepo(t), presence.NewMemoryTracker(presence.DefaultWindow), nil)

	for i := 1; i <= 101; i++ {
		_, err := svc.SendPrivateMessage(ctx, privateMessage(fmt.Sprintf("#%d", i)))
		require.NoError(t, err)
	}

	got, err := svc.FetchPrivateMessages(ctx, "B", "A")
	require.NoError(t, err)
	require.Len(t, got, 100)
	assert.Equal(t, "#2", got[0].Message)
	assert.Equal(t, "#101", got[99].Message)
}

func TestMessagingService_SendMissingField(t *testing.T) {
	ctx := context.Background()
	svc := services.NewMessagingService(newConversationRepo(t), presence.NewMemoryTracker(presence.DefaultWindow), nil)

	msg := privateMessage("")
	_, err := svc.SendPrivateMessage(ctx, msg)
	assert.ErrorIs(t, err, services.ErrMissingField)

	got, err := svc.FetchPrivateMessages(ctx, "A", "B")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMessagingService_FetchMissingIDs(t *testing.T) {
	svc := services.NewMessagingService(newConversationRepo(t), presence.NewMemoryTracker(presence.DefaultWindow), nil)

	_, err := svc.FetchPrivateMessages(context.Background(), "", "B")
	assert.ErrorIs(t, err, services.ErrMissingField)
	_, err = svc.FetchPrivateMessages(context.Background(), "A", " ")
	assert.ErrorIs(t, err, services.ErrMissingField)
}

func TestMessagingService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name    string
		userID  string
		online  bool
		setup   func(m *services.MockStatusTracker)
		wantErr error
	}{
		{
			name:   "online",
			userID: "A",
			online: true,
			setup: func(m *services.MockStatusTracker) {
				m.EXPECT().SetOnline(gomock.Any(), "A").Return(nil)
			},
		},
		{
			name:   "offline",
			userID: "A",
			online: false,
			setup: func(m *services.MockStatusTracker) {
				m.EXPECT().SetOffline(gomock.Any(), "A").Return(nil)
			},
		},
		{
			name:    "missing user id",
			userID:  "",
			online:  true,
			setup:   func(m *services.MockStatusTracker) {},
			wantErr: services.ErrMissingField,
		},
		{
			name:   "tracker error",
			userID: "A",
			online: true,
			setup: func(m *services.MockStatusTracker) {
				m.EXPECT().SetOnline(gomock.Any(), "A").Return(errors.New("redis down"))
			},
			wantErr: errors.New("redis down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTracker := services.NewMockStatusTracker(ctrl)
			tt.setup(mockTracker)

			svc := services.NewMessagingService(services.NewMockConversationStore(ctrl), mockTracker, nil)

			err := svc.SetStatus(ctx, tt.userID, tt.online)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessagingService_PublishesToKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockStore := services.NewMockConversationStore(ctrl)
	mockTracker := services.NewMockStatusTracker(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMessagingService(mockStore, mockTracker, mockKafka)

	in := privateMessage("hi")
	stored := in
	stored.ID = "1700000000000"
	stored.Timestamp = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(repositories.TimestampLayout)

	mockTracker.EXPECT().SetOnline(gomock.Any(), "A").Return(nil)
	mockStore.EXPECT().Append(gomock.Any(), "A", "B", in).Return(stored, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "A_B", string(msgs[0].Key))

			var event models.MessageEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "A_B", event.ConversationID)
			assert.Equal(t, stored, event.Message)
			return nil
		})

	got, err := svc.SendPrivateMessage(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestMessagingService_KafkaFailureIsNotReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockConversationStore(ctrl)
	mockTracker := services.NewMockStatusTracker(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMessagingService(mockStore, mockTracker, mockKafka)

	in := privateMessage("hi")
	mockTracker.EXPECT().SetOnline(gomock.Any(), "A").Return(errors.New("presence down"))
	mockStore.EXPECT().Append(gomock.Any(), "A", "B", in).Return(in, nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := svc.SendPrivateMessage(context.Background(), in)
	assert.NoError(t, err)
}

func TestMessagingService_StoreErrorSkipsPublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := services.NewMockConversationStore(ctrl)
	mockTracker := services.NewMockStatusTracker(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMessagingService(mockStore, mockTracker, mockKafka)

	in := privateMessage("hi")
	storeErr := errors.New("disk full")
	mockTracker.EXPECT().SetOnline(gomock.Any(), "A").Return(nil)
	mockStore.EXPECT().Append(gomock.Any(), "A", "B", in).Return(models.Message{}, storeErr)

	_, err := svc.SendPrivateMessage(context.Background(), in)
	assert.ErrorIs(t, err, storeErr)
}
