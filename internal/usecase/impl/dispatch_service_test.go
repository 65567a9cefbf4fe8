package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"geogram/config"
	"geogram/internal/domain/entity"
	"geogram/internal/domain/repository"
	"geogram/internal/domain/service"
	mockRepo "geogram/internal/mocks/repository"
	mockService "geogram/internal/mocks/service"
	"geogram/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// dispatchServiceFixtures holds all test dependencies for dispatch service tests.
type dispatchServiceFixtures struct {
	service          usecase.DispatchUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	eventRepo        *mockRepo.MockEventRepository
	deliveryLogRepo  *mockRepo.MockDeliveryLogRepository
	registry         *mockService.MockChannelRegistry
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	deliveryLogRepo := mockRepo.NewMockDeliveryLogRepository(t)
	registry := mockService.NewMockChannelRegistry(t)

	svc := NewDispatchService(DispatchServiceParams{
		SubscriptionRepo: subscriptionRepo,
		EventRepo:        eventRepo,
		DeliveryLogRepo:  deliveryLogRepo,
		Registry:         registry,
		Logger:           newDiscardLogger(),
		Config: &config.Config{
			Dispatch: config.DispatchConfig{
				MaxAttempts:    5,
				AttemptTimeout: time.Second,
			},
		},
	})

	return dispatchServiceFixtures{
		service:          svc,
		subscriptionRepo: subscriptionRepo,
		eventRepo:        eventRepo,
		deliveryLogRepo:  deliveryLogRepo,
		registry:         registry,
	}
}

func newDispatchTask(attempt int) *entity.DispatchTask {
	return &entity.DispatchTask{
		SubscriptionID: uuid.New(),
		EventID:        uuid.New(),
		Attempt:        attempt,
		State:          entity.DispatchStatePending,
	}
}

func webhookSubscription(id uuid.UUID) *entity.Subscription {
	return &entity.Subscription{
		ID:      id,
		Channel: entity.ChannelWebhook,
		Target:  "https://example.com/hooks/1",
		Active:  true,
	}
}

// expectNoPriorTerminal stubs the delivery log guard with an empty history.
func expectNoPriorTerminal(fx dispatchServiceFixtures, task *entity.DispatchTask) {
	fx.deliveryLogRepo.EXPECT().
		FindLatestDelivery(mock.Anything, task.SubscriptionID, task.EventID).
		Return(nil, repository.ErrDeliveryLogNotFound)
}

func TestDispatchService_Dispatch_Success(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)
	sub := webhookSubscription(task.SubscriptionID)
	event := &entity.Event{ID: task.EventID, Title: "Road closure"}

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(true)
	channel.EXPECT().
		Deliver(mock.Anything, sub, event).
		Return(nil)
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, task.EventID).
		Return(event, nil)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusSent && log.Terminal && log.Attempt == 1
		})).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateDelivered, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, entity.DispatchStateDelivered, task.State)
}

func TestDispatchService_Dispatch_TransientFailureRetries(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(2)
	sub := webhookSubscription(task.SubscriptionID)
	event := &entity.Event{ID: task.EventID}

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(true)
	channel.EXPECT().
		Deliver(mock.Anything, sub, event).
		Return(service.NewDeliveryError(entity.ChannelWebhook, errors.New("503 from endpoint")))
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, task.EventID).
		Return(event, nil)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusFailed && !log.Terminal && log.Attempt == 2
		})).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateRetrying, outcome.State)
	assert.True(t, outcome.Retryable)
	assert.Contains(t, outcome.Reason, "503 from endpoint")
}

func TestDispatchService_Dispatch_SuccessOnFinalAttempt(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(5)
	sub := webhookSubscription(task.SubscriptionID)
	event := &entity.Event{ID: task.EventID}

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(true)
	channel.EXPECT().
		Deliver(mock.Anything, sub, event).
		Return(nil)
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, task.EventID).
		Return(event, nil)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusSent && log.Attempt == 5
		})).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateDelivered, outcome.State)
	assert.False(t, outcome.Retryable)
}

func TestDispatchService_Dispatch_BudgetExhaustedEscalates(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(5)
	sub := webhookSubscription(task.SubscriptionID)
	event := &entity.Event{ID: task.EventID}

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(true)
	channel.EXPECT().
		Deliver(mock.Anything, sub, event).
		Return(service.NewDeliveryError(entity.ChannelWebhook, errors.New("still down")))
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, task.EventID).
		Return(event, nil)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusEscalated && log.Terminal && log.Attempt == 5
		})).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateFailed, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Contains(t, outcome.Reason, "attempt budget exhausted")
}

func TestDispatchService_Dispatch_MissingSubscriptionTerminal(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(nil, repository.ErrSubscriptionNotFound)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Status == entity.DeliveryStatusFailed && log.Terminal
		})).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateFailed, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, "subscription missing or inactive", outcome.Reason)
}

func TestDispatchService_Dispatch_UnknownChannelTerminal(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)
	sub := webhookSubscription(task.SubscriptionID)
	sub.Channel = entity.Channel("carrier-pigeon")

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)
	fx.registry.EXPECT().
		Resolve(sub.Channel).
		Return(nil, &service.UnknownChannelError{Name: sub.Channel})
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.AnythingOfType("*entity.DeliveryLog")).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateFailed, outcome.State)
	assert.False(t, outcome.Retryable)
}

func TestDispatchService_Dispatch_MissingEventTerminal(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)
	sub := webhookSubscription(task.SubscriptionID)

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(true)
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.eventRepo.EXPECT().
		FindEventByID(ctx, task.EventID).
		Return(nil, repository.ErrEventNotFound)
	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.AnythingOfType("*entity.DeliveryLog")).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateFailed, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, "event missing", outcome.Reason)
}

func TestDispatchService_Dispatch_SelfContainedChannelSkipsEventLoad(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)
	sub := webhookSubscription(task.SubscriptionID)
	sub.Channel = entity.ChannelEmail

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(false)
	channel.EXPECT().
		Deliver(mock.Anything, sub, (*entity.Event)(nil)).
		Return(nil)
	fx.registry.EXPECT().Resolve(entity.ChannelEmail).Return(channel, nil)

	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.AnythingOfType("*entity.DeliveryLog")).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateDelivered, outcome.State)
	fx.eventRepo.AssertNotCalled(t, "FindEventByID", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_TerminalTaskSkipped(t *testing.T) {
	fx := createTestDispatchService(t)

	task := newDispatchTask(3)
	task.State = entity.DispatchStateDelivered

	outcome, err := fx.service.Dispatch(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateDelivered, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, "task already terminal", outcome.Reason)
	fx.subscriptionRepo.AssertNotCalled(t, "FindActiveSubscriptionByID", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_PriorTerminalSettles(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(2)

	fx.deliveryLogRepo.EXPECT().
		FindLatestDelivery(ctx, task.SubscriptionID, task.EventID).
		Return(&entity.DeliveryLog{
			SubscriptionID: task.SubscriptionID,
			EventID:        task.EventID,
			Status:         entity.DeliveryStatusSent,
			Terminal:       true,
		}, nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateDelivered, outcome.State)
	assert.False(t, outcome.Retryable)
	assert.Equal(t, "already settled", outcome.Reason)
	fx.subscriptionRepo.AssertNotCalled(t, "FindActiveSubscriptionByID", mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_PriorEscalationSettlesAsFailed(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)

	fx.deliveryLogRepo.EXPECT().
		FindLatestDelivery(ctx, task.SubscriptionID, task.EventID).
		Return(&entity.DeliveryLog{
			Status:   entity.DeliveryStatusEscalated,
			Terminal: true,
		}, nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateFailed, outcome.State)
	assert.False(t, outcome.Retryable)
}

func TestDispatchService_Dispatch_UnclassifiedErrorTreatedTransient(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)
	sub := webhookSubscription(task.SubscriptionID)

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(false)
	channel.EXPECT().Name().Return(entity.ChannelWebhook)
	channel.EXPECT().
		Deliver(mock.Anything, sub, (*entity.Event)(nil)).
		Return(errors.New("dial tcp: i/o timeout"))
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.AnythingOfType("*entity.DeliveryLog")).
		Return(nil)

	outcome, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, entity.DispatchStateRetrying, outcome.State)
	assert.True(t, outcome.Retryable)
}

func TestDispatchService_Dispatch_SubscriptionLookupErrorPropagates(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(1)

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.Dispatch(ctx, task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load subscription")
}

func TestDispatchService_Dispatch_ZeroAttemptNormalized(t *testing.T) {
	fx := createTestDispatchService(t)

	ctx := context.Background()
	task := newDispatchTask(0)
	sub := webhookSubscription(task.SubscriptionID)

	expectNoPriorTerminal(fx, task)
	fx.subscriptionRepo.EXPECT().
		FindActiveSubscriptionByID(ctx, task.SubscriptionID).
		Return(sub, nil)

	channel := mockService.NewMockChannel(t)
	channel.EXPECT().RequiresEvent().Return(false)
	channel.EXPECT().
		Deliver(mock.Anything, sub, (*entity.Event)(nil)).
		Return(nil)
	fx.registry.EXPECT().Resolve(entity.ChannelWebhook).Return(channel, nil)

	fx.deliveryLogRepo.EXPECT().
		CreateDeliveryLog(ctx, mock.MatchedBy(func(log *entity.DeliveryLog) bool {
			return log.Attempt == 1
		})).
		Return(nil)

	_, err := fx.service.Dispatch(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, 1, task.Attempt)
}
