package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/order"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

func sampleOrder() domain.Order {
	return domain.Order{
		ID:         301,
		CustomerID: 101,
		ProductID:  205,
		OrderDate:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Address:    "Lenina 1",
	}
}

func newService() (order.Service, *memory.Notifier) {
	notifier := memory.NewNotifier()
	return order.New(memory.NewOrderRepository(), notifier, nil, nil), notifier
}

func TestRegisterAssignsKeysAndNotifies(t *testing.T) {
	svc, notifier := newService()
	ctx := context.Background()

	stored, err := svc.Register(ctx, sampleOrder())
	require.NoError(t, err)
	require.Equal(t, domain.OrdersPartition, stored.PartitionKey)
	require.Equal(t, "301", stored.RowKey)
	require.NotEmpty(t, stored.ETag)

	messages := notifier.Messages()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "New order by Customer 101 for Product 205 at Lenina 1")
}

func TestRegisterRejectsDuplicateID(t *testing.T) {
	svc, notifier := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, sampleOrder())
	require.NoError(t, err)

	dup := sampleOrder()
	dup.Address = "Mira 5"
	_, err = svc.Register(ctx, dup)
	require.ErrorIs(t, err, domain.ErrDuplicateID)

	got, err := svc.Get(ctx, "301")
	require.NoError(t, err)
	require.Equal(t, "Lenina 1", got.Address)
	require.Len(t, notifier.Messages(), 1)
}

func TestRegisterNormalizesOrderDateToUTC(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	zone := time.FixedZone("UTC+2", 2*60*60)
	o := sampleOrder()
	o.OrderDate = time.Date(2024, 5, 1, 14, 30, 0, 0, zone)

	stored, err := svc.Register(ctx, o)
	require.NoError(t, err)
	require.Equal(t, time.UTC, stored.OrderDate.Location())
	require.Equal(t, 12, stored.OrderDate.Hour())
}

func TestEditOverwritesWithoutNotification(t *testing.T) {
	svc, notifier := newService()
	ctx := context.Background()

	first, err := svc.Register(ctx, sampleOrder())
	require.NoError(t, err)

	edited := sampleOrder()
	edited.Address = "Mira 5"
	stored, err := svc.Edit(ctx, edited)
	require.NoError(t, err)
	require.Equal(t, "Mira 5", stored.Address)
	require.NotEqual(t, first.ETag, stored.ETag)

	got, err := svc.Get(ctx, "301")
	require.NoError(t, err)
	require.Equal(t, "Mira 5", got.Address)

	// Уведомление только от регистрации.
	require.Len(t, notifier.Messages(), 1)
}

func TestEditCreatesMissingOrder(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	stored, err := svc.Edit(ctx, sampleOrder())
	require.NoError(t, err)
	require.Equal(t, "301", stored.RowKey)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestEditRejectsInvalidOrder(t *testing.T) {
	svc, _ := newService()

	bad := sampleOrder()
	bad.Address = ""
	_, err := svc.Edit(context.Background(), bad)
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorIs(t, err, domain.ErrAddressRequired)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Register(ctx, sampleOrder())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "301"))
	require.NoError(t, svc.Delete(ctx, "301"))

	_, err = svc.Get(ctx, "301")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
