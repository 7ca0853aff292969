package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/auth"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/customer"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/order"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/service/product"
	"github.com/vladislavdragonenkov/retail-backoffice/internal/storage/memory"
)

// BackofficeLifecycleTestSuite проверяет сквозной сценарий back-office:
// учётные записи, клиенты, каталог с изображениями и заказы.
type BackofficeLifecycleTestSuite struct {
	suite.Suite
	auth      auth.Service
	customers customer.Service
	products  product.Service
	orders    order.Service
	blobs     domain.BlobStore
	notifier  *memory.Notifier
}

func (suite *BackofficeLifecycleTestSuite) SetupTest() {
	baseLogger := log.New()
	baseLogger.SetLevel(log.WarnLevel) // Уменьшаем шум в тестах
	logger := baseLogger.WithField("component", "integration-test")

	suite.notifier = memory.NewNotifier()
	suite.blobs = memory.NewBlobStore()

	suite.auth = auth.New(memory.NewUserRepository(), memory.NewSessionStore(), time.Hour, logger)
	suite.customers = customer.New(memory.NewCustomerRepository(), suite.notifier, nil, logger)
	suite.products = product.New(memory.NewProductRepository(), suite.blobs, suite.notifier, nil, logger)
	suite.orders = order.New(memory.NewOrderRepository(), suite.notifier, nil, logger)
}

func (suite *BackofficeLifecycleTestSuite) TestFullLifecycle() {
	ctx := context.Background()

	// Административная учётная запись и сессия.
	require.NoError(suite.T(), suite.auth.Register(ctx, "ops@retail.admin", "Ops", "secret-1"))
	session, err := suite.auth.Login(ctx, "ops@retail.admin", "secret-1")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), domain.RoleAdmin, session.Role)

	// Клиент.
	storedCustomer, err := suite.customers.Register(ctx, domain.Customer{
		ID:    101,
		Name:  "Ana",
		Email: "ana@example.com",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "101", storedCustomer.RowKey)

	// Товар с изображением.
	storedProduct, err := suite.products.Add(ctx, domain.Product{
		ID:       205,
		Name:     "Widget",
		Price:    "9.99",
		Category: "tools",
	}, strings.NewReader("png-bytes"), "widget.png")
	require.NoError(suite.T(), err)
	require.Contains(suite.T(), storedProduct.ImageRef, "widget.png")

	// Заказ связывает клиента и товар.
	storedOrder, err := suite.orders.Register(ctx, domain.Order{
		ID:         301,
		CustomerID: storedCustomer.ID,
		ProductID:  storedProduct.ID,
		OrderDate:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Address:    "Lenina 1",
	})
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "301", storedOrder.RowKey)

	// Каждая успешная запись отправила уведомление.
	messages := suite.notifier.Messages()
	require.Len(suite.T(), messages, 3)
	require.Contains(suite.T(), messages[0], "New Customer Added with name Ana")
	require.Contains(suite.T(), messages[1], "Successfully added: Widget at R9.99")
	require.Contains(suite.T(), messages[2], "New order by Customer 101 for Product 205")
}

func (suite *BackofficeLifecycleTestSuite) TestDuplicateRegistrationsAreRejected() {
	ctx := context.Background()

	_, err := suite.customers.Register(ctx, domain.Customer{ID: 101, Name: "Ana"})
	require.NoError(suite.T(), err)
	_, err = suite.customers.Register(ctx, domain.Customer{ID: 101, Name: "Boris"})
	require.ErrorIs(suite.T(), err, domain.ErrDuplicateID)

	o := domain.Order{
		ID:         301,
		CustomerID: 101,
		ProductID:  205,
		OrderDate:  time.Now().UTC(),
		Address:    "Lenina 1",
	}
	_, err = suite.orders.Register(ctx, o)
	require.NoError(suite.T(), err)
	_, err = suite.orders.Register(ctx, o)
	require.ErrorIs(suite.T(), err, domain.ErrDuplicateID)

	// Редактирование того же заказа проходит поверх существующей записи.
	o.Address = "Mira 5"
	edited, err := suite.orders.Edit(ctx, o)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Mira 5", edited.Address)
}

func (suite *BackofficeLifecycleTestSuite) TestProductDeletionFreesImage() {
	ctx := context.Background()

	stored, err := suite.products.Add(ctx, domain.Product{
		ID:    205,
		Name:  "Widget",
		Price: "9.99",
	}, strings.NewReader("png-bytes"), "widget.png")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.products.Delete(ctx, stored.RowKey))

	// Имя изображения снова свободно.
	_, err = suite.blobs.Upload(ctx, strings.NewReader("new-bytes"), "widget.png")
	require.NoError(suite.T(), err)
}

func TestBackofficeLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(BackofficeLifecycleTestSuite))
}
