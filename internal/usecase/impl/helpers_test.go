package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shop/internal/domain/entity"
	"shop/internal/domain/repository"
	mockRepo "shop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTx makes the transaction manager run the callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestMember(t *testing.T, name string) *entity.Member {
	t.Helper()

	member, err := entity.NewMember(name, entity.NewAddress("Seoul", "River", "12345"))
	require.NoError(t, err)
	member.ID = uuid.New()

	return member
}

func newTestBook(t *testing.T, name string, price, stock int) *entity.Item {
	t.Helper()

	book, err := entity.NewBook(name, price, stock, entity.BookDetails{Author: "author", ISBN: "isbn"})
	require.NoError(t, err)
	book.ID = uuid.New()

	return book
}

func newTestOrder(t *testing.T, member *entity.Member, item *entity.Item, count int) *entity.Order {
	t.Helper()

	orderItem, err := entity.NewOrderItem(item, item.Price, count)
	require.NoError(t, err)
	order, err := entity.CreateOrder(member, entity.NewDelivery(member.Address), orderItem)
	require.NoError(t, err)
	order.ID = uuid.New()

	return order
}
