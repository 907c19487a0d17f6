package postgres

import (
	"context"
	"testing"

	"shop/config"
	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seededOrder struct {
	member *entity.Member
	order  *entity.Order
}

func seedMember(t *testing.T, db *gorm.DB, name, city string) *entity.Member {
	t.Helper()

	member, err := entity.NewMember(name, entity.NewAddress(city, "street", "1111"))
	require.NoError(t, err)
	require.NoError(t, NewMemberRepository(db).Save(context.Background(), member))

	return member
}

func seedBook(t *testing.T, db *gorm.DB, name string, price, stock int) *entity.Item {
	t.Helper()

	book, err := entity.NewBook(name, price, stock, entity.BookDetails{Author: "kim", ISBN: "isbn-" + name})
	require.NoError(t, err)
	require.NoError(t, NewItemRepository(db).Save(context.Background(), book))

	return book
}

type seedLine struct {
	item  *entity.Item
	count int
}

func seedOrder(t *testing.T, db *gorm.DB, member *entity.Member, lines ...seedLine) *entity.Order {
	t.Helper()
	ctx := context.Background()

	orderItems := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		orderItem, err := entity.NewOrderItem(line.item, line.item.Price, line.count)
		require.NoError(t, err)
		require.NoError(t, NewItemRepository(db).Update(ctx, line.item))
		orderItems = append(orderItems, orderItem)
	}

	order, err := entity.CreateOrder(member, entity.NewDelivery(member.Address), orderItems...)
	require.NoError(t, err)
	require.NoError(t, NewOrderRepository(db, 100).Save(ctx, order))

	return order
}

// seedTwoOrders creates the classic fixture: userA buys JPA1 x1 and JPA2 x2,
// userB buys SPRING1 x3 and SPRING2 x4.
func seedTwoOrders(t *testing.T, db *gorm.DB) []seededOrder {
	t.Helper()

	userA := seedMember(t, db, "userA", "Seoul")
	jpa1 := seedBook(t, db, "JPA1 BOOK", 10000, 100)
	jpa2 := seedBook(t, db, "JPA2 BOOK", 20000, 100)
	orderA := seedOrder(t, db, userA, seedLine{jpa1, 1}, seedLine{jpa2, 2})

	userB := seedMember(t, db, "userB", "Jinju")
	spring1 := seedBook(t, db, "SPRING1 BOOK", 20000, 200)
	spring2 := seedBook(t, db, "SPRING2 BOOK", 40000, 300)
	orderB := seedOrder(t, db, userB, seedLine{spring1, 3}, seedLine{spring2, 4})

	return []seededOrder{{member: userA, order: orderA}, {member: userB, order: orderB}}
}

func TestMemberRepository_SaveAndFind(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedMember(t, db, "kim", "Seoul")
	require.NotEqual(t, uuid.Nil, member.ID)

	found, err := repo.FindByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "kim", found.Name)
	assert.True(t, member.Address.Equal(found.Address))

	byName, err := repo.FindByName(ctx, "kim")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, member.ID, byName[0].ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemberRepository_DuplicateNameRejectedByIndex(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	seedMember(t, db, "kim", "Seoul")

	duplicate, err := entity.NewMember("kim", entity.NewAddress("Busan", "b", "2222"))
	require.NoError(t, err)
	err = repo.Save(ctx, duplicate)
	assert.True(t, errors.Is(err, repository.ErrDuplicateMemberName))

	members, err := repo.FindByName(ctx, "kim")
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestMemberRepository_Update(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	kim := seedMember(t, db, "kim", "Seoul")
	lee := seedMember(t, db, "lee", "Seoul")

	require.NoError(t, kim.Rename("park"))
	require.NoError(t, repo.Update(ctx, kim))

	found, err := repo.FindByID(ctx, kim.ID)
	require.NoError(t, err)
	assert.Equal(t, "park", found.Name)

	require.NoError(t, lee.Rename("park"))
	assert.True(t, errors.Is(repo.Update(ctx, lee), repository.ErrDuplicateMemberName))

	missing := &entity.Member{Name: "ghost"}
	assert.True(t, errors.Is(repo.Update(ctx, missing), repository.ErrMemberNotFound))
}

func TestItemRepository_VariantsRoundTrip(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	album, err := entity.NewAlbum("Abbey Road", 15000, 3, entity.AlbumDetails{Artist: "The Beatles", Etc: "LP"})
	require.NoError(t, err)
	movie, err := entity.NewMovie("Oldboy", 9000, 2, entity.MovieDetails{Director: "Park", Actor: "Choi"})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, album))
	require.NoError(t, repo.Save(ctx, movie))

	foundAlbum, err := repo.FindByID(ctx, album.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKindAlbum, foundAlbum.Kind)
	require.NotNil(t, foundAlbum.Album)
	assert.Equal(t, "The Beatles", foundAlbum.Album.Artist)
	assert.Nil(t, foundAlbum.Book)

	foundMovie, err := repo.FindByIDForUpdate(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, foundMovie.Movie)
	assert.Equal(t, "Park", foundMovie.Movie.Director)

	require.NoError(t, foundMovie.Change("Oldboy 4K", 12000, 5))
	require.NoError(t, repo.Update(ctx, foundMovie))
	updated, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oldboy 4K", updated.Name)
	assert.Equal(t, 5, updated.StockQuantity)

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrItemNotFound))
}

func TestOrderRepository_SaveAndFindByID(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()

	seeded := seedTwoOrders(t, db)
	repo := NewOrderRepository(db, 100)

	order, err := repo.FindByID(ctx, seeded[0].order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusOrdered, order.Status)
	assert.Equal(t, "userA", order.Member.Name)
	assert.Equal(t, entity.DeliveryStatusReady, order.Delivery.Status)
	assert.Same(t, order, order.Delivery.Order)
	require.Len(t, order.OrderItems, 2)
	assert.Equal(t, "JPA1 BOOK", order.OrderItems[0].Item.Name)
	assert.Same(t, order, order.OrderItems[0].Order)
	assert.Equal(t, 50000, order.TotalPrice())
	assert.Equal(t, 99, order.OrderItems[0].Item.StockQuantity)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_UpdateStatusIf(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()

	seeded := seedTwoOrders(t, db)
	repo := NewOrderRepository(db, 100)
	id := seeded[0].order.ID

	require.NoError(t, repo.UpdateStatusIf(ctx, id, entity.OrderStatusOrdered, entity.OrderStatusCancelled))

	err := repo.UpdateStatusIf(ctx, id, entity.OrderStatusOrdered, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, repository.ErrOrderStatusChanged))

	locked, err := repo.FindByIDForUpdate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, locked.Status)
}

func TestOrderRepository_UpdateDeliveryStatus(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()

	seeded := seedTwoOrders(t, db)
	repo := NewOrderRepository(db, 100)

	delivery := seeded[1].order.Delivery
	require.NoError(t, delivery.Advance())
	require.NoError(t, repo.UpdateDeliveryStatus(ctx, delivery))

	order, err := repo.FindByID(ctx, seeded[1].order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusInProgress, order.Delivery.Status)
}

func TestOrderRepository_FindAllSearch(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()

	seeded := seedTwoOrders(t, db)
	repo := NewOrderRepository(db, 100)
	require.NoError(t, repo.UpdateStatusIf(ctx, seeded[1].order.ID, entity.OrderStatusOrdered, entity.OrderStatusCancelled))

	all, err := repo.FindAll(ctx, repository.OrderSearch{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := repo.FindAll(ctx, repository.OrderSearch{MemberName: "userA"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, seeded[0].order.ID, byName[0].ID)
	assert.Len(t, byName[0].OrderItems, 2)

	partial, err := repo.FindAll(ctx, repository.OrderSearch{MemberName: "user"})
	require.NoError(t, err)
	assert.Len(t, partial, 2)

	cancelled, err := repo.FindAll(ctx, repository.OrderSearch{OrderStatus: entity.OrderStatusCancelled})
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, seeded[1].order.ID, cancelled[0].ID)
}

func TestOrderRepository_FindAllWithItems_RejectsPaging(t *testing.T) {
	db := sqlitetest.Open(t)
	repo := NewOrderRepository(db, 100)

	_, err := repo.FindAllWithItems(context.Background(), readmodel.Page{Offset: 0, Limit: 10})

	assert.True(t, errors.Is(err, repository.ErrPagingNotSupported))
}

func TestOrderRepository_FindAllWithItems_DeduplicatesRoots(t *testing.T) {
	db := sqlitetest.Open(t)
	seedTwoOrders(t, db)

	orders, err := NewOrderRepository(db, 100).FindAllWithItems(context.Background(), readmodel.Page{})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Len(t, orders[0].OrderItems, 2)
	assert.Len(t, orders[1].OrderItems, 2)
}

func TestOrderRepository_PagedRootsWithBatchedLines(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()
	seeded := seedTwoOrders(t, db)

	// batch size 1 forces one IN query per order
	repo := NewOrderRepository(db, 1)

	page, err := repo.FindAllWithMemberDelivery(ctx, readmodel.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, seeded[1].order.ID, page[0].ID)
	assert.Equal(t, "userB", page[0].Member.Name)
	assert.Empty(t, page[0].OrderItems)

	all, err := repo.FindAllWithMemberDelivery(ctx, readmodel.Page{})
	require.NoError(t, err)
	require.NoError(t, repo.LoadOrderItems(ctx, all))
	require.Len(t, all, 2)
	assert.Len(t, all[0].OrderItems, 2)
	assert.Len(t, all[1].OrderItems, 2)
}

func TestOrderQueryRepository_FindAllFlat_CarriesRootColumns(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()
	seeded := seedTwoOrders(t, db)

	rows, err := NewOrderQueryRepository(db).FindAllFlat(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byOrder := map[uuid.UUID][]readmodel.FlatRow{}
	for _, row := range rows {
		require.NotEqual(t, uuid.Nil, row.OrderID)
		assert.NotEmpty(t, row.Name)
		assert.False(t, row.OrderDate.IsZero())
		assert.Equal(t, entity.OrderStatusOrdered, row.OrderStatus)
		assert.NotEmpty(t, row.Address.City())
		byOrder[row.OrderID] = append(byOrder[row.OrderID], row)
	}
	require.Len(t, byOrder, 2)

	userB := byOrder[seeded[1].order.ID]
	require.Len(t, userB, 2)
	assert.Equal(t, "userB", userB[0].Name)
	assert.Equal(t, "Jinju", userB[0].Address.City())

	views := readmodel.GroupFlatRows(rows)
	require.Len(t, views, 2)
	assert.Len(t, views[0].OrderItems, 2)
	assert.Len(t, views[1].OrderItems, 2)
}

func TestProjectionStrategiesAreEquivalent(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()
	seedTwoOrders(t, db)

	orderRepo := NewOrderRepository(db, 1)
	queryRepo := NewOrderQueryRepository(db)

	joined, err := orderRepo.FindAllWithItems(ctx, readmodel.Page{})
	require.NoError(t, err)

	roots, err := orderRepo.FindAllWithMemberDelivery(ctx, readmodel.Page{})
	require.NoError(t, err)
	require.NoError(t, orderRepo.LoadOrderItems(ctx, roots))

	flat, err := queryRepo.FindAllFlat(ctx)
	require.NoError(t, err)

	perRoot, err := queryRepo.FindOrderViews(ctx, readmodel.Page{})
	require.NoError(t, err)

	batched, err := queryRepo.FindOrderViewsBatched(ctx, readmodel.Page{})
	require.NoError(t, err)

	expected := readmodel.Canonical(readmodel.FromOrders(joined))
	require.Len(t, expected, 2)

	assert.Equal(t, expected, readmodel.Canonical(readmodel.FromOrders(roots)))
	assert.Equal(t, expected, readmodel.Canonical(readmodel.GroupFlatRows(flat)))
	assert.Equal(t, expected, readmodel.Canonical(perRoot))
	assert.Equal(t, expected, readmodel.Canonical(batched))

	var lines int
	for _, view := range expected {
		lines += len(view.OrderItems)
	}
	assert.Equal(t, len(flat), lines)
}

func TestOrderQueryRepository_SimpleViewsAndStatus(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()
	seeded := seedTwoOrders(t, db)

	queryRepo := NewOrderQueryRepository(db)

	simple, err := queryRepo.FindSimpleOrderViews(ctx, readmodel.Page{Limit: 1})
	require.NoError(t, err)
	require.Len(t, simple, 1)
	assert.Equal(t, "userA", simple[0].Name)
	assert.Equal(t, "Seoul", simple[0].Address.City())

	status, err := queryRepo.FindStatus(ctx, seeded[0].order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusOrdered, status)

	_, err = queryRepo.FindStatus(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := sqlitetest.Open(t)
	ctx := context.Background()
	tm := NewTransactionManager(db, &config.Config{})

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		member, err := entity.NewMember("kim", entity.Address{})
		require.NoError(t, err)
		require.NoError(t, factory.NewMemberRepository().Save(ctx, member))

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	members, err := NewMemberRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	err = tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		member, err := entity.NewMember("kim", entity.Address{})
		require.NoError(t, err)

		return factory.NewMemberRepository().Save(ctx, member)
	})
	require.NoError(t, err)

	members, err = NewMemberRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
