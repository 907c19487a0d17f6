package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/readmodel"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db             *gorm.DB
	batchFetchSize int
}

// NewOrderRepository is the constructor for orderRepository. Lines of a page of
// orders are loaded with IN queries of at most batchFetchSize ids.
func NewOrderRepository(db *gorm.DB, batchFetchSize int) repository.OrderRepository {
	if batchFetchSize <= 0 {
		batchFetchSize = defaultBatchFetchSize
	}

	return &orderRepository{
		db:             db,
		batchFetchSize: batchFetchSize,
	}
}

// Save persists a new order, its delivery and its lines, assigning their IDs.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	db := repo.db.WithContext(ctx)

	deliveryM := fromDeliveryDomain(order.Delivery)
	if err := db.Create(deliveryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery")
	}

	orderM := &model.OrderModel{
		ID:         order.ID,
		MemberID:   order.Member.ID,
		DeliveryID: deliveryM.ID,
		OrderDate:  order.OrderDate,
		Status:     order.Status.String(),
	}
	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid member reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	lineModels := make([]*model.OrderItemModel, 0, len(order.OrderItems))
	for _, line := range order.OrderItems {
		lineModels = append(lineModels, &model.OrderItemModel{
			ID:         line.ID,
			OrderID:    orderM.ID,
			ItemID:     line.Item.ID,
			OrderPrice: line.OrderPrice,
			Count:      line.Count,
		})
	}
	if err := db.Omit(clause.Associations).Create(&lineModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid item reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	order.ID = orderM.ID
	order.Delivery.ID = deliveryM.ID
	for i, line := range order.OrderItems {
		line.ID = lineModels[i].ID
	}

	return nil
}

// FindByID loads the full aggregate: member, delivery, lines and their items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Joins("Member").
		Joins("Delivery").
		Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		Preload("OrderItems.Item").
		Where("orders.id = ?", id).
		Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate locks the order row and the rows of its items, then loads
// the aggregate. Items are locked in id order so concurrent cancels of orders
// sharing items cannot deadlock.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	db := repo.db.WithContext(ctx)
	forUpdate := clause.Locking{Strength: clause.LockingStrengthUpdate}

	var locked model.OrderModel
	if err := db.
		Clauses(dbresolver.Write, forUpdate).
		Select("id").
		Where("id = ?", id).
		Take(&locked).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	var lockedItems []model.ItemModel
	if err := db.
		Clauses(dbresolver.Write, forUpdate).
		Select("id").
		Where("id IN (?)", db.Model(&model.OrderItemModel{}).Select("item_id").Where("order_id = ?", id)).
		Order("id").
		Find(&lockedItems).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock order items")
	}

	return repo.FindByID(ctx, id)
}

// UpdateStatusIf switches the status only when it still equals from.
func (repo *orderRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	// rows == 0: either the order is gone or its status moved on
	if result.RowsAffected == 0 {
		return repository.ErrOrderStatusChanged
	}

	return nil
}

// UpdateDeliveryStatus writes the status of the order's delivery.
func (repo *orderRepository) UpdateDeliveryStatus(ctx context.Context, delivery *entity.Delivery) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", delivery.ID).
		Update("status", delivery.Status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindAll searches orders and loads member, delivery and lines.
func (repo *orderRepository) FindAll(ctx context.Context, search repository.OrderSearch) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Member").
		Preload("Delivery")
	if search.MemberName != "" {
		query = query.Where("orders.member_id IN (?)",
			repo.db.Model(&model.MemberModel{}).Select("id").Where("name LIKE ?", "%"+search.MemberName+"%"))
	}
	if search.OrderStatus != "" {
		query = query.Where("orders.status = ?", search.OrderStatus.String())
	}

	if err := query.Order("orders.order_date, orders.id").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search orders")
	}

	orders := toOrderDomains(orderModels)
	if err := repo.LoadOrderItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// FindAllWithMemberDelivery loads a page of orders with member and delivery
// joined in the same query. Lines are left empty.
func (repo *orderRepository) FindAllWithMemberDelivery(ctx context.Context, page readmodel.Page) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Joins("Member").
		Joins("Delivery").
		Order("orders.order_date, orders.id")
	query = applyPage(query, page)

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders with member and delivery")
	}

	return toOrderDomains(orderModels), nil
}

// LoadOrderItems fills the lines of the given orders using IN queries of at
// most batchFetchSize order ids each.
func (repo *orderRepository) LoadOrderItems(ctx context.Context, orders []*entity.Order) error {
	byID := make(map[uuid.UUID]*entity.Order, len(orders))
	ids := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		order.OrderItems = make([]*entity.OrderItem, 0)
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}
	items := make(map[uuid.UUID]*entity.Item)

	for start := 0; start < len(ids); start += repo.batchFetchSize {
		end := min(start+repo.batchFetchSize, len(ids))

		var lineModels []*model.OrderItemModel
		if err := repo.db.WithContext(ctx).
			Clauses(dbresolver.Read).
			Joins("Item").
			Where("order_items.order_id IN ?", ids[start:end]).
			Order("order_items.id").
			Find(&lineModels).Error; err != nil {
			return errors.Wrap(err, "failed to load order items")
		}

		for _, lineM := range lineModels {
			order := byID[lineM.OrderID]
			order.OrderItems = append(order.OrderItems, toOrderItemDomain(lineM, order, items))
		}
	}

	return nil
}

// orderGraphRow is one row of the collection join fetch: an order line with
// its order, member, delivery and item columns.
type orderGraphRow struct {
	OrderID         uuid.UUID
	OrderDate       time.Time
	OrderStatus     string
	MemberID        uuid.UUID
	MemberName      string
	MemberCity      string
	MemberStreet    string
	MemberZipcode   string
	DeliveryID      uuid.UUID
	DeliveryCity    string
	DeliveryStreet  string
	DeliveryZipcode string
	DeliveryStatus  string
	OrderItemID     uuid.UUID
	OrderPrice      int
	Count           int
	ItemID          uuid.UUID
	ItemDtype       string
	ItemName        string
	ItemPrice       int
	ItemStock       int
	ItemAttributes  datatypes.JSONType[model.ItemAttributes]
}

// FindAllWithItems loads every order graph with one joined query and folds the
// duplicated root rows back into one aggregate per order.
func (repo *orderRepository) FindAllWithItems(ctx context.Context, page readmodel.Page) ([]*entity.Order, error) {
	if !page.IsZero() {
		return nil, repository.ErrPagingNotSupported
	}

	var rows []orderGraphRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("orders AS o").
		Select(`o.id AS order_id, o.order_date, o.status AS order_status,
			m.id AS member_id, m.name AS member_name, m.city AS member_city, m.street AS member_street, m.zipcode AS member_zipcode,
			d.id AS delivery_id, d.city AS delivery_city, d.street AS delivery_street, d.zipcode AS delivery_zipcode, d.status AS delivery_status,
			oi.id AS order_item_id, oi.order_price, oi.count,
			i.id AS item_id, i.dtype AS item_dtype, i.name AS item_name, i.price AS item_price, i.stock_quantity AS item_stock, i.attributes AS item_attributes`).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Joins("JOIN items i ON i.id = oi.item_id").
		Order("o.order_date, o.id, oi.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch order graphs")
	}

	orders := make([]*entity.Order, 0)
	byID := make(map[uuid.UUID]*entity.Order)
	items := make(map[uuid.UUID]*entity.Item)
	for i := range rows {
		row := &rows[i]

		order, ok := byID[row.OrderID]
		if !ok {
			order = toOrderDomain(&model.OrderModel{
				ID:        row.OrderID,
				OrderDate: row.OrderDate,
				Status:    row.OrderStatus,
				Member: &model.MemberModel{
					ID:      row.MemberID,
					Name:    row.MemberName,
					Address: model.AddressColumns{City: row.MemberCity, Street: row.MemberStreet, Zipcode: row.MemberZipcode},
				},
				Delivery: &model.DeliveryModel{
					ID:      row.DeliveryID,
					Address: model.AddressColumns{City: row.DeliveryCity, Street: row.DeliveryStreet, Zipcode: row.DeliveryZipcode},
					Status:  row.DeliveryStatus,
				},
			})
			byID[row.OrderID] = order
			orders = append(orders, order)
		}

		order.OrderItems = append(order.OrderItems, toOrderItemDomain(&model.OrderItemModel{
			ID:         row.OrderItemID,
			OrderID:    row.OrderID,
			ItemID:     row.ItemID,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
			Item: &model.ItemModel{
				ID:            row.ItemID,
				Dtype:         row.ItemDtype,
				Name:          row.ItemName,
				Price:         row.ItemPrice,
				StockQuantity: row.ItemStock,
				Attributes:    row.ItemAttributes,
			},
		}, order, items))
	}

	return orders, nil
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func applyPage(query *gorm.DB, page readmodel.Page) *gorm.DB {
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}

	return query
}
