package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	"shop/internal/domain/readmodel"
	"shop/internal/domain/repository"
	"shop/internal/errors"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderQueryRepository implements repository.OrderQueryRepository by scanning
// query results straight into view rows.
type orderQueryRepository struct {
	db *gorm.DB
}

// NewOrderQueryRepository is the constructor for orderQueryRepository.
func NewOrderQueryRepository(db *gorm.DB) repository.OrderQueryRepository {
	return &orderQueryRepository{
		db: db,
	}
}

const orderRootColumns = `o.id AS order_id, m.name, o.order_date, o.status AS order_status,
	d.city, d.street, d.zipcode`

type orderRootRow struct {
	OrderID     uuid.UUID
	Name        string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
}

type orderLineRow struct {
	OrderID    uuid.UUID
	ItemName   string
	OrderPrice int
	Count      int
}

// orderFlatRow lists the root columns itself; Scan does not descend into
// unexported embedded structs.
type orderFlatRow struct {
	OrderID     uuid.UUID
	Name        string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
	ItemName    string
	OrderPrice  int
	Count       int
}

// FindAllFlat returns one row per order line in a single query.
func (repo *orderQueryRepository) FindAllFlat(ctx context.Context) ([]readmodel.FlatRow, error) {
	var rows []orderFlatRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("orders AS o").
		Select(orderRootColumns + `, i.name AS item_name, oi.order_price, oi.count`).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Joins("JOIN items i ON i.id = oi.item_id").
		Order("o.order_date, o.id, oi.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query flat order rows")
	}

	flat := make([]readmodel.FlatRow, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, readmodel.FlatRow{
			OrderID:     row.OrderID,
			Name:        row.Name,
			OrderDate:   row.OrderDate,
			OrderStatus: entity.OrderStatus(row.OrderStatus),
			Address:     entity.NewAddress(row.City, row.Street, row.Zipcode),
			ItemName:    row.ItemName,
			OrderPrice:  row.OrderPrice,
			Count:       row.Count,
		})
	}

	return flat, nil
}

// FindOrderViews loads a page of roots, then the lines of each root with its own query.
func (repo *orderQueryRepository) FindOrderViews(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error) {
	roots, err := repo.findRoots(ctx, page)
	if err != nil {
		return nil, err
	}

	views := make([]readmodel.OrderView, 0, len(roots))
	for _, root := range roots {
		view := root.toOrderView()

		lines, err := repo.findLines(ctx, []uuid.UUID{root.OrderID})
		if err != nil {
			return nil, err
		}
		view.OrderItems = lines
		views = append(views, view)
	}

	return views, nil
}

// FindOrderViewsBatched loads a page of roots, then all their lines with one IN query.
func (repo *orderQueryRepository) FindOrderViewsBatched(ctx context.Context, page readmodel.Page) ([]readmodel.OrderView, error) {
	roots, err := repo.findRoots(ctx, page)
	if err != nil {
		return nil, err
	}

	views := make([]readmodel.OrderView, 0, len(roots))
	ids := make([]uuid.UUID, 0, len(roots))
	for _, root := range roots {
		views = append(views, root.toOrderView())
		ids = append(ids, root.OrderID)
	}

	lines, err := repo.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	return readmodel.AttachItems(views, lines), nil
}

// FindSimpleOrderViews selects the to-one projection columns directly.
func (repo *orderQueryRepository) FindSimpleOrderViews(ctx context.Context, page readmodel.Page) ([]readmodel.SimpleOrderView, error) {
	roots, err := repo.findRoots(ctx, page)
	if err != nil {
		return nil, err
	}

	views := make([]readmodel.SimpleOrderView, 0, len(roots))
	for _, root := range roots {
		views = append(views, readmodel.SimpleOrderView{
			OrderID:     root.OrderID,
			Name:        root.Name,
			OrderDate:   root.OrderDate,
			OrderStatus: entity.OrderStatus(root.OrderStatus),
			Address:     entity.NewAddress(root.City, root.Street, root.Zipcode),
		})
	}

	return views, nil
}

// FindStatus returns only the status column of an order.
func (repo *orderQueryRepository) FindStatus(ctx context.Context, id uuid.UUID) (entity.OrderStatus, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Select("status").
		Where("id = ?", id).
		Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrOrderNotFound
		}

		return "", errors.Wrap(err, "failed to find order status")
	}

	return entity.OrderStatus(orderM.Status), nil
}

func (repo *orderQueryRepository) findRoots(ctx context.Context, page readmodel.Page) ([]orderRootRow, error) {
	var rows []orderRootRow

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("orders AS o").
		Select(orderRootColumns).
		Joins("JOIN members m ON m.id = o.member_id").
		Joins("JOIN deliveries d ON d.id = o.delivery_id").
		Order("o.order_date, o.id")
	query = applyPage(query, page)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query order roots")
	}

	return rows, nil
}

func (repo *orderQueryRepository) findLines(ctx context.Context, orderIDs []uuid.UUID) ([]readmodel.OrderItemView, error) {
	lines := make([]readmodel.OrderItemView, 0)
	if len(orderIDs) == 0 {
		return lines, nil
	}

	var rows []orderLineRow
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("order_items AS oi").
		Select("oi.order_id, i.name AS item_name, oi.order_price, oi.count").
		Joins("JOIN items i ON i.id = oi.item_id").
		Where("oi.order_id IN ?", orderIDs).
		Order("oi.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query order lines")
	}

	for _, row := range rows {
		lines = append(lines, readmodel.OrderItemView{
			OrderID:    row.OrderID,
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		})
	}

	return lines, nil
}

func (row orderRootRow) toOrderView() readmodel.OrderView {
	return readmodel.OrderView{
		OrderID:     row.OrderID,
		Name:        row.Name,
		OrderDate:   row.OrderDate,
		OrderStatus: entity.OrderStatus(row.OrderStatus),
		Address:     entity.NewAddress(row.City, row.Street, row.Zipcode),
		OrderItems:  make([]readmodel.OrderItemView, 0),
	}
}
