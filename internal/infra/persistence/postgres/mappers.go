package postgres

import (
	"shop/internal/domain/entity"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func toAddressDomain(columns model.AddressColumns) entity.Address {
	return entity.NewAddress(columns.City, columns.Street, columns.Zipcode)
}

func fromAddressDomain(address entity.Address) model.AddressColumns {
	return model.AddressColumns{
		City:    address.City(),
		Street:  address.Street(),
		Zipcode: address.Zipcode(),
	}
}

func toMemberDomain(data *model.MemberModel) *entity.Member {
	if data == nil {
		return nil
	}

	return &entity.Member{
		ID:        data.ID,
		Name:      data.Name,
		Address:   toAddressDomain(data.Address),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMemberDomain(data *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   fromAddressDomain(data.Address),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	item := &entity.Item{
		ID:            data.ID,
		Kind:          entity.ItemKind(data.Dtype),
		Name:          data.Name,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	attrs := data.Attributes.Data()
	switch item.Kind {
	case entity.ItemKindBook:
		item.Book = &entity.BookDetails{Author: attrs.Author, ISBN: attrs.ISBN}
	case entity.ItemKindAlbum:
		item.Album = &entity.AlbumDetails{Artist: attrs.Artist, Etc: attrs.Etc}
	case entity.ItemKindMovie:
		item.Movie = &entity.MovieDetails{Director: attrs.Director, Actor: attrs.Actor}
	}

	return item
}

func fromItemDomain(data *entity.Item) *model.ItemModel {
	return &model.ItemModel{
		ID:            data.ID,
		Dtype:         data.Kind.String(),
		Name:          data.Name,
		Price:         data.Price,
		StockQuantity: data.StockQuantity,
		Attributes:    datatypes.NewJSONType(itemAttributes(data)),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func itemAttributes(data *entity.Item) model.ItemAttributes {
	var attrs model.ItemAttributes
	if data.Book != nil {
		attrs.Author = data.Book.Author
		attrs.ISBN = data.Book.ISBN
	}
	if data.Album != nil {
		attrs.Artist = data.Album.Artist
		attrs.Etc = data.Album.Etc
	}
	if data.Movie != nil {
		attrs.Director = data.Movie.Director
		attrs.Actor = data.Movie.Actor
	}

	return attrs
}

func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:      data.ID,
		Address: toAddressDomain(data.Address),
		Status:  entity.DeliveryStatus(data.Status),
	}
}

func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	return &model.DeliveryModel{
		ID:      data.ID,
		Address: fromAddressDomain(data.Address),
		Status:  data.Status.String(),
	}
}

// toOrderDomain rebuilds the aggregate with every back-reference set. Lines are
// attached only when the model carries them.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:         data.ID,
		Member:     toMemberDomain(data.Member),
		Delivery:   toDeliveryDomain(data.Delivery),
		OrderDate:  data.OrderDate,
		Status:     entity.OrderStatus(data.Status),
		OrderItems: make([]*entity.OrderItem, 0, len(data.OrderItems)),
	}
	if order.Delivery != nil {
		order.Delivery.Order = order
	}

	// Lines of the same item share one *entity.Item so stock changes add up.
	items := make(map[uuid.UUID]*entity.Item, len(data.OrderItems))
	for i := range data.OrderItems {
		order.OrderItems = append(order.OrderItems, toOrderItemDomain(&data.OrderItems[i], order, items))
	}

	return order
}

func toOrderItemDomain(data *model.OrderItemModel, order *entity.Order, items map[uuid.UUID]*entity.Item) *entity.OrderItem {
	item, ok := items[data.ItemID]
	if !ok {
		item = toItemDomain(data.Item)
		if item != nil {
			items[data.ItemID] = item
		}
	}

	return &entity.OrderItem{
		ID:         data.ID,
		Item:       item,
		Order:      order,
		OrderPrice: data.OrderPrice,
		Count:      data.Count,
	}
}
