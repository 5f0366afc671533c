package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/storefront/internal/models"
)

// Request shapes. Create requests carry the required insert fields,
// patch requests use pointers so that absent fields stay unchanged.

type CreateUserRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	FullName    *string `json:"full_name"`
}

type RegisterUserRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type PatchUserRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
	FullName    *string `json:"full_name"`
}

// PatchMeRequest is the self-service subset of PatchUserRequest.
type PatchMeRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CreateItemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type PatchItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type CreateBeverageRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Inventory   int              `json:"inventory"`
}

type PatchBeverageRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Inventory   *int             `json:"inventory"`
}

type CreateOrderRequest struct {
	UserID     uuid.UUID        `json:"user_id"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     *string          `json:"status"`
}

type PatchOrderRequest struct {
	UserID     *uuid.UUID       `json:"user_id"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Status     *string          `json:"status"`
}

type CreateOrderDetailRequest struct {
	OrderID  uuid.UUID        `json:"order_id"`
	ItemID   uuid.UUID        `json:"item_id"`
	Quantity int              `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

type PatchOrderDetailRequest struct {
	OrderID  *uuid.UUID       `json:"order_id"`
	ItemID   *uuid.UUID       `json:"item_id"`
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// Public shapes: identifier plus externally safe fields. UserPublic in
// particular never carries the password hash.

type UserPublic struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	FullName    *string   `json:"full_name,omitempty"`
}

type UsersPublic struct {
	Data  []UserPublic `json:"data"`
	Count int64        `json:"count"`
}

type ItemPublic struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

type ItemsPublic struct {
	Data  []ItemPublic `json:"data"`
	Count int64        `json:"count"`
}

type BeveragePublic struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int             `json:"inventory"`
}

type BeveragesPublic struct {
	Data  []BeveragePublic `json:"data"`
	Count int64            `json:"count"`
}

type OrderPublic struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
}

type OrdersPublic struct {
	Data  []OrderPublic `json:"data"`
	Count int64         `json:"count"`
}

type OrderDetailPublic struct {
	ID       uuid.UUID       `json:"id"`
	OrderID  uuid.UUID       `json:"order_id"`
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderDetailsPublic struct {
	Data  []OrderDetailPublic `json:"data"`
	Count int64               `json:"count"`
}

// Auth contract shapes.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type TokenPayload struct {
	Sub string `json:"sub,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

type NewPassword struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func NewUserPublic(u *models.User) UserPublic {
	return UserPublic{
		ID:          u.ID,
		Email:       u.Email,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		FullName:    u.FullName,
	}
}

func NewUsersPublic(users []models.User, count int64) UsersPublic {
	data := make([]UserPublic, len(users))
	for i := range users {
		data[i] = NewUserPublic(&users[i])
	}
	return UsersPublic{Data: data, Count: count}
}

func NewItemPublic(it *models.Item) ItemPublic {
	return ItemPublic{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		OwnerID:     it.OwnerID,
	}
}

func NewItemsPublic(items []models.Item, count int64) ItemsPublic {
	data := make([]ItemPublic, len(items))
	for i := range items {
		data[i] = NewItemPublic(&items[i])
	}
	return ItemsPublic{Data: data, Count: count}
}

func NewBeveragePublic(b *models.Beverage) BeveragePublic {
	return BeveragePublic{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Price:       b.Price,
		Inventory:   b.Inventory,
	}
}

func NewBeveragesPublic(bevs []models.Beverage, count int64) BeveragesPublic {
	data := make([]BeveragePublic, len(bevs))
	for i := range bevs {
		data[i] = NewBeveragePublic(&bevs[i])
	}
	return BeveragesPublic{Data: data, Count: count}
}

func NewOrderPublic(o *models.Order) OrderPublic {
	return OrderPublic{
		ID:         o.ID,
		UserID:     o.UserID,
		TotalPrice: o.TotalPrice,
		Status:     o.Status,
	}
}

func NewOrdersPublic(orders []models.Order, count int64) OrdersPublic {
	data := make([]OrderPublic, len(orders))
	for i := range orders {
		data[i] = NewOrderPublic(&orders[i])
	}
	return OrdersPublic{Data: data, Count: count}
}

func NewOrderDetailPublic(d *models.OrderDetail) OrderDetailPublic {
	return OrderDetailPublic{
		ID:       d.ID,
		OrderID:  d.OrderID,
		ItemID:   d.ItemID,
		Quantity: d.Quantity,
		Price:    d.Price,
	}
}

func NewOrderDetailsPublic(details []models.OrderDetail, count int64) OrderDetailsPublic {
	data := make([]OrderDetailPublic, len(details))
	for i := range details {
		data[i] = NewOrderDetailPublic(&details[i])
	}
	return OrderDetailsPublic{Data: data, Count: count}
}
