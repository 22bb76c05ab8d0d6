package service

import (
	"strings"

	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartView is the cart response shape. Total is derived from the
// lines on every read and never stored.
type CartView struct {
	ID     uint              `json:"id,omitempty"`
	UserID uint              `json:"user_id,omitempty"`
	Items  []models.CartItem `json:"items"`
	Total  models.Money      `json:"total"`
}

// AddCartItemInput carries the add-to-cart fields. All are required.
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
	Size      string
	Color     string
}

// CartService is the cart business service.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart. A user without a cart gets the empty
// shape rather than an error.
func (s *CartService) Get(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartView{Items: []models.CartItem{}, Total: models.Money{}}, nil
	}
	return s.view(cart), nil
}

// AddItem puts a product into the cart, merging with an existing line
// when the same (product, size) is already present. The whole
// operation runs in one transaction so concurrent adds cannot lose a
// merge.
func (s *CartService) AddItem(input AddCartItemInput) (*CartView, error) {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(input.Size) == "" || strings.TrimSpace(input.Color) == "" {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	err = s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetOrCreateByUser(input.UserID)
		if err != nil {
			return err
		}
		existing, err := repo.FindItem(cart.ID, input.ProductID, input.Size)
		if err != nil {
			return err
		}
		if existing != nil {
			return repo.UpdateItemQuantity(existing.ID, existing.Quantity+input.Quantity)
		}
		item := models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Size:      input.Size,
			Color:     input.Color,
			UnitPrice: product.Price,
		}
		return repo.CreateItem(&item)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(input.UserID)
}

// UpdateItemQuantity replaces a line's quantity.
func (s *CartService) UpdateItemQuantity(userID, itemID uint, quantity int) (*CartView, error) {
	if userID == 0 || itemID == 0 {
		return nil, ErrInvalidInput
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		item, err := repo.GetItem(cart.ID, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrCartItemNotFound
		}
		return repo.UpdateItemQuantity(item.ID, quantity)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// RemoveItem deletes a line from the cart.
func (s *CartService) RemoveItem(userID, itemID uint) (*CartView, error) {
	if userID == 0 || itemID == 0 {
		return nil, ErrInvalidInput
	}

	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		return repo.DeleteItem(cart.ID, itemID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear empties the cart.
func (s *CartService) Clear(userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}
	return s.Get(userID)
}

func (s *CartService) view(cart *models.Cart) *CartView {
	total := decimal.Zero
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	for _, item := range items {
		total = total.Add(item.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return &CartView{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  items,
		Total:  models.NewMoneyFromDecimal(total),
	}
}
