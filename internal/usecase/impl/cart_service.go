package impl

import (
	"context"
	"log/slog"

	deliverycontext "medisupply/internal/delivery/context"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	medicineRepo repository.MedicineRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	MedicineRepo repository.MedicineRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		medicineRepo: params.MedicineRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart writes a cart line through a single atomic upsert. Adding the
// same medicine again replaces the quantity; concurrent writers resolve
// through the (user, medicine) unique index, last write wins.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*entity.CartEntry, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	// The medicine must exist and be active before it can be carted.
	if _, err := srv.medicineRepo.FindByID(ctx, input.MedicineID); err != nil {
		if errors.Is(err, repository.ErrMedicineNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMedicineNotFound, "add to cart failed")
		}

		return nil, errors.Wrap(err, "failed to find medicine for cart")
	}

	entry := &entity.CartEntry{
		UserID:     input.UserID,
		MedicineID: input.MedicineID,
		Quantity:   input.Quantity,
	}

	// Single atomic statement - no transaction wrapper needed.
	if err := srv.cartRepo.Upsert(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to upsert cart entry", slog.Any("userID", input.UserID), slog.Any("medicineID", input.MedicineID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upsert cart entry")
	}

	srv.log(ctx).Debug("Cart entry upserted", slog.Any("userID", input.UserID), slog.Any("medicineID", input.MedicineID), slog.Int("quantity", input.Quantity))

	return entry, nil
}

// RemoveFromCart deletes a cart line if present.
func (srv *cartService) RemoveFromCart(ctx context.Context, input *usecase.RemoveFromCartInput) error {
	if err := srv.cartRepo.Remove(ctx, input.UserID, input.MedicineID); err != nil {
		srv.log(ctx).Error("Failed to remove cart entry", slog.Any("userID", input.UserID), slog.Any("medicineID", input.MedicineID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove cart entry")
	}

	return nil
}

// GetCart returns all cart lines of a user with their medicines populated.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]*entity.CartEntry, error) {
	entries, err := srv.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list cart entries", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart entries")
	}

	return entries, nil
}
