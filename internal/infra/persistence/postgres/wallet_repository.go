package postgres

import (
	"context"
	"time"

	"pennyekart/internal/domain/entity"
	domainerrors "pennyekart/internal/domain/errors"
	"pennyekart/internal/domain/repository"
	"pennyekart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walletRepository implements the repository.WalletRepository interface.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// FindWalletByOwner retrieves the wallet owned by the given identity.
func (repo *walletRepository) FindWalletByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&walletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by owner")
	}

	return toWalletDomain(&walletM), nil
}

// CreateWallet persists a new wallet.
func (repo *walletRepository) CreateWallet(ctx context.Context, wallet *entity.Wallet) error {
	walletM := fromWalletDomain(wallet)

	if err := repo.db.WithContext(ctx).Create(walletM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("wallet already exists for owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet")
	}

	wallet.ID = walletM.ID
	wallet.CreatedAt = walletM.CreatedAt
	wallet.UpdatedAt = walletM.UpdatedAt

	return nil
}

// CreditWallet atomically increments the wallet balance with a single UPDATE.
func (repo *walletRepository) CreditWallet(ctx context.Context, walletID uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", walletID).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", amount),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to credit wallet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return nil
}

// AppendTransaction appends one entry to the wallet's transaction log.
func (repo *walletRepository) AppendTransaction(ctx context.Context, txn *entity.WalletTransaction) error {
	txnM := fromWalletTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid wallet reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append wallet transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt

	return nil
}

// ListTransactionsByOwner retrieves an owner's transaction log, newest first.
func (repo *walletRepository) ListTransactionsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.WalletTransaction, error) {
	var txnMs []*model.WalletTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&txnMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txns := make([]*entity.WalletTransaction, 0, len(txnMs))
	for _, txnM := range txnMs {
		txns = append(txns, toWalletTransactionDomain(txnM))
	}

	return txns, nil
}

// --- Mapper Functions ---

func toWalletDomain(data *model.WalletModel) *entity.Wallet {
	if data == nil {
		return nil
	}

	return &entity.Wallet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWalletDomain(data *entity.Wallet) *model.WalletModel {
	if data == nil {
		return nil
	}

	return &model.WalletModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toWalletTransactionDomain(data *model.WalletTransactionModel) *entity.WalletTransaction {
	if data == nil {
		return nil
	}

	return &entity.WalletTransaction{
		ID:          data.ID,
		WalletID:    data.WalletID,
		OwnerID:     data.OwnerID,
		Kind:        entity.TransactionKind(data.Kind),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromWalletTransactionDomain(data *entity.WalletTransaction) *model.WalletTransactionModel {
	if data == nil {
		return nil
	}

	return &model.WalletTransactionModel{
		ID:          data.ID,
		WalletID:    data.WalletID,
		OwnerID:     data.OwnerID,
		Kind:        string(data.Kind),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
