package postgres

import (
	"context"

	"zenmap/internal/domain/entity"
	domainerrors "zenmap/internal/domain/errors"
	"zenmap/internal/domain/repository"
	"zenmap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shareRuleRepository implements the repository.ShareRuleRepository interface.
type shareRuleRepository struct {
	db *gorm.DB
}

// NewShareRuleRepository is the constructor for shareRuleRepository.
func NewShareRuleRepository(db *gorm.DB) repository.ShareRuleRepository {
	return &shareRuleRepository{
		db: db,
	}
}

// UpsertRule creates or overwrites the rule for the rule's (owner, viewer) pair.
func (repo *shareRuleRepository) UpsertRule(ctx context.Context, rule *entity.ShareRule) error {
	ruleM := fromShareRuleDomain(rule)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "viewer_id"}},
			UpdateAll: true,
		}).
		Create(ruleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to upsert share rule")
	}

	return nil
}

// UpsertRules creates or overwrites several rules.
func (repo *shareRuleRepository) UpsertRules(ctx context.Context, rules []*entity.ShareRule) error {
	if len(rules) == 0 {
		return nil
	}

	ruleModels := make([]*model.ShareRuleModel, 0, len(rules))
	for _, rule := range rules {
		ruleModels = append(ruleModels, fromShareRuleDomain(rule))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "viewer_id"}},
			UpdateAll: true,
		}).
		Create(ruleModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewStorageError(err, "failed to upsert share rules")
	}

	return nil
}

// FindRule retrieves the single rule for an (owner, viewer) pair.
func (repo *shareRuleRepository) FindRule(ctx context.Context, ownerID, viewerID uuid.UUID) (*entity.ShareRule, error) {
	var ruleM model.ShareRuleModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND viewer_id = ?", ownerID, viewerID).
		First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find share rule")
	}

	return toShareRuleDomain(&ruleM), nil
}

// FindRulesByViewer retrieves every rule granting the viewer visibility.
func (repo *shareRuleRepository) FindRulesByViewer(ctx context.Context, viewerID uuid.UUID) ([]*entity.ShareRule, error) {
	return repo.findRules(repo.db.WithContext(ctx).Where("viewer_id = ?", viewerID))
}

// FindRulesByOwner retrieves every rule the owner has granted.
func (repo *shareRuleRepository) FindRulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ShareRule, error) {
	return repo.findRules(repo.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

// DeleteRule removes the owner→viewer rule only.
func (repo *shareRuleRepository) DeleteRule(ctx context.Context, ownerID, viewerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_id = ? AND viewer_id = ?", ownerID, viewerID).
		Delete(&model.ShareRuleModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete share rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShareRuleNotFound
	}

	return nil
}

// DeleteRulePair removes both directed rules between two users.
func (repo *shareRuleRepository) DeleteRulePair(ctx context.Context, userA, userB uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("(owner_id = ? AND viewer_id = ?) OR (owner_id = ? AND viewer_id = ?)",
			userA, userB, userB, userA).
		Delete(&model.ShareRuleModel{})

	if result.Error != nil {
		return domainerrors.NewStorageError(result.Error, "failed to delete share rule pair")
	}

	return nil
}

// findRules runs a prepared query and maps the rows to domain entities.
func (repo *shareRuleRepository) findRules(query *gorm.DB) ([]*entity.ShareRule, error) {
	var ruleModels []*model.ShareRuleModel

	if err := query.Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find share rules")
	}

	rules := make([]*entity.ShareRule, 0, len(ruleModels))
	for _, ruleM := range ruleModels {
		rules = append(rules, toShareRuleDomain(ruleM))
	}

	return rules, nil
}

// --- Mapper Functions ---

func toShareRuleDomain(data *model.ShareRuleModel) *entity.ShareRule {
	if data == nil {
		return nil
	}

	return &entity.ShareRule{
		OwnerID:   data.OwnerID,
		ViewerID:  data.ViewerID,
		Level:     entity.ShareLevel(data.Level),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShareRuleDomain(data *entity.ShareRule) *model.ShareRuleModel {
	if data == nil {
		return nil
	}

	return &model.ShareRuleModel{
		OwnerID:   data.OwnerID,
		ViewerID:  data.ViewerID,
		Level:     data.Level.String(),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
