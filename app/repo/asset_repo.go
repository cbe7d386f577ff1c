package repo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
)

type AssetRepository interface {
	FindAll(search string) ([]model.Asset, error)
	FindByID(id uuid.UUID) (*model.Asset, error)
	Create(asset *model.Asset) error
	Update(asset *model.Asset) error
	Delete(id uuid.UUID) error
}

type AssetRepo struct {
	DB *gorm.DB
}

func NewAssetRepo(db *gorm.DB) *AssetRepo {
	return &AssetRepo{DB: db}
}

func (r *AssetRepo) FindAll(search string) ([]model.Asset, error) {
	var assets []model.Asset
	q := r.DB.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR category ILIKE ? OR location ILIKE ?", like, like, like)
	}
	err := q.Find(&assets).Error
	return assets, err
}

func (r *AssetRepo) FindByID(id uuid.UUID) (*model.Asset, error) {
	var asset model.Asset
	err := r.DB.First(&asset, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepo) Create(asset *model.Asset) error {
	return r.DB.Create(asset).Error
}

func (r *AssetRepo) Update(asset *model.Asset) error {
	return r.DB.Save(asset).Error
}

func (r *AssetRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.Asset{}, "id = ?", id).Error
}
