package file

import (
	"encoding/json"
	"fmt"
	"os"

	"mining-profit/pkg/domain/model"
)

// LoadJSON JSONファイルを読み込む
func LoadJSON(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// EquipmentCatalog equipments.json の機材カタログ
type EquipmentCatalog struct {
	path string
}

// NewEquipmentCatalog 生成
func NewEquipmentCatalog(path string) *EquipmentCatalog {
	return &EquipmentCatalog{path: path}
}

// GetEquipments 記述順の機材一覧
func (c *EquipmentCatalog) GetEquipments() ([]model.Equipment, error) {
	equipments := []model.Equipment{}
	if err := LoadJSON(c.path, &equipments); err != nil {
		return nil, err
	}
	return equipments, nil
}

// LoadCredentials config.json を読み込む
func LoadCredentials(path string) (*model.Credentials, error) {
	var c model.Credentials
	if err := LoadJSON(path, &c); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return &c, nil
}
