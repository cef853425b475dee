package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/lgu-seal/sglgb-backend/dto"
	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/utils"
)

type DBChecklist struct {
	Id          string    `db:"id"`
	IndicatorId string    `db:"indicator_id"`
	Name        string    `db:"name"`
	Config      []byte    `db:"config"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
	PublishedAt null.Time `db:"published_at"`
}

const TABLE_CHECKLISTS = "checklists"

var SelectChecklistColumns = utils.ColumnList[DBChecklist]()

func AdaptChecklistRecord(db DBChecklist) (models.ChecklistRecord, error) {
	config, err := DeserializeChecklistConfig(db.Config)
	if err != nil {
		return models.ChecklistRecord{}, err
	}

	record := models.ChecklistRecord{
		Id:          db.Id,
		IndicatorId: db.IndicatorId,
		Name:        db.Name,
		Config:      config,
		Status:      models.ChecklistStatusFrom(db.Status),
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}
	if db.PublishedAt.Valid {
		record.PublishedAt = &db.PublishedAt.Time
	}
	return record, nil
}

// SerializeChecklistConfig stores the configuration in its wire format, so
// that the stored schema and the API contract can never drift apart.
func SerializeChecklistConfig(config checklist.Config) ([]byte, error) {
	serialized, err := json.Marshal(dto.AdaptChecklistConfigDto(config))
	return serialized, errors.Wrap(err, "failed to serialize checklist config")
}

func DeserializeChecklistConfig(serialized []byte) (checklist.Config, error) {
	if len(serialized) == 0 {
		return checklist.Config{}, nil
	}

	var configDto dto.ChecklistConfigDto
	if err := json.Unmarshal(serialized, &configDto); err != nil {
		return checklist.Config{}, errors.Wrap(err, "failed to deserialize checklist config")
	}
	return dto.AdaptChecklistConfig(configDto)
}
