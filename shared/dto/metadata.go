package dto

import (
	"bookme/shared/constant"
	"bookme/shared/model"
	"bookme/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	CreatedBy string `json:"created_by"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.TimestampFormat)
	m.CreatedBy = model.CreatedBy
}
