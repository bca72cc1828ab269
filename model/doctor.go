package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Doctor is a consulting doctor. Read-only from the registration flow's
// perspective; the roster is maintained out of band.
type Doctor struct {
	gorm.Model
	Name           string          `json:"name" gorm:"size:191"`
	Specialization string          `json:"specialization" gorm:"size:191"`
	ConsultingFee  decimal.Decimal `json:"consulting_fee" gorm:"type:numeric(10,2)"`
	IsAvailable    bool            `json:"is_available"`
}
