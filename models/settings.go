package models

// Settings is the singleton row (fixed id = 1) of global pricing modifiers.
// JSON names keep the wire spelling the stored frontends bind to.
type Settings struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	PlatformFee float64 `gorm:"column:plateformfee" json:"plateformfee"`
	GST         float64 `gorm:"column:gst" json:"gst"`
	DeliveryFee float64 `gorm:"column:delivery_fee" json:"deliveryFee"`
}

const SettingsID = 1
