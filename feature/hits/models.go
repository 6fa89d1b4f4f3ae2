package hits

import "time"

// PageHit is one served request as persisted in the page_hits table.
type PageHit struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Path       string    `gorm:"size:512;index;not null" json:"path"`
	Method     string    `gorm:"size:16;not null" json:"method"`
	Status     int       `gorm:"not null" json:"status"`
	Bytes      int       `json:"bytes"`
	DurationMS int64     `gorm:"column:duration_ms" json:"duration_ms"`
	RayID      string    `gorm:"size:64" json:"ray_id"`
	RemoteIP   string    `gorm:"size:64" json:"remote_ip"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName overrides the table name used by PageHit.
func (PageHit) TableName() string {
	return "page_hits"
}

// PathCount is the number of hits recorded for a path.
type PathCount struct {
	Path string `json:"path" example:"/demo.html"`
	Hits int64  `json:"hits" example:"42"`
}
