package rdb

import "time"

// SubdomainRecord is the RDB persistence model for entity.Subdomain.
// Table name: subdomains
type SubdomainRecord struct {
	Domain    string    `gorm:"primaryKey;type:text;not null"`
	Secret    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (SubdomainRecord) TableName() string { return "subdomains" }
