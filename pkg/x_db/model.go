package x_db

import (
	"strings"
	"time"
)

// ItemSep joins items inside a stored row; items may contain commas.
const ItemSep = "\x1f"

// Run is one persisted mining run.
type Run struct {
	ID           string        `gorm:"primaryKey;size:32" json:"id"`
	Source       string        `gorm:"size:512" json:"source"`
	Transactions int           `json:"transactions"`
	MinSupport   int           `json:"min_support"`
	Itemsets     int           `json:"itemsets"`
	Elapsed      time.Duration `json:"elapsed"`
	CreatedAt    time.Time     `gorm:"index" json:"created_at"`
	Rows         []ItemsetRow  `gorm:"foreignKey:RunID" json:"rows,omitempty"`
}

// ItemsetRow is one frequent itemset of a run.
type ItemsetRow struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	RunID   string `gorm:"index;size:32" json:"-"`
	Items   string `json:"-"`
	Size    int    `json:"size"`
	Support int    `gorm:"index" json:"support"`
}

// NewItemsetRow packs items into a row.
func NewItemsetRow(items []string, support int) ItemsetRow {
	return ItemsetRow{
		Items:   strings.Join(items, ItemSep),
		Size:    len(items),
		Support: support,
	}
}

// ItemList unpacks the stored items.
func (r ItemsetRow) ItemList() []string {
	if r.Items == "" {
		return nil
	}
	return strings.Split(r.Items, ItemSep)
}
