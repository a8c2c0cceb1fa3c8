package mine_serv

import (
	"time"

	"github.com/rskv-p/fpgrowth/pkg/x_db"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
)

// Job is one mining request.
type Job struct {
	Source          string     `json:"source,omitempty"`
	Transactions    [][]string `json:"transactions"`
	MinSupport      int        `json:"min_support,omitempty"`
	MinSupportRatio float64    `json:"min_support_ratio,omitempty"`
	Save            bool       `json:"save,omitempty"`
}

// Report describes a finished or stored run.
type Report struct {
	RunID        string                 `json:"run_id,omitempty"`
	Source       string                 `json:"source,omitempty"`
	Transactions int                    `json:"transactions"`
	MinSupport   int                    `json:"min_support"`
	Count        int                    `json:"count"`
	Elapsed      time.Duration          `json:"elapsed_ns"`
	CreatedAt    time.Time              `json:"created_at,omitzero"`
	Itemsets     []x_fp.Itemset[string] `json:"itemsets,omitempty"`
}

func reportFromRun(run *x_db.Run) *Report {
	rep := &Report{
		RunID:        run.ID,
		Source:       run.Source,
		Transactions: run.Transactions,
		MinSupport:   run.MinSupport,
		Count:        run.Itemsets,
		Elapsed:      run.Elapsed,
		CreatedAt:    run.CreatedAt,
	}
	for _, row := range run.Rows {
		rep.Itemsets = append(rep.Itemsets, x_fp.Itemset[string]{Items: row.ItemList(), Support: row.Support})
	}
	return rep
}

func rowsFromItemsets(sets []x_fp.Itemset[string]) []x_db.ItemsetRow {
	rows := make([]x_db.ItemsetRow, len(sets))
	for i, s := range sets {
		rows[i] = x_db.NewItemsetRow(s.Items, s.Support)
	}
	return rows
}

// Stream event types.
const (
	EventItemset = "itemset"
	EventDone    = "done"
	EventError   = "error"
)

// StreamEvent is one frame of a streamed mining job: an itemset as soon as
// it is found, then either the closing report or an error.
type StreamEvent struct {
	Type    string                `json:"type"`
	Itemset *x_fp.Itemset[string] `json:"itemset,omitempty"`
	Report  *Report               `json:"report,omitempty"`
	Error   string                `json:"error,omitempty"`
}
