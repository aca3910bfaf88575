package events

import (
	"context"
	"time"
)

// Event types published on case lifecycle changes
const (
	CaseCreated         = "case.created"
	CaseStatusChanged   = "case.status_changed"
	CaseSupplierChanged = "case.supplier_changed"
	CaseDeleted         = "case.deleted"
)

// Event describes case lifecycle change for external subscribers
type Event struct {
	Type       string    `json:"type"`
	CaseID     int64     `json:"caseId"`
	CustomerID string    `json:"customerId"`
	Message    string    `json:"message"`
	StatusCode *int      `json:"statusCode,omitempty"`
	SupplierID *string   `json:"supplierId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Publisher delivers events best-effort, delivery failures are never returned to caller
type Publisher interface {
	Publish(context.Context, Event)
}

type fanout []Publisher

// Fanout builds publisher delivering each event to every provided publisher, nil publishers are skipped
func Fanout(publishers ...Publisher) Publisher {
	f := make(fanout, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			f = append(f, p)
		}
	}
	return f
}

func (f fanout) Publish(ctx context.Context, e Event) {
	for _, p := range f {
		p.Publish(ctx, e)
	}
}
