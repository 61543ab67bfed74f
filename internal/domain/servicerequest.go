package domain

import "time"

const (
	RequestTypeVisa        = "visa"
	RequestTypeStudyAbroad = "study-abroad"
	RequestTypeHajj        = "hajj"
	RequestTypeCorporate   = "corporate"
)

const (
	RequestNew         = "new"
	RequestInProgress  = "in-progress"
	RequestPendingDocs = "pending-docs"
	RequestConfirmed   = "confirmed"
	RequestCompleted   = "completed"
	RequestCancelled   = "cancelled"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ServiceRequest is a lead/inquiry for visa, study-abroad, Hajj/Umrah or
// corporate travel services, distinct from a confirmed Booking.
type ServiceRequest struct {
	ID          int64     `json:"id,string"`
	Type        string    `json:"type"`
	CustomerID  int64     `json:"customer_id,string"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	Details     string    `json:"details"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var requestTransitions = map[string][]string{
	RequestNew:         {RequestInProgress, RequestCancelled},
	RequestInProgress:  {RequestPendingDocs, RequestConfirmed, RequestCancelled},
	RequestPendingDocs: {RequestInProgress, RequestConfirmed, RequestCancelled},
	RequestConfirmed:   {RequestCompleted, RequestCancelled},
}

// CanTransitRequest reports whether a service request may move from one
// status to another. Completed and cancelled are terminal.
func CanTransitRequest(from, to string) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestNew, RequestInProgress, RequestPendingDocs,
		RequestConfirmed, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

func ValidRequestType(s string) bool {
	switch s {
	case RequestTypeVisa, RequestTypeStudyAbroad, RequestTypeHajj, RequestTypeCorporate:
		return true
	}
	return false
}

func ValidPriority(s string) bool {
	switch s {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
