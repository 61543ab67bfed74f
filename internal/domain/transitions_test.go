package domain

import "testing"

func TestBookingTransitionTable(t *testing.T) {
	allowed := map[[2]string]bool{
		{BookingPending, BookingConfirmed}:   true,
		{BookingPending, BookingCancelled}:   true,
		{BookingConfirmed, BookingTicketed}:  true,
		{BookingConfirmed, BookingCancelled}: true,
	}
	statuses := []string{BookingPending, BookingConfirmed, BookingTicketed, BookingCancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransitBooking(from, to); got != want {
				t.Errorf("CanTransitBooking(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestRequestTransitionTable(t *testing.T) {
	allowed := map[[2]string]bool{
		{RequestNew, RequestInProgress}:         true,
		{RequestNew, RequestCancelled}:          true,
		{RequestInProgress, RequestPendingDocs}: true,
		{RequestInProgress, RequestConfirmed}:   true,
		{RequestInProgress, RequestCancelled}:   true,
		{RequestPendingDocs, RequestInProgress}: true,
		{RequestPendingDocs, RequestConfirmed}:  true,
		{RequestPendingDocs, RequestCancelled}:  true,
		{RequestConfirmed, RequestCompleted}:    true,
		{RequestConfirmed, RequestCancelled}:    true,
	}
	statuses := []string{
		RequestNew, RequestInProgress, RequestPendingDocs,
		RequestConfirmed, RequestCompleted, RequestCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransitRequest(from, to); got != want {
				t.Errorf("CanTransitRequest(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestValidators(t *testing.T) {
	if !ValidBookingType(BookingTypeFlight) || ValidBookingType("cruise") {
		t.Fatalf("booking type validator wrong")
	}
	if !ValidBookingStatus(BookingTicketed) || ValidBookingStatus("departed") {
		t.Fatalf("booking status validator wrong")
	}
	if !ValidRequestType(RequestTypeStudyAbroad) || ValidRequestType("honeymoon") {
		t.Fatalf("request type validator wrong")
	}
	if !ValidRequestStatus(RequestPendingDocs) || ValidRequestStatus("archived") {
		t.Fatalf("request status validator wrong")
	}
	if !ValidPriority(PriorityLow) || ValidPriority("urgent") {
		t.Fatalf("priority validator wrong")
	}
	if !ValidRole(RoleManager) || ValidRole("root") {
		t.Fatalf("role validator wrong")
	}
}
