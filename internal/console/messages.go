package console

import (
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingDto "frontdesk/internal/domains/booking/model/dto"
	customerModel "frontdesk/internal/domains/customer/model"
	paymentModel "frontdesk/internal/domains/payment/model"
	paymentDto "frontdesk/internal/domains/payment/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	staffModel "frontdesk/internal/domains/staff/model"
)

// List fetch results. Each carries the full refreshed slice for its tab.
type (
	customersLoadedMsg struct{ rows []customerModel.Customer }
	roomsLoadedMsg     struct{ rows []roomModel.Room }
	bookingsLoadedMsg  struct{ rows []bookingModel.Booking }
	paymentsLoadedMsg  struct{ rows []paymentModel.Payment }
	staffLoadedMsg     struct{ rows []staffModel.Staff }
)

// Dashboard aggregate results. The five fetches run independently and these
// messages arrive in any order; each fills exactly one card.
type (
	dashCustomersMsg      struct{ count int }
	dashAvailableRoomsMsg struct{ count int }
	dashBookingsMsg       struct{ count int }
	dashRevenueMsg        struct{ total float64 }
	dashRecentMsg         struct{ rows []bookingModel.Booking }
)

// bookingOptionsMsg delivers the selector data the booking form needs; edit
// is non-nil when the form should open pre-filled with an existing record.
type bookingOptionsMsg struct {
	options bookingDto.BookingFormOptions
	edit    *bookingModel.Booking
}

// paymentOptionsMsg is the payment-form counterpart of bookingOptionsMsg.
type paymentOptionsMsg struct {
	options paymentDto.PaymentFormOptions
	edit    *paymentModel.Payment
}

// savedMsg reports a successful create or update on the given tab's entity.
type savedMsg struct{ tab Tab }

// deletedMsg reports a successful delete on the given tab's entity.
type deletedMsg struct{ tab Tab }

// deleteFailedMsg carries the failure from a rejected delete; a conflict
// code means the record still has dependents.
type deleteFailedMsg struct{ err error }

// wipedMsg carries the record service's own confirmation text after a full
// database wipe.
type wipedMsg struct{ message string }

// wipeFailedMsg reports a failed wipe. The active view still refreshes so
// the lists reflect whatever state the record service was left in.
type wipeFailedMsg struct{ err error }

// errorMsg is the catch-all for failed fetches and saves.
type errorMsg struct{ err error }
