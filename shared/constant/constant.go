package constant

const (
	CurrencySymbol = "$"
)

const (
	RecentBookingsLimit = 5
)

const (
	OtelRepositoryScopeName = "frontdesk.repository"
	OtelServiceScopeName    = "frontdesk.service"
)

const (
	RequestHeaderContentType = "Content-Type"
	ContentTypeJSON          = "application/json"
)

const (
	MessageDeleteConflict = "cannot delete - record has dependent records"
	MessageDeleteFailed   = "error deleting record"
)
