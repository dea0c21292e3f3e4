package domain

// statusLabels maps every status enumeration the backend emits to its
// display label. The sets overlap on purpose: accounts and catalog entries
// use ACTIVE/INACTIVE, moderated content uses PENDING/APPROVED/REJECTED,
// transactions use PENDING/COMPLETED/FAILED/CANCELLED/REFUNDED.
var statusLabels = map[string]string{
	"ACTIVE":    "Active",
	"INACTIVE":  "Inactive",
	"SUSPENDED": "Suspended",
	"DELETED":   "Deleted",
	"PENDING":   "Pending",
	"APPROVED":  "Approved",
	"REJECTED":  "Rejected",
	"COMPLETED": "Completed",
	"FAILED":    "Failed",
	"CANCELLED": "Cancelled",
	"REFUNDED":  "Refunded",
}

// StatusLabel resolves the display label for a backend status value. Unknown
// values fall back to the raw value so bad data renders instead of crashing
// a table; an empty value renders as "Unknown".
func StatusLabel(status string) string {
	if status == "" {
		return "Unknown"
	}
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}
