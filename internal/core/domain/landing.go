package domain

// PageType is the keyword's landing-page affinity: which kind of page the
// resulting traffic should be sent to.
type PageType string

const (
	PageHomepage            PageType = "HOMEPAGE"
	PageDestination         PageType = "DESTINATION"
	PageCategory            PageType = "CATEGORY"
	PageCollection          PageType = "COLLECTION"
	PageExperienceDetail    PageType = "EXPERIENCE_DETAIL"
	PageBlog                PageType = "BLOG"
	PageExperiencesFiltered PageType = "EXPERIENCES_FILTERED"
)

// Validation reason codes attached to a LandingPageTarget. Optimistic
// acceptance on budget exhaustion and on checker failure carry distinct
// codes so the audit trail can tell them apart.
const (
	ValidationChecked   = "checked"
	ValidationExhausted = "budget_exhausted"
	ValidationFailed    = "check_failed"
	ValidationSkipped   = "not_required"
)

// LandingPageTarget is a resolved landing page for one keyword on one site.
// ProductCount is nil when inventory was never counted (homepage, blog, or
// an optimistic acceptance).
type LandingPageTarget struct {
	URL              string
	Path             string
	Type             PageType
	Validated        bool
	ProductCount     *int
	ValidationReason string
}

// Page is a published site page usable as a routing target. Location and
// Category carry the page's tags when present.
type Page struct {
	ID       int64
	SiteID   int64
	Type     PageType
	Title    string
	Path     string
	Location string
	Category string
}

// Collection is a curated product grouping. ActiveMonths lists the calendar
// months (1-12) in which the collection is seasonally relevant; empty means
// evergreen.
type Collection struct {
	ID           int64
	SiteID       int64
	Name         string
	Path         string
	ProductCount int
	ActiveMonths []int
}

// InventoryResult is what the inventory checker reports for a landing page.
type InventoryResult struct {
	Valid        bool
	ProductCount int
}
