package domain

// ProductKind distinguishes store item categories
type ProductKind string

const (
	ProductClothing ProductKind = "clothing"
	ProductEBook    ProductKind = "eBook"
	ProductOther    ProductKind = "other"
)

// ProductType categorizes a store item. Detail carries free-form text
// when Kind is ProductOther, empty otherwise.
type ProductType struct {
	Kind   ProductKind `json:"kind"`
	Detail string      `json:"detail,omitempty"`
}

// SectionKind identifies what a homepage section renders
type SectionKind string

const (
	SectionBlog       SectionKind = "blog"
	SectionStoreItems SectionKind = "storeItems"
	SectionMeetings   SectionKind = "meetings"
	SectionLivestream SectionKind = "livestream"
	SectionLinks      SectionKind = "links"
	SectionMp3Player  SectionKind = "mp3Player"
	SectionCustom     SectionKind = "custom"
)

// SectionType categorizes a homepage section. Custom carries the body
// text when Kind is SectionCustom, empty otherwise.
type SectionType struct {
	Kind   SectionKind `json:"kind"`
	Custom string      `json:"custom,omitempty"`
}

// BlogPost is a published article with optional attachments.
// PublicationDate and EditRecord timestamps are nanoseconds since epoch.
type BlogPost struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Excerpt         string          `json:"excerpt"`
	PublicationDate int64           `json:"publicationDate"`
	EmbeddedImages  []EmbeddedImage `json:"embeddedImages"`
	AssociatedFiles []Blob          `json:"associatedFiles"`
	EditHistory     []EditRecord    `json:"editHistory"`
}

// EmbeddedImage is an image placed inline within a blog post
type EmbeddedImage struct {
	ID       string `json:"id"`
	URL      Blob   `json:"url"`
	Position int64  `json:"position"`
	Size     string `json:"size"`
	AltText  string `json:"altText"`
}

// EditRecord captures the pre-edit state of a blog post
type EditRecord struct {
	Editor          string `json:"editor"`
	Timestamp       int64  `json:"timestamp"`
	PreviousTitle   string `json:"previousTitle"`
	PreviousContent string `json:"previousContent"`
	PreviousExcerpt string `json:"previousExcerpt"`
}

// StoreItem is a product listing. PriceCents is in minor currency units.
type StoreItem struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	PriceCents    int64       `json:"priceCents"`
	CoverImage    Blob        `json:"coverImage"`
	ProductType   ProductType `json:"productType"`
	Available     bool        `json:"available"`
	PreviewImages []Blob      `json:"previewImages"`
}

// MeetingSlot is a bookable window of time.
// StartTime is nanoseconds since epoch.
type MeetingSlot struct {
	ID              string `json:"id"`
	StartTime       int64  `json:"startTime"`
	DurationMinutes int64  `json:"durationMinutes"`
	Description     string `json:"description"`
	IsBooked        bool   `json:"isBooked"`
}

// Appointment is a booked meeting slot. BookedBy is the caller's
// opaque identity as assigned by the backend.
type Appointment struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	TimeSlotID   string `json:"timeSlotId"`
	BookedBy     string `json:"bookedBy"`
}

// Livestream is an announced upcoming or past stream
type Livestream struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	StartTime         int64  `json:"startTime"`
	ExternalLink      string `json:"externalLink"`
	ButtonLabel       string `json:"buttonLabel"`
	Description       string `json:"description"`
	Visible           bool   `json:"visible"`
	CreationTimestamp int64  `json:"creationTimestamp"`
}

// LinkItem is an entry in the ordered link list
type LinkItem struct {
	ID        string `json:"id"`
	TextLabel string `json:"textLabel"`
	URL       string `json:"url"`
	Visible   bool   `json:"visible"`
	Order     int64  `json:"order"`
}

// HomepageSection is one ordered, toggleable block on the homepage
type HomepageSection struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	SectionType SectionType `json:"sectionType"`
	Order       int64       `json:"order"`
	Visible     bool        `json:"visible"`
}

// SiteContent holds all admin-editable site copy and section toggles
type SiteContent struct {
	BusinessTitle         string `json:"businessTitle"`
	BlogTitle             string `json:"blogTitle"`
	BlogDescription       string `json:"blogDescription"`
	StoreItemsTitle       string `json:"storeItemsTitle"`
	StoreItemsDescription string `json:"storeItemsDescription"`
	MeetingTitle          string `json:"meetingTitle"`
	MeetingDescription    string `json:"meetingDescription"`
	LivestreamTitle       string `json:"livestreamTitle"`
	LivestreamDescription string `json:"livestreamDescription"`
	LinksTitle            string `json:"linksTitle"`
	LinksDescription      string `json:"linksDescription"`
	Mp3PlayerTitle        string `json:"mp3PlayerTitle"`
	Mp3PlayerDescription  string `json:"mp3PlayerDescription"`
	FooterContent         string `json:"footerContent"`
	ShowLivestreamSection bool   `json:"showLivestreamSection"`
	ShowLinksSection      bool   `json:"showLinksSection"`
	ShowMp3PlayerSection  bool   `json:"showMp3PlayerSection"`
	ShowNewSection        bool   `json:"showNewSection"`
}

// Mp3Track is an uploaded audio track. Duration is in seconds.
type Mp3Track struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Duration   int64  `json:"duration"`
	File       Blob   `json:"file"`
	PlaylistID string `json:"playlistId"`
	Order      int64  `json:"order"`
	PlayCount  int64  `json:"playCount"`
	Visible    bool   `json:"visible"`
}

// Playlist groups mp3 tracks
type Playlist struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Order   int64  `json:"order"`
	Visible bool   `json:"visible"`
}

// CountEntry is a single labeled counter from the analytics aggregates
type CountEntry struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// AnalyticsData holds the aggregated visitor counters
type AnalyticsData struct {
	PageVisits    []CountEntry `json:"pageVisits"`
	SectionViews  []CountEntry `json:"sectionViews"`
	ElementClicks []CountEntry `json:"elementClicks"`
	DailyVisitors []CountEntry `json:"dailyVisitors"`
}

// VisitAck confirms a unique-visit report. DayKey is the day bucket the
// backend assigned, which may differ from the client's local date.
type VisitAck struct {
	DayKey string `json:"dayKey"`
	Count  int64  `json:"count"`
}

// UserProfile is the caller's editable profile
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRole is the backend-assigned role of a caller
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// ShoppingItem is one cart line for checkout session creation.
// PriceCents is per unit, in minor currency units.
type ShoppingItem struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	Currency           string `json:"currency"`
	Quantity           int64  `json:"quantity"`
	PriceCents         int64  `json:"priceCents"`
}

// CheckoutState is the terminal state of a checkout session
type CheckoutState string

const (
	CheckoutCompleted CheckoutState = "completed"
	CheckoutFailed    CheckoutState = "failed"
)

// CheckoutStatus reports the outcome of a checkout session poll
type CheckoutStatus struct {
	State         CheckoutState `json:"state"`
	Response      string        `json:"response,omitempty"`
	UserPrincipal string        `json:"userPrincipal,omitempty"`
	Error         string        `json:"error,omitempty"`
}
